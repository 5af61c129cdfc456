// Package main provides CMA-ES search for field parameters that hit a
// target activity profile: mean links per dot and wall bounce rate.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/optimize"

	"github.com/Blooh123/JasminRojo/config"
)

// evalRecord is one row of the tune log.
type evalRecord struct {
	Eval        int     `csv:"eval"`
	Fitness     float64 `csv:"fitness"`
	LinkRange   float64 `csv:"link_range"`
	SpeedScale  float64 `csv:"speed_scale"`
	LinksPerDot float64 `csv:"links_per_dot"`
	BounceRate  float64 `csv:"bounce_rate"`
}

// formatDuration formats a duration as 3m05s or 1h02m03s for longer runs.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	ticks := flag.Int("ticks", 1800, "Ticks per evaluation run")
	seeds := flag.Int("seeds", 3, "Number of seeds per evaluation")
	maxEvals := flag.Int("max-evals", 120, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	targetLinks := flag.Float64("target-links", 2.0, "Target mean links per dot")
	targetBounce := flag.Float64("target-bounce", 0.008, "Target wall bounces per tick")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	// Load base config
	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	params := NewParamVector()

	// Generate seeds for evaluation
	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}

	evaluator := NewFitnessEvaluator(params, *ticks, evalSeeds, *targetLinks, *targetBounce)

	// Set up CMA-ES over normalized coordinates
	dim := params.Dim()
	initX := params.Normalize(params.DefaultVector())

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			raw := params.Denormalize(x)
			return evaluator.Evaluate(raw)
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0, // Sequential evaluation; seeds parallelize inside
	}

	popSize := *population
	if popSize == 0 {
		popSize = 4 + 3*dim/2
	}

	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   popSize,
	}

	// Open eval log
	logPath := filepath.Join(*outputDir, "evals.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()

	// Track evaluations, best so far, and the convergence series
	evalCount := 0
	headerWritten := false
	bestFitness := 1e18
	var bestParams []float64
	var fitnessSeries, bestSeries []float64
	startTime := time.Now()

	// Wrap the function to log evaluations
	originalFunc := problem.Func
	problem.Func = func(x []float64) float64 {
		fitness := originalFunc(x)
		evalCount++

		raw := params.Denormalize(x)
		clamped := params.Clamp(raw)
		if fitness < bestFitness {
			bestFitness = fitness
			bestParams = make([]float64, len(clamped))
			copy(bestParams, clamped)
		}
		fitnessSeries = append(fitnessSeries, fitness)
		bestSeries = append(bestSeries, bestFitness)

		// Log clamped values (the values actually used)
		act := evaluator.LastActivity()
		rec := []evalRecord{{
			Eval:        evalCount,
			Fitness:     fitness,
			LinkRange:   clamped[0],
			SpeedScale:  clamped[1],
			LinksPerDot: act.LinksPerDot,
			BounceRate:  act.BounceRate,
		}}
		var werr error
		if !headerWritten {
			werr = gocsv.Marshal(rec, logFile)
			headerWritten = true
		} else {
			werr = gocsv.MarshalWithoutHeaders(rec, logFile)
		}
		if werr != nil {
			log.Printf("failed to log eval: %v", werr)
		}

		elapsed := time.Since(startTime)
		avgPerEval := elapsed / time.Duration(evalCount)
		remaining := time.Duration(*maxEvals-evalCount) * avgPerEval

		fmt.Printf("Eval %d/%d: links/dot=%.2f bounce/tick=%.4f fitness=%.4f (best=%.4f) | elapsed: %s, ETA: %s\n",
			evalCount, *maxEvals, act.LinksPerDot, act.BounceRate, fitness, bestFitness,
			formatDuration(elapsed), formatDuration(remaining))

		return fitness
	}

	fmt.Printf("Starting CMA-ES with %d parameters, population=%d, max_evals=%d\n",
		dim, popSize, *maxEvals)
	fmt.Printf("Seeds per evaluation: %d, ticks per run: %d, targets: links/dot=%.2f bounce/tick=%.4f\n",
		*seeds, *ticks, *targetLinks, *targetBounce)

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}

	// Best params may come from any evaluation, not just the final one
	if bestParams == nil {
		bestParams = params.Clamp(params.Denormalize(result.X))
	}

	totalTime := time.Since(startTime)
	fmt.Printf("\nSearch complete after %d evaluations in %s\n", evalCount, formatDuration(totalTime))
	fmt.Printf("Best fitness: %.4f\n", bestFitness)

	// Print best parameters as a pasteable YAML fragment
	fmt.Println("\nBest parameters:")
	fmt.Println("field:")
	fmt.Printf("  link_range: %.1f\n", bestParams[0])
	fmt.Printf("  speed_scale: %.3f\n", bestParams[1])

	// Save best config
	bestCfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("failed to reload base config: %v", err)
	} else {
		params.ApplyToConfig(bestCfg, bestParams)
		configOutPath := filepath.Join(*outputDir, "best_config.yaml")
		if err := bestCfg.WriteYAML(configOutPath); err != nil {
			log.Printf("failed to write best config: %v", err)
		} else {
			fmt.Printf("\nBest config saved to: %s\n", configOutPath)
		}
	}

	// Render convergence chart
	chartPath := filepath.Join(*outputDir, "convergence.png")
	if err := renderConvergence(fitnessSeries, bestSeries, chartPath); err != nil {
		log.Printf("failed to render convergence chart: %v", err)
	} else {
		fmt.Printf("Convergence chart saved to: %s\n", chartPath)
	}
}

// renderConvergence plots per-eval fitness and the running best.
func renderConvergence(fitness, best []float64, path string) error {
	if len(fitness) < 2 {
		return fmt.Errorf("convergence chart needs at least 2 evaluations, have %d", len(fitness))
	}

	xs := make([]float64, len(fitness))
	for i := range xs {
		xs[i] = float64(i + 1)
	}

	graph := chart.Chart{
		Title:  "tune convergence",
		Width:  1024,
		Height: 400,
		XAxis:  chart.XAxis{Name: "evaluation"},
		YAxis:  chart.YAxis{Name: "fitness"},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "fitness", XValues: xs, YValues: fitness},
			chart.ContinuousSeries{Name: "best", XValues: xs, YValues: best},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}
