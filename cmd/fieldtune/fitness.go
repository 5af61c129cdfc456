package main

import (
	"math/rand"
	"sync"

	"github.com/Blooh123/JasminRojo/config"
	"github.com/Blooh123/JasminRojo/field"
	"github.com/Blooh123/JasminRojo/telemetry"
)

// Scoring weights and run shape. Connectivity dominates the look, so the
// link error weighs heavier than the bounce error.
const (
	linksWeight  = 0.7
	bounceWeight = 0.3

	// Windows skipped while the initial scatter settles.
	warmupWindows = 2

	// Fitness charged to a run that produced no usable windows.
	failPenalty = 1e3
)

// activity is the averaged field texture from one run.
type activity struct {
	LinksPerDot float64 // mean links divided by dot count
	BounceRate  float64 // wall bounces per tick
}

// FitnessEvaluator runs headless fields and scores their activity against
// the targets (lower = better).
type FitnessEvaluator struct {
	params       *ParamVector
	maxTicks     int
	windowTicks  int
	seeds        []int64
	targetLinks  float64
	targetBounce float64

	mu           sync.Mutex
	lastActivity activity // averaged over seeds, most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int, seeds []int64, targetLinks, targetBounce float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:       params,
		maxTicks:     maxTicks,
		windowTicks:  config.Cfg().Telemetry.WindowTicks,
		seeds:        seeds,
		targetLinks:  targetLinks,
		targetBounce: targetBounce,
	}
}

// LastActivity returns the seed-averaged activity from the most recent
// Evaluate call.
func (fe *FitnessEvaluator) LastActivity() activity {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastActivity
}

// seedResult holds the result from one seed run.
type seedResult struct {
	fitness float64
	act     activity
	ok      bool
}

// Evaluate computes fitness for a parameter vector (lower = better).
//
// All seeds share one parameter set, written to the process config once
// before the parallel runs; field code only reads it from there.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	fe.params.ApplyToConfig(config.Cfg(), x)

	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			act, ok := fe.runField(s)
			results[idx] = seedResult{
				fitness: fe.score(act, ok),
				act:     act,
				ok:      ok,
			}
		}(i, seed)
	}
	wg.Wait()

	var totalFitness float64
	var sum activity
	var n int
	for _, r := range results {
		totalFitness += r.fitness
		if r.ok {
			sum.LinksPerDot += r.act.LinksPerDot
			sum.BounceRate += r.act.BounceRate
			n++
		}
	}

	avgFitness := totalFitness / float64(len(fe.seeds))

	fe.mu.Lock()
	if n > 0 {
		fe.lastActivity = activity{
			LinksPerDot: sum.LinksPerDot / float64(n),
			BounceRate:  sum.BounceRate / float64(n),
		}
	} else {
		fe.lastActivity = activity{}
	}
	fe.mu.Unlock()

	return avgFitness
}

// runField executes one headless run through the same simulator, ticker,
// and collector pipeline the app uses, and averages its window stats.
func (fe *FitnessEvaluator) runField(seed int64) (activity, bool) {
	cfg := config.Cfg()

	surface := field.NewNullSurface(float32(cfg.Headless.Width), float32(cfg.Headless.Height))
	registry := field.NewRegistry()
	registry.Register("tune", surface)

	rng := rand.New(rand.NewSource(seed))
	sim := field.NewSimulator("tune", registry, rng)

	collector := telemetry.NewCollector(fe.windowTicks, sim, nil, nil, nil)
	sim.SetObserver(collector)

	pump := &field.ManualTicker{}
	sim.Start(pump)
	pump.Advance(fe.maxTicks)
	sim.Stop()
	collector.Flush()

	return computeActivity(collector.History())
}

// computeActivity averages links per dot and bounce rate across the windows
// past warmup.
func computeActivity(windows []telemetry.WindowStats) (activity, bool) {
	if len(windows) <= warmupWindows {
		return activity{}, false
	}

	var links, rate float64
	var n int
	for _, w := range windows[warmupWindows:] {
		if w.Dots == 0 {
			continue
		}
		links += w.LinksMean / float64(w.Dots)
		rate += w.BounceRate
		n++
	}
	if n == 0 {
		return activity{}, false
	}
	return activity{
		LinksPerDot: links / float64(n),
		BounceRate:  rate / float64(n),
	}, true
}

// score is the weighted squared relative distance to the targets.
func (fe *FitnessEvaluator) score(a activity, ok bool) float64 {
	if !ok {
		return failPenalty
	}
	le := (a.LinksPerDot - fe.targetLinks) / fe.targetLinks
	be := (a.BounceRate - fe.targetBounce) / fe.targetBounce
	return linksWeight*le*le + bounceWeight*be*be
}
