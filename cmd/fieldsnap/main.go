// Field snapshot tool - settles the particle field and renders one frame to
// a PNG file, without a visible window.
//
// Usage: go run ./cmd/fieldsnap -ticks 300 -out field.png
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Blooh123/JasminRojo/config"
	"github.com/Blooh123/JasminRojo/field"
	"github.com/Blooh123/JasminRojo/render"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "field.png", "Output PNG path")
	width := flag.Int("width", 1280, "Render width")
	height := flag.Int("height", 720, "Render height")
	ticks := flag.Int("ticks", 300, "Ticks to advance before the snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*width), int32(*height), "Field Snapshot")
	defer rl.CloseWindow()

	target := render.NewTargetSurface(int32(*width), int32(*height))
	defer target.Unload()

	// Settle the field on synthetic time, one 60 FPS step per tick, so the
	// shimmer phase advances the same amount regardless of wall clock.
	w, h := float32(*width), float32(*height)
	f := field.NewField(w, h, rng)
	f.Seed(field.CountForWidth(w))

	now := time.Now()
	for i := 0; i < *ticks; i++ {
		f.Advance(now)
		now = now.Add(time.Second / 60)
	}
	frame := f.BuildFrame()

	target.Begin()
	field.Render(target, frame)
	target.End()

	if err := target.Export(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to export image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Field rendered to: %s (%dx%d, %d dots, %d links)\n",
		*outPath, *width, *height, len(frame.Dots), len(frame.Links))
}
