// Link preview tool - interactive explorer for the link falloff curve and
// the shimmer, with sliders over a live miniature field.
//
// Usage: go run ./cmd/linkpreview
package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Blooh123/JasminRojo/config"
	"github.com/Blooh123/JasminRojo/field"
	"github.com/Blooh123/JasminRojo/render"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
	curveHeight  = 120
)

func main() {
	config.MustInit("")
	cfg := config.Cfg()
	d := &cfg.Derived

	// Snapshot the loaded values so Reset All can restore them
	defaults := cfg.Derived
	defaultRate := cfg.Field.ShimmerRate

	rl.InitWindow(windowWidth, windowHeight, "Link Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	target := render.NewTargetSurface(previewSize, previewSize)
	defer target.Unload()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	f := field.NewField(previewSize, previewSize, rng)
	dots := 24
	f.Seed(dots)

	animating := true
	frame := f.BuildFrame()

	for !rl.WindowShouldClose() {
		if animating {
			f.Advance(time.Now())
			frame = f.BuildFrame()
		}

		target.Begin()
		field.Render(target, frame)
		target.End()

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Preview pane. Render textures are stored bottom-up, so the source
		// rect flips with a negative height.
		rl.DrawTexturePro(
			target.Texture(),
			rl.Rectangle{X: 0, Y: 0, Width: previewSize, Height: -previewSize},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		rl.DrawText(fmt.Sprintf("Dots: %d  Links: %d", len(frame.Dots), len(frame.Links)),
			15, previewSize+25, 16, rl.DarkGray)

		drawFalloffCurve(10, previewSize+50, previewSize, curveHeight,
			d.LinkRange32, d.LinkAlphaScale32)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Link & Shimmer Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		reseed := false

		d.LinkRange32 = slider(panelX, &panelY, "Link range (px)",
			d.LinkRange32, 40, 200, "%.0f")
		d.LinkAlphaScale32 = slider(panelX, &panelY, "Link alpha at zero distance",
			d.LinkAlphaScale32, 0.05, 0.5, "%.2f")
		d.LinkWidth32 = slider(panelX, &panelY, "Link stroke width (px)",
			d.LinkWidth32, 0.5, 3.0, "%.1f")
		d.ShimmerAmp32 = slider(panelX, &panelY, "Shimmer amplitude",
			d.ShimmerAmp32, 0, 0.3, "%.2f")

		newRate := slider(panelX, &panelY, "Shimmer rate (rad/ms)",
			float32(cfg.Field.ShimmerRate), 0.0005, 0.02, "%.4f")
		cfg.Field.ShimmerRate = float64(newRate)

		newSpeed := slider(panelX, &panelY, "Speed scale (takes effect on reseed)",
			d.SpeedScale32, 0.05, 1.0, "%.2f")
		if newSpeed != d.SpeedScale32 {
			d.SpeedScale32 = newSpeed
			reseed = true
		}

		newDots := int(slider(panelX, &panelY, "Dots",
			float32(dots), 5, 60, "%.0f"))
		if newDots != dots {
			dots = newDots
			reseed = true
		}
		panelY += 10

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Pause", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reseed") {
			reseed = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			*d = defaults
			cfg.Field.ShimmerRate = defaultRate
			dots = 24
			reseed = true
		}
		panelY += 55

		if reseed {
			f.Seed(dots)
			frame = f.BuildFrame()
		}

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range yamlLines(cfg) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		// Instructions
		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), windowHeight-30, 12, rl.LightGray)

		// Copy to clipboard on C key
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(strings.Join(yamlLines(cfg), "\n"))
		}

		rl.EndDrawing()
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// slider draws one labeled slider row and returns the new value.
func slider(x float32, y *float32, label string, value, minVal, maxVal float32, format string) float32 {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		"", "",
		value, minVal, maxVal,
	)
	rl.DrawText(fmt.Sprintf(format, v), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	return v
}

// drawFalloffCurve plots link alpha against pair distance for the current
// range and scale, normalized to the scale so the curve spans the strip.
func drawFalloffCurve(x, y, w, h int32, reach, scale float32) {
	rl.DrawRectangleLines(x, y, w, h, rl.DarkGray)
	rl.DrawText("link alpha vs distance", x+5, y+5, 12, rl.Gray)

	if reach <= 0 || scale <= 0 {
		return
	}
	prevX, prevY := x, y
	for px := int32(1); px < w; px++ {
		dist := float32(px) / float32(w) * reach
		a := field.LinkAlpha(dist, reach, scale) / scale
		cx := x + px
		cy := y + int32((1-a)*float32(h-1))
		rl.DrawLine(prevX, prevY, cx, cy, rl.SkyBlue)
		prevX, prevY = cx, cy
	}
}

func yamlLines(cfg *config.Config) []string {
	d := &cfg.Derived
	return []string{
		"field:",
		fmt.Sprintf("  link_range: %.0f", d.LinkRange32),
		fmt.Sprintf("  link_alpha_scale: %.2f", d.LinkAlphaScale32),
		fmt.Sprintf("  link_width: %.1f", d.LinkWidth32),
		fmt.Sprintf("  shimmer_amp: %.2f", d.ShimmerAmp32),
		fmt.Sprintf("  shimmer_rate: %.4f", cfg.Field.ShimmerRate),
		fmt.Sprintf("  speed_scale: %.2f", d.SpeedScale32),
	}
}
