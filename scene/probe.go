package scene

import (
	"math"

	"github.com/Blooh123/JasminRojo/ui"
)

// pickRadius is the maximum click distance for selecting a dot, in pixels.
const pickRadius = 12.0

type probeSelection struct {
	active bool
	index  int
}

// probeSelect picks the nearest dot within pickRadius of the click, or
// clears the selection when none is close enough.
func (a *App) probeSelect(mx, my float32) {
	frame := a.sim.Frame()

	best := -1
	bestDist := float32(pickRadius)

	for i, d := range frame.Dots {
		dx := d.X - mx
		dy := d.Y - my
		dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}

	if best < 0 {
		a.probe = probeSelection{}
		return
	}
	a.probe = probeSelection{active: true, index: best}
}

// drawProbe renders the probe panel for the current selection. The selection
// drops itself when its index stops resolving (field reseeded smaller).
func (a *App) drawProbe(screenHeight int32) {
	info, ok := a.sim.Particle(a.probe.index)
	if !ok {
		a.probe = probeSelection{}
		return
	}

	a.probeUI.Draw(ui.ProbeData{
		Index:     a.probe.index,
		X:         info.X,
		Y:         info.Y,
		VX:        info.VX,
		VY:        info.VY,
		Radius:    info.Radius,
		BaseAlpha: info.BaseAlpha,
		Alpha:     info.Alpha,
	}, screenHeight)
}
