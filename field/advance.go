package field

import (
	"math"
	"time"

	"github.com/Blooh123/JasminRojo/config"
)

// Advance runs one update step at the given wall-clock time and returns the
// number of axis bounces that occurred.
//
// Per particle: integrate velocity into position, bounce each axis
// independently off [0, dim] by flipping that axis's velocity sign and
// clamping the coordinate back inside, then recompute the glow alpha as
// base + amp*sin(millis*rate + phase). The phase is drawn fresh every tick
// for every particle, so the flicker is noisy rather than a clean
// oscillation. Intentional.
func (f *Field) Advance(now time.Time) int {
	cfg := config.Cfg()
	amp := float64(cfg.Derived.ShimmerAmp32)
	rate := cfg.Field.ShimmerRate
	millis := float64(now.UnixMilli())

	bounces := 0
	query := f.filter.Query()
	for query.Next() {
		pos, vel, _, glow := query.Get()

		pos.X += vel.X
		pos.Y += vel.Y

		if pos.X < 0 || pos.X > f.w {
			vel.X = -vel.X
			pos.X = clamp(pos.X, 0, f.w)
			bounces++
		}
		if pos.Y < 0 || pos.Y > f.h {
			vel.Y = -vel.Y
			pos.Y = clamp(pos.Y, 0, f.h)
			bounces++
		}

		glow.Alpha = glow.Base + float32(amp*math.Sin(millis*rate+f.rng.Float64()))
	}
	return bounces
}
