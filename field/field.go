// Package field implements the particle simulation behind the backdrop.
//
// A Field owns a fixed-size set of particles drifting on a bounded surface.
// Each tick integrates positions, bounces particles off the walls, and
// recomputes the opacity shimmer; a frame snapshot then captures the dots and
// the pairwise proximity links for drawing. A Simulator binds a Field to a
// named drawing Surface and a Ticker, and the host starts and stops it as the
// window gains and loses focus.
package field

import (
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/Blooh123/JasminRojo/components"
	"github.com/Blooh123/JasminRojo/config"
)

// Particle count ladder, evaluated once against the viewport width at
// construction. Fixed behavior, not configuration.
const (
	narrowWidth = 480
	mediumWidth = 768
	wideWidth   = 1024

	narrowCount = 20
	mediumCount = 30
	wideCount   = 45
	fullCount   = 60
)

// CountForWidth returns the particle count for a viewport width.
func CountForWidth(w float32) int {
	switch {
	case w < narrowWidth:
		return narrowCount
	case w < mediumWidth:
		return mediumCount
	case w < wideWidth:
		return wideCount
	default:
		return fullCount
	}
}

// Field holds the particle world and the surface bounds particles bounce
// inside. Not safe for concurrent use; all calls belong to one goroutine.
type Field struct {
	world  *ecs.World
	mapper *ecs.Map4[components.Position, components.Velocity, components.Body, components.Glow]
	filter *ecs.Filter4[components.Position, components.Velocity, components.Body, components.Glow]

	rng   *rand.Rand
	w, h  float32
	count int
}

// NewField creates an empty field with the given bounds. A nil rng gets a
// time-seeded source.
func NewField(w, h float32, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	f := &Field{rng: rng, w: w, h: h}
	f.world = ecs.NewWorld()
	f.mapper = ecs.NewMap4[components.Position, components.Velocity, components.Body, components.Glow](f.world)
	f.filter = ecs.NewFilter4[components.Position, components.Velocity, components.Body, components.Glow](f.world)
	return f
}

// Seed discards all particles and creates count fresh ones: uniform random
// position inside the bounds, radius and base opacity drawn from the
// configured ranges, velocity per axis uniform in +-speed_scale/2. Alpha
// starts equal to the base.
func (f *Field) Seed(count int) {
	f.despawnAll()

	cfg := config.Cfg()
	d := &cfg.Derived
	for i := 0; i < count; i++ {
		pos := components.Position{
			X: f.rng.Float32() * f.w,
			Y: f.rng.Float32() * f.h,
		}
		vel := components.Velocity{
			X: (f.rng.Float32() - 0.5) * d.SpeedScale32,
			Y: (f.rng.Float32() - 0.5) * d.SpeedScale32,
		}
		body := components.Body{
			Radius: d.RadiusMin32 + f.rng.Float32()*(d.RadiusMax32-d.RadiusMin32),
		}
		base := d.BaseAlphaMin32 + f.rng.Float32()*(d.BaseAlphaMax32-d.BaseAlphaMin32)
		glow := components.Glow{Base: base, Alpha: base}

		f.mapper.NewEntity(&pos, &vel, &body, &glow)
	}
	f.count = count
}

// Reset reseeds wholesale at the current count and bounds.
func (f *Field) Reset() {
	f.Seed(f.count)
}

// Resize updates the bounds. Particles are not reseeded; positions outside
// the new bounds get clamped by their next bounce.
func (f *Field) Resize(w, h float32) {
	f.w, f.h = w, h
}

// Count returns the particle count chosen at the last seed.
func (f *Field) Count() int {
	return f.count
}

// ParticleInfo is a full snapshot of one particle, for the probe panel.
type ParticleInfo struct {
	X, Y      float32
	VX, VY    float32
	Radius    float32
	BaseAlpha float32
	Alpha     float32
}

// Particle returns the particle at the given query-order index. Indices match
// the dot order of BuildFrame until the next reseed.
func (f *Field) Particle(index int) (ParticleInfo, bool) {
	var info ParticleInfo
	found := false

	i := 0
	query := f.filter.Query()
	for query.Next() {
		if i == index {
			pos, vel, body, glow := query.Get()
			info = ParticleInfo{
				X: pos.X, Y: pos.Y,
				VX: vel.X, VY: vel.Y,
				Radius:    body.Radius,
				BaseAlpha: glow.Base,
				Alpha:     glow.Alpha,
			}
			found = true
		}
		i++
	}

	return info, found
}

// Size returns the current bounds.
func (f *Field) Size() (w, h float32) {
	return f.w, f.h
}

// despawnAll removes every particle. Entities are collected before removal;
// structural changes invalidate a live query.
func (f *Field) despawnAll() {
	entities := make([]ecs.Entity, 0, f.count)
	query := f.filter.Query()
	for query.Next() {
		entities = append(entities, query.Entity())
	}
	for _, e := range entities {
		f.world.RemoveEntity(e)
	}
	f.count = 0
}
