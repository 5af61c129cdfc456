package field

// Surface is the immediate-mode drawing contract the field renders through.
// Implementations own their color theme; the field supplies geometry and
// per-primitive alpha only.
type Surface interface {
	// Measure reports the container box the surface should adopt, in pixels.
	Measure() (w, h float32)

	// ViewportWidth reports the width the particle count ladder is
	// evaluated against. For a windowed backend this is the window width;
	// it need not match the container box.
	ViewportWidth() float32

	// SetSize resizes the surface's pixel store.
	SetSize(w, h float32)

	// Clear erases the whole surface to its background color.
	Clear()

	// FillCircle draws a filled disc in the dot color at the given alpha.
	FillCircle(x, y, radius, alpha float32)

	// StrokeLine draws a line in the link color at the given alpha.
	StrokeLine(x1, y1, x2, y2, width, alpha float32)
}

// Registry resolves surface names for simulator construction. A name that
// was never registered yields an inert simulator, not an error.
type Registry struct {
	surfaces map[string]Surface
}

// NewRegistry creates an empty surface registry.
func NewRegistry() *Registry {
	return &Registry{surfaces: make(map[string]Surface)}
}

// Register binds a surface to a name, replacing any previous binding.
func (r *Registry) Register(name string, s Surface) {
	r.surfaces[name] = s
}

// Lookup returns the surface bound to name.
func (r *Registry) Lookup(name string) (Surface, bool) {
	s, ok := r.surfaces[name]
	return s, ok
}

// NullSurface is a Surface that draws nowhere. Headless runs use it so the
// simulation ticks without a display.
type NullSurface struct {
	W, H float32
}

// NewNullSurface creates a null surface with a fixed logical size.
func NewNullSurface(w, h float32) *NullSurface {
	return &NullSurface{W: w, H: h}
}

func (n *NullSurface) Measure() (float32, float32) { return n.W, n.H }

func (n *NullSurface) ViewportWidth() float32 { return n.W }

func (n *NullSurface) SetSize(w, h float32) { n.W, n.H = w, h }

func (n *NullSurface) Clear() {}

func (n *NullSurface) FillCircle(x, y, radius, alpha float32) {}

func (n *NullSurface) StrokeLine(x1, y1, x2, y2, w, a float32) {}
