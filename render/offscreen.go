package render

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Blooh123/JasminRojo/config"
)

// TargetSurface draws the field into an offscreen render texture, for PNG
// exports without a visible window. Draw calls must happen between Begin
// and End.
type TargetSurface struct {
	w, h   float32
	target rl.RenderTexture2D

	background rl.Color
	dot        rl.Color
	link       rl.Color
}

// NewTargetSurface allocates a render texture of the given size with the
// configured theme. Requires an initialized raylib context; a hidden window
// is enough.
func NewTargetSurface(w, h int32) *TargetSurface {
	theme := config.Cfg().Derived.Theme
	return &TargetSurface{
		w:          float32(w),
		h:          float32(h),
		target:     rl.LoadRenderTexture(w, h),
		background: toRL(theme.Background),
		dot:        toRL(theme.Dot),
		link:       toRL(theme.Link),
	}
}

// Begin enters texture mode; draw calls land in the target until End.
func (t *TargetSurface) Begin() {
	rl.BeginTextureMode(t.target)
}

// End leaves texture mode.
func (t *TargetSurface) End() {
	rl.EndTextureMode()
}

// Export writes the target texture to a PNG file.
func (t *TargetSurface) Export(path string) error {
	img := rl.LoadImageFromTexture(t.target.Texture)
	defer rl.UnloadImage(img)

	// Render textures are stored bottom-up
	rl.ImageFlipVertical(img)

	if !rl.ExportImage(*img, path) {
		return fmt.Errorf("exporting image to %s", path)
	}
	return nil
}

// Unload releases the render texture.
func (t *TargetSurface) Unload() {
	rl.UnloadRenderTexture(t.target)
}

// Texture exposes the underlying texture for on-screen composition.
func (t *TargetSurface) Texture() rl.Texture2D {
	return t.target.Texture
}

func (t *TargetSurface) Measure() (float32, float32) {
	return t.w, t.h
}

func (t *TargetSurface) ViewportWidth() float32 {
	return t.w
}

// SetSize records the adopted size; the texture is allocated once.
func (t *TargetSurface) SetSize(w, h float32) {
	t.w, t.h = w, h
}

func (t *TargetSurface) Clear() {
	rl.ClearBackground(t.background)
}

func (t *TargetSurface) FillCircle(x, y, radius, alpha float32) {
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, radius, rl.Fade(t.dot, alpha))
}

func (t *TargetSurface) StrokeLine(x1, y1, x2, y2, width, alpha float32) {
	rl.DrawLineEx(
		rl.Vector2{X: x1, Y: y1},
		rl.Vector2{X: x2, Y: y2},
		width,
		rl.Fade(t.link, alpha),
	)
}
