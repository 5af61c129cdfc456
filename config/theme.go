package config

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme holds the parsed display colors.
type Theme struct {
	Background colorful.Color
	Dot        colorful.Color
	Link       colorful.Color
	Accent     colorful.Color
}

// parse converts the hex strings into colors. The accent falls back to a
// lightness-shifted dot color when left empty.
func (t ThemeConfig) parse() (Theme, error) {
	var theme Theme
	var err error

	if theme.Background, err = colorful.Hex(t.Background); err != nil {
		return Theme{}, fmt.Errorf("background %q: %w", t.Background, err)
	}
	if theme.Dot, err = colorful.Hex(t.Dot); err != nil {
		return Theme{}, fmt.Errorf("dot %q: %w", t.Dot, err)
	}
	if theme.Link, err = colorful.Hex(t.Link); err != nil {
		return Theme{}, fmt.Errorf("link %q: %w", t.Link, err)
	}

	if t.Accent == "" {
		h, s, l := theme.Dot.Hsl()
		theme.Accent = colorful.Hsl(h, s, l*0.7)
		return theme, nil
	}
	if theme.Accent, err = colorful.Hex(t.Accent); err != nil {
		return Theme{}, fmt.Errorf("accent %q: %w", t.Accent, err)
	}
	return theme, nil
}
