package field

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Blooh123/JasminRojo/config"
)

func TestLinkAlpha(t *testing.T) {
	config.MustInit("")

	testCases := []struct {
		name string
		d    float32
		want float32
	}{
		{"touching", 0, 0.15},
		{"halfway", 50, 0.075},
		{"near edge", 99, 0.0015},
		{"at threshold", 100, 0},
		{"beyond threshold", 150, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := LinkAlpha(tc.d, 100, 0.15)
			if math.Abs(float64(got-tc.want)) > 1e-6 {
				t.Errorf("distance %f: expected alpha %f, got %f", tc.d, tc.want, got)
			}
		})
	}
}

func TestLinkAlphaStrictlyDecreasing(t *testing.T) {
	prev := LinkAlpha(0, 100, 0.15)
	for d := float32(1); d < 100; d++ {
		cur := LinkAlpha(d, 100, 0.15)
		if cur >= prev {
			t.Fatalf("alpha not strictly decreasing: %f at %f after %f", cur, d, prev)
		}
		prev = cur
	}
}

func TestBuildFrameLinks(t *testing.T) {
	config.MustInit("")

	f := NewField(400, 300, rand.New(rand.NewSource(1)))
	f.place(0, 0, 0, 0, 1.0, 0.2)
	f.place(60, 0, 0, 0, 1.0, 0.2)
	f.place(260, 0, 0, 0, 1.0, 0.2)

	frame := f.BuildFrame()

	if len(frame.Dots) != 3 {
		t.Fatalf("expected 3 dots, got %d", len(frame.Dots))
	}
	// Only the 60-unit pair is inside the 100-unit range; the other two
	// pairs sit at 200 and 260.
	if len(frame.Links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(frame.Links))
	}

	link := frame.Links[0]
	want := float32((1 - 60.0/100.0) * 0.15)
	if math.Abs(float64(link.Alpha-want)) > 1e-6 {
		t.Errorf("expected link alpha %f, got %f", want, link.Alpha)
	}
}

func TestBuildFrameThresholdExcluded(t *testing.T) {
	config.MustInit("")

	f := NewField(400, 300, rand.New(rand.NewSource(1)))
	f.place(0, 0, 0, 0, 1.0, 0.2)
	f.place(100, 0, 0, 0, 1.0, 0.2)

	if frame := f.BuildFrame(); len(frame.Links) != 0 {
		t.Errorf("pair exactly at the range produced %d links", len(frame.Links))
	}

	f2 := NewField(400, 300, rand.New(rand.NewSource(1)))
	f2.place(0, 0, 0, 0, 1.0, 0.2)
	f2.place(99.5, 0, 0, 0, 1.0, 0.2)

	if frame := f2.BuildFrame(); len(frame.Links) != 1 {
		t.Errorf("pair just inside the range produced %d links", len(frame.Links))
	}
}

func TestRenderOrder(t *testing.T) {
	config.MustInit("")

	f := NewField(400, 300, rand.New(rand.NewSource(1)))
	f.place(0, 0, 0, 0, 1.0, 0.2)
	f.place(30, 0, 0, 0, 1.0, 0.3)

	surface := newStubSurface(400, 300, 400)
	Render(surface, f.BuildFrame())

	if len(surface.ops) != 4 {
		t.Fatalf("expected clear + 1 line + 2 circles, got %d ops", len(surface.ops))
	}
	wantKinds := []string{"clear", "line", "circle", "circle"}
	for i, want := range wantKinds {
		if surface.ops[i].kind != want {
			t.Errorf("op %d: expected %s, got %s", i, want, surface.ops[i].kind)
		}
	}
}
