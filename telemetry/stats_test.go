package telemetry

import (
	"math"
	"testing"
)

func TestQuantileEdges(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0 is min", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100 is max", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p0 unsorted", []float64{4, 1, 5, 2, 3}, 0.0, 1.0},
		{"p100 unsorted", []float64{4, 1, 5, 2, 3}, 1.0, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quantile(tt.values, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Quantile(%v, %v) = %v, want %v", tt.values, tt.p, got, tt.want)
			}
		})
	}
}

func TestQuantileMonotonic(t *testing.T) {
	values := []float64{3, 9, 1, 7, 5, 2, 8, 4, 6, 10}

	prev := math.Inf(-1)
	for p := 0.0; p <= 1.0; p += 0.05 {
		got := Quantile(values, p)
		if got < prev {
			t.Fatalf("Quantile not monotonic: p=%v gave %v after %v", p, got, prev)
		}
		if got < 1 || got > 10 {
			t.Fatalf("Quantile(%v) = %v outside data range", p, got)
		}
		prev = got
	}
}

func TestQuantileLeavesInputUntouched(t *testing.T) {
	values := []float64{3, 1, 2}
	Quantile(values, 0.5)

	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered to %v", values)
	}
}

func TestMeanStd(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		wantMean float64
		wantStd  float64
	}{
		{"empty slice", []float64{}, 0, 0},
		{"single element", []float64{3.5}, 3.5, 0},
		{"uniform", []float64{4, 4, 4, 4}, 4, 0},
		{"spread", []float64{2, 4, 4, 4, 5, 5, 7, 9}, 5, 2.138},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std := MeanStd(tt.values)
			if math.Abs(mean-tt.wantMean) > 0.001 {
				t.Errorf("mean = %v, want %v", mean, tt.wantMean)
			}
			if math.Abs(std-tt.wantStd) > 0.001 {
				t.Errorf("std = %v, want %v", std, tt.wantStd)
			}
		})
	}
}
