package viapattern

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpenTraceLab/kicad-via-patterns/pkg/kicad/pcb"
)

// 0.6mm via with the Default net class of a new board
var defaultParams = Params{ViaWidth: 600000, Clearance: 200000, TrackWidth: 200000}

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name      string
		pattern   Pattern
		direction Direction
		params    Params
		want      Layout
	}{
		{
			name:      "perpendicular",
			pattern:   Perpendicular,
			direction: Horizontal,
			params:    defaultParams,
			want:      Layout{Perpendicular, Horizontal, pcb.Pt(800000, 0)},
		},
		{
			name:      "perpendicular extra space",
			pattern:   Perpendicular,
			direction: Horizontal,
			params:    Params{ViaWidth: 600000, Clearance: 200000, TrackWidth: 200000, ExtraSpace: 50000},
			want:      Layout{Perpendicular, Horizontal, pcb.Pt(850000, 0)},
		},
		{
			name:      "perpendicular vertical",
			pattern:   Perpendicular,
			direction: Vertical,
			params:    defaultParams,
			want:      Layout{Perpendicular, Vertical, pcb.Pt(0, 800000)},
		},
		{
			name:      "diagonal wide track",
			pattern:   Diagonal,
			direction: Horizontal,
			params:    defaultParams,
			want:      Layout{Diagonal, Horizontal, pcb.Pt(600000, 600000)},
		},
		{
			name:      "diagonal narrow track",
			pattern:   Diagonal,
			direction: Horizontal,
			params:    Params{ViaWidth: 600000, Clearance: 200000, TrackWidth: 100000},
			want:      Layout{Diagonal, Horizontal, pcb.Pt(565685, 565685)},
		},
		{
			name:      "stagger",
			pattern:   Stagger,
			direction: Horizontal,
			params:    defaultParams,
			want:      Layout{Stagger, Horizontal, pcb.Pt(1200000, 529150)},
		},
		{
			name:      "stagger vertical",
			pattern:   Stagger,
			direction: Vertical,
			params:    defaultParams,
			want:      Layout{Stagger, Vertical, pcb.Pt(529150, 1200000)},
		},
		{
			name:      "stagger falls back",
			pattern:   Stagger,
			direction: Horizontal,
			params:    Params{ViaWidth: 600000, Clearance: 200000, TrackWidth: 650000},
			want:      Layout{Perpendicular, Horizontal, pcb.Pt(850000, 0)},
		},
		{
			name:      "diagonal falls back",
			pattern:   Diagonal,
			direction: Vertical,
			params:    Params{ViaWidth: 600000, Clearance: 200000, TrackWidth: 650000},
			want:      Layout{Perpendicular, Vertical, pcb.Pt(0, 850000)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeLayout(tt.pattern, tt.direction, tt.params)
			if err != nil {
				t.Fatalf("ComputeLayout: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("layout mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeLayoutErrors(t *testing.T) {
	if _, err := ComputeLayout(Pattern("Spiral"), Horizontal, defaultParams); !errors.Is(err, ErrUnsupportedPattern) {
		t.Errorf("unknown pattern error = %v", err)
	}
	if _, err := ComputeLayout(Stagger, Direction("Up"), defaultParams); !errors.Is(err, ErrUnsupportedDirection) {
		t.Errorf("unknown direction error = %v", err)
	}

	// An odd via width equal to the track width leaves no real row distance
	odd := Params{ViaWidth: 600001, Clearance: 200000, TrackWidth: 600001}
	if _, err := ComputeLayout(Stagger, Horizontal, odd); !errors.Is(err, ErrStaggerGeometry) {
		t.Errorf("stagger geometry error = %v", err)
	}
}

func TestEffectivePattern(t *testing.T) {
	wide := Params{ViaWidth: 600000, TrackWidth: 600001}
	same := Params{ViaWidth: 600000, TrackWidth: 600000}

	for _, p := range Patterns {
		if got := EffectivePattern(p, same); got != p {
			t.Errorf("EffectivePattern(%s, track == via) = %s", p, got)
		}
		if got := EffectivePattern(p, wide); got != Perpendicular {
			t.Errorf("EffectivePattern(%s, track > via) = %s", p, got)
		}
	}
}

func TestDisplacements(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		count  int
		want   []pcb.Point
	}{
		{
			name:   "single via",
			layout: Layout{Perpendicular, Horizontal, pcb.Pt(800000, 0)},
			count:  1,
			want:   []pcb.Point{{}},
		},
		{
			name:   "straight line",
			layout: Layout{Diagonal, Horizontal, pcb.Pt(565685, 565685)},
			count:  3,
			want:   []pcb.Point{{}, pcb.Pt(565685, 565685), pcb.Pt(1131370, 1131370)},
		},
		{
			name:   "stagger horizontal",
			layout: Layout{Stagger, Horizontal, pcb.Pt(1200000, 529150)},
			count:  4,
			want:   []pcb.Point{{}, pcb.Pt(600000, 529150), pcb.Pt(1200000, 0), pcb.Pt(1800000, 529150)},
		},
		{
			name:   "stagger vertical",
			layout: Layout{Stagger, Vertical, pcb.Pt(529150, 1200000)},
			count:  4,
			want:   []pcb.Point{{}, pcb.Pt(529150, 600000), pcb.Pt(0, 1200000), pcb.Pt(529150, 1800000)},
		},
		{
			name:   "stagger odd advance",
			layout: Layout{Stagger, Horizontal, pcb.Pt(1000001, 10)},
			count:  3,
			want:   []pcb.Point{{}, pcb.Pt(500000, 10), pcb.Pt(1000000, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.layout.Displacements(tt.count)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("displacements mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if got := (Layout{}).Displacements(0); got != nil {
		t.Errorf("Displacements(0) = %v, want nil", got)
	}
}
