package viapattern

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpenTraceLab/kicad-via-patterns/pkg/kicad/pcb"
)

func placeLine(t *testing.T, count int) []*pcb.Via {
	t.Helper()
	vias, err := AddViaPattern(pcb.NewBoard(), count, Perpendicular, DefaultOptions())
	if err != nil {
		t.Fatalf("AddViaPattern: %v", err)
	}
	return vias
}

func TestRotateViaPattern(t *testing.T) {
	tests := []struct {
		name      string
		direction RotateDirection
		reference int
		want      []pcb.Point
	}{
		{
			name:      "clockwise about first",
			direction: Clockwise,
			reference: 0,
			want:      []pcb.Point{pcb.Pt(0, 0), pcb.Pt(0, 800000), pcb.Pt(0, 1600000)},
		},
		{
			name:      "counter-clockwise about first",
			direction: CounterClockwise,
			reference: 0,
			want:      []pcb.Point{pcb.Pt(0, 0), pcb.Pt(0, -800000), pcb.Pt(0, -1600000)},
		},
		{
			name:      "clockwise about middle",
			direction: Clockwise,
			reference: 1,
			want:      []pcb.Point{pcb.Pt(800000, -800000), pcb.Pt(800000, 0), pcb.Pt(800000, 800000)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vias := placeLine(t, 3)
			if err := RotateViaPattern(vias, tt.direction, tt.reference); err != nil {
				t.Fatalf("RotateViaPattern: %v", err)
			}
			if diff := cmp.Diff(tt.want, positions(vias)); diff != "" {
				t.Errorf("positions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRotateViaPatternRoundTrip(t *testing.T) {
	sequences := map[string][]RotateDirection{
		"four clockwise":     {Clockwise, Clockwise, Clockwise, Clockwise},
		"two and two":        {Clockwise, Clockwise, CounterClockwise, CounterClockwise},
		"four anticlockwise": {CounterClockwise, CounterClockwise, CounterClockwise, CounterClockwise},
	}

	for name, seq := range sequences {
		t.Run(name, func(t *testing.T) {
			vias := placeLine(t, 5)
			original := positions(vias)
			for _, dir := range seq {
				if err := RotateViaPattern(vias, dir, 0); err != nil {
					t.Fatalf("RotateViaPattern: %v", err)
				}
			}
			if diff := cmp.Diff(original, positions(vias)); diff != "" {
				t.Errorf("positions not restored (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRotateViaPatternStagger(t *testing.T) {
	vias, err := AddViaPattern(pcb.NewBoard(), 4, Stagger, DefaultOptions())
	if err != nil {
		t.Fatalf("AddViaPattern: %v", err)
	}
	if err := RotateViaPattern(vias, Clockwise, 0); err != nil {
		t.Fatalf("RotateViaPattern: %v", err)
	}

	// A clockwise quarter turn of a horizontal stagger mirrors the vertical one
	want := []pcb.Point{pcb.Pt(0, 0), pcb.Pt(-529150, 600000), pcb.Pt(0, 1200000), pcb.Pt(-529150, 1800000)}
	if diff := cmp.Diff(want, positions(vias)); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestRotateViaPatternErrors(t *testing.T) {
	vias := placeLine(t, 3)
	before := positions(vias)

	if err := RotateViaPattern(vias, RotateDirection(2), 0); !errors.Is(err, ErrUnsupportedRotateDirection) {
		t.Errorf("direction error = %v", err)
	}
	if err := RotateViaPattern(vias, RotateDirection(0), 0); !errors.Is(err, ErrUnsupportedRotateDirection) {
		t.Errorf("zero direction error = %v", err)
	}
	for _, idx := range []int{-1, 3, 100} {
		if err := RotateViaPattern(vias, Clockwise, idx); !errors.Is(err, ErrReferenceIndex) {
			t.Errorf("reference %d error = %v", idx, err)
		}
	}
	if err := RotateViaPattern(nil, Clockwise, 0); !errors.Is(err, ErrReferenceIndex) {
		t.Errorf("empty list error = %v", err)
	}

	if diff := cmp.Diff(before, positions(vias)); diff != "" {
		t.Errorf("failed rotations moved vias (-want +got):\n%s", diff)
	}
}
