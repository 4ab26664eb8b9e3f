package viapattern

import (
	"math"

	"github.com/OpenTraceLab/kicad-via-patterns/pkg/kicad/pcb"
)

// Params are the resolved dimensions a pattern is computed from, in nm.
type Params struct {
	ViaWidth   int
	Clearance  int
	TrackWidth int
	ExtraSpace int
}

// Layout is the outcome of the offset computation: the pattern actually used
// (after fallback) and the per-step offset, already swapped for Vertical.
type Layout struct {
	Pattern   Pattern
	Direction Direction
	Offset    pcb.Point
}

// EffectivePattern applies the fallback rule: Diagonal and Stagger need a
// track no wider than the via, otherwise Perpendicular is used.
func EffectivePattern(pattern Pattern, p Params) Pattern {
	if (pattern == Diagonal || pattern == Stagger) && p.TrackWidth > p.ViaWidth {
		return Perpendicular
	}
	return pattern
}

// ComputeLayout resolves the pattern and computes the offset between vias.
func ComputeLayout(pattern Pattern, direction Direction, p Params) (Layout, error) {
	if !pattern.valid() {
		return Layout{}, ErrUnsupportedPattern
	}
	if !direction.valid() {
		return Layout{}, ErrUnsupportedDirection
	}

	effective := EffectivePattern(pattern, p)

	var offset pcb.Point
	switch effective {
	case Perpendicular:
		offset = perpendicularOffset(p)
	case Diagonal:
		offset = diagonalOffset(p)
	case Stagger:
		var err error
		if offset, err = staggerOffset(p); err != nil {
			return Layout{}, err
		}
	}

	if direction == Vertical {
		offset.X, offset.Y = offset.Y, offset.X
	}

	return Layout{Pattern: effective, Direction: direction, Offset: offset}, nil
}

func perpendicularOffset(p Params) pcb.Point {
	return pcb.Point{X: p.Clearance + max(p.ViaWidth, p.TrackWidth) + p.ExtraSpace}
}

// diagonalOffset places vias on a 45° line. A track up to the threshold
// width fits between two diagonal neighbours without widening the step;
// a wider one needs the vias pushed apart along the axis.
func diagonalOffset(p Params) pcb.Point {
	w := float64(p.ViaWidth)
	c := float64(p.Clearance)
	threshold := 2 * int(math.Floor((w+c)/math.Sqrt2-c-w/2))

	var d int
	if p.TrackWidth > threshold {
		d = p.ViaWidth/2 + p.Clearance + p.TrackWidth/2
	} else {
		base := p.Clearance + max(p.ViaWidth, p.TrackWidth) + p.ExtraSpace
		d = int(math.Floor(float64(base) / math.Sqrt2))
	}
	return pcb.Point{X: d, Y: d}
}

// staggerOffset returns the advance along the row and the distance between
// the two rows. The row distance comes from packing the vias at 60° with
// a track passing between them.
func staggerOffset(p Params) (pcb.Point, error) {
	x := 2*p.Clearance + max(p.ViaWidth, p.TrackWidth) + p.TrackWidth + p.ExtraSpace

	r := float64(p.ViaWidth / 2)
	c := float64(p.Clearance)
	t := float64(p.TrackWidth)
	radicand := 3*r*r + 2*r*c - r*t - c*t - t*t/4
	if radicand < 0 {
		return pcb.Point{}, ErrStaggerGeometry
	}

	return pcb.Point{X: x, Y: int(math.Floor(math.Sqrt(radicand)))}, nil
}

// Coefficients applied to the stagger offset on even and odd steps
var (
	staggerHorizontal = [2][2]float64{{0.5, 1}, {0.5, -1}}
	staggerVertical   = [2][2]float64{{1, 0.5}, {-1, 0.5}}
)

// Step returns the displacement from via i+1 to via i+2 of the group, i.e.
// step 0 moves from the first via to the second.
func (l Layout) Step(i int) pcb.Point {
	if l.Pattern != Stagger {
		return l.Offset
	}

	coef := staggerHorizontal[i%2]
	if l.Direction == Vertical {
		coef = staggerVertical[i%2]
	}
	return pcb.Point{
		X: int(math.Floor(coef[0] * float64(l.Offset.X))),
		Y: int(math.Floor(coef[1] * float64(l.Offset.Y))),
	}
}

// Displacements returns the position of each of count vias relative to the
// first one. The first entry is always the zero point.
func (l Layout) Displacements(count int) []pcb.Point {
	if count <= 0 {
		return nil
	}
	moves := make([]pcb.Point, count)
	var move pcb.Point
	for i := 0; i < count-1; i++ {
		move = move.Add(l.Step(i))
		moves[i+1] = move
	}
	return moves
}
