package viapattern

import (
	"github.com/OpenTraceLab/kicad-via-patterns/pkg/kicad/pcb"
)

// QuarterTurn is the rotation step of RotateViaPattern in degrees
const QuarterTurn = 90

// RotateViaPattern turns every via except vias[referenceIndex] by a quarter
// turn in direction about the reference via. The reference stays in place.
func RotateViaPattern(vias []*pcb.Via, direction RotateDirection, referenceIndex int) error {
	if direction != Clockwise && direction != CounterClockwise {
		return ErrUnsupportedRotateDirection
	}
	if referenceIndex < 0 || referenceIndex > len(vias)-1 {
		return ErrReferenceIndex
	}

	pivot := vias[referenceIndex].Position
	angle := float64(QuarterTurn * int(direction))
	for i, v := range vias {
		if i == referenceIndex {
			continue
		}
		v.Rotate(pivot, angle)
	}
	return nil
}
