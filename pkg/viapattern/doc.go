// Package viapattern places groups of vias on a KiCad board following a
// spacing pattern, and rotates such groups about one of their vias.
//
// # Patterns
//
// Three patterns are supported, each laid out along a Direction:
//
//   - Perpendicular: vias in a straight line, spaced so that a track leaving
//     each via at a right angle to the line keeps clearance to its neighbours.
//   - Diagonal: vias on a 45° line, for tracks that leave in parallel.
//   - Stagger: vias alternate between two rows so that tracks can pass
//     between the vias of the other row.
//
// Diagonal and Stagger assume the track is not wider than the via. When the
// resolved track width exceeds the via width they fall back to Perpendicular.
//
// # Usage
//
//	board := pcb.NewBoard()
//	opts := viapattern.DefaultOptions()
//	opts.Net = "GND"
//	vias, err := viapattern.AddViaPattern(board, 5, viapattern.Stagger, opts)
//	if err != nil {
//		return err
//	}
//	err = viapattern.RotateViaPattern(vias, viapattern.Clockwise, 0)
//
// All lengths are integer nanometres. The board is only mutated after every
// argument has been validated, so a failed call leaves it untouched.
package viapattern
