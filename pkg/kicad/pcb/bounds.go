package pcb

import "math"

// BoundingBox represents a rectangular boundary in nanometres
type BoundingBox struct {
	Min Point // Minimum (top-left) corner
	Max Point // Maximum (bottom-right) corner
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Point{X: math.MaxInt, Y: math.MaxInt},
		Max: Point{X: math.MinInt, Y: math.MinInt},
	}
}

// IsEmpty checks if the bounding box is empty
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand expands the bounding box to include a point
func (bb *BoundingBox) Expand(p Point) {
	if p.X < bb.Min.X {
		bb.Min.X = p.X
	}
	if p.Y < bb.Min.Y {
		bb.Min.Y = p.Y
	}
	if p.X > bb.Max.X {
		bb.Max.X = p.X
	}
	if p.Y > bb.Max.Y {
		bb.Max.Y = p.Y
	}
}

// Width returns the width of the bounding box
func (bb BoundingBox) Width() int {
	if bb.IsEmpty() {
		return 0
	}
	return bb.Max.X - bb.Min.X
}

// Height returns the height of the bounding box
func (bb BoundingBox) Height() int {
	if bb.IsEmpty() {
		return 0
	}
	return bb.Max.Y - bb.Min.Y
}

// Center returns the center point of the bounding box
func (bb BoundingBox) Center() Point {
	return Point{
		X: (bb.Min.X + bb.Max.X) / 2,
		Y: (bb.Min.Y + bb.Max.Y) / 2,
	}
}

// ViaBounds returns the box covering the copper of the given vias
func ViaBounds(vias []*Via) BoundingBox {
	bbox := NewBoundingBox()
	for _, via := range vias {
		// Vias have a size, so expand by radius
		radius := via.Width / 2
		bbox.Expand(Point{X: via.Position.X - radius, Y: via.Position.Y - radius})
		bbox.Expand(Point{X: via.Position.X + radius, Y: via.Position.Y + radius})
	}
	return bbox
}

// GetBoundingBox calculates the bounding box of the board's tracks and vias
func (b *Board) GetBoundingBox() BoundingBox {
	bbox := ViaBounds(b.Vias)

	for _, track := range b.Tracks {
		half := track.Width / 2
		bbox.Expand(Point{X: min(track.Start.X, track.End.X) - half, Y: min(track.Start.Y, track.End.Y) - half})
		bbox.Expand(Point{X: max(track.Start.X, track.End.X) + half, Y: max(track.Start.Y, track.End.Y) + half})
	}

	return bbox
}
