package pcb

import (
	"math"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"
)

// Default geometry of a freshly created via
const (
	DefaultViaWidth = 600000
	DefaultViaDrill = 300000
)

// Via represents a plated hole connecting two copper layers
type Via struct {
	Position    Point   // Via centre
	Width       int     // Outer diameter
	Drill       int     // Drill diameter
	Type        ViaType // Through, blind/buried or micro
	TopLayer    string  // Upper copper layer
	BottomLayer string  // Lower copper layer
	Net         *Net    // Connected net, nil when free
	Clearance   int     // Own clearance override, 0 uses the net class
	Selected    bool    // Selection flag shown by the editor
	Free        bool    // Free via, not expected to be connected yet
	Locked      bool    // Whether via is locked

	parent uuid.UUID
}

// NewVia returns a through via with the editor defaults and no net.
func NewVia() *Via {
	return &Via{
		Width:       DefaultViaWidth,
		Drill:       DefaultViaDrill,
		Type:        ViaThrough,
		TopLayer:    LayerFCu,
		BottomLayer: LayerBCu,
	}
}

// Parent returns the id of the board the via was added to, or uuid.Nil.
func (v *Via) Parent() uuid.UUID {
	return v.parent
}

// Layers returns the copper layer pair as a LayerSet
func (v *Via) Layers() LayerSet {
	return LayerSet{v.TopLayer, v.BottomLayer}
}

// NetCode returns the net number, 0 for a via without net.
func (v *Via) NetCode() int {
	if v.Net == nil {
		return 0
	}
	return v.Net.Number
}

// NetName returns the net name, empty for a via without net.
func (v *Via) NetName() string {
	if v.Net == nil {
		return ""
	}
	return v.Net.Name
}

// NetClassName returns the class of the via's net, falling back to Default.
func (v *Via) NetClassName() string {
	if v.Net == nil || v.Net.Class == "" {
		return DefaultNetClassName
	}
	return v.Net.Class
}

// SetNet assigns a net. A nil net or net 0 leaves the via unconnected.
func (v *Via) SetNet(net *Net) {
	if net != nil && net.Number == 0 {
		net = nil
	}
	v.Net = net
}

// Clone copies all physical and electrical attributes. The copy has no parent
// board until it is added to one.
func (v *Via) Clone() *Via {
	c := *v
	c.parent = uuid.Nil
	return &c
}

// Move shifts the via by delta
func (v *Via) Move(delta Point) {
	v.Position = v.Position.Add(delta)
}

// Rotate turns the via position about pivot by degrees. Positive angles are
// clockwise on screen because the board Y axis points down.
func (v *Via) Rotate(pivot Point, degrees float64) {
	p := r2.Vec{X: float64(v.Position.X), Y: float64(v.Position.Y)}
	q := r2.Vec{X: float64(pivot.X), Y: float64(pivot.Y)}
	r := r2.Rotate(p, degrees*math.Pi/180, q)
	v.Position = Point{X: int(math.Round(r.X)), Y: int(math.Round(r.Y))}
}

// LayerSet represents a set of layers
type LayerSet []string
