package pcb

// KiCad stores every length in integer nanometres. All geometry in this package
// stays in those native units; conversion to millimetres or mils for display is
// done by package units.

// Point is a position or displacement on the board in nanometres.
// The Y axis points down, as in the KiCad editor.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Copper layer names used by vias and tracks
const (
	LayerFCu = "F.Cu"
	LayerBCu = "B.Cu"
)

// ViaType distinguishes through, blind/buried and micro vias
type ViaType string

const (
	ViaThrough     ViaType = "through"
	ViaBlindBuried ViaType = "blind_buried"
	ViaMicro       ViaType = "micro"
)

// Net represents an electrical net
type Net struct {
	Number int    // Net number (ordinal), 0 is the unconnected net
	Name   string // Net name
	Class  string // Net class name, empty means the default class
}

// NetMap provides efficient lookup of nets by number or name
type NetMap struct {
	byNumber map[int]*Net
	byName   map[string]*Net
}

// NewNetMap creates a NetMap from a slice of nets
func NewNetMap(nets []*Net) *NetMap {
	nm := &NetMap{
		byNumber: make(map[int]*Net),
		byName:   make(map[string]*Net),
	}

	for _, net := range nets {
		nm.insert(net)
	}

	return nm
}

func (nm *NetMap) insert(net *Net) {
	nm.byNumber[net.Number] = net
	// Only index non-empty names
	if net.Name != "" {
		nm.byName[net.Name] = net
	}
}

// GetByName retrieves a net by its name (e.g., "GND", "+5V")
func (nm *NetMap) GetByName(name string) (*Net, bool) {
	net, ok := nm.byName[name]
	return net, ok
}

// GetByNumber retrieves a net by its number
func (nm *NetMap) GetByNumber(num int) (*Net, bool) {
	net, ok := nm.byNumber[num]
	return net, ok
}

// Len returns the number of nets, including net 0
func (nm *NetMap) Len() int {
	return len(nm.byNumber)
}

// IsUnconnected checks if a net number represents an unconnected net
// In KiCad, net 0 is reserved for unconnected pins
func (nm *NetMap) IsUnconnected(num int) bool {
	return num == 0
}

// DefaultNetClassName is the class every board carries and every net falls
// back to.
const DefaultNetClassName = "Default"

// Default rules of a fresh KiCad board
const (
	DefaultTrackWidth = 200000
	DefaultClearance  = 200000
)

// NetClass bundles the default rules applied to member nets
type NetClass struct {
	Name       string
	TrackWidth int // Default track width in nm
	Clearance  int // Default clearance in nm
}
