package pcb

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Board is an in-memory KiCad board holding the items the via tools work
// with. Each board carries a unique id that items record when added, so a
// caller can tell which board owns a via.
type Board struct {
	Title  string   // Board title
	Tracks []*Track // Track segments
	Vias   []*Via   // Vias

	id           uuid.UUID
	nets         *NetMap
	netList      []*Net
	netClasses   map[string]*NetClass
	defaultClass *NetClass
}

// Track represents a copper track segment
type Track struct {
	Start  Point  // Start point
	End    Point  // End point
	Width  int    // Track width in nm
	Layer  string // Layer name
	Net    *Net   // Connected net
	Locked bool   // Whether track is locked
}

// NewBoard creates an empty board with net 0 and the Default net class.
func NewBoard() *Board {
	unconnected := &Net{Number: 0, Name: ""}
	return &Board{
		id:         uuid.New(),
		nets:       NewNetMap([]*Net{unconnected}),
		netList:    []*Net{unconnected},
		netClasses: make(map[string]*NetClass),
		defaultClass: &NetClass{
			Name:       DefaultNetClassName,
			TrackWidth: DefaultTrackWidth,
			Clearance:  DefaultClearance,
		},
	}
}

// ID returns the unique board id
func (b *Board) ID() uuid.UUID {
	return b.id
}

// Add places an item on the board. Supported items are *Via, *Track and *Net.
// Vias become owned by the board.
func (b *Board) Add(item any) error {
	switch it := item.(type) {
	case *Via:
		it.parent = b.id
		b.Vias = append(b.Vias, it)
	case *Track:
		b.Tracks = append(b.Tracks, it)
	case *Net:
		if _, exists := b.nets.GetByNumber(it.Number); exists {
			return fmt.Errorf("net %d already exists", it.Number)
		}
		if _, exists := b.nets.GetByName(it.Name); exists {
			return fmt.Errorf("net '%s' already exists", it.Name)
		}
		b.nets.insert(it)
		b.netList = append(b.netList, it)
	default:
		return fmt.Errorf("unsupported board item %T", item)
	}
	return nil
}

// AddVia adds a via to the board. It is Add without the type switch.
func (b *Board) AddVia(v *Via) {
	v.parent = b.id
	b.Vias = append(b.Vias, v)
}

// NewNet creates a net with the next free number and adds it to the board.
func (b *Board) NewNet(name, class string) (*Net, error) {
	net := &Net{Number: len(b.netList), Name: name, Class: class}
	if err := b.Add(net); err != nil {
		return nil, err
	}
	return net, nil
}

// Duplicate copies a via with all its attributes. The copy is not on the
// board until added.
func (b *Board) Duplicate(v *Via) (*Via, error) {
	if v == nil {
		return nil, fmt.Errorf("cannot duplicate nil via")
	}
	return v.Clone(), nil
}

// FindNet returns a net by name
func (b *Board) FindNet(name string) (*Net, bool) {
	return b.nets.GetByName(name)
}

// FindNetByCode returns a net by number
func (b *Board) FindNetByCode(code int) (*Net, bool) {
	return b.nets.GetByNumber(code)
}

// Nets returns all nets ordered by number
func (b *Board) Nets() []*Net {
	nets := make([]*Net, len(b.netList))
	copy(nets, b.netList)
	sort.Slice(nets, func(i, j int) bool { return nets[i].Number < nets[j].Number })
	return nets
}

// AddNetClass registers a net class. The Default class cannot be replaced
// this way; use SetDefaultNetClass.
func (b *Board) AddNetClass(nc NetClass) error {
	if nc.Name == "" {
		return fmt.Errorf("net class name must not be empty")
	}
	if nc.Name == DefaultNetClassName {
		return fmt.Errorf("net class '%s' is reserved", DefaultNetClassName)
	}
	if nc.TrackWidth < 0 || nc.Clearance < 0 {
		return fmt.Errorf("net class '%s' has negative rules", nc.Name)
	}
	c := nc
	b.netClasses[nc.Name] = &c
	return nil
}

// SetDefaultNetClass changes the rules of the Default class.
func (b *Board) SetDefaultNetClass(trackWidth, clearance int) {
	b.defaultClass.TrackWidth = trackWidth
	b.defaultClass.Clearance = clearance
}

// NetClasses returns the named net classes. Like the KiCad API, the Default
// class is not part of this map.
func (b *Board) NetClasses() map[string]*NetClass {
	return b.netClasses
}

// DefaultNetClass returns the always-present Default class
func (b *Board) DefaultNetClass() *NetClass {
	return b.defaultClass
}

// AllNetClasses returns every net class including Default
func (b *Board) AllNetClasses() map[string]*NetClass {
	all := make(map[string]*NetClass, len(b.netClasses)+1)
	for name, nc := range b.netClasses {
		all[name] = nc
	}
	all[DefaultNetClassName] = b.defaultClass
	return all
}

// GetNet returns a net by name, or nil if not found
func (b *Board) GetNet(name string) *Net {
	net, _ := b.nets.GetByName(name)
	return net
}

// GetNetTracks returns all tracks connected to a specific net
func (b *Board) GetNetTracks(netName string) []*Track {
	var tracks []*Track
	for _, track := range b.Tracks {
		if track.Net != nil && track.Net.Name == netName {
			tracks = append(tracks, track)
		}
	}
	return tracks
}

// GetNetVias returns all vias connected to a specific net
func (b *Board) GetNetVias(netName string) []*Via {
	var vias []*Via
	for _, via := range b.Vias {
		if via.Net != nil && via.Net.Name == netName {
			vias = append(vias, via)
		}
	}
	return vias
}

// FreeVias returns the vias without a net
func (b *Board) FreeVias() []*Via {
	var vias []*Via
	for _, via := range b.Vias {
		if via.NetCode() == 0 {
			vias = append(vias, via)
		}
	}
	return vias
}

// SelectedVias returns the vias with the selection flag set
func (b *Board) SelectedVias() []*Via {
	var vias []*Via
	for _, via := range b.Vias {
		if via.Selected {
			vias = append(vias, via)
		}
	}
	return vias
}

// NetInfo contains information about a net and its connections
type NetInfo struct {
	Net    *Net
	Tracks []*Track
	Vias   []*Via
}

// GetNetInfo returns complete information about a net
func (b *Board) GetNetInfo(netName string) *NetInfo {
	net := b.GetNet(netName)
	if net == nil {
		return nil
	}

	return &NetInfo{
		Net:    net,
		Tracks: b.GetNetTracks(netName),
		Vias:   b.GetNetVias(netName),
	}
}

// GetAllNetNames returns a list of all named nets in the board
func (b *Board) GetAllNetNames() []string {
	names := make([]string, 0, len(b.netList))
	for _, net := range b.netList {
		if net.Name != "" {
			names = append(names, net.Name)
		}
	}
	return names
}
