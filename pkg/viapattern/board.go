package viapattern

import (
	"github.com/google/uuid"

	"github.com/OpenTraceLab/kicad-via-patterns/pkg/kicad/pcb"
)

// Board is the host board capability the engine works against.
// *pcb.Board implements it.
type Board interface {
	// ID identifies the board; vias record it when added.
	ID() uuid.UUID
	// AddVia places a via on the board and makes the board its parent.
	AddVia(v *pcb.Via)
	// Duplicate copies a via with all its attributes, without adding it.
	Duplicate(v *pcb.Via) (*pcb.Via, error)
	FindNet(name string) (*pcb.Net, bool)
	FindNetByCode(code int) (*pcb.Net, bool)
	// NetClasses returns the named classes, without Default.
	NetClasses() map[string]*pcb.NetClass
	DefaultNetClass() *pcb.NetClass
}

// ResolveNetClass finds a net class by name. KiCad reports "Default" as the
// class of unassigned nets but does not list it among the named classes, so
// the lookup is two-tier: named classes first, then the board default.
func ResolveNetClass(board Board, name string) *pcb.NetClass {
	if nc, ok := board.NetClasses()[name]; ok && nc != nil {
		return nc
	}
	return board.DefaultNetClass()
}
