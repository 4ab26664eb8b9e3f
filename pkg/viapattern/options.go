package viapattern

import (
	"fmt"
	"log"

	"github.com/OpenTraceLab/kicad-via-patterns/pkg/kicad/pcb"
)

// Options controls a single AddViaPattern call.
type Options struct {
	// Via is used as the first via of the group. It must already be on the
	// board. When nil a default through via is created at StartPosition.
	Via           *pcb.Via
	StartPosition pcb.Point

	Direction Direction

	// Net is a net name (string) or net code (int) assigned to a newly
	// created first via. "", 0 and nil mean no net.
	Net any

	// TrackWidth of the tracks leaving the vias; 0 takes it from the net class.
	TrackWidth int
	// ExtraSpace is added to the computed spacing.
	ExtraSpace int

	// Select marks the generated vias as selected.
	Select bool

	// Logger receives debug output; nil disables logging.
	Logger *log.Logger
}

// DefaultOptions returns Options for a horizontal group at the origin with
// no net and widths taken from the net class.
func DefaultOptions() Options {
	return Options{
		Direction: Horizontal,
	}
}

// Validate checks the options in the order the engine reports errors.
func (o *Options) Validate() error {
	if !o.Direction.valid() {
		return ErrUnsupportedDirection
	}
	if o.TrackWidth < 0 {
		return ErrNegativeTrackWidth
	}
	if o.ExtraSpace < 0 {
		return ErrNegativeExtraSpace
	}
	if _, err := netRef(o.Net); err != nil {
		return err
	}
	return nil
}

func (o *Options) logf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}

// netSelector is a validated net argument
type netSelector struct {
	name string
	code int
}

func (n netSelector) none() bool {
	return n.name == "" && n.code == 0
}

// netRef checks the shape of a net argument
func netRef(v any) (netSelector, error) {
	switch n := v.(type) {
	case nil:
		return netSelector{}, nil
	case string:
		return netSelector{name: n}, nil
	case int:
		return netSelector{code: n}, nil
	case int32:
		return netSelector{code: int(n)}, nil
	case int64:
		return netSelector{code: int(n)}, nil
	}
	return netSelector{}, &NetTypeError{Value: v}
}

// lookup resolves the selector against a board
func (n netSelector) lookup(board Board) (*pcb.Net, error) {
	if n.name != "" {
		net, ok := board.FindNet(n.name)
		if !ok {
			return nil, fmt.Errorf("%w: '%s'", ErrNetNotFound, n.name)
		}
		return net, nil
	}
	net, ok := board.FindNetByCode(n.code)
	if !ok {
		return nil, fmt.Errorf("%w: code %d", ErrNetNotFound, n.code)
	}
	return net, nil
}
