package viapattern

import (
	"fmt"

	"github.com/OpenTraceLab/kicad-via-patterns/pkg/kicad/pcb"
)

// AddViaPattern adds count vias to board laid out in pattern and returns
// them in placement order. The first via is opts.Via, or a new default via
// at opts.StartPosition carrying opts.Net. The remaining vias are copies of
// the first without a net.
//
// The pattern must be one of the Pattern constants exactly; use
// ParsePattern for user input.
func AddViaPattern(board Board, count int, pattern Pattern, opts Options) ([]*pcb.Via, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if !pattern.valid() {
		return nil, ErrUnsupportedPattern
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	template := opts.Via
	created := template == nil
	if created {
		template = pcb.NewVia()
		template.Position = opts.StartPosition

		sel, _ := netRef(opts.Net)
		if !sel.none() {
			net, err := sel.lookup(board)
			if err != nil {
				return nil, err
			}
			template.SetNet(net)
		}
	} else if template.Parent() != board.ID() {
		return nil, ErrViaNotOnBoard
	}

	params := deriveParams(board, template, opts)
	opts.logf("via_width: %d, clearance: %d, track_width: %d", params.ViaWidth, params.Clearance, params.TrackWidth)
	opts.logf("extra_space: %d", params.ExtraSpace)
	opts.logf("netclass: %s", template.NetClassName())

	layout, err := ComputeLayout(pattern, opts.Direction, params)
	if err != nil {
		return nil, err
	}
	if layout.Pattern != pattern {
		opts.logf("track width %d exceeds via width %d, using %s instead of %s",
			params.TrackWidth, params.ViaWidth, layout.Pattern, pattern)
	}
	opts.logf("offset: %d, %d", layout.Offset.X, layout.Offset.Y)

	// Nothing below can fail on user input, so the board is only touched now.
	if created {
		board.AddVia(template)
	}

	vias := make([]*pcb.Via, 0, count)
	vias = append(vias, template)

	for _, move := range layout.Displacements(count)[1:] {
		v, err := board.Duplicate(template)
		if err != nil {
			panic(fmt.Sprintf("viapattern: duplicating via failed: %v", err))
		}
		v.SetNet(nil)
		v.Free = true
		v.Move(move)
		if opts.Select {
			v.Selected = true
		}
		board.AddVia(v)
		vias = append(vias, v)
	}

	return vias, nil
}

// deriveParams reads the via geometry and fills unset widths from the net
// class of the template via.
func deriveParams(board Board, template *pcb.Via, opts Options) Params {
	p := Params{
		ViaWidth:   template.Width,
		Clearance:  template.Clearance,
		TrackWidth: opts.TrackWidth,
		ExtraSpace: opts.ExtraSpace,
	}

	if p.TrackWidth == 0 || p.Clearance == 0 {
		nc := ResolveNetClass(board, template.NetClassName())
		if p.TrackWidth == 0 {
			p.TrackWidth = nc.TrackWidth
		}
		if p.Clearance == 0 {
			p.Clearance = nc.Clearance
		}
	}

	return p
}
