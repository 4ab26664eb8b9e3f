package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/kicad-via-patterns/internal/config"
	"github.com/OpenTraceLab/kicad-via-patterns/pkg/kicad/pcb"
	"github.com/OpenTraceLab/kicad-via-patterns/pkg/kicad/units"
	"github.com/OpenTraceLab/kicad-via-patterns/pkg/viapattern"
)

// placeOptions holds the place command flags
type placeOptions struct {
	count      int
	pattern    string
	direction  string
	net        string
	netCode    int
	trackWidth string
	extraSpace string
	start      string
	viaWidth   string
	viaDrill   string
	clearance  string
	selectVias bool
	rotations  []string
	reference  int
	outputJSON bool
}

func defaultPlaceOptions() placeOptions {
	return placeOptions{
		pattern:    string(viapattern.Perpendicular),
		direction:  string(viapattern.Horizontal),
		trackWidth: "0",
		extraSpace: "0",
		start:      "0,0",
	}
}

var placeOpts = defaultPlaceOptions()

// PlacedVia is the JSON form of a placed via
type PlacedVia struct {
	Index     int    `json:"index"`
	X         int    `json:"x_nm"`
	Y         int    `json:"y_nm"`
	Width     int    `json:"width_nm"`
	Drill     int    `json:"drill_nm"`
	NetCode   int    `json:"net_code"`
	NetName   string `json:"net_name,omitempty"`
	Selected  bool   `json:"selected,omitempty"`
	Reference bool   `json:"reference,omitempty"`
}

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Place a group of vias",
	Long: `Places --count vias on a board built from the config, following the
selected pattern, then applies the requested quarter-turn rotations about
the reference via.

Lengths accept a unit suffix (mm, mil, in, um, nm); bare numbers use the
config display unit. A track width of 0 takes the width from the net class.

Examples:
  viapatterns place -n 5 -p perpendicular
  viapatterns place -n 6 -p stagger -d vertical --track-width 0.25mm
  viapatterns place -n 4 -p diagonal --net GND --rotate cw --rotate cw
  viapatterns place -n 3 --via-width 0.8mm --via-drill 0.4mm --json`,
	Args: cobra.NoArgs,
	RunE: runPlace,
}

func init() {
	rootCmd.AddCommand(placeCmd)

	f := placeCmd.Flags()
	f.IntVarP(&placeOpts.count, "count", "n", 0, "number of vias in the group (required)")
	f.StringVarP(&placeOpts.pattern, "pattern", "p", placeOpts.pattern, "pattern: perpendicular, diagonal or stagger")
	f.StringVarP(&placeOpts.direction, "direction", "d", placeOpts.direction, "direction: horizontal or vertical")
	f.StringVar(&placeOpts.net, "net", "", "net name of the first via")
	f.IntVar(&placeOpts.netCode, "net-code", 0, "net code of the first via")
	f.StringVar(&placeOpts.trackWidth, "track-width", placeOpts.trackWidth, "track width, 0 uses the net class")
	f.StringVar(&placeOpts.extraSpace, "extra-space", placeOpts.extraSpace, "extra space added between vias")
	f.StringVar(&placeOpts.start, "start", placeOpts.start, "position of the first via as x,y")
	f.StringVar(&placeOpts.viaWidth, "via-width", "", "via diameter (default from config)")
	f.StringVar(&placeOpts.viaDrill, "via-drill", "", "via drill (default from config)")
	f.StringVar(&placeOpts.clearance, "clearance", "", "own clearance of the first via, overriding the net class")
	f.BoolVar(&placeOpts.selectVias, "select", false, "mark generated vias as selected")
	f.StringArrayVar(&placeOpts.rotations, "rotate", nil, "rotate the group a quarter turn: cw or ccw (repeatable)")
	f.IntVar(&placeOpts.reference, "reference", 0, "index of the via the group rotates about")
	f.BoolVar(&placeOpts.outputJSON, "json", false, "output as JSON")

	placeCmd.MarkFlagRequired("count")
	placeCmd.MarkFlagsMutuallyExclusive("net", "net-code")
}

func runPlace(cmd *cobra.Command, args []string) error {
	opts := placeOpts

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	board, err := cfg.NewBoard()
	if err != nil {
		return fmt.Errorf("error building board: %w", err)
	}
	parser, err := cfg.Parser()
	if err != nil {
		return err
	}

	pattern, err := viapattern.ParsePattern(opts.pattern)
	if err != nil {
		return err
	}
	direction, err := viapattern.ParseDirection(opts.direction)
	if err != nil {
		return err
	}
	rotations := make([]viapattern.RotateDirection, 0, len(opts.rotations))
	for _, r := range opts.rotations {
		rd, err := viapattern.ParseRotateDirection(r)
		if err != nil {
			return err
		}
		rotations = append(rotations, rd)
	}

	vopts := viapattern.DefaultOptions()
	vopts.Direction = direction
	vopts.Select = opts.selectVias
	vopts.Logger = debugLogger(cmd)

	if vopts.TrackWidth, err = parser.ParseLength(opts.trackWidth); err != nil {
		return err
	}
	if vopts.ExtraSpace, err = parser.ParseLength(opts.extraSpace); err != nil {
		return err
	}
	x, y, err := parser.ParsePoint(opts.start)
	if err != nil {
		return err
	}
	vopts.StartPosition = pcb.Pt(x, y)

	switch {
	case opts.net != "":
		if _, ok := board.FindNet(opts.net); !ok {
			// Nets not listed in the config join the Default class
			if _, err := board.NewNet(opts.net, ""); err != nil {
				return err
			}
		}
		vopts.Net = opts.net
	case opts.netCode != 0:
		vopts.Net = opts.netCode
	}

	template, err := templateVia(cmd, cfg, parser, opts)
	if err != nil {
		return err
	}
	if template != nil {
		template.Position = vopts.StartPosition
		if vopts.Net != nil {
			net, err := lookupNet(board, vopts.Net)
			if err != nil {
				return err
			}
			template.SetNet(net)
		}
		board.AddVia(template)
		vopts.Via = template
	}

	vias, err := viapattern.AddViaPattern(board, opts.count, pattern, vopts)
	if err != nil {
		return err
	}

	for _, rd := range rotations {
		if err := viapattern.RotateViaPattern(vias, rd, opts.reference); err != nil {
			return err
		}
	}

	if opts.outputJSON {
		return printPlacedJSON(cmd, vias, opts.reference)
	}
	printPlaced(cmd, cfg.Unit(), pattern, direction, vias, len(rotations) > 0, opts.reference)
	return nil
}

// templateVia builds the first via when the geometry differs from the
// engine's default via; otherwise it returns nil and the engine creates it.
func templateVia(cmd *cobra.Command, cfg *config.Config, parser *units.Parser, opts placeOptions) (*pcb.Via, error) {
	v, err := cfg.NewVia()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	custom := v.Width != pcb.DefaultViaWidth || v.Drill != pcb.DefaultViaDrill
	if flags.Changed("via-width") {
		if v.Width, err = parser.ParseLength(opts.viaWidth); err != nil {
			return nil, err
		}
		custom = true
	}
	if flags.Changed("via-drill") {
		if v.Drill, err = parser.ParseLength(opts.viaDrill); err != nil {
			return nil, err
		}
		custom = true
	}
	if flags.Changed("clearance") {
		if v.Clearance, err = parser.ParseLength(opts.clearance); err != nil {
			return nil, err
		}
		if v.Clearance < 0 {
			return nil, fmt.Errorf("clearance must not be negative")
		}
		custom = true
	}
	if !custom {
		return nil, nil
	}

	if v.Width <= 0 || v.Drill <= 0 || v.Drill >= v.Width {
		return nil, fmt.Errorf("via drill %s must be positive and smaller than width %s",
			units.Format(v.Drill, cfg.Unit()), units.Format(v.Width, cfg.Unit()))
	}
	return v, nil
}

func lookupNet(board *pcb.Board, ref any) (*pcb.Net, error) {
	switch n := ref.(type) {
	case string:
		if net, ok := board.FindNet(n); ok {
			return net, nil
		}
		return nil, fmt.Errorf("net '%s' not found", n)
	case int:
		if net, ok := board.FindNetByCode(n); ok {
			return net, nil
		}
		return nil, fmt.Errorf("net %d not found", n)
	}
	return nil, fmt.Errorf("unsupported net reference %T", ref)
}

func printPlaced(cmd *cobra.Command, u units.Unit, pattern viapattern.Pattern, direction viapattern.Direction,
	vias []*pcb.Via, rotated bool, reference int) {
	w := out(cmd)

	fmt.Fprintf(w, "Placed %d vias (%s, %s)\n\n", len(vias), pattern, direction)
	fmt.Fprintf(w, "%4s  %-14s %-14s %s\n", "#", "X", "Y", "Net")
	fmt.Fprintln(w, "──────────────────────────────────────────────────────")

	for i, v := range vias {
		net := v.NetName()
		if net == "" {
			net = "-"
		}
		mark := ""
		if rotated && i == reference {
			mark = "reference"
		}
		fmt.Fprintf(w, "%4d  %-14s %-14s %-8s %s\n", i,
			units.Format(v.Position.X, u), units.Format(v.Position.Y, u), net, mark)
	}

	bbox := pcb.ViaBounds(vias)
	fmt.Fprintf(w, "\nGroup size: %s x %s\n", units.Format(bbox.Width(), u), units.Format(bbox.Height(), u))
}

func printPlacedJSON(cmd *cobra.Command, vias []*pcb.Via, reference int) error {
	placed := make([]PlacedVia, len(vias))
	for i, v := range vias {
		placed[i] = PlacedVia{
			Index:     i,
			X:         v.Position.X,
			Y:         v.Position.Y,
			Width:     v.Width,
			Drill:     v.Drill,
			NetCode:   v.NetCode(),
			NetName:   v.NetName(),
			Selected:  v.Selected,
			Reference: i == reference,
		}
	}

	data, err := json.MarshalIndent(placed, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(out(cmd), string(data))
	return nil
}
