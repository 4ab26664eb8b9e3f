package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/kicad-via-patterns/pkg/kicad/units"
	"github.com/OpenTraceLab/kicad-via-patterns/pkg/viapattern"
)

var (
	offsetsPattern    string
	offsetsDirection  string
	offsetsCount      int
	offsetsViaWidth   string
	offsetsClearance  string
	offsetsTrackWidth string
	offsetsExtraSpace string
)

var offsetsCmd = &cobra.Command{
	Use:   "offsets",
	Short: "Show the spacing a pattern would use",
	Long: `Computes the offset between consecutive vias without placing anything.
Unset dimensions come from the config: via width from the via section,
clearance and track width from the default net class.

Examples:
  viapatterns offsets -p diagonal
  viapatterns offsets -p stagger -d vertical -n 5
  viapatterns offsets -p stagger --track-width 0.7mm   # falls back to perpendicular`,
	Args: cobra.NoArgs,
	RunE: runOffsets,
}

func init() {
	rootCmd.AddCommand(offsetsCmd)

	f := offsetsCmd.Flags()
	f.StringVarP(&offsetsPattern, "pattern", "p", string(viapattern.Perpendicular), "pattern: perpendicular, diagonal or stagger")
	f.StringVarP(&offsetsDirection, "direction", "d", string(viapattern.Horizontal), "direction: horizontal or vertical")
	f.IntVarP(&offsetsCount, "count", "n", 0, "also list the displacement of each of n vias")
	f.StringVar(&offsetsViaWidth, "via-width", "", "via diameter")
	f.StringVar(&offsetsClearance, "clearance", "", "clearance")
	f.StringVar(&offsetsTrackWidth, "track-width", "", "track width")
	f.StringVar(&offsetsExtraSpace, "extra-space", "0", "extra space added between vias")
}

func runOffsets(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	parser, err := cfg.Parser()
	if err != nil {
		return err
	}

	pattern, err := viapattern.ParsePattern(offsetsPattern)
	if err != nil {
		return err
	}
	direction, err := viapattern.ParseDirection(offsetsDirection)
	if err != nil {
		return err
	}

	// Start from the configured rules, then apply explicit flags
	var p viapattern.Params
	lengths := []struct {
		flag string
		def  string
		val  string
		dst  *int
	}{
		{"via-width", cfg.Via.Width, offsetsViaWidth, &p.ViaWidth},
		{"clearance", cfg.DefaultNetClass.Clearance, offsetsClearance, &p.Clearance},
		{"track-width", cfg.DefaultNetClass.TrackWidth, offsetsTrackWidth, &p.TrackWidth},
		{"extra-space", offsetsExtraSpace, offsetsExtraSpace, &p.ExtraSpace},
	}

	for _, l := range lengths {
		s := l.def
		if cmd.Flags().Changed(l.flag) {
			s = l.val
		}
		v, err := parser.ParseLength(s)
		if err != nil {
			return fmt.Errorf("--%s: %w", l.flag, err)
		}
		if v < 0 {
			return fmt.Errorf("--%s must not be negative", l.flag)
		}
		*l.dst = v
	}

	layout, err := viapattern.ComputeLayout(pattern, direction, p)
	if err != nil {
		return err
	}

	u := cfg.Unit()
	w := out(cmd)
	fmt.Fprintf(w, "Via width:   %s\n", units.Format(p.ViaWidth, u))
	fmt.Fprintf(w, "Clearance:   %s\n", units.Format(p.Clearance, u))
	fmt.Fprintf(w, "Track width: %s\n", units.Format(p.TrackWidth, u))
	fmt.Fprintf(w, "Extra space: %s\n", units.Format(p.ExtraSpace, u))
	fmt.Fprintln(w)

	if layout.Pattern != pattern {
		fmt.Fprintf(w, "Pattern:     %s (requested %s, track wider than via)\n", layout.Pattern, pattern)
	} else {
		fmt.Fprintf(w, "Pattern:     %s\n", layout.Pattern)
	}
	fmt.Fprintf(w, "Direction:   %s\n", layout.Direction)
	fmt.Fprintf(w, "Offset:      %s\n", units.FormatPoint(layout.Offset.X, layout.Offset.Y, u))

	if offsetsCount > 0 {
		fmt.Fprintln(w)
		for i, d := range layout.Displacements(offsetsCount) {
			fmt.Fprintf(w, "%4d  %s\n", i, units.FormatPoint(d.X, d.Y, u))
		}
	}
	return nil
}
