package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/kicad-via-patterns/pkg/viapattern"
)

var patternDescriptions = map[viapattern.Pattern]string{
	viapattern.Perpendicular: "vias in a line, tracks leave at a right angle",
	viapattern.Diagonal:      "vias on a 45° line, tracks leave in parallel",
	viapattern.Stagger:       "vias alternate between two rows, tracks pass between them",
}

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List supported patterns and directions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := out(cmd)
		fmt.Fprintln(w, "Patterns:")
		for _, p := range viapattern.Patterns {
			fmt.Fprintf(w, "  %-14s %s\n", p, patternDescriptions[p])
		}
		fmt.Fprintln(w, "\nDirections:")
		for _, d := range viapattern.Directions {
			fmt.Fprintf(w, "  %s\n", d)
		}
		fmt.Fprintln(w, "\nRotations:")
		fmt.Fprintf(w, "  %-14s cw\n", viapattern.Clockwise)
		fmt.Fprintf(w, "  %-14s ccw\n", viapattern.CounterClockwise)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}
