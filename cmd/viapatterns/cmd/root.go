package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/kicad-via-patterns/internal/config"
)

// Version of the tool, reported by --version
const Version = "0.4.0"

var (
	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "viapatterns",
	Short: "Place vias on a KiCad board using spacing patterns",
	Long: `viapatterns computes and places groups of vias following the
Perpendicular, Diagonal or Stagger spacing patterns, so that tracks leaving
the vias keep clearance to each other, and rotates placed groups.

Design rules (net classes, nets, via size) come from a JSON config file.

Examples:
  viapatterns place -n 5 -p stagger              # Five staggered vias at the origin
  viapatterns place -n 4 -p diagonal --net GND   # Diagonal group on net GND
  viapatterns offsets -p stagger --track-width 0.25mm
  viapatterns patterns                           # List patterns and directions
  viapatterns config init                        # Write the default config`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/viapatterns/config.json)")
}

// loadConfig reads the config selected by --config or the default path
func loadConfig() (*config.Config, string, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, "", err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, fmt.Errorf("error loading config %s: %w", path, err)
	}
	return cfg, path, nil
}

// debugLogger returns a logger writing to stderr with --verbose, else nil
func debugLogger(cmd *cobra.Command) *log.Logger {
	if !verbose {
		return nil
	}
	return log.New(cmd.ErrOrStderr(), "[DEBUG] ", 0)
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
