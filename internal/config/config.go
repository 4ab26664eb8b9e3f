package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/OpenTraceLab/kicad-via-patterns/pkg/kicad/pcb"
	"github.com/OpenTraceLab/kicad-via-patterns/pkg/kicad/units"
)

// Config stores the design rules and defaults used when the command line
// builds a board. Lengths are strings in any unit package units accepts.
type Config struct {
	DisplayUnit     string     `json:"display_unit"`
	DefaultNetClass NetClass   `json:"default_net_class"`
	NetClasses      []NetClass `json:"net_classes,omitempty"`
	Nets            []Net      `json:"nets,omitempty"`
	Via             Via        `json:"via"`
}

// NetClass is a net class entry; Name is ignored for the default class
type NetClass struct {
	Name       string `json:"name,omitempty"`
	TrackWidth string `json:"track_width"`
	Clearance  string `json:"clearance"`
}

// Net is a net created on the board, optionally in a named class
type Net struct {
	Name  string `json:"name"`
	Class string `json:"class,omitempty"`
}

// Via is the geometry of a newly created via
type Via struct {
	Width string `json:"width"`
	Drill string `json:"drill"`
}

const schemaURL = "mem://viapatterns/config.schema.json"

const schemaSource = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"display_unit": {"enum": ["nm", "um", "mm", "mil", "in"]},
		"default_net_class": {"$ref": "#/$defs/netclass"},
		"net_classes": {
			"type": "array",
			"items": {
				"allOf": [{"$ref": "#/$defs/netclass"}],
				"required": ["name"]
			}
		},
		"nets": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"class": {"type": "string"}
				},
				"required": ["name"],
				"additionalProperties": false
			}
		},
		"via": {
			"type": "object",
			"properties": {
				"width": {"$ref": "#/$defs/length"},
				"drill": {"$ref": "#/$defs/length"}
			},
			"additionalProperties": false
		}
	},
	"additionalProperties": false,
	"$defs": {
		"length": {"type": "string", "minLength": 1},
		"netclass": {
			"type": "object",
			"properties": {
				"name": {"type": "string", "minLength": 1},
				"track_width": {"$ref": "#/$defs/length"},
				"clearance": {"$ref": "#/$defs/length"}
			},
			"additionalProperties": false
		}
	}
}`

var schema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
		panic(fmt.Sprintf("failed to add config schema: %v", err))
	}
	compiled, err := compiler.Compile(schemaURL)
	if err != nil {
		panic(fmt.Sprintf("failed to compile config schema: %v", err))
	}
	return compiled
}

// Default returns the rules of a fresh KiCad board
func Default() *Config {
	return &Config{
		DisplayUnit: string(units.Millimetre),
		DefaultNetClass: NetClass{
			TrackWidth: "0.2mm",
			Clearance:  "0.2mm",
		},
		Via: Via{
			Width: "0.6mm",
			Drill: "0.3mm",
		},
	}
}

// DefaultPath returns the path to the user config file
func DefaultPath() (string, error) {
	var configDir string
	// Use platform-appropriate config directory
	if appData := os.Getenv("APPDATA"); appData != "" {
		// Windows: use %APPDATA%\ViaPatterns
		configDir = filepath.Join(appData, "ViaPatterns")
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		// Linux/macOS: use ~/.config/viapatterns
		configDir = filepath.Join(homeDir, ".config", "viapatterns")
	}

	return filepath.Join(configDir, "config.json"), nil
}

// Load reads a config file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Return default config if file doesn't exist
			return Default(), nil
		}
		return nil, err
	}
	return Parse(data)
}

// Parse validates JSON config data against the schema and decodes it over
// the defaults, so omitted fields keep their default values.
func Parse(data []byte) (*Config, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Save writes the config as indented JSON, creating the directory.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Unit returns the display unit
func (c *Config) Unit() units.Unit {
	return units.Unit(c.DisplayUnit)
}

// Parser returns a length parser using the display unit for bare numbers
func (c *Config) Parser() (*units.Parser, error) {
	return units.NewParser(c.Unit())
}

// NewBoard builds an empty board carrying the configured net classes and nets.
func (c *Config) NewBoard() (*pcb.Board, error) {
	p, err := c.Parser()
	if err != nil {
		return nil, err
	}

	board := pcb.NewBoard()

	def, err := c.DefaultNetClass.resolve(p)
	if err != nil {
		return nil, fmt.Errorf("default net class: %w", err)
	}
	if def.TrackWidth < 0 || def.Clearance < 0 {
		return nil, fmt.Errorf("default net class has negative rules")
	}
	board.SetDefaultNetClass(def.TrackWidth, def.Clearance)

	for _, nc := range c.NetClasses {
		resolved, err := nc.resolve(p)
		if err != nil {
			return nil, fmt.Errorf("net class '%s': %w", nc.Name, err)
		}
		if err := board.AddNetClass(resolved); err != nil {
			return nil, err
		}
	}

	for _, n := range c.Nets {
		if _, err := board.NewNet(n.Name, n.Class); err != nil {
			return nil, err
		}
	}

	return board, nil
}

// NewVia returns a via with the configured geometry, not yet on a board.
func (c *Config) NewVia() (*pcb.Via, error) {
	p, err := c.Parser()
	if err != nil {
		return nil, err
	}

	v := pcb.NewVia()
	if v.Width, err = p.ParseLength(c.Via.Width); err != nil {
		return nil, fmt.Errorf("via width: %w", err)
	}
	if v.Drill, err = p.ParseLength(c.Via.Drill); err != nil {
		return nil, fmt.Errorf("via drill: %w", err)
	}
	if v.Width <= 0 || v.Drill <= 0 || v.Drill >= v.Width {
		return nil, fmt.Errorf("via drill %s must be positive and smaller than width %s",
			c.Via.Drill, c.Via.Width)
	}
	return v, nil
}

func (nc NetClass) resolve(p *units.Parser) (pcb.NetClass, error) {
	trackWidth, err := p.ParseLength(nc.TrackWidth)
	if err != nil {
		return pcb.NetClass{}, err
	}
	clearance, err := p.ParseLength(nc.Clearance)
	if err != nil {
		return pcb.NetClass{}, err
	}
	return pcb.NetClass{Name: nc.Name, TrackWidth: trackWidth, Clearance: clearance}, nil
}
