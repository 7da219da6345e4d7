// Package config holds the gridpath CLI settings and loads them from a
// YAML (or JSON) file. Command-line flags are applied on top by the caller.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridastar/grid"
)

var (
	// ErrBadPoint indicates a coordinate that is not of the form "x,y".
	ErrBadPoint = errors.New("config: point must be \"x,y\" with non-negative integers")
	// ErrUnknownHeuristic indicates a heuristic name other than manhattan or zero.
	ErrUnknownHeuristic = errors.New("config: unknown heuristic")
	// ErrUnknownFormat indicates an output format other than text, json or yaml.
	ErrUnknownFormat = errors.New("config: unknown output format")
)

// Heuristic and format names accepted in files and flags.
const (
	HeuristicManhattan = "manhattan"
	HeuristicZero      = "zero"

	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is the full CLI configuration.
// Empty Start/End select the top-left and bottom-right corners.
type Config struct {
	Start     string   `yaml:"start" json:"start"`
	End       string   `yaml:"end" json:"end"`
	Format    string   `yaml:"format" json:"format"`
	Heuristic string   `yaml:"heuristic" json:"heuristic"`
	ShowPath  bool     `yaml:"path" json:"path"`
	MaxCost   *float64 `yaml:"max_cost" json:"max_cost"`
	LogLevel  string   `yaml:"log_level" json:"log_level"`
}

// Default returns the configuration used with no file and no flags.
func Default() Config {
	return Config{
		Format:    FormatText,
		Heuristic: HeuristicManhattan,
		LogLevel:  "info",
	}
}

// Load reads path over Default. Files ending in .json are decoded as JSON,
// anything else as YAML. Fields absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = json.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the enumerated fields and the point syntax.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, c.Format)
	}
	switch c.Heuristic {
	case HeuristicManhattan, HeuristicZero:
	default:
		return fmt.Errorf("%w %q", ErrUnknownHeuristic, c.Heuristic)
	}
	for _, s := range []string{c.Start, c.End} {
		if s == "" {
			continue
		}
		if _, err := ParsePoint(s); err != nil {
			return err
		}
	}
	if c.MaxCost != nil && *c.MaxCost < 0 {
		return fmt.Errorf("config: max_cost must be non-negative, got %g", *c.MaxCost)
	}

	return nil
}

// ParsePoint parses "x,y" into a grid.Point. Spaces around numbers are allowed.
func ParsePoint(s string) (grid.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil || x < 0 || y < 0 {
		return grid.Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}

	return grid.Point{X: x, Y: y}, nil
}

// Endpoints resolves Start and End against g. Empty values fall back to
// the top-left cell and the last cell of the last row.
func (c Config) Endpoints(g *grid.Grid) (start, end grid.Point, err error) {
	if c.Start != "" {
		if start, err = ParsePoint(c.Start); err != nil {
			return start, end, err
		}
	}
	if c.End != "" {
		end, err = ParsePoint(c.End)
		return start, end, err
	}
	if last := g.Rows() - 1; last >= 0 {
		end = grid.Point{X: last, Y: g.Cols(last) - 1}
	}

	return start, end, nil
}
