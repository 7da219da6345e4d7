// Package report renders the outcome of a gridpath run as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/grid"
	"github.com/katalvlaran/gridastar/internal/config"
)

// Report is the serialisable summary of one search.
type Report struct {
	Found    bool         `json:"found" yaml:"found"`
	Weight   float64      `json:"weight" yaml:"weight"`
	Cost     float64      `json:"cost" yaml:"cost"`
	Nodes    int          `json:"nodes" yaml:"nodes"`
	Expanded int          `json:"expanded" yaml:"expanded"`
	Millis   float64      `json:"time_ms" yaml:"time_ms"` // wall time in ms, µs resolution
	Path     []grid.Point `json:"path,omitempty" yaml:"path,omitempty"`
}

// New summarises res; the path is included only when withPath is set.
func New(res astar.Result, elapsed time.Duration, withPath bool) Report {
	r := Report{
		Found:    res.Found(),
		Weight:   res.Weight(),
		Cost:     res.Cost,
		Nodes:    len(res.Path),
		Expanded: res.Expanded,
		Millis:   float64(elapsed.Microseconds()) / 1000,
	}
	if withPath {
		r.Path = make([]grid.Point, len(res.Path))
		for i, n := range res.Path {
			r.Path[i] = n.Point
		}
	}

	return r
}

// Write renders r to w in one of the config.Format* formats; an empty
// format means text.
func Write(w io.Writer, r Report, format string) error {
	switch format {
	case config.FormatText, "":
		return writeText(w, r)
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q", config.ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, r Report) error {
	if !r.Found {
		if _, err := fmt.Fprintln(w, "No path found"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Total Weight: %g\nTotal Time: %.3fms\n", r.Weight, r.Millis); err != nil {
		return err
	}
	if len(r.Path) == 0 {
		return nil
	}
	if _, err := fmt.Fprint(w, "Path:"); err != nil {
		return err
	}
	for _, p := range r.Path {
		if _, err := fmt.Fprintf(w, " (%s)", p); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)

	return err
}
