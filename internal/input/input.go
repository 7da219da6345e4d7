// Package input reads cost matrices from whitespace-separated text.
//
// Each non-blank line is one grid row; numbers within a line are separated
// by any run of spaces or tabs. Row lengths are not checked here, callers
// validate shape with grid.Grid.Validate.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrBadNumber indicates a token that is not a finite number.
	ErrBadNumber = errors.New("input: invalid number")
	// ErrNegativeCost indicates a number below zero.
	ErrNegativeCost = errors.New("input: cost must be non-negative")
)

// maxLine bounds a single input line; wide grids produce long lines.
const maxLine = 64 << 20

// Parse reads r until EOF and returns one row per non-blank line.
// Errors carry the 1-based line and field of the offending token.
func Parse(r io.Reader) ([][]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var rows [][]float64
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w %q at line %d field %d", ErrBadNumber, f, line, i+1)
			}
			if v < 0 {
				return nil, fmt.Errorf("%w: %g at line %d field %d", ErrNegativeCost, v, line, i+1)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read line %d: %w", line+1, err)
	}

	return rows, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
