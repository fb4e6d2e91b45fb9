package voxels

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// DefaultThreshold is the minimum raw density for a cell to
// be considered occupied when loading.
const DefaultThreshold = 0.1

// LoadOptions controls how a density grid is read.
type LoadOptions struct {
	Dim       float64
	Threshold float64
	Origin    model3d.Coord3D
}

// DefaultLoadOptions gets options for unit voxels at the
// world origin.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{Dim: 1, Threshold: DefaultThreshold}
}

// Validate checks that the voxel size is positive and the
// threshold is a number.
func (l LoadOptions) Validate() error {
	if !(l.Dim > 0) || math.IsInf(l.Dim, 1) {
		return errors.Errorf("invalid voxel size: %v", l.Dim)
	}
	if math.IsNaN(l.Threshold) {
		return errors.New("invalid threshold: NaN")
	}
	return nil
}

// A MalformedInputError is returned when a density grid
// does not have a consistent shape, or when a value cannot
// be parsed.
type MalformedInputError struct {
	// Slice and Row locate the offending line. Row is -1 if
	// an entire slice has the wrong number of rows.
	Slice int
	Row   int

	Want int
	Got  int

	// Err is set when a value could not be parsed.
	Err error
}

func (m *MalformedInputError) Error() string {
	if m.Err != nil {
		return fmt.Sprintf("malformed input: slice %d row %d: %s", m.Slice, m.Row, m.Err)
	}
	if m.Row < 0 {
		return fmt.Sprintf("malformed input: slice %d has %d rows (expected %d)",
			m.Slice, m.Got, m.Want)
	}
	return fmt.Sprintf("malformed input: slice %d row %d has %d values (expected %d)",
		m.Slice, m.Row, m.Got, m.Want)
}

func (m *MalformedInputError) Unwrap() error {
	return m.Err
}

// LoadGrid reads a density grid from a file.
func LoadGrid(path string, opts LoadOptions) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load grid")
	}
	defer f.Close()
	g, err := ReadGrid(f, opts)
	if err != nil {
		return nil, errors.Wrap(err, "load grid "+path)
	}
	return g, nil
}

// ReadGrid reads a density grid in the text format.
//
// Slices along z are separated by blank lines, rows along
// y are separated by newlines, and values along x are
// separated by commas.
//
// The raw densities are kept in the grid, and each weight
// is Full if the density is at least opts.Threshold.
func ReadGrid(r io.Reader, opts LoadOptions) (*Grid, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "read grid")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read grid")
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if strings.TrimSpace(text) == "" {
		return nil, &MalformedInputError{Row: -1, Err: errors.New("empty grid")}
	}

	var values []float64
	var nx, ny int
	slices := strings.Split(text, "\n\n")
	for z, sliceText := range slices {
		rows := strings.Split(sliceText, "\n")
		if z == 0 {
			ny = len(rows)
		} else if len(rows) != ny {
			return nil, &MalformedInputError{Slice: z, Row: -1, Want: ny, Got: len(rows)}
		}
		for y, rowText := range rows {
			cols := strings.Split(rowText, ",")
			if z == 0 && y == 0 {
				nx = len(cols)
			} else if len(cols) != nx {
				return nil, &MalformedInputError{Slice: z, Row: y, Want: nx, Got: len(cols)}
			}
			for _, col := range cols {
				value, err := strconv.ParseFloat(strings.TrimSpace(col), 64)
				if err != nil {
					return nil, &MalformedInputError{Slice: z, Row: y, Err: err}
				}
				values = append(values, value)
			}
		}
	}

	g := NewGrid(nx, ny, len(slices), opts.Dim)
	g.Origin = opts.Origin
	copy(g.raw, values)
	for i, value := range values {
		if value >= opts.Threshold {
			g.weights[i] = Full
		}
	}
	return g, nil
}

// WriteGrid writes a grid in the text format read by
// ReadGrid.
//
// If raw is true, the raw densities are written instead of
// the occupancy weights.
func WriteGrid(w io.Writer, g *Grid, raw bool) error {
	bw := bufio.NewWriter(w)
	for z := 0; z < g.NZ; z++ {
		if z > 0 {
			bw.WriteString("\n")
		}
		for y := 0; y < g.NY; y++ {
			for x := 0; x < g.NX; x++ {
				if x > 0 {
					bw.WriteString(",")
				}
				if raw {
					bw.WriteString(strconv.FormatFloat(g.Raw(z, y, x), 'g', -1, 64))
				} else {
					bw.WriteString(strconv.FormatFloat(float64(g.At(z, y, x)), 'g', -1, 32))
				}
			}
			bw.WriteString("\n")
		}
	}
	return errors.Wrap(bw.Flush(), "write grid")
}

// SaveGrid writes a grid to a file.
func SaveGrid(path string, g *Grid, raw bool) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save grid")
	}
	defer f.Close()
	return WriteGrid(f, g, raw)
}
