// SPDX-License-Identifier: MIT

package pointcloud

import (
	"fmt"
	"math"
	"strings"
)

// Cloud is an immutable, row-major n×d point cloud.
// data holds n*d coordinates; point i occupies data[i*d : (i+1)*d].
type Cloud struct {
	n, d int
	data []float64
}

// New validates points and returns a Cloud holding a private copy.
//
// Stage 1 (Validate): n ≥ 1, d ≥ 1, every row has length d, all finite.
// Stage 2 (Copy): flatten rows into one backing slice.
//
// Errors: ErrEmptyCloud, ErrZeroDimension, ErrRagged, ErrNonFinite (all
// matching tdaerr.ErrShape), wrapped with the offending row index.
// Complexity: O(n·d).
func New(points [][]float64) (*Cloud, error) {
	// Validate shape
	if len(points) == 0 {
		return nil, ErrEmptyCloud
	}
	d := len(points[0])
	if d == 0 {
		return nil, ErrZeroDimension
	}

	// Validate rows and flatten into one backing slice
	data := make([]float64, 0, len(points)*d)
	for i, p := range points {
		if len(p) != d {
			return nil, fmt.Errorf("New: row %d has %d coordinates, want %d: %w", i, len(p), d, ErrRagged)
		}
		for j, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("New: point %d coordinate %d: %w", i, j, ErrNonFinite)
			}
		}
		data = append(data, p...)
	}

	return &Cloud{n: len(points), d: d, data: data}, nil
}

// MustNew is New that panics on error. Intended for tests and fixtures.
func MustNew(points [][]float64) *Cloud {
	c, err := New(points)
	if err != nil {
		panic(err)
	}

	return c
}

// Len returns the number of points n.
func (c *Cloud) Len() int { return c.n }

// Dim returns the shared point dimension d.
func (c *Cloud) Dim() int { return c.d }

// Point returns a read-only view of point i. Callers must not modify it.
// Panics if i is out of range, like slice indexing.
func (c *Cloud) Point(i int) []float64 {
	return c.data[i*c.d : (i+1)*c.d : (i+1)*c.d]
}

// Coord returns coordinate k of point i.
func (c *Cloud) Coord(i, k int) float64 {
	return c.data[i*c.d+k]
}

// Points returns a deep copy of the cloud as [][]float64.
// Complexity: O(n·d).
func (c *Cloud) Points() [][]float64 {
	out := make([][]float64, c.n)
	for i := range out {
		row := make([]float64, c.d)
		copy(row, c.Point(i))
		out[i] = row
	}

	return out
}

// Subset returns a new Cloud made of the points at indices, in the given order.
// Duplicated indices are allowed and produce duplicated points.
//
// Errors: ErrEmptyCloud if indices is empty, ErrSubsetIndex on a bad index.
// Complexity: O(len(indices)·d).
func (c *Cloud) Subset(indices []int) (*Cloud, error) {
	if len(indices) == 0 {
		return nil, ErrEmptyCloud
	}
	data := make([]float64, 0, len(indices)*c.d)
	for _, idx := range indices {
		if idx < 0 || idx >= c.n {
			return nil, fmt.Errorf("Subset: index %d (n=%d): %w", idx, c.n, ErrSubsetIndex)
		}
		data = append(data, c.Point(idx)...)
	}

	return &Cloud{n: len(indices), d: c.d, data: data}, nil
}

// Column returns a copy of coordinate k across all points.
func (c *Cloud) Column(k int) []float64 {
	col := make([]float64, c.n)
	for i := range col {
		col[i] = c.data[i*c.d+k]
	}

	return col
}

// String implements fmt.Stringer, one bracketed point per line.
func (c *Cloud) String() string {
	var b strings.Builder
	for i := 0; i < c.n; i++ {
		b.WriteByte('[')
		for k, v := range c.Point(i) {
			if k > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString("]\n")
	}

	return b.String()
}
