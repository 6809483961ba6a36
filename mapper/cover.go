// SPDX-License-Identifier: MIT

package mapper

import (
	"fmt"
	"math"
)

// Interval is one element of a Cover: [Lo, Hi), or [Lo, Hi] when Closed.
type Interval struct {
	Lo, Hi float64
	Closed bool
}

// Contains reports whether v lies in the interval.
func (iv Interval) Contains(v float64) bool {
	if v < iv.Lo {
		return false
	}
	if iv.Closed {
		return v <= iv.Hi
	}

	return v < iv.Hi
}

// Cover is an ordered family of overlapping intervals whose union is
// [Min, Max].
type Cover struct {
	Min, Max   float64
	Resolution int
	Overlap    float64
	Intervals  []Interval
}

// NewCover splits [min, max] into resolution intervals of equal width w,
// consecutive ones overlapping by overlap·w:
//
//	w    = (max - min) / (resolution - (resolution-1)·overlap)
//	lo_i = min + i·w·(1 - overlap)
//
// Every interval is half-open except the last, which is closed at max. A
// zero-width range yields the single interval [min, min].
//
// Errors: ErrInvalidResolution, ErrInvalidOverlap, ErrInvalidRange.
func NewCover(min, max float64, resolution int, overlap float64) (Cover, error) {
	if resolution < 1 {
		return Cover{}, fmt.Errorf("NewCover: resolution %d: %w", resolution, ErrInvalidResolution)
	}
	if !(overlap > 0 && overlap < 1) {
		return Cover{}, fmt.Errorf("NewCover: overlap %g: %w", overlap, ErrInvalidOverlap)
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || min > max {
		return Cover{}, fmt.Errorf("NewCover: range [%g, %g]: %w", min, max, ErrInvalidRange)
	}

	c := Cover{Min: min, Max: max, Resolution: resolution, Overlap: overlap}
	length := max - min
	if length == 0 {
		c.Intervals = []Interval{{Lo: min, Hi: max, Closed: true}}
		return c, nil
	}

	r := float64(resolution)
	width := length / (r - (r-1)*overlap)
	step := width * (1 - overlap)
	c.Intervals = make([]Interval, resolution)
	for i := range c.Intervals {
		lo := min + float64(i)*step
		c.Intervals[i] = Interval{Lo: lo, Hi: lo + width}
	}
	last := &c.Intervals[resolution-1]
	last.Hi, last.Closed = max, true

	return c, nil
}

// Members returns the indices i with values[i] inside interval k, ascending.
func (c Cover) Members(k int, values []float64) []int {
	iv := c.Intervals[k]
	var out []int
	for i, v := range values {
		if iv.Contains(v) {
			out = append(out, i)
		}
	}

	return out
}
