// SPDX-License-Identifier: MIT

package rips

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// Simplex is a set of vertex indices, sorted ascending, entering the
// filtration at Value.
type Simplex struct {
	Vertices []int
	Value    float64
}

// Dim returns len(Vertices) - 1.
func (s Simplex) Dim() int { return len(s.Vertices) - 1 }

// String renders the simplex as "[v0 v1 ...]@value".
func (s Simplex) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.Vertices {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteString("]@")
	b.WriteString(strconv.FormatFloat(s.Value, 'g', -1, 64))

	return b.String()
}

// less is the filtration order: value, then dimension, then vertices
// lexicographically. Values compare exactly.
func less(a, b Simplex) bool {
	if a.Value != b.Value {
		return a.Value < b.Value
	}
	if len(a.Vertices) != len(b.Vertices) {
		return len(a.Vertices) < len(b.Vertices)
	}
	for i, v := range a.Vertices {
		if v != b.Vertices[i] {
			return v < b.Vertices[i]
		}
	}

	return false
}

// keyOf encodes a vertex list as a compact map key.
func keyOf(vertices []int) string {
	buf := make([]byte, 0, len(vertices)*2)
	for _, v := range vertices {
		buf = binary.AppendUvarint(buf, uint64(v))
	}

	return string(buf)
}

// faceWithout returns vertices with position skip removed.
func faceWithout(vertices []int, skip int) []int {
	face := make([]int, 0, len(vertices)-1)
	face = append(face, vertices[:skip]...)

	return append(face, vertices[skip+1:]...)
}
