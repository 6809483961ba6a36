// SPDX-License-Identifier: MIT

// Package unionfind provides a disjoint-set forest over the integers 0..n-1
// with path compression and union by rank.
//
// It backs single-linkage H0 (homology.SingleLinkage) and connected
// components of Mapper graphs.
//
// Complexity: Find and Union run in amortized O(α(n)); memory is O(n).
package unionfind

// Set is a disjoint-set forest. The zero value is an empty set; use New.
type Set struct {
	parent []int
	rank   []int
	count  int
}

// New returns n singleton sets {0}, {1}, ..., {n-1}.
func New(n int) *Set {
	s := &Set{parent: make([]int, n), rank: make([]int, n), count: n}
	for i := range s.parent {
		s.parent[i] = i
	}

	return s
}

// Len returns the number of elements.
func (s *Set) Len() int { return len(s.parent) }

// Count returns the current number of disjoint sets.
func (s *Set) Count() int { return s.count }

// Find returns the representative of x's set.
// Iterative, with path halving: every visited node is pointed at its grandparent.
func (s *Set) Find(x int) int {
	for s.parent[x] != x {
		s.parent[x] = s.parent[s.parent[x]]
		x = s.parent[x]
	}

	return x
}

// Union merges the sets of a and b and reports whether they were distinct.
// The root of higher rank wins; on a tie the smaller root index wins, so the
// forest shape depends only on the call sequence.
func (s *Set) Union(a, b int) bool {
	ra, rb := s.Find(a), s.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case s.rank[ra] < s.rank[rb]:
		ra, rb = rb, ra
	case s.rank[ra] == s.rank[rb]:
		if rb < ra {
			ra, rb = rb, ra
		}
		s.rank[ra]++
	}
	s.parent[rb] = ra
	s.count--

	return true
}

// Connected reports whether a and b are in the same set.
func (s *Set) Connected(a, b int) bool { return s.Find(a) == s.Find(b) }

// Groups returns the sets as ascending index lists, ordered by their smallest
// element.
// Complexity: O(n·α(n)).
func (s *Set) Groups() [][]int {
	slot := make(map[int]int, s.count)
	var out [][]int
	for i := range s.parent {
		r := s.Find(i)
		k, ok := slot[r]
		if !ok {
			k = len(out)
			slot[r] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], i)
	}

	return out
}
