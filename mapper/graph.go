// SPDX-License-Identifier: MIT

package mapper

import "github.com/katalvlaran/lvtda/unionfind"

// Node is one cluster found inside one cover interval.
type Node struct {
	ID       int   // position in Graph.Nodes
	Interval int   // cover interval index
	Cluster  int   // DBSCAN label within the interval, from 1
	Members  []int // point indices, ascending, never empty
}

// Edge joins two nodes from different intervals that share points.
type Edge struct {
	From, To int // node IDs, From < To
	Shared   int // number of shared points
}

// Graph is the Mapper output.
type Graph struct {
	Nodes []Node
	Edges []Edge
	Cover Cover
}

// Adjacency returns, for every node ID, its neighbors ascending.
func (g *Graph) Adjacency() [][]int {
	adj := make([][]int, len(g.Nodes))
	for _, e := range g.Edges {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}
	// edges are sorted by (From, To), so every list comes out ascending
	return adj
}

// Components returns the connected components as ascending node ID lists,
// ordered by smallest ID.
func (g *Graph) Components() [][]int {
	uf := unionfind.New(len(g.Nodes))
	for _, e := range g.Edges {
		uf.Union(e.From, e.To)
	}

	return uf.Groups()
}

// NodesOf returns the IDs of the nodes containing point p, ascending.
func (g *Graph) NodesOf(p int) []int {
	var out []int
	for _, n := range g.Nodes {
		if contains(n.Members, p) {
			out = append(out, n.ID)
		}
	}

	return out
}

func contains(sorted []int, x int) bool {
	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch {
		case sorted[mid] == x:
			return true
		case sorted[mid] < x:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return false
}
