package pointio

import (
	"github.com/katalvlaran/lvtda/dbscan"
	"github.com/katalvlaran/lvtda/homology"
	"github.com/katalvlaran/lvtda/mapper"
)

// ClusteringRecord is the JSON shape of a DBSCAN result.
type ClusteringRecord struct {
	Labels   []int   `json:"labels"`
	Clusters [][]int `json:"clusters"`
	Noise    []int   `json:"noise"`
}

// NewClusteringRecord converts labels for output.
func NewClusteringRecord(l dbscan.Labels) ClusteringRecord {
	noise := l.Noise()
	if noise == nil {
		noise = []int{}
	}

	return ClusteringRecord{Labels: l, Clusters: l.Clusters(), Noise: noise}
}

// IntervalRecord is the JSON shape of one persistence interval. JSON has no
// infinity, so an essential class has a null death.
type IntervalRecord struct {
	Dim   int      `json:"dim"`
	Birth float64  `json:"birth"`
	Death *float64 `json:"death"`
	Cycle [][]int  `json:"cycle,omitempty"`
}

// NewIntervalRecords converts a diagram for output.
func NewIntervalRecords(d homology.Diagram) []IntervalRecord {
	out := make([]IntervalRecord, len(d))
	for i, iv := range d {
		rec := IntervalRecord{Dim: iv.Dim, Birth: iv.Birth}
		if !iv.IsEssential() {
			death := iv.Death
			rec.Death = &death
		}
		for _, s := range iv.Cycle {
			rec.Cycle = append(rec.Cycle, s.Vertices)
		}
		out[i] = rec
	}

	return out
}

// GraphRecord is the JSON shape of a Mapper graph.
type GraphRecord struct {
	Nodes []NodeRecord `json:"nodes"`
	Edges []EdgeRecord `json:"edges"`
}

// NodeRecord is one Mapper node.
type NodeRecord struct {
	ID       int   `json:"id"`
	Interval int   `json:"interval"`
	Cluster  int   `json:"cluster"`
	Members  []int `json:"members"`
}

// EdgeRecord is one Mapper edge.
type EdgeRecord struct {
	From   int `json:"from"`
	To     int `json:"to"`
	Shared int `json:"shared"`
}

// NewGraphRecord converts a Mapper graph for output.
func NewGraphRecord(g *mapper.Graph) GraphRecord {
	rec := GraphRecord{
		Nodes: make([]NodeRecord, len(g.Nodes)),
		Edges: make([]EdgeRecord, len(g.Edges)),
	}
	for i, n := range g.Nodes {
		rec.Nodes[i] = NodeRecord{ID: n.ID, Interval: n.Interval, Cluster: n.Cluster, Members: n.Members}
	}
	for i, e := range g.Edges {
		rec.Edges[i] = EdgeRecord{From: e.From, To: e.To, Shared: e.Shared}
	}

	return rec
}
