// Package metrics defines the Prometheus collectors the lvtda engines report
// into, and the Recorder interface the engines depend on.
//
// Engines never import Prometheus types directly: they accept a Recorder and
// fall back to Nop when none is configured.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder receives measurements from the engines. Implementations must be
// safe for concurrent use.
type Recorder interface {
	// ObserveFiltration records the number of simplices in a built filtration.
	ObserveFiltration(simplices int)
	// ObserveReduction records the wall time of one boundary-matrix reduction.
	ObserveReduction(d time.Duration)
	// ObserveIntervals records how many intervals one dimension produced.
	ObserveIntervals(dim, count int)
	// ObserveClusters records the outcome of one DBSCAN run.
	ObserveClusters(clusters, noise int)
	// ObserveMapper records the size of one Mapper graph.
	ObserveMapper(nodes, edges int)
}

// Nop is a Recorder that discards everything.
var Nop Recorder = nopRecorder{}

type nopRecorder struct{}

func (nopRecorder) ObserveFiltration(int)          {}
func (nopRecorder) ObserveReduction(time.Duration) {}
func (nopRecorder) ObserveIntervals(int, int)      {}
func (nopRecorder) ObserveClusters(int, int)       {}
func (nopRecorder) ObserveMapper(int, int)         {}

// OrNop returns r, or Nop when r is nil.
func OrNop(r Recorder) Recorder {
	if r == nil {
		return Nop
	}

	return r
}

// Metrics holds the Prometheus collectors and implements Recorder.
type Metrics struct {
	FiltrationSimplices prometheus.Histogram
	ReductionDuration   prometheus.Histogram
	IntervalsTotal      *prometheus.CounterVec
	DBSCANRunsTotal     prometheus.Counter
	DBSCANClusters      prometheus.Histogram
	DBSCANNoisePoints   prometheus.Counter
	MapperNodes         prometheus.Histogram
	MapperEdges         prometheus.Histogram
}

// New creates the collectors and registers them on reg.
// Registration fails if any collector name is already taken on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		FiltrationSimplices: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lvtda_filtration_simplices",
				Help:    "Number of simplices per built Rips filtration.",
				Buckets: prometheus.ExponentialBuckets(10, 4, 10),
			},
		),
		ReductionDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lvtda_reduction_duration_seconds",
				Help:    "Boundary matrix reduction latency in seconds.",
				Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
			},
		),
		IntervalsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvtda_persistence_intervals_total",
				Help: "Persistence intervals produced, by homology dimension.",
			},
			[]string{"dim"},
		),
		DBSCANRunsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lvtda_dbscan_runs_total",
				Help: "Total DBSCAN runs.",
			},
		),
		DBSCANClusters: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lvtda_dbscan_clusters",
				Help:    "Clusters found per DBSCAN run.",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 100},
			},
		),
		DBSCANNoisePoints: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lvtda_dbscan_noise_points_total",
				Help: "Total points labelled noise.",
			},
		),
		MapperNodes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lvtda_mapper_nodes",
				Help:    "Nodes per Mapper graph.",
				Buckets: []float64{1, 5, 10, 50, 100, 500},
			},
		),
		MapperEdges: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lvtda_mapper_edges",
				Help:    "Edges per Mapper graph.",
				Buckets: []float64{0, 5, 10, 50, 100, 500},
			},
		),
	}

	for _, c := range []prometheus.Collector{
		m.FiltrationSimplices,
		m.ReductionDuration,
		m.IntervalsTotal,
		m.DBSCANRunsTotal,
		m.DBSCANClusters,
		m.DBSCANNoisePoints,
		m.MapperNodes,
		m.MapperEdges,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) ObserveFiltration(simplices int) {
	m.FiltrationSimplices.Observe(float64(simplices))
}

func (m *Metrics) ObserveReduction(d time.Duration) {
	m.ReductionDuration.Observe(d.Seconds())
}

func (m *Metrics) ObserveIntervals(dim, count int) {
	m.IntervalsTotal.WithLabelValues(strconv.Itoa(dim)).Add(float64(count))
}

func (m *Metrics) ObserveClusters(clusters, noise int) {
	m.DBSCANRunsTotal.Inc()
	m.DBSCANClusters.Observe(float64(clusters))
	m.DBSCANNoisePoints.Add(float64(noise))
}

func (m *Metrics) ObserveMapper(nodes, edges int) {
	m.MapperNodes.Observe(float64(nodes))
	m.MapperEdges.Observe(float64(edges))
}
