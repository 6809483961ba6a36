package commands

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtda/homology"
	"github.com/katalvlaran/lvtda/internal/config"
	"github.com/katalvlaran/lvtda/internal/pointio"
	"github.com/katalvlaran/lvtda/mapper"
	"github.com/spf13/cobra"
)

func (a *app) newDistancesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "distances <points-file>",
		Short: "Print the pairwise Euclidean distance matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cloud, err := a.loadCloud(cmd, args[0])
			if err != nil {
				return err
			}
			m, err := cloud.Distances()
			if err != nil {
				return err
			}

			return pointio.WriteJSON(cmd.OutOrStdout(), m.Rows())
		},
	}
}

func (a *app) newDBSCANCommand() *cobra.Command {
	var (
		epsilon   float64
		minPoints int
	)
	cmd := &cobra.Command{
		Use:   "dbscan <points-file>",
		Short: "Cluster points with DBSCAN",
		Long: `Cluster points with DBSCAN. Label 0 is noise, clusters are numbered
from 1 in discovery order.

Example:
  lvtda dbscan --epsilon 0.5 --min-points 4 points.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("epsilon") {
				a.cfg.DBSCAN.Epsilon = epsilon
			}
			if cmd.Flags().Changed("min-points") {
				a.cfg.DBSCAN.MinPoints = minPoints
			}
			cloud, err := a.loadCloud(cmd, args[0])
			if err != nil {
				return err
			}
			labels, err := cloud.DBSCAN(a.cfg.DBSCAN.Epsilon, a.cfg.DBSCAN.MinPoints)
			if err != nil {
				return err
			}

			return pointio.WriteJSON(cmd.OutOrStdout(), pointio.NewClusteringRecord(labels))
		},
	}
	cmd.Flags().Float64Var(&epsilon, "epsilon", 0, "neighborhood radius (inclusive)")
	cmd.Flags().IntVar(&minPoints, "min-points", 0, "minimum neighborhood size of a core point, itself included")

	return cmd
}

func (a *app) newPersistenceCommand() *cobra.Command {
	var (
		maxDim          int
		maxDist         float64
		representatives bool
	)
	cmd := &cobra.Command{
		Use:   "persistence <points-file>",
		Short: "Compute Vietoris-Rips persistence intervals",
		Long: `Compute persistence intervals of the Vietoris-Rips filtration in
dimensions 0..max-dim. Essential classes have a null death.

Example:
  lvtda persistence --max-dim 1 --max-dist 2.5 points.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &a.cfg.Persistence
			if cmd.Flags().Changed("max-dim") {
				p.MaxDim = maxDim
			}
			if cmd.Flags().Changed("max-dist") {
				p.MaxDist = &maxDist
			}
			if cmd.Flags().Changed("representatives") {
				p.Representatives = representatives
			}
			cloud, err := a.loadCloud(cmd, args[0])
			if err != nil {
				return err
			}
			var extra []homology.Option
			if p.Representatives {
				extra = append(extra, homology.WithRepresentatives())
			}
			diagram, err := cloud.PersistenceIntervals(p.MaxDim, p.MaxDistOrDefault(), extra...)
			if err != nil {
				return err
			}

			return pointio.WriteJSON(cmd.OutOrStdout(), pointio.NewIntervalRecords(diagram))
		},
	}
	cmd.Flags().IntVar(&maxDim, "max-dim", 0, "highest homology dimension reported")
	cmd.Flags().Float64Var(&maxDist, "max-dist", 0, "Rips distance threshold (default unbounded)")
	cmd.Flags().BoolVar(&representatives, "representatives", false, "attach a representative cycle to every interval")

	return cmd
}

func (a *app) newMapperCommand() *cobra.Command {
	var (
		resolution     int
		overlap        float64
		minPoints      int
		lens           string
		neighborFactor float64
		epsilon        float64
	)
	cmd := &cobra.Command{
		Use:   "mapper <points-file>",
		Short: "Build the Mapper graph",
		Long: `Build the Mapper graph: cover the lens range with overlapping
intervals, cluster each preimage with DBSCAN and join clusters that share
points.

Lenses: x<k> (coordinate k), pca, eccentricity.

Example:
  lvtda mapper --resolution 4 --overlap 0.3 --lens x1 points.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mc := &a.cfg.Mapper
			f := cmd.Flags()
			if f.Changed("resolution") {
				mc.Resolution = resolution
			}
			if f.Changed("overlap") {
				mc.Overlap = overlap
			}
			if f.Changed("min-points") {
				mc.MinPoints = minPoints
			}
			if f.Changed("lens") {
				mc.Lens = lens
			}
			if f.Changed("neighbor-factor") {
				mc.NeighborFactor = neighborFactor
			}
			if f.Changed("epsilon") {
				mc.Epsilon = epsilon
			}
			opts, err := mapperOptions(mc)
			if err != nil {
				return err
			}
			cloud, err := a.loadCloud(cmd, args[0])
			if err != nil {
				return err
			}
			g, err := cloud.Mapper(mc.Resolution, mc.Overlap, mc.MinPoints, opts...)
			if err != nil {
				return err
			}

			return pointio.WriteJSON(cmd.OutOrStdout(), pointio.NewGraphRecord(g))
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&resolution, "resolution", 0, "number of cover intervals")
	fl.Float64Var(&overlap, "overlap", 0, "fractional overlap of adjacent intervals, in (0,1)")
	fl.IntVar(&minPoints, "min-points", 0, "DBSCAN min points inside each interval")
	fl.StringVar(&lens, "lens", "", "lens function: x<k>, pca or eccentricity")
	fl.Float64Var(&neighborFactor, "neighbor-factor", 0, "per-interval radius as a multiple of the median nearest-neighbor distance")
	fl.Float64Var(&epsilon, "epsilon", 0, "fixed per-interval DBSCAN radius, overrides neighbor-factor")

	return cmd
}

// mapperOptions turns the lens and radius settings into mapper options.
func mapperOptions(mc *config.MapperConfig) ([]mapper.Option, error) {
	spec, err := config.ParseLens(mc.Lens)
	if err != nil {
		return nil, err
	}

	var lens mapper.Lens
	switch spec.Kind {
	case "pca":
		lens = mapper.PCA()
	case "eccentricity":
		lens = mapper.Eccentricity()
	default:
		lens = mapper.Coordinate(spec.Coordinate)
	}

	if mc.Epsilon < 0 || math.IsNaN(mc.Epsilon) || !(mc.NeighborFactor > 0) || math.IsInf(mc.NeighborFactor, 0) {
		return nil, fmt.Errorf("mapper epsilon %g, neighbor factor %g: %w", mc.Epsilon, mc.NeighborFactor, config.ErrInvalidConfig)
	}
	eps := mapper.MedianNeighbor(mc.NeighborFactor)
	if mc.Epsilon > 0 {
		eps = mapper.FixedEpsilon(mc.Epsilon)
	}

	return []mapper.Option{mapper.WithLens(lens), mapper.WithEpsilon(eps)}, nil
}
