package main

import (
	"github.com/spf13/cobra"

	"github.com/June-sf/BottleUnwrapper/internal/config"
	"github.com/June-sf/BottleUnwrapper/mesh"
)

var (
	segmentInput  string
	segmentOutput string
	segmentBins   int
	segmentTol    float64
)

var segmentCmd = &cobra.Command{
	Use:   "segment",
	Short: "Align a mesh and cut out its stable cylindrical body",
	Long: `Align the mesh, compute a height-binned radius profile, find the most
stable (non-flared) height range and export the sub-mesh covering it.`,
	RunE: runSegment,
}

func init() {
	rootCmd.AddCommand(segmentCmd)

	segmentCmd.Flags().StringVarP(&segmentInput, "input", "i", "", "Input OBJ file")
	segmentCmd.Flags().StringVarP(&segmentOutput, "output", "o", "", "Output OBJ file (body sub-mesh)")
	segmentCmd.Flags().IntVar(&segmentBins, "bins", 0, "Number of height bins (overrides config)")
	segmentCmd.Flags().Float64Var(&segmentTol, "tol", 0, "Stability tolerance (overrides config)")
	segmentCmd.MarkFlagRequired("input")
	segmentCmd.MarkFlagRequired("output")
}

// segmenterConfig merges the config file with CLI overrides.
func segmenterConfig(c config.SegmenterConfig) mesh.SegmenterConfig {
	sc := mesh.SegmenterConfig{
		Bins:           c.Bins,
		StabilityTol:   c.StabilityTol,
		SmoothSigma:    c.SmoothSigma,
		MinSegmentFrac: c.MinSegmentFrac,
	}
	if segmentBins > 0 {
		sc.Bins = segmentBins
	}
	if segmentTol > 0 {
		sc.StabilityTol = segmentTol
	}
	return sc
}

func runSegment(cmd *cobra.Command, args []string) error {
	m, err := mesh.LoadOBJ(segmentInput)
	if err != nil {
		return err
	}
	res, err := mesh.Align(m)
	if err != nil {
		return err
	}
	log.Infow("aligned", "axis", res.Axis, "angleDeg", res.AngleDeg)

	body, _, err := mesh.ExtractBody(m, segmenterConfig(cfg.Segmenter), log)
	if err != nil {
		return err
	}
	return mesh.WriteOBJ(segmentOutput, body)
}
