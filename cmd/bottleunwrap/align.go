package main

import (
	"github.com/spf13/cobra"

	"github.com/June-sf/BottleUnwrapper/mesh"
)

var (
	alignInput  string
	alignOutput string
)

var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Align a mesh's principal rotational axis with +Z",
	Long: `Estimate the principal axis of a roughly rotational mesh via SVD of the
vertex cloud, scored by surface-normal perpendicularity, rotate it onto +Z
and re-center the XY bounding box at the origin.`,
	RunE: runAlign,
}

func init() {
	rootCmd.AddCommand(alignCmd)

	alignCmd.Flags().StringVarP(&alignInput, "input", "i", "", "Input OBJ file")
	alignCmd.Flags().StringVarP(&alignOutput, "output", "o", "", "Output OBJ file")
	alignCmd.MarkFlagRequired("input")
	alignCmd.MarkFlagRequired("output")
}

func runAlign(cmd *cobra.Command, args []string) error {
	m, err := mesh.LoadOBJ(alignInput)
	if err != nil {
		return err
	}
	res, err := mesh.Align(m)
	if err != nil {
		return err
	}
	log.Infow("aligned",
		"axis", res.Axis, "score", res.Score,
		"angleDeg", res.AngleDeg, "svdFallback", res.SVDFallback)
	return mesh.WriteOBJ(alignOutput, m)
}
