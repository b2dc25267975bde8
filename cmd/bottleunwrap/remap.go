package main

import (
	"github.com/spf13/cobra"

	"github.com/June-sf/BottleUnwrapper/remap"
)

var (
	remapOld   string
	remapNew   string
	remapImage string
	remapOut   string
	remapScale float64
)

var remapCmd = &cobra.Command{
	Use:   "remap",
	Short: "Remap the source texture onto a new UV layout",
	Long: `Resample the original texture so it matches the UV layout produced by
the external unwrap tool. Old and new OBJ exports must have corresponding
face order; on a face-count mismatch both lists are truncated to the
shorter one with a warning.`,
	RunE: runRemap,
}

func init() {
	rootCmd.AddCommand(remapCmd)

	remapCmd.Flags().StringVar(&remapOld, "old", "", "OBJ with the original UV layout")
	remapCmd.Flags().StringVar(&remapNew, "new", "", "OBJ with the unwrapped UV layout")
	remapCmd.Flags().StringVar(&remapImage, "image", "", "Original texture image")
	remapCmd.Flags().StringVar(&remapOut, "out", "", "Output texture PNG")
	remapCmd.Flags().Float64Var(&remapScale, "scale", 0, "Resolution scale (overrides config)")
	remapCmd.MarkFlagRequired("old")
	remapCmd.MarkFlagRequired("new")
	remapCmd.MarkFlagRequired("image")
	remapCmd.MarkFlagRequired("out")
}

func runRemap(cmd *cobra.Command, args []string) error {
	scale := cfg.Remap.Scale
	if remapScale > 0 {
		scale = remapScale
	}
	return remap.RemapFiles(remapOld, remapNew, remapImage, remapOut, scale, log)
}
