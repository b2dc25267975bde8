package main

import (
	"github.com/spf13/cobra"

	"github.com/June-sf/BottleUnwrapper/mesh"
)

var (
	seamInput  string
	seamOutput string
)

var seamCmd = &cobra.Command{
	Use:   "seam",
	Short: "Extract a top-to-bottom seam path from a cut body mesh",
	Long: `Detect the two open boundary loops of the body mesh and compute the
shortest vertex path between a top vertex and a bottom vertex. The path is
written as 'index x y z' lines for the external unwrap tool.`,
	RunE: runSeam,
}

func init() {
	rootCmd.AddCommand(seamCmd)

	seamCmd.Flags().StringVarP(&seamInput, "input", "i", "", "Input OBJ file (body sub-mesh)")
	seamCmd.Flags().StringVarP(&seamOutput, "output", "o", "", "Output seam text file")
	seamCmd.MarkFlagRequired("input")
	seamCmd.MarkFlagRequired("output")
}

func runSeam(cmd *cobra.Command, args []string) error {
	m, err := mesh.LoadOBJ(seamInput)
	if err != nil {
		return err
	}
	seam, err := mesh.FindSeam(m)
	if err != nil {
		return err
	}
	log.Infow("seam found", "vertices", len(seam), "start", seam[0], "end", seam[len(seam)-1])
	return mesh.WriteSeam(seamOutput, m, seam)
}
