package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/June-sf/BottleUnwrapper/remap"
)

var (
	layoutInput string
	layoutOut   string
	layoutSize  float64
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Render a UV layout wireframe for inspection",
	Long:  "Draw the UV triangles of an OBJ export as an SVG or PNG wireframe (format chosen by output extension).",
	RunE:  runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)

	layoutCmd.Flags().StringVarP(&layoutInput, "input", "i", "", "Input OBJ file")
	layoutCmd.Flags().StringVarP(&layoutOut, "out", "o", "", "Output file (.svg or .png)")
	layoutCmd.Flags().Float64Var(&layoutSize, "size", 200, "Canvas edge length in mm")
	layoutCmd.MarkFlagRequired("input")
	layoutCmd.MarkFlagRequired("out")
}

func runLayout(cmd *cobra.Command, args []string) error {
	uv, err := remap.LoadUVMesh(layoutInput)
	if err != nil {
		return err
	}
	if len(uv.Faces) == 0 {
		return fmt.Errorf("%s has no UV faces to draw", layoutInput)
	}

	r := remap.NewLayoutRenderer(uv)
	r.Size = layoutSize

	f, err := os.Create(layoutOut)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(layoutOut)) {
	case ".svg":
		err = r.RenderToSVG(f)
	case ".png":
		err = r.RenderToPNG(f)
	default:
		err = fmt.Errorf("unsupported layout format %q (use .svg or .png)", filepath.Ext(layoutOut))
	}
	if err != nil {
		return err
	}
	log.Infow("layout rendered", "faces", len(uv.Faces), "out", layoutOut)
	return nil
}
