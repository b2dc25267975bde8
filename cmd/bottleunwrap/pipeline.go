package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/June-sf/BottleUnwrapper/mesh"
	"github.com/June-sf/BottleUnwrapper/remap"
)

var (
	pipelineInput   string
	pipelineTexture string
	pipelineOutDir  string
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Run the full unwrap pipeline on one model",
	Long: `Run align + segment, extract the seam, invoke the external unwrap tool
(if configured) and remap the texture. Intermediate files are written to the
output directory as <base>_body.obj, <base>_seam.txt, <base>_unwrapped.obj
and <base>_texture.png. Without an unwrap command the pipeline stops after
the seam stage so the unwrap can be performed by hand.`,
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(pipelineCmd)

	pipelineCmd.Flags().StringVarP(&pipelineInput, "input", "i", "", "Input OBJ file")
	pipelineCmd.Flags().StringVarP(&pipelineTexture, "texture", "t", "", "Original texture image")
	pipelineCmd.Flags().StringVar(&pipelineOutDir, "output-dir", "", "Output directory (overrides config)")
	pipelineCmd.MarkFlagRequired("input")
}

func runPipeline(cmd *cobra.Command, args []string) error {
	outDir := cfg.Output.Dir
	if pipelineOutDir != "" {
		outDir = pipelineOutDir
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(pipelineInput), filepath.Ext(pipelineInput))
	bodyPath := filepath.Join(outDir, base+"_body.obj")
	seamPath := filepath.Join(outDir, base+"_seam.txt")
	unwrappedPath := filepath.Join(outDir, base+"_unwrapped.obj")
	texturePath := filepath.Join(outDir, base+"_texture.png")

	// Stage 1: align + cut body.
	m, err := mesh.LoadOBJ(pipelineInput)
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
	if err := mesh.WriteOBJ(bodyPath, body); err != nil {
		return err
	}
	log.Infow("body written", "path", bodyPath)

	// Stage 2: seam extraction.
	seam, err := mesh.FindSeam(body)
	if err != nil {
		return err
	}
	if err := mesh.WriteSeam(seamPath, body, seam); err != nil {
		return err
	}
	log.Infow("seam written", "path", seamPath, "vertices", len(seam))

	// Stage 3: external unwrap tool.
	if len(cfg.Unwrap.Command) == 0 {
		log.Infow("no unwrap command configured, stopping after seam stage",
			"body", bodyPath, "seam", seamPath)
		return nil
	}
	if err := runUnwrapTool(bodyPath, seamPath, unwrappedPath); err != nil {
		return err
	}

	// Stage 4: texture remap.
	if pipelineTexture == "" {
		log.Info("no texture supplied, skipping remap stage")
		return nil
	}
	if err := remap.RemapFiles(bodyPath, unwrappedPath, pipelineTexture, texturePath, cfg.Remap.Scale, log); err != nil {
		return err
	}
	log.Infow("texture written", "path", texturePath)
	return nil
}

// runUnwrapTool expands the {input}, {seam} and {output} placeholders in the
// configured command and runs it.
func runUnwrapTool(bodyPath, seamPath, outPath string) error {
	argv := make([]string, len(cfg.Unwrap.Command))
	replacer := strings.NewReplacer(
		"{input}", bodyPath,
		"{seam}", seamPath,
		"{output}", outPath,
	)
	for i, a := range cfg.Unwrap.Command {
		argv[i] = replacer.Replace(a)
	}

	log.Infow("running external unwrap tool", "command", strings.Join(argv, " "))
	c := exec.Command(argv[0], argv[1:]...)
	out, err := c.CombinedOutput()
	if err != nil {
		return fmt.Errorf("unwrap tool failed: %w\n%s", err, out)
	}
	if _, err := os.Stat(outPath); err != nil {
		return fmt.Errorf("unwrap tool did not produce %s", outPath)
	}
	return nil
}
