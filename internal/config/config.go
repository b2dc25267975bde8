// Package config handles pipeline configuration loading and management.
package config

// Config holds all pipeline settings.
type Config struct {
	Segmenter SegmenterConfig `yaml:"segmenter"`
	Remap     RemapConfig     `yaml:"remap"`
	Unwrap    UnwrapConfig    `yaml:"unwrap"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SegmenterConfig holds the stable-segment extraction parameters.
type SegmenterConfig struct {
	Bins           int     `yaml:"bins"`
	StabilityTol   float64 `yaml:"stability_tol"`
	SmoothSigma    float64 `yaml:"smooth_sigma"`
	MinSegmentFrac float64 `yaml:"min_segment_frac"`
}

// RemapConfig holds the texture remapping parameters.
type RemapConfig struct {
	Scale float64 `yaml:"scale"` // output resolution as a multiple of the source
}

// UnwrapConfig describes the external UV-unwrap tool invocation. The
// command is a template: {input}, {seam} and {output} are replaced with the
// body mesh, seam file and unwrapped mesh paths. An empty command means the
// pipeline stops after the seam stage so the unwrap can be run by hand.
type UnwrapConfig struct {
	Command []string `yaml:"command"`
}

// OutputConfig holds output locations.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the values the pipeline ships with.
func Default() *Config {
	return &Config{
		Segmenter: SegmenterConfig{
			Bins:           300,
			StabilityTol:   0.03,
			SmoothSigma:    2.0,
			MinSegmentFrac: 0.05,
		},
		Remap: RemapConfig{
			Scale: 1.0,
		},
		Output: OutputConfig{
			Dir: "output",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
