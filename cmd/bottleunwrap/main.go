package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/June-sf/BottleUnwrapper/internal/config"
	"github.com/June-sf/BottleUnwrapper/internal/logger"
)

var (
	cfgPath  string
	logLevel string
	logFile  string

	cfg *config.Config
	log *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "bottleunwrap",
	Short: "Turn a scanned rotational surface into a seam-cut, texture-mapped model",
	Long: `bottleunwrap isolates the cylindrical body of a scanned upright model
(e.g. a bottle), finds a straight seam from its top to its bottom boundary,
and remaps the original surface texture onto the UV layout produced by an
external cylindrical-unwrap tool.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgPath != "" {
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
		} else {
			cfg = config.Default()
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if logFile != "" {
			cfg.Logging.LogFile = logFile
		}
		log = logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also log to this file (size-rotated)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
