package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"examcollate/internal/config"
)

var (
	inputsDir  string
	outputsDir string
	configPath string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "examcollate",
	Short: "Collate student exam responses against the mark scheme",
	Long: `examcollate pairs every student's exam answer pages with the matching
mark-scheme pages on landscape composite pages, producing one PDF per main
question plus one Extra_space PDF for leftover answer pages.

Inputs follow the standard tree:

  <inputs>/mark-scheme/         the mark scheme PDF
  <inputs>/question-paper/      the question paper PDF
  <inputs>/page-mapping/        the question-to-pages CSV
  <inputs>/student-responses/   one PDF per student`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		cfg := config.Default()
		if configPath != "" {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		return run(cfg, logger.Sugar(), inputsDir, outputsDir)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputsDir, "inputs", "i", "inputs", "input directory tree")
	rootCmd.PersistentFlags().StringVarP(&outputsDir, "outputs", "o", "outputs", "output directory for collated PDFs")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "optional yaml layout config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
