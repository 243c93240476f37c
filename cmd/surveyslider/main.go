package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-surveyslider/pkg/slider"
)

var (
	// Global flags
	verbose bool
	seed    uint64

	// Logger
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "surveyslider",
	Short: "Render, run and serve slider survey trials",
	Long: `surveyslider works with slider survey trial definitions (JSON or YAML):
one or more range sliders with prompts, side labels and tick labels, a comment
box and a submit button that can require every slider to be moved.

Render a trial to HTML or text, run it in the terminal, serve a directory of
definitions over HTTP, or validate definitions.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed for question order randomization (0 picks a random order)")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// shuffler honours --seed so randomized trials can be reproduced.
func shuffler() slider.Shuffler {
	if seed == 0 {
		return slider.NewRandomShuffler(nil)
	}
	return slider.NewRandomShuffler(rand.NewPCG(seed, seed))
}
