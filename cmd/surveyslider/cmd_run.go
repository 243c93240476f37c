package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-surveyslider/pkg/renderers/tui"
	"github.com/goliatone/go-surveyslider/pkg/server"
	"github.com/goliatone/go-surveyslider/pkg/slider"
	"github.com/goliatone/go-surveyslider/pkg/trial"
)

var (
	runConfirm bool
	runResults string

	// newPromptDriver builds the terminal driver; tests swap it for a stub.
	newPromptDriver = func(cmd *cobra.Command) tui.PromptDriver {
		return tui.NewSurveyDriver(cmd.ErrOrStderr())
	}
)

// runCmd runs a trial interactively in the terminal
var runCmd = &cobra.Command{
	Use:   "run [definition]",
	Short: "Run a trial interactively in the terminal",
	Long: `Shows the trial as text, prompts for every slider value in display order and
for the comment, then prints the result record (rt, response, question_order)
as JSON on stdout. With require_movement set, every slider needs an explicit
answer.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrial,
}

func init() {
	runCmd.Flags().BoolVar(&runConfirm, "confirm", false, "Ask for confirmation before submitting")
	runCmd.Flags().StringVar(&runResults, "results", "", "Append the result to this JSON lines file")
}

func runTrial(cmd *cobra.Command, args []string) error {
	path := args[0]
	cfg, err := slider.LoadFile(path)
	if err != nil {
		return err
	}

	ctrl, err := trial.New(cfg,
		trial.WithShuffler(shuffler()),
		trial.WithRenderer(tui.New()),
		trial.WithSurface(trial.NewWriterSurface(cmd.ErrOrStderr(), nil)),
		trial.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	session := tui.NewSession(
		tui.WithPromptDriver(newPromptDriver(cmd)),
		tui.WithConfirmSubmit(runConfirm),
		tui.WithLogger(logger),
	)
	result, err := session.Run(cmd.Context(), ctrl)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) || errors.Is(err, tui.ErrDeclined) {
			logger.Info("trial not submitted", zap.Error(err))
		}
		return err
	}

	if runResults != "" {
		if err := appendResult(cmd, runResults, surveyName(path), result); err != nil {
			return err
		}
	}

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
	return err
}

func appendResult(cmd *cobra.Command, path, survey string, result slider.Result) error {
	sink, err := server.NewJSONLinesSink(path)
	if err != nil {
		return err
	}
	defer sink.Close()

	return sink.Record(cmd.Context(), server.TrialRecord{
		TrialID:     uuid.NewString(),
		Survey:      survey,
		Result:      result,
		CompletedAt: time.Now().UTC(),
	})
}

func surveyName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
