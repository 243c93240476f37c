package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-surveyslider/pkg/slider"
)

// validateCmd loads and validates definitions
var validateCmd = &cobra.Command{
	Use:   "validate [definition...]",
	Short: "Validate one or more trial definitions",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		cfg, err := slider.LoadFile(path)
		if err != nil {
			failed++
			var verr *slider.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(out, "FAIL %s\n", path)
				for _, issue := range verr.Issues {
					fmt.Fprintf(out, "  %s: %s\n", issue.Path, issue.Message)
				}
				continue
			}
			fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(out, "ok   %s (%d questions)\n", path, len(cfg.Questions))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d definitions invalid", failed, len(args))
	}
	return nil
}
