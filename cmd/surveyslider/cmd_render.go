package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-surveyslider/pkg/orchestrator"
	"github.com/goliatone/go-surveyslider/pkg/render"
)

var (
	renderFormat string
	renderOutput string
	renderAction string
)

// renderCmd renders a definition to HTML or text
var renderCmd = &cobra.Command{
	Use:   "render [definition]",
	Short: "Render a trial definition to HTML or text",
	Long: `Renders a trial definition with the chosen renderer and writes it to stdout
or to --output.

Renderers:
  - vanilla: self-contained HTML fragment with inline runtime script
  - text: plain-text rendition with tick rulers`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "vanilla", "Renderer to use (vanilla, text)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (stdout if empty)")
	renderCmd.Flags().StringVar(&renderAction, "action", "", "Form action URL; without it the form raises a submit event only")
}

func runRender(cmd *cobra.Command, args []string) error {
	gen := orchestrator.New(
		orchestrator.WithShuffler(shuffler()),
		orchestrator.WithLogger(logger),
	)
	out, err := gen.Generate(cmd.Context(), orchestrator.Request{
		Path:          args[0],
		Renderer:      renderFormat,
		RenderOptions: render.RenderOptions{Action: renderAction},
	})
	if err != nil {
		return err
	}

	if renderOutput == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(renderOutput, out, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Trial written to %s\n", renderOutput)
	return nil
}
