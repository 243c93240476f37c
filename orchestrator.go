package surveyslider

import (
	"context"

	"github.com/goliatone/go-surveyslider/pkg/orchestrator"
	"github.com/goliatone/go-surveyslider/pkg/render"
	"github.com/goliatone/go-surveyslider/pkg/slider"
	"github.com/goliatone/go-surveyslider/pkg/trial"
)

// Config aliases slider.Config so callers can stay on the root package for
// the common path.
type Config = slider.Config

// Question aliases slider.Question.
type Question = slider.Question

// Result aliases slider.Result, the record emitted once per trial.
type Result = slider.Result

// RenderOptions describes per-request overrides such as the action URL,
// hidden fields and form errors.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewTrial validates cfg and returns a controller ready to Render.
func NewTrial(cfg Config, options ...trial.Option) (*trial.Controller, error) {
	return trial.New(cfg, options...)
}

// GenerateHTML lays cfg out and renders it with the named renderer. It is the
// simplest entry point for callers that just want markup.
func GenerateHTML(ctx context.Context, cfg Config, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Config:   &cfg,
		Renderer: rendererName,
	})
}

// GenerateHTMLFromFile renders the definition stored at path.
func GenerateHTMLFromFile(ctx context.Context, path, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Path:     path,
		Renderer: rendererName,
	})
}
