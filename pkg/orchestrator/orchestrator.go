package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-surveyslider/pkg/render"
	"github.com/goliatone/go-surveyslider/pkg/renderers/tui"
	"github.com/goliatone/go-surveyslider/pkg/renderers/vanilla"
	"github.com/goliatone/go-surveyslider/pkg/slider"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithCatalog registers named definitions requests can select by Survey.
func WithCatalog(catalog *slider.Catalog) Option {
	return func(o *Orchestrator) {
		o.catalog = catalog
	}
}

// WithShuffler sets the permutation primitive used for randomized order.
func WithShuffler(shuffler slider.Shuffler) Option {
	return func(o *Orchestrator) {
		o.shuffler = shuffler
	}
}

// WithViewOptions forwards layout tweaks to slider.BuildView.
func WithViewOptions(options ...slider.ViewOption) Option {
	return func(o *Orchestrator) {
		o.viewOptions = append(o.viewOptions, options...)
	}
}

// WithTransformer registers a Transformer that can rewrite definitions after
// loading but before validation and layout.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates the full pipeline from trial definition to
// rendered output. It applies sensible defaults (vanilla and text renderers,
// random shuffler) while remaining open to dependency injection.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	catalog         *slider.Catalog
	shuffler        slider.Shuffler
	viewOptions     []slider.ViewOption
	transformer     Transformer
	logger          *zap.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a trial. Exactly one
// definition source is used, checked in field order.
type Request struct {
	// Config is an in-memory definition.
	Config *slider.Config

	// Data holds a raw JSON or YAML definition; Source names it in errors.
	Data   []byte
	Source string

	// Path points at a definition file.
	Path string

	// Survey selects a definition from the configured catalog.
	Survey string

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request instructions such as the action URL,
	// hidden fields or form errors.
	RenderOptions render.RenderOptions
}

// Output is the rendered trial plus the layout it was rendered from.
type Output struct {
	Content     []byte
	ContentType string
	Order       []int
	View        slider.View
}

// Generate renders the request and returns the bytes (HTML for the default
// vanilla renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	out, err := o.Build(ctx, req)
	if err != nil {
		return nil, err
	}
	return out.Content, nil
}

// Build executes the resolve → transform → validate → order → layout →
// render sequence.
func (o *Orchestrator) Build(ctx context.Context, req Request) (Output, error) {
	if ctx == nil {
		return Output{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Output{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Output{}, err
	}

	cfg, err := o.resolveConfig(req)
	if err != nil {
		return Output{}, err
	}
	if err := o.applyTransformer(ctx, &cfg); err != nil {
		return Output{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Output{}, fmt.Errorf("orchestrator: %w", err)
	}

	order, err := slider.BuildOrder(len(cfg.Questions), cfg.RandomizeQuestionOrder, o.shuffler)
	if err != nil {
		return Output{}, fmt.Errorf("orchestrator: question order: %w", err)
	}
	view, err := slider.BuildView(cfg, order, o.viewOptions...)
	if err != nil {
		return Output{}, fmt.Errorf("orchestrator: layout: %w", err)
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Output{}, err
	}
	content, err := renderer.Render(ctx, view, req.RenderOptions)
	if err != nil {
		return Output{}, fmt.Errorf("orchestrator: render output: %w", err)
	}

	o.logger.Debug("trial generated",
		zap.String("renderer", renderer.Name()),
		zap.Ints("question_order", order),
		zap.Int("bytes", len(content)),
	)
	return Output{
		Content:     content,
		ContentType: renderer.ContentType(),
		Order:       order,
		View:        view,
	}, nil
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) resolveConfig(req Request) (slider.Config, error) {
	switch {
	case req.Config != nil:
		cfg := *req.Config
		cfg.Questions = append([]slider.Question(nil), req.Config.Questions...)
		return cfg, nil
	case len(req.Data) > 0:
		source := req.Source
		if source == "" {
			source = "request"
		}
		cfg, err := slider.Load(req.Data, source)
		if err != nil {
			return slider.Config{}, fmt.Errorf("orchestrator: load definition: %w", err)
		}
		return cfg, nil
	case req.Path != "":
		cfg, err := slider.LoadFile(req.Path)
		if err != nil {
			return slider.Config{}, fmt.Errorf("orchestrator: load definition: %w", err)
		}
		return cfg, nil
	case req.Survey != "":
		if o.catalog == nil {
			return slider.Config{}, errors.New("orchestrator: no catalog configured")
		}
		cfg, ok := o.catalog.Get(req.Survey)
		if !ok {
			return slider.Config{}, fmt.Errorf("orchestrator: survey %q not found", req.Survey)
		}
		return cfg, nil
	default:
		return slider.Config{}, errors.New("orchestrator: config, data, path or survey is required")
	}
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, cfg *slider.Config) error {
	if o.transformer == nil || cfg == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, cfg); err != nil {
		return fmt.Errorf("orchestrator: transform definition: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.shuffler == nil {
		o.shuffler = slider.NewRandomShuffler(nil)
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		o.registry.MustRegister(renderer)
		o.registry.MustRegister(tui.New())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
