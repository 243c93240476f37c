package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-surveyslider/pkg/render"
	rendertemplate "github.com/goliatone/go-surveyslider/pkg/render/template"
	gotemplate "github.com/goliatone/go-surveyslider/pkg/render/template/gotemplate"
	"github.com/goliatone/go-surveyslider/pkg/slider"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	templateName     string
	sanitizer        Sanitizer
	manifest         *theme.Manifest
	variant          string
	chrome           map[ChromeClass]string
	runtimeURL       string
	stylesheetURL    string
	inlineAssets     bool
}

// WithTemplatesFS supplies an alternate template bundle. It must contain the
// entry template (see WithTemplateName).
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTemplateName overrides the entry template path.
func WithTemplateName(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.templateName = name
		}
	}
}

// WithSanitizer replaces the markup sanitizer.
func WithSanitizer(sanitizer Sanitizer) Option {
	return func(cfg *config) {
		if sanitizer != nil {
			cfg.sanitizer = sanitizer
		}
	}
}

// WithoutSanitizer renders author markup verbatim. Only use it with trusted
// trial definitions.
func WithoutSanitizer() Option {
	return func(cfg *config) {
		cfg.sanitizer = passthrough{}
	}
}

// WithTheme applies a go-theme manifest and optional variant: tokens become
// CSS custom properties, the "surveyslider.stylesheet" and
// "surveyslider.runtime" assets replace the inline bundles and the
// "surveyslider.trial" template overrides the entry template.
func WithTheme(manifest *theme.Manifest, variant string) Option {
	return func(cfg *config) {
		cfg.manifest = manifest
		cfg.variant = variant
	}
}

// WithChromeClasses overrides the CSS classes emitted for chrome elements.
func WithChromeClasses(classes map[ChromeClass]string) Option {
	return func(cfg *config) {
		for class, value := range classes {
			if value != "" {
				cfg.chrome[class] = value
			}
		}
	}
}

// WithRuntimeURL links the runtime script instead of inlining it.
func WithRuntimeURL(url string) Option {
	return func(cfg *config) {
		cfg.runtimeURL = url
	}
}

// WithStylesheetURL links the stylesheet instead of inlining it.
func WithStylesheetURL(url string) Option {
	return func(cfg *config) {
		cfg.stylesheetURL = url
	}
}

// WithoutInlineAssets omits the inline script and stylesheet, for pages that
// include AssetsFS themselves.
func WithoutInlineAssets() Option {
	return func(cfg *config) {
		cfg.inlineAssets = false
	}
}

// Renderer renders slider trials into self-contained HTML fragments.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	templateName string
	sanitizer    Sanitizer
	theme        *resolvedTheme
	chrome       map[string]any

	runtimeURL       string
	stylesheetURL    string
	runtimeScript    string
	inlineStylesheet string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:   TemplatesFS(),
		templateName: TrialTemplate,
		sanitizer:    DefaultSanitizer(),
		chrome:       defaultChromeClasses(),
		inlineAssets: true,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	resolved, err := resolveTheme(cfg.manifest, cfg.variant)
	if err != nil {
		return nil, err
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		templates = engine
	}

	r := &Renderer{
		templates:     templates,
		templateName:  cfg.templateName,
		sanitizer:     cfg.sanitizer,
		theme:         resolved,
		chrome:        chromeContext(cfg.chrome),
		runtimeURL:    cfg.runtimeURL,
		stylesheetURL: cfg.stylesheetURL,
	}
	if resolved != nil {
		if resolved.Template != "" {
			r.templateName = resolved.Template
		}
		if r.stylesheetURL == "" {
			r.stylesheetURL = resolved.StylesheetURL
		}
		if r.runtimeURL == "" {
			r.runtimeURL = resolved.RuntimeURL
		}
	}
	if cfg.inlineAssets {
		r.runtimeScript = readAsset(RuntimeScriptName)
		r.inlineStylesheet = readAsset(StylesheetName)
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the trial markup: preamble, one stimulus/prompt/slider/tick
// block per display position, the comment box and the submit control.
func (r *Renderer) Render(ctx context.Context, view slider.View, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate(r.templateName, r.buildContext(view, options))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) buildContext(view slider.View, options render.RenderOptions) map[string]any {
	containerStyle := "width:auto;"
	if !view.AutoWidth() {
		containerStyle = "width:" + strconv.Itoa(view.SliderWidth) + "px;"
	}

	blocks := make([]map[string]any, 0, len(view.Blocks))
	for _, block := range view.Blocks {
		blocks = append(blocks, r.blockContext(block))
	}

	hidden := make([]map[string]any, 0)
	for _, field := range render.SortedHiddenFields(options.Hidden) {
		hidden = append(hidden, map[string]any{"name": field.Name, "value": field.Value})
	}

	data := map[string]any{
		"chrome":            r.chrome,
		"container_style":   containerStyle,
		"preamble":          r.clean(view.Preamble),
		"autocomplete":      view.Autocomplete,
		"require_movement":  view.RequireMovement,
		"action":            options.Action,
		"method":            options.ResolvedMethod(),
		"hidden":            hidden,
		"blocks":            blocks,
		"comment_label":     options.ResolvedCommentLabel(),
		"button_label":      view.ButtonLabel,
		"errors":            render.MergeFormErrors(options.Errors),
		"runtime_url":       r.runtimeURL,
		"runtime_script":    r.runtimeScript,
		"stylesheet_url":    r.stylesheetURL,
		"inline_stylesheet": r.inlineStylesheet,
	}
	if r.theme != nil {
		data["theme_name"] = r.theme.Name
		data["css_vars_style"] = cssVarsStyle(r.theme.Tokens)
	}
	return data
}

func (r *Renderer) blockContext(block slider.Block) map[string]any {
	q := block.Question
	ticks := make([]map[string]any, 0, len(block.Ticks))
	for _, tick := range block.Ticks {
		ticks = append(ticks, map[string]any{
			"label": r.clean(tick.Label),
			"left":  tick.LeftCSS(),
			"width": tick.WidthCSS(),
		})
	}
	return map[string]any{
		"position":     strconv.Itoa(block.Control.Position),
		"index":        strconv.Itoa(block.Control.Index),
		"key":          block.Key(),
		"name":         q.Name,
		"input_id":     block.Control.InputID(),
		"input_name":   block.Control.InputName(),
		"stimulus":     r.clean(q.Stimulus),
		"prompt":       r.clean(q.Prompt),
		"has_labels":   q.HasLabels(),
		"top_label":    r.clean(q.TopLabel()),
		"bottom_label": r.clean(q.BottomLabel()),
		"min":          strconv.Itoa(q.Min),
		"max":          strconv.Itoa(q.Max),
		"step":         strconv.Itoa(q.Step),
		"start":        strconv.Itoa(q.SliderStart),
		"ticks":        ticks,
	}
}

func (r *Renderer) clean(markup string) string {
	if markup == "" || r.sanitizer == nil {
		return markup
	}
	return r.sanitizer.Sanitize(markup)
}
