package trial

import (
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-surveyslider/pkg/render"
	"github.com/goliatone/go-surveyslider/pkg/slider"
)

// Clock supplies timestamps for reaction time measurement.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Finisher is the host's one-shot trial completion signal.
type Finisher interface {
	Finish(result slider.Result)
}

// FinisherFunc adapts a function to Finisher.
type FinisherFunc func(result slider.Result)

// Finish calls f.
func (f FinisherFunc) Finish(result slider.Result) { f(result) }

// Option configures a Controller.
type Option func(*Controller)

// WithShuffler sets the permutation primitive used when question order is
// randomized. Defaults to slider.NewRandomShuffler(nil).
func WithShuffler(shuffler slider.Shuffler) Option {
	return func(c *Controller) {
		if shuffler != nil {
			c.shuffler = shuffler
		}
	}
}

// WithClock overrides the wall clock.
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithFinisher registers the completion callback invoked once on submit.
func WithFinisher(finisher Finisher) Option {
	return func(c *Controller) {
		c.finisher = finisher
	}
}

// WithSurface sets the surface the rendered form is mounted on.
func WithSurface(surface Surface) Option {
	return func(c *Controller) {
		if surface != nil {
			c.surface = surface
		}
	}
}

// WithRenderer sets the renderer producing the mounted content. Without one
// the controller tracks state only and mounts nothing.
func WithRenderer(renderer render.Renderer) Option {
	return func(c *Controller) {
		c.renderer = renderer
	}
}

// WithRenderOptions forwards per-trial render options (action URL, hidden
// fields) to the renderer.
func WithRenderOptions(options render.RenderOptions) Option {
	return func(c *Controller) {
		c.renderOptions = options
	}
}

// WithViewOptions tweaks view layout, for example the knob half width.
func WithViewOptions(options ...slider.ViewOption) Option {
	return func(c *Controller) {
		c.viewOptions = append(c.viewOptions, options...)
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}
