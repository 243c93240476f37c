package server

import (
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-surveyslider/pkg/render"
	"github.com/goliatone/go-surveyslider/pkg/slider"
	"github.com/goliatone/go-surveyslider/pkg/trial"
)

// AssetsPrefix is the path the runtime assets are served under.
const AssetsPrefix = "/assets/"

// DefaultRetention is how long completed trial ids keep answering 410.
const DefaultRetention = 15 * time.Minute

// Option configures a Server.
type Option func(*Server)

// WithRenderer overrides the HTML renderer. The default is the vanilla
// renderer linking the runtime assets under AssetsPrefix.
func WithRenderer(renderer render.Renderer) Option {
	return func(s *Server) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

// WithSink sets where completed trials go. Defaults to a MemorySink.
func WithSink(sink ResultSink) Option {
	return func(s *Server) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIDGenerator overrides trial id generation (uuid v4 by default).
func WithIDGenerator(fn func() string) Option {
	return func(s *Server) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithShuffler sets the shuffler handed to every trial.
func WithShuffler(shuffler slider.Shuffler) Option {
	return func(s *Server) {
		s.shuffler = shuffler
	}
}

// WithClock sets the clock used for reaction times and completion stamps.
func WithClock(clock trial.Clock) Option {
	return func(s *Server) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithRetention sets how long completed trial ids are remembered after their
// result is recorded. Afterwards they answer 404.
func WithRetention(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.retention = d
		}
	}
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
