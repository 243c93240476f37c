package tui

import "go.uber.org/zap"

// DefaultRulerWidth is the number of columns the slider track spans.
const DefaultRulerWidth = 41

// Theme captures optional formatting hints applied when printing messages.
// Keep minimal to avoid coupling renderer logic to ANSI specifics.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// Option configures the text renderer.
type Option func(*Renderer)

// WithRulerWidth sets the track width in columns. Values below 3 are ignored.
func WithRulerWidth(columns int) Option {
	return func(r *Renderer) {
		if columns >= 3 {
			r.width = columns
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// SessionOption configures an interactive Session.
type SessionOption func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) SessionOption {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithConfirmSubmit asks for a final confirmation before submitting.
func WithConfirmSubmit(enabled bool) SessionOption {
	return func(s *Session) {
		s.confirm = enabled
	}
}

// WithSessionTheme applies message prefixes to session prompts.
func WithSessionTheme(theme Theme) SessionOption {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithLogger sets the session logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}
