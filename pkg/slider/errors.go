package slider

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("slider: invalid configuration")
	// ErrShufflerRequired is returned when randomization is requested without
	// a shuffle primitive.
	ErrShufflerRequired = errors.New("slider: shuffler is required to randomize question order")
	// ErrInvalidOrder reports a shuffler result that is not a permutation.
	ErrInvalidOrder = errors.New("slider: question order is not a permutation")
)

// Issue is a single configuration problem located by a dotted path such as
// "questions.2.ticks".
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ValidationError aggregates every issue found in a configuration.
type ValidationError struct {
	Source string
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	prefix := "slider: invalid configuration"
	if e.Source != "" {
		prefix = fmt.Sprintf("slider: invalid configuration %s", e.Source)
	}
	return prefix + ": " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}
