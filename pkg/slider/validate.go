package slider

import (
	"fmt"
	"strings"
)

// Validate checks the configuration and returns a *ValidationError listing
// every issue, or nil.
func (c Config) Validate() error {
	var issues []Issue
	add := func(path, format string, args ...any) {
		issues = append(issues, Issue{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if len(c.Questions) == 0 {
		add("questions", "at least one question is required")
	}

	keys := make(map[string]int, len(c.Questions))
	for i, q := range c.Questions {
		path := fmt.Sprintf("questions.%d", i)

		if strings.TrimSpace(q.Prompt) == "" {
			add(path+".prompt", "prompt is required")
		}
		if q.Min > q.Max {
			add(path+".min", "min %d is greater than max %d", q.Min, q.Max)
		}
		if q.SliderStart < q.Min || q.SliderStart > q.Max {
			add(path+".slider_start", "slider_start %d is outside [%d, %d]", q.SliderStart, q.Min, q.Max)
		}
		if q.Step <= 0 {
			add(path+".step", "step must be positive, got %d", q.Step)
		} else if (q.SliderStart-q.Min)%q.Step != 0 {
			add(path+".slider_start", "slider_start %d is not on the step grid from %d by %d", q.SliderStart, q.Min, q.Step)
		}
		if n := len(q.Labels); n != 0 && n != 2 {
			add(path+".labels", "expected 0 or 2 labels, got %d", n)
		}
		if len(q.Ticks) == 1 {
			add(path+".ticks", "a single tick cannot be spaced; use none or at least two")
		}
		if q.Name == CommentKey {
			add(path+".name", "%q is reserved for the comment response", CommentKey)
			continue
		}

		key := ResponseKey(q, i)
		if prev, exists := keys[key]; exists {
			add(path+".name", "response key %q already used by questions.%d", key, prev)
			continue
		}
		keys[key] = i
	}

	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}
