package vanilla

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans markup supplied by trial authors (stimulus, prompt,
// labels, ticks, preamble). *bluemonday.Policy satisfies it.
type Sanitizer interface {
	Sanitize(markup string) string
}

type passthrough struct{}

func (passthrough) Sanitize(markup string) string { return markup }

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// DefaultSanitizer returns the policy applied to author markup: user
// generated content elements (text formatting, images, tables) plus a small
// set of inline layout styles. Scripts and event handlers are stripped.
func DefaultSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		policy.AllowStyles(
			"color", "background-color", "font-size", "font-weight", "font-style",
			"text-align", "width", "height", "max-width", "margin", "padding",
		).Globally()
		markupPolicy = policy
	})
	return markupPolicy
}
