package slider

import "strconv"

// CommentKey is the reserved response key holding the free-text comment.
const CommentKey = "comment"

// fallbackKeyPrefix prefixes positional response keys (Q0, Q1, ...).
const fallbackKeyPrefix = "Q"

// FallbackKey returns the positional response key for the question at the
// supplied index in the configured question list.
func FallbackKey(index int) string {
	return fallbackKeyPrefix + strconv.Itoa(index)
}

// ResponseKey resolves the key a question's answer is stored under: the
// question name when set, otherwise the positional key of its original
// index. Display order never affects the result.
func ResponseKey(q Question, index int) string {
	if q.Name != "" {
		return q.Name
	}
	return FallbackKey(index)
}

// Control identifies a rendered range input by its display position and the
// question it belongs to.
type Control struct {
	Position int    `json:"position"`
	Index    int    `json:"index"`
	Name     string `json:"name,omitempty"`
}

// Key resolves the response key of the control.
func (c Control) Key() string {
	if c.Name != "" {
		return c.Name
	}
	return FallbackKey(c.Index)
}

// InputName is the form field name carrying the control's value on
// submission. It is derived from the original index so it is unique and
// independent of display order.
func (c Control) InputName() string {
	return FallbackKey(c.Index)
}

// InputID is the DOM id of the control, tagged with its display position.
func (c Control) InputID() string {
	return "surveyslider-response-" + strconv.Itoa(c.Position)
}
