package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TrialFieldName is the hidden input carrying the trial identifier.
const TrialFieldName = "trial_id"

// TouchedFieldName is the hidden input the browser runtime fills with the
// comma-separated display positions of touched sliders.
const TouchedFieldName = "touched"

// CommentFieldName is the name of the comment textarea.
const CommentFieldName = "comment-box"

// HiddenField represents a hidden form input emitted alongside the sliders.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// CSRFToken constructs a hidden field carrying the provided token under the
// name the backend expects ("_csrf", "csrf_token", ...).
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// TrialField constructs the hidden field identifying the trial instance.
func TrialField(id string) HiddenField {
	return Hidden(TrialFieldName, id)
}

// MergeHiddenFields returns a copy of base with fields applied. Empty names
// are ignored and later fields win on collisions.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	out := make(map[string]string, len(base)+len(fields))
	for key, value := range base {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			out[trimmed] = value
		}
	}
	for _, field := range fields {
		if field.Name == "" {
			continue
		}
		out[field.Name] = field.Value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedHiddenFields orders hidden fields by name for deterministic output.
// The reserved touched field is skipped since renderers emit it themselves.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		key := strings.TrimSpace(name)
		if key == "" || key == TouchedFieldName {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]HiddenField, 0, len(names))
	for _, name := range names {
		out = append(out, HiddenField{Name: strings.TrimSpace(name), Value: fields[name]})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ParseTouched decodes the touched field value into display positions.
// Blank entries are skipped; anything else must be a non-negative integer.
func ParseTouched(value string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		pos, err := strconv.Atoi(part)
		if err != nil || pos < 0 {
			return nil, fmt.Errorf("render: invalid touched position %q", part)
		}
		out = append(out, pos)
	}
	return out, nil
}
