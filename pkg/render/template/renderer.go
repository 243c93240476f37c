package template

import (
	"io"
)

// TemplateRenderer is the engine contract used by the HTML renderer.
// Templates are addressed by path inside the engine's file system; data is a
// flat context whose values are strings, bools, slices and maps.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data map[string]any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data map[string]any) error
}
