package render

import (
	"context"

	"github.com/goliatone/go-surveyslider/pkg/slider"
)

// Renderer turns a laid-out slider trial into a byte representation (HTML,
// terminal text, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view slider.View, options RenderOptions) ([]byte, error)
}
