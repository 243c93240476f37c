package surveyslider

import (
	"io/fs"

	"github.com/goliatone/go-surveyslider/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	fsys := vanilla.TemplatesFS()
	return fsys
}
