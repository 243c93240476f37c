package surveyslider

import (
	"os"

	"github.com/goliatone/go-surveyslider/pkg/slider"
)

// LoadDefinition reads and validates a single JSON or YAML trial definition.
func LoadDefinition(path string) (slider.Config, error) {
	return slider.LoadFile(path)
}

// LoadCatalogDir loads every definition under dir, keyed by file name without
// extension.
func LoadCatalogDir(dir string) (*slider.Catalog, error) {
	return slider.LoadFS(os.DirFS(dir))
}
