package slider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and validates a JSON or YAML trial definition from disk.
func LoadFile(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("slider: read %s: %w", filename, err)
	}
	return Load(data, filename)
}

// Load parses a JSON or YAML trial definition, applies defaults for omitted
// keys and validates the result. source names the input in error messages.
func Load(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("slider: definition %s is empty", source)
	}

	var doc configFile
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = configFile{}
		if yerr := yaml.Unmarshal(data, &doc); yerr != nil {
			return Config{}, fmt.Errorf("slider: parse %s: invalid JSON or YAML: %w", source, yerr)
		}
		if werr := doc.SliderWidth.fromNode(doc.SliderWidthNode); werr != nil {
			return Config{}, fmt.Errorf("slider: parse %s: slider_width: %w", source, werr)
		}
	}

	cfg := doc.normalise()
	if err := cfg.Validate(); err != nil {
		if verr, ok := err.(*ValidationError); ok {
			verr.Source = source
		}
		return Config{}, err
	}
	return cfg, nil
}

// Catalog holds named trial definitions.
type Catalog struct {
	configs map[string]Config
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{configs: make(map[string]Config)}
}

// Add registers a definition under name.
func (c *Catalog) Add(name string, cfg Config) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("slider: catalog entry name is required")
	}
	if _, exists := c.configs[name]; exists {
		return fmt.Errorf("slider: duplicate survey %q", name)
	}
	c.configs[name] = cfg
	return nil
}

// Get returns the definition registered under name.
func (c *Catalog) Get(name string) (Config, bool) {
	if c == nil {
		return Config{}, false
	}
	cfg, ok := c.configs[name]
	return cfg, ok
}

// Names lists the registered definitions in sorted order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.configs))
	for name := range c.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of definitions.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.configs)
}

// LoadFS walks fsys and loads every .json, .yaml and .yml file into a
// catalog keyed by base file name without extension.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	catalog := NewCatalog()
	if fsys == nil {
		return catalog, nil
	}

	err := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(p) {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("slider: read %s: %w", p, err)
		}
		cfg, err := Load(data, p)
		if err != nil {
			return err
		}
		base := path.Base(p)
		return catalog.Add(strings.TrimSuffix(base, path.Ext(base)), cfg)
	})
	if err != nil {
		return nil, err
	}
	return catalog, nil
}

func isDefinitionFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

type configFile struct {
	Questions              []questionFile `json:"questions" yaml:"questions"`
	RandomizeQuestionOrder bool           `json:"randomize_question_order" yaml:"randomize_question_order"`
	Preamble               *string        `json:"preamble" yaml:"preamble"`
	ButtonLabel            *string        `json:"button_label" yaml:"button_label"`
	Autocomplete           bool           `json:"autocomplete" yaml:"autocomplete"`
	RequireMovement        bool           `json:"require_movement" yaml:"require_movement"`
	SliderWidth            widthValue     `json:"slider_width" yaml:"-"`
	SliderWidthNode        yaml.Node      `json:"-" yaml:"slider_width"`
}

// widthValue tells an omitted slider_width (default pixels) apart from an
// explicit null (auto width).
type widthValue struct {
	set    bool
	null   bool
	pixels int
}

func (w *widthValue) UnmarshalJSON(data []byte) error {
	w.set = true
	if string(bytes.TrimSpace(data)) == "null" {
		w.null = true
		return nil
	}
	return json.Unmarshal(data, &w.pixels)
}

// fromNode reads the YAML form. A null scalar never reaches an Unmarshaler
// in yaml.v3, so the raw node is inspected instead.
func (w *widthValue) fromNode(node yaml.Node) error {
	if node.Kind == 0 {
		return nil
	}
	w.set = true
	if node.ShortTag() == "!!null" {
		w.null = true
		return nil
	}
	return node.Decode(&w.pixels)
}

type questionFile struct {
	Stimulus    string   `json:"stimulus" yaml:"stimulus"`
	Prompt      string   `json:"prompt" yaml:"prompt"`
	Labels      []string `json:"labels" yaml:"labels"`
	Ticks       []string `json:"ticks" yaml:"ticks"`
	Name        string   `json:"name" yaml:"name"`
	Min         *int     `json:"min" yaml:"min"`
	Max         *int     `json:"max" yaml:"max"`
	SliderStart *int     `json:"slider_start" yaml:"slider_start"`
	Step        *int     `json:"step" yaml:"step"`
}

func (f configFile) normalise() Config {
	cfg := NewConfig()
	cfg.RandomizeQuestionOrder = f.RandomizeQuestionOrder
	cfg.Autocomplete = f.Autocomplete
	cfg.RequireMovement = f.RequireMovement
	if f.Preamble != nil {
		cfg.Preamble = *f.Preamble
	}
	if f.ButtonLabel != nil {
		cfg.ButtonLabel = *f.ButtonLabel
	}
	switch {
	case f.SliderWidth.null:
		cfg.SliderWidth = 0
	case f.SliderWidth.set:
		cfg.SliderWidth = f.SliderWidth.pixels
	}
	for _, raw := range f.Questions {
		cfg.Questions = append(cfg.Questions, raw.normalise())
	}
	return cfg
}

func (f questionFile) normalise() Question {
	q := NewQuestion(f.Prompt)
	q.Stimulus = f.Stimulus
	q.Labels = append([]string(nil), f.Labels...)
	q.Ticks = append([]string(nil), f.Ticks...)
	q.Name = f.Name
	if f.Min != nil {
		q.Min = *f.Min
	}
	if f.Max != nil {
		q.Max = *f.Max
	}
	if f.SliderStart != nil {
		q.SliderStart = *f.SliderStart
	}
	if f.Step != nil {
		q.Step = *f.Step
	}
	return q
}
