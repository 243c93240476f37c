package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-surveyslider/pkg/slider"
)

// Transformer mutates a definition before validation and layout.
// Implementations can reword prompts, localise labels, or perform arbitrary
// rewrites.
type Transformer interface {
	Transform(ctx context.Context, cfg *slider.Config) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, cfg *slider.Config) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, cfg *slider.Config) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, cfg)
}

// PresetTransformer applies declarative overrides loaded from a JSON or YAML
// document. Questions are addressed by response key (name, or Q<index>):
//
//	preamble: "<p>Bitte bewerten</p>"
//	button_label: Weiter
//	questions:
//	  mood:
//	    prompt: Wie fühlen Sie sich?
//	    labels: [Gut, Schlecht]
//	  Q1:
//	    ticks: [Nie, Immer]
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Preamble    *string                  `json:"preamble" yaml:"preamble"`
	ButtonLabel *string                  `json:"button_label" yaml:"button_label"`
	Questions   map[string]questionPatch `json:"questions" yaml:"questions"`
}

type questionPatch struct {
	Stimulus string   `json:"stimulus" yaml:"stimulus"`
	Prompt   string   `json:"prompt" yaml:"prompt"`
	Labels   []string `json:"labels" yaml:"labels"`
	Ticks    []string `json:"ticks" yaml:"ticks"`
}

// NewPresetTransformer constructs a transformer from raw JSON or YAML bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var document presetDocument
	if err := json.Unmarshal(data, &document); err != nil {
		document = presetDocument{}
		if yerr := yaml.Unmarshal(data, &document); yerr != nil {
			return nil, fmt.Errorf("preset transformer: parse document: %w", yerr)
		}
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from the provided
// filesystem path.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the declarative patches onto the supplied definition.
func (t *PresetTransformer) Transform(ctx context.Context, cfg *slider.Config) error {
	if cfg == nil {
		return errors.New("preset transformer: config is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.document.Preamble != nil {
		cfg.Preamble = *t.document.Preamble
	}
	if t.document.ButtonLabel != nil {
		cfg.ButtonLabel = *t.document.ButtonLabel
	}

	for key, patch := range t.document.Questions {
		idx := findQuestion(cfg.Questions, key)
		if idx < 0 {
			return fmt.Errorf("preset transformer: question %q not found", key)
		}
		applyQuestionPatch(&cfg.Questions[idx], patch)
	}
	return nil
}

func findQuestion(questions []slider.Question, key string) int {
	key = strings.TrimSpace(key)
	for idx, q := range questions {
		if slider.ResponseKey(q, idx) == key {
			return idx
		}
	}
	return -1
}

func applyQuestionPatch(q *slider.Question, patch questionPatch) {
	if patch.Stimulus != "" {
		q.Stimulus = patch.Stimulus
	}
	if patch.Prompt != "" {
		q.Prompt = patch.Prompt
	}
	if len(patch.Labels) > 0 {
		q.Labels = append([]string(nil), patch.Labels...)
	}
	if len(patch.Ticks) > 0 {
		q.Ticks = append([]string(nil), patch.Ticks...)
	}
}
