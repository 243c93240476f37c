package slider

// Defaults applied to questions and configurations when a field is omitted.
const (
	DefaultMin         = 0
	DefaultMax         = 100
	DefaultSliderStart = 50
	DefaultStep        = 1
	DefaultButtonLabel = "Continue"
	DefaultSliderWidth = 500

	// DefaultHalfThumbWidth is half the width, in pixels, of the range input
	// knob used by the stock stylesheet. Tick labels are recentered by it.
	DefaultHalfThumbWidth = 7.5
)

// Question describes a single slider block. Stimulus, Labels and Ticks carry
// markup that renderers place verbatim (after sanitizing).
type Question struct {
	Stimulus    string   `json:"stimulus,omitempty" yaml:"stimulus,omitempty"`
	Prompt      string   `json:"prompt" yaml:"prompt"`
	Labels      []string `json:"labels,omitempty" yaml:"labels,omitempty"`
	Ticks       []string `json:"ticks,omitempty" yaml:"ticks,omitempty"`
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Min         int      `json:"min" yaml:"min"`
	Max         int      `json:"max" yaml:"max"`
	SliderStart int      `json:"slider_start" yaml:"slider_start"`
	Step        int      `json:"step" yaml:"step"`
}

// NewQuestion returns a question with the default bounds, start and step.
func NewQuestion(prompt string) Question {
	return Question{
		Prompt:      prompt,
		Min:         DefaultMin,
		Max:         DefaultMax,
		SliderStart: DefaultSliderStart,
		Step:        DefaultStep,
	}
}

// TopLabel returns the label shown above the control, if any.
func (q Question) TopLabel() string {
	if len(q.Labels) == 0 {
		return ""
	}
	return q.Labels[0]
}

// BottomLabel returns the label shown below the control, if any.
func (q Question) BottomLabel() string {
	if len(q.Labels) < 2 {
		return ""
	}
	return q.Labels[1]
}

// HasLabels reports whether side labels are rendered for the question.
func (q Question) HasLabels() bool {
	return len(q.Labels) > 0
}

// Config is the full option set of a slider survey trial.
type Config struct {
	Questions              []Question `json:"questions" yaml:"questions"`
	RandomizeQuestionOrder bool       `json:"randomize_question_order" yaml:"randomize_question_order"`
	Preamble               string     `json:"preamble,omitempty" yaml:"preamble,omitempty"`
	ButtonLabel            string     `json:"button_label" yaml:"button_label"`
	Autocomplete           bool       `json:"autocomplete" yaml:"autocomplete"`
	RequireMovement        bool       `json:"require_movement" yaml:"require_movement"`
	// SliderWidth is the container width in pixels. Values <= 0 render with
	// an automatic width.
	SliderWidth int `json:"slider_width" yaml:"slider_width"`
}

// NewConfig returns a configuration holding the supplied questions and the
// default trial options.
func NewConfig(questions ...Question) Config {
	return Config{
		Questions:   append([]Question(nil), questions...),
		ButtonLabel: DefaultButtonLabel,
		SliderWidth: DefaultSliderWidth,
	}
}

// HasPreamble reports whether a preamble block is rendered.
func (c Config) HasPreamble() bool {
	return c.Preamble != ""
}

// AutoWidth reports whether the container should size itself.
func (c Config) AutoWidth() bool {
	return c.SliderWidth <= 0
}
