package slider

// View is the renderer-facing layout of a trial: configuration-level chrome
// plus one block per display position.
type View struct {
	Preamble        string
	ButtonLabel     string
	Autocomplete    bool
	RequireMovement bool
	SliderWidth     int
	Blocks          []Block
}

// Block is one question placed at a display position.
type Block struct {
	Control  Control
	Question Question
	Ticks    []TickPlacement
}

// Key resolves the response key of the block.
func (b Block) Key() string {
	return b.Control.Key()
}

// ViewOption tweaks view construction.
type ViewOption func(*viewConfig)

type viewConfig struct {
	halfThumbWidth float64
}

// WithHalfThumbWidth overrides the knob half width used for tick centering.
func WithHalfThumbWidth(px float64) ViewOption {
	return func(cfg *viewConfig) {
		if px >= 0 {
			cfg.halfThumbWidth = px
		}
	}
}

// BuildView lays the configuration out following order, which must be a
// permutation of the question indices.
func BuildView(cfg Config, order []int, options ...ViewOption) (View, error) {
	vc := viewConfig{halfThumbWidth: DefaultHalfThumbWidth}
	for _, opt := range options {
		if opt != nil {
			opt(&vc)
		}
	}

	if err := CheckPermutation(order, len(cfg.Questions)); err != nil {
		return View{}, err
	}

	view := View{
		Preamble:        cfg.Preamble,
		ButtonLabel:     cfg.ButtonLabel,
		Autocomplete:    cfg.Autocomplete,
		RequireMovement: cfg.RequireMovement,
		SliderWidth:     cfg.SliderWidth,
		Blocks:          make([]Block, 0, len(order)),
	}
	for pos, idx := range order {
		q := cfg.Questions[idx]
		view.Blocks = append(view.Blocks, Block{
			Control:  Control{Position: pos, Index: idx, Name: q.Name},
			Question: q,
			Ticks:    PlaceTicks(q.Ticks, vc.halfThumbWidth),
		})
	}
	return view, nil
}

// Controls lists the view's controls in display order.
func (v View) Controls() []Control {
	out := make([]Control, 0, len(v.Blocks))
	for _, block := range v.Blocks {
		out = append(out, block.Control)
	}
	return out
}

// AutoWidth reports whether the container sizes itself.
func (v View) AutoWidth() bool {
	return v.SliderWidth <= 0
}

// HasPreamble reports whether a preamble block is rendered.
func (v View) HasPreamble() bool {
	return v.Preamble != ""
}
