package trial

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-surveyslider/pkg/render"
	"github.com/goliatone/go-surveyslider/pkg/slider"
)

// Controller drives one slider survey trial from render to submit.
type Controller struct {
	mu sync.Mutex

	cfg           slider.Config
	shuffler      slider.Shuffler
	clock         Clock
	finisher      Finisher
	surface       Surface
	renderer      render.Renderer
	renderOptions render.RenderOptions
	viewOptions   []slider.ViewOption
	logger        *zap.Logger

	view     slider.View
	order    []int
	values   []int
	touched  []bool
	comment  string
	start    time.Time
	rendered bool
	finished bool
	result   slider.Result
}

// New validates cfg and returns a controller ready to Render.
func New(cfg slider.Config, options ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:      cfg,
		shuffler: slider.NewRandomShuffler(nil),
		clock:    systemClock{},
		surface:  discardSurface{},
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// Config returns the trial configuration.
func (c *Controller) Config() slider.Config {
	return c.cfg
}

// Render computes the question order, renders the form, mounts it on the
// surface and starts the reaction time clock.
func (c *Controller) Render(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.finished {
		return ErrFinished
	}
	if c.rendered {
		return ErrAlreadyRendered
	}

	order, err := slider.BuildOrder(len(c.cfg.Questions), c.cfg.RandomizeQuestionOrder, c.shuffler)
	if err != nil {
		return fmt.Errorf("trial: question order: %w", err)
	}
	view, err := slider.BuildView(c.cfg, order, c.viewOptions...)
	if err != nil {
		return fmt.Errorf("trial: layout: %w", err)
	}

	var content []byte
	if c.renderer != nil {
		content, err = c.renderer.Render(ctx, view, c.renderOptions)
		if err != nil {
			return fmt.Errorf("trial: render: %w", err)
		}
	}
	if err := c.surface.Mount(content); err != nil {
		return fmt.Errorf("trial: mount: %w", err)
	}

	c.view = view
	c.order = order
	c.values = make([]int, len(view.Blocks))
	for pos, block := range view.Blocks {
		c.values[pos] = block.Question.SliderStart
	}
	c.touched = make([]bool, len(view.Blocks))
	c.comment = ""
	c.rendered = true
	c.start = c.clock.Now()

	c.logger.Debug("trial rendered",
		zap.Ints("question_order", order),
		zap.Bool("require_movement", c.cfg.RequireMovement),
		zap.Int("bytes", len(content)),
	)
	return nil
}

// View returns the rendered layout. It is the zero View before Render.
func (c *Controller) View() slider.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Order returns a copy of the realized question order.
func (c *Controller) Order() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]int(nil), c.order...)
}

// Controls lists the rendered range controls in display order.
func (c *Controller) Controls() []slider.Control {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view.Controls()
}

// Touch marks the slider at pos as interacted with.
func (c *Controller) Touch(pos int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkInteractive(pos); err != nil {
		return err
	}
	c.touched[pos] = true
	return nil
}

// SetValue records a value change of the slider at pos, which also counts as
// a touch.
func (c *Controller) SetValue(pos, value int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkInteractive(pos); err != nil {
		return err
	}
	if err := checkValue(c.view.Blocks[pos].Question, value); err != nil {
		return err
	}
	c.values[pos] = value
	c.touched[pos] = true
	return nil
}

// SetValues records several value changes at once, keyed by position. Every
// value is checked before any is applied, so a rejected batch leaves the
// trial untouched.
func (c *Controller) SetValues(values map[int]int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for pos, value := range values {
		if err := c.checkInteractive(pos); err != nil {
			return err
		}
		if err := checkValue(c.view.Blocks[pos].Question, value); err != nil {
			return err
		}
	}
	for pos, value := range values {
		c.values[pos] = value
		c.touched[pos] = true
	}
	return nil
}

// Value returns the current value of the slider at pos.
func (c *Controller) Value(pos int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.rendered {
		return 0, ErrNotRendered
	}
	if pos < 0 || pos >= len(c.values) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownControl, pos)
	}
	return c.values[pos], nil
}

// Touched reports whether the slider at pos has been interacted with.
func (c *Controller) Touched(pos int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return pos >= 0 && pos < len(c.touched) && c.touched[pos]
}

// SetComment replaces the comment text.
func (c *Controller) SetComment(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.rendered {
		return ErrNotRendered
	}
	if c.finished {
		return ErrFinished
	}
	c.comment = text
	return nil
}

// SubmitEnabled reports whether Submit would currently be accepted.
func (c *Controller) SubmitEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rendered && !c.finished && c.gateOpen()
}

// Submit measures the reaction time, packages the responses, clears the
// surface and signals the finisher. It produces a result at most once.
func (c *Controller) Submit(ctx context.Context) (slider.Result, error) {
	if err := ctx.Err(); err != nil {
		return slider.Result{}, err
	}

	c.mu.Lock()
	if !c.rendered {
		c.mu.Unlock()
		return slider.Result{}, ErrNotRendered
	}
	if c.finished {
		c.mu.Unlock()
		return slider.Result{}, ErrFinished
	}
	if !c.gateOpen() {
		c.mu.Unlock()
		c.logger.Debug("trial submit rejected", zap.Int("untouched", c.untouchedCount()))
		return slider.Result{}, ErrSubmitDisabled
	}

	elapsed := c.clock.Now().Sub(c.start)
	answers := make([]slider.Answer, 0, len(c.view.Blocks))
	for pos, block := range c.view.Blocks {
		answers = append(answers, slider.Answer{Key: block.Key(), Value: c.values[pos]})
	}
	result, err := slider.NewResult(elapsed, answers, c.comment, c.order)
	if err != nil {
		c.mu.Unlock()
		return slider.Result{}, fmt.Errorf("trial: build result: %w", err)
	}
	if err := c.surface.Clear(); err != nil {
		c.mu.Unlock()
		return slider.Result{}, fmt.Errorf("trial: clear surface: %w", err)
	}
	c.finished = true
	c.result = result
	finisher := c.finisher
	c.mu.Unlock()

	c.logger.Debug("trial submitted",
		zap.Float64("rt_ms", result.RT),
		zap.String("question_order", result.QuestionOrder),
	)
	if finisher != nil {
		finisher.Finish(result)
	}
	return result, nil
}

// Finished reports whether the trial emitted its result.
func (c *Controller) Finished() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.finished
}

// Result returns the emitted result, if any.
func (c *Controller) Result() (slider.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result, c.finished
}

func (c *Controller) checkInteractive(pos int) error {
	if !c.rendered {
		return ErrNotRendered
	}
	if c.finished {
		return ErrFinished
	}
	if pos < 0 || pos >= len(c.view.Blocks) {
		return fmt.Errorf("%w: %d", ErrUnknownControl, pos)
	}
	return nil
}

func checkValue(q slider.Question, value int) error {
	if value < q.Min || value > q.Max || (value-q.Min)%q.Step != 0 {
		return fmt.Errorf("%w: %d not in [%d, %d] step %d", ErrValueOutOfRange, value, q.Min, q.Max, q.Step)
	}
	return nil
}

// gateOpen must be called with mu held.
func (c *Controller) gateOpen() bool {
	if !c.cfg.RequireMovement {
		return true
	}
	for _, touched := range c.touched {
		if !touched {
			return false
		}
	}
	return true
}

func (c *Controller) untouchedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, touched := range c.touched {
		if !touched {
			n++
		}
	}
	return n
}
