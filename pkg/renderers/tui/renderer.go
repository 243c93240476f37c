package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"math"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-surveyslider/pkg/render"
	"github.com/goliatone/go-surveyslider/pkg/slider"
)

// Renderer implements render.Renderer for terminals. It draws each slider as
// a ruler with its tick labels underneath.
type Renderer struct {
	width int
	theme Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a text renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{width: DefaultRulerWidth}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "text"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render writes the trial as plain text in display order.
func (r *Renderer) Render(ctx context.Context, view slider.View, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if view.HasPreamble() {
		buf.WriteString(plainText(view.Preamble))
		buf.WriteString("\n\n")
	}
	for _, block := range view.Blocks {
		r.writeBlock(&buf, block)
		buf.WriteByte('\n')
	}

	buf.WriteString(opts.ResolvedCommentLabel())
	buf.WriteByte('\n')

	for _, msg := range opts.Errors {
		fmt.Fprintf(&buf, "%s%s\n", r.theme.ErrorPrefix, msg)
	}

	fmt.Fprintf(&buf, "[%s]", plainText(view.ButtonLabel))
	if view.RequireMovement {
		buf.WriteString(" (move every slider to continue)")
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (r *Renderer) writeBlock(buf *bytes.Buffer, block slider.Block) {
	q := block.Question
	indent := "   "
	fmt.Fprintf(buf, "%s%d. ", r.theme.PromptPrefix, block.Control.Position+1)
	if stimulus := plainText(q.Stimulus); stimulus != "" {
		buf.WriteString(stimulus)
		buf.WriteByte('\n')
		buf.WriteString(indent)
	}
	buf.WriteString(plainText(q.Prompt))
	buf.WriteByte('\n')

	if top := plainText(q.TopLabel()); top != "" {
		fmt.Fprintf(buf, "%s%s\n", indent, top)
	}

	lo, hi := fmt.Sprint(q.Min), fmt.Sprint(q.Max)
	fmt.Fprintf(buf, "%s%s %s %s  (start %d, step %d)\n", indent, lo, Ruler(r.width, block.Ticks), hi, q.SliderStart, q.Step)
	if labels := TickLabels(r.width, block.Ticks); labels != "" {
		pad := strings.Repeat(" ", len(lo)+1)
		fmt.Fprintf(buf, "%s%s%s\n", indent, pad, labels)
	}

	if bottom := plainText(q.BottomLabel()); bottom != "" {
		fmt.Fprintf(buf, "%s%s\n", indent, bottom)
	}
}

// Ruler draws a track of width columns with a '+' at each tick position.
func Ruler(width int, ticks []slider.TickPlacement) string {
	if width < 3 {
		width = 3
	}
	track := []rune("|" + strings.Repeat("-", width-2) + "|")
	for _, tick := range ticks {
		col := tickColumn(width, tick.Percent)
		if col > 0 && col < width-1 {
			track[col] = '+'
		}
	}
	return string(track)
}

// TickLabels lines the tick labels up under their ruler positions. Labels
// that would overlap are pushed right.
func TickLabels(width int, ticks []slider.TickPlacement) string {
	if len(ticks) == 0 {
		return ""
	}
	var line []rune
	for _, tick := range ticks {
		label := []rune(plainText(tick.Label))
		start := tickColumn(width, tick.Percent) - len(label)/2
		if start < 0 {
			start = 0
		}
		if len(line) > 0 && start <= len(line) {
			start = len(line) + 1
		}
		for len(line) < start {
			line = append(line, ' ')
		}
		line = append(line, label...)
	}
	return strings.TrimRight(string(line), " ")
}

func tickColumn(width int, percent float64) int {
	return int(math.Round(percent / 100 * float64(width-1)))
}

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

// plainText strips markup so HTML stimuli read cleanly on a terminal.
func plainText(markup string) string {
	if markup == "" {
		return ""
	}
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(markup)))
}
