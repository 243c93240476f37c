package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-surveyslider/pkg/render"
	"github.com/goliatone/go-surveyslider/pkg/slider"
	"github.com/goliatone/go-surveyslider/pkg/trial"
)

// Session runs a trial interactively: one numeric prompt per slider in
// display order, then the comment box, then submission.
type Session struct {
	driver  PromptDriver
	theme   Theme
	confirm bool
	logger  *zap.Logger
}

// NewSession constructs a session using the survey driver unless overridden.
func NewSession(options ...SessionOption) *Session {
	s := &Session{
		driver: NewSurveyDriver(nil),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Run renders the trial if needed, collects every slider value and the
// comment, and submits. Aborting a prompt leaves the trial unfinished.
func (s *Session) Run(ctx context.Context, ctrl *trial.Controller) (slider.Result, error) {
	if ctrl == nil {
		return slider.Result{}, errors.New("tui: controller is required")
	}
	if err := ctrl.Render(ctx); err != nil && !errors.Is(err, trial.ErrAlreadyRendered) {
		return slider.Result{}, err
	}

	view := ctrl.View()
	for pos, block := range view.Blocks {
		if err := s.promptSlider(ctx, ctrl, pos, block, view.RequireMovement); err != nil {
			return slider.Result{}, err
		}
	}

	comment, err := s.driver.TextArea(ctx, TextAreaConfig{
		Message: s.theme.PromptPrefix + render.DefaultCommentLabel,
	})
	if err != nil {
		return slider.Result{}, err
	}
	if err := ctrl.SetComment(comment); err != nil {
		return slider.Result{}, err
	}

	if s.confirm {
		ok, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("%s%s?", s.theme.PromptPrefix, plainText(view.ButtonLabel)),
			Default: true,
		})
		if err != nil {
			return slider.Result{}, err
		}
		if !ok {
			return slider.Result{}, ErrDeclined
		}
	}

	return ctrl.Submit(ctx)
}

func (s *Session) promptSlider(ctx context.Context, ctrl *trial.Controller, pos int, block slider.Block, required bool) error {
	q := block.Question
	cfg := InputConfig{
		Message: fmt.Sprintf("%s%s [%d-%d]", s.theme.PromptPrefix, plainText(q.Prompt), q.Min, q.Max),
		Help:    sliderHelp(q),
		Validator: func(text string) error {
			_, _, err := parseSliderValue(q, text, required)
			return err
		},
	}
	if !required {
		cfg.Default = strconv.Itoa(q.SliderStart)
	}

	for {
		resp, err := s.driver.Input(ctx, cfg)
		if err != nil {
			return err
		}
		value, ok, err := parseSliderValue(q, resp, required)
		if err != nil {
			_ = s.driver.Info(ctx, fmt.Sprintf("%sInvalid %s: %v", s.theme.ErrorPrefix, block.Key(), err))
			continue
		}
		if !ok {
			return nil
		}
		if err := ctrl.SetValue(pos, value); err != nil {
			if errors.Is(err, trial.ErrValueOutOfRange) {
				_ = s.driver.Info(ctx, fmt.Sprintf("%sInvalid %s: %v", s.theme.ErrorPrefix, block.Key(), err))
				continue
			}
			return err
		}
		s.logger.Debug("slider answered", zap.String("key", block.Key()), zap.Int("value", value))
		return nil
	}
}

// parseSliderValue reports ok=false for an accepted empty answer, which
// keeps the starting value.
func parseSliderValue(q slider.Question, text string, required bool) (int, bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		if required {
			return 0, false, errors.New("a value is required")
		}
		return 0, false, nil
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, false, fmt.Errorf("%q is not a whole number", text)
	}
	if value < q.Min || value > q.Max {
		return 0, false, fmt.Errorf("must be between %d and %d", q.Min, q.Max)
	}
	if (value-q.Min)%q.Step != 0 {
		return 0, false, fmt.Errorf("must be a multiple of %d from %d", q.Step, q.Min)
	}
	return value, true, nil
}

func sliderHelp(q slider.Question) string {
	var parts []string
	if q.HasLabels() {
		labels := plainText(q.TopLabel())
		if bottom := plainText(q.BottomLabel()); bottom != "" {
			labels += " ... " + bottom
		}
		parts = append(parts, labels)
	}
	if len(q.Ticks) > 0 {
		ticks := make([]string, 0, len(q.Ticks))
		for _, tick := range q.Ticks {
			ticks = append(ticks, plainText(tick))
		}
		parts = append(parts, strings.Join(ticks, " | "))
	}
	return strings.Join(parts, "; ")
}
