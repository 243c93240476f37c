package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-surveyslider/pkg/slider"
	"github.com/goliatone/go-surveyslider/pkg/testsupport"
	"github.com/goliatone/go-surveyslider/pkg/trial"
)

type stubDriver struct {
	inputs       []string
	textAreas    []string
	confirm      []bool
	infoMessages []string
	prompts      []InputConfig
	inputErr     error
	inputPos     int
	textPos      int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg)
	if s.inputErr != nil {
		return "", s.inputErr
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func newTrial(t *testing.T, cfg slider.Config, out *bytes.Buffer) *trial.Controller {
	t.Helper()
	clock := testsupport.StepClock(time.Unix(1700000000, 0), 1500*time.Millisecond)
	ctrl, err := trial.New(cfg,
		trial.WithClock(trial.ClockFunc(clock)),
		trial.WithRenderer(New(WithRulerWidth(11))),
		trial.WithSurface(trial.NewWriterSurface(out, nil)),
	)
	if err != nil {
		t.Fatalf("new trial: %v", err)
	}
	return ctrl
}

func TestSessionCollectsValuesAndComment(t *testing.T) {
	named := slider.NewQuestion("Mood")
	named.Name = "mood"
	cfg := slider.NewConfig(slider.NewQuestion("Energy"), named)

	var out bytes.Buffer
	ctrl := newTrial(t, cfg, &out)
	driver := &stubDriver{inputs: []string{"10", ""}, textAreas: []string{"fine"}}

	result, err := NewSession(WithPromptDriver(driver)).Run(context.Background(), ctrl)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := slider.Result{RT: 1500, Response: `{"Q0":10,"mood":50,"comment":"fine"}`, QuestionOrder: "[0,1]"}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(out.String(), "1. Energy") {
		t.Fatalf("expected trial text mounted, got %q", out.String())
	}
	if driver.prompts[0].Default != "50" {
		t.Fatalf("expected slider start as default, got %q", driver.prompts[0].Default)
	}
	if !ctrl.Finished() {
		t.Fatalf("expected finished trial")
	}
}

func TestSessionRequiresValueWhenMovementRequired(t *testing.T) {
	q := slider.NewQuestion("Pick")
	q.Step = 10
	cfg := slider.NewConfig(q)
	cfg.RequireMovement = true

	var out bytes.Buffer
	ctrl := newTrial(t, cfg, &out)
	driver := &stubDriver{inputs: []string{"", "abc", "200", "35", "30"}, textAreas: []string{""}}

	result, err := NewSession(WithPromptDriver(driver)).Run(context.Background(), ctrl)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Response != `{"Q0":30,"comment":""}` {
		t.Fatalf("unexpected response %s", result.Response)
	}
	if len(driver.infoMessages) != 4 {
		t.Fatalf("expected four rejections, got %v", driver.infoMessages)
	}
	if driver.prompts[0].Default != "" {
		t.Fatalf("expected no default when movement is required")
	}
	if err := driver.prompts[0].Validator(""); err == nil {
		t.Fatalf("expected validator to reject empty input")
	}
}

func TestSessionAbortLeavesTrialOpen(t *testing.T) {
	var out bytes.Buffer
	ctrl := newTrial(t, slider.NewConfig(slider.NewQuestion("Pick")), &out)
	driver := &stubDriver{inputErr: ErrAborted}

	if _, err := NewSession(WithPromptDriver(driver)).Run(context.Background(), ctrl); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if ctrl.Finished() {
		t.Fatalf("aborted session must not finish the trial")
	}
}

func TestSessionDeclinedConfirmation(t *testing.T) {
	var out bytes.Buffer
	ctrl := newTrial(t, slider.NewConfig(slider.NewQuestion("Pick")), &out)
	driver := &stubDriver{inputs: []string{"5"}, textAreas: []string{""}, confirm: []bool{false}}

	session := NewSession(WithPromptDriver(driver), WithConfirmSubmit(true))
	if _, err := session.Run(context.Background(), ctrl); !errors.Is(err, ErrDeclined) {
		t.Fatalf("expected ErrDeclined, got %v", err)
	}
	if ctrl.Finished() {
		t.Fatalf("declined session must not finish the trial")
	}
}
