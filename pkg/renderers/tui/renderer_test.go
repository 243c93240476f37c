package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-surveyslider/pkg/render"
	"github.com/goliatone/go-surveyslider/pkg/slider"
)

func TestRulerMarksInnerTicks(t *testing.T) {
	ticks := slider.PlaceTicks([]string{"Low", "Mid", "High"}, 0)
	if got := Ruler(11, ticks); got != "|----+----|" {
		t.Fatalf("unexpected ruler %q", got)
	}
	if got := Ruler(11, nil); got != "|---------|" {
		t.Fatalf("unexpected bare ruler %q", got)
	}
}

func TestTickLabelsAvoidOverlap(t *testing.T) {
	ticks := slider.PlaceTicks([]string{"Low", "Mid", "High"}, 0)
	if got := TickLabels(11, ticks); got != "Low Mid High" {
		t.Fatalf("unexpected labels %q", got)
	}

	crowded := slider.PlaceTicks([]string{"Never", "Always"}, 0)
	if got := TickLabels(5, crowded); got != "Never Always" {
		t.Fatalf("unexpected crowded labels %q", got)
	}
}

func TestRendererWritesBlocksInDisplayOrder(t *testing.T) {
	first := slider.NewQuestion("<b>First</b>")
	second := slider.NewQuestion("Second")
	second.Labels = []string{"Agree", "Disagree"}
	second.Ticks = []string{"Low", "High"}
	cfg := slider.NewConfig(first, second)
	cfg.Preamble = "<p>Intro &amp; more</p>"
	cfg.RequireMovement = true

	view, err := slider.BuildView(cfg, []int{1, 0})
	if err != nil {
		t.Fatalf("build view: %v", err)
	}

	r := New(WithRulerWidth(11))
	out, err := r.Render(context.Background(), view, render.RenderOptions{Errors: []string{"try again"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	text := string(out)

	for _, want := range []string{
		"Intro & more\n",
		"1. Second\n",
		"   Agree\n",
		"   0 |---------| 100  (start 50, step 1)\n",
		"   Disagree\n",
		"2. First\n",
		"Comment:\n",
		"try again\n",
		"[Continue] (move every slider to continue)\n",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
	if strings.Index(text, "1. Second") > strings.Index(text, "2. First") {
		t.Fatalf("blocks out of display order:\n%s", text)
	}
	if strings.Contains(text, "<b>") {
		t.Fatalf("markup must be stripped:\n%s", text)
	}
	if r.Name() != "text" || !strings.HasPrefix(r.ContentType(), "text/plain") {
		t.Fatalf("unexpected identity %s %s", r.Name(), r.ContentType())
	}
}

func TestRendererHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Render(ctx, slider.View{}, render.RenderOptions{}); err == nil {
		t.Fatalf("expected context error")
	}
}
