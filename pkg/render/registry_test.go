package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-surveyslider/pkg/render"
	"github.com/goliatone/go-surveyslider/pkg/slider"
)

type echoRenderer struct {
	name string
}

func (e echoRenderer) Name() string        { return e.name }
func (e echoRenderer) ContentType() string { return "text/plain" }
func (e echoRenderer) Render(_ context.Context, view slider.View, _ render.RenderOptions) ([]byte, error) {
	return []byte(view.ButtonLabel), nil
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(echoRenderer{name: "text"})
	registry.MustRegister(echoRenderer{name: "html"})

	if err := registry.Register(echoRenderer{name: "text"}); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := registry.Register(echoRenderer{}); err == nil {
		t.Fatalf("expected unnamed renderer to be rejected")
	}
	if diff := cmp.Diff([]string{"html", "text"}, registry.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	out, contentType, err := registry.Render(context.Background(), "text", slider.View{ButtonLabel: "Go"}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "Go" || contentType != "text/plain" {
		t.Fatalf("unexpected output %q (%s)", out, contentType)
	}
	if _, _, err := registry.Render(context.Background(), "pdf", slider.View{}, render.RenderOptions{}); err == nil {
		t.Fatalf("expected missing renderer error")
	}
}

func TestParseTouched(t *testing.T) {
	got, err := render.ParseTouched(" 2, ,0,1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff([]int{2, 0, 1}, got); diff != "" {
		t.Fatalf("positions mismatch (-want +got):\n%s", diff)
	}
	if got, err := render.ParseTouched(""); err != nil || got != nil {
		t.Fatalf("expected empty result, got %v %v", got, err)
	}
	if _, err := render.ParseTouched("1,x"); err == nil {
		t.Fatalf("expected error for non-numeric position")
	}
}
