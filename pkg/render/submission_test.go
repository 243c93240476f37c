package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-surveyslider/pkg/render"
)

func TestMergeAndSortHiddenFields(t *testing.T) {
	base := map[string]string{
		" existing ": "keep",
		"":           "ignored",
		"touched":    "0,1",
	}

	merged := render.MergeHiddenFields(base,
		render.CSRFToken("_csrf", "token123"),
		render.TrialField("abc"),
		render.Hidden("  ", "skip"),
	)

	wantMerged := map[string]string{
		"existing": "keep",
		"_csrf":    "token123",
		"trial_id": "abc",
		"touched":  "0,1",
	}
	if diff := cmp.Diff(wantMerged, merged); diff != "" {
		t.Fatalf("merged hidden fields mismatch (-want +got):\n%s", diff)
	}

	sorted := render.SortedHiddenFields(merged)
	wantSorted := []render.HiddenField{
		{Name: "_csrf", Value: "token123"},
		{Name: "existing", Value: "keep"},
		{Name: "trial_id", Value: "abc"},
	}
	if diff := cmp.Diff(wantSorted, sorted); diff != "" {
		t.Fatalf("sorted hidden fields mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeFormErrors(t *testing.T) {
	got := render.MergeFormErrors([]string{" Move every slider ", ""}, "Move every slider", "Value out of range")
	want := []string{"Move every slider", "Value out of range"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merged errors mismatch (-want +got):\n%s", diff)
	}
	if got := render.MergeFormErrors(nil, "  "); got != nil {
		t.Fatalf("expected nil for blank messages, got %v", got)
	}
}

func TestRenderOptionsResolution(t *testing.T) {
	if got := (render.RenderOptions{}).ResolvedMethod(); got != "" {
		t.Fatalf("expected empty method without action, got %q", got)
	}
	if got := (render.RenderOptions{Action: "/submit"}).ResolvedMethod(); got != "post" {
		t.Fatalf("expected post with action, got %q", got)
	}
	if got := (render.RenderOptions{}).ResolvedCommentLabel(); got != render.DefaultCommentLabel {
		t.Fatalf("unexpected default comment label %q", got)
	}
}
