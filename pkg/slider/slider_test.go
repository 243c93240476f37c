package slider

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestResponseKey(t *testing.T) {
	named := NewQuestion("p")
	named.Name = "mood"

	if got := ResponseKey(named, 3); got != "mood" {
		t.Fatalf("expected name key, got %q", got)
	}
	if got := ResponseKey(NewQuestion("p"), 3); got != "Q3" {
		t.Fatalf("expected positional key, got %q", got)
	}

	control := Control{Position: 0, Index: 2}
	if control.Key() != "Q2" || control.InputName() != "Q2" || control.InputID() != "surveyslider-response-0" {
		t.Fatalf("unexpected control identifiers %+v", control)
	}
}

func TestTickAt(t *testing.T) {
	tests := []struct {
		name  string
		j     int
		total int
		want  TickPlacement
	}{
		{name: "first of three", j: 0, total: 3, want: TickPlacement{Percent: 0, Width: 50, Offset: -7.5}},
		{name: "middle of three", j: 1, total: 3, want: TickPlacement{Percent: 50, Width: 50, Offset: 0}},
		{name: "last of three", j: 2, total: 3, want: TickPlacement{Percent: 100, Width: 50, Offset: 7.5}},
		{name: "second of five", j: 1, total: 5, want: TickPlacement{Percent: 25, Width: 25, Offset: -3.75}},
		{name: "degenerate", j: 0, total: 1, want: TickPlacement{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TickAt(tt.j, tt.total, DefaultHalfThumbWidth)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("placement mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTickOffsetIsAntisymmetric(t *testing.T) {
	for _, pct := range []float64{0, 10, 25, 40} {
		left := TickOffset(pct, 7.5)
		right := TickOffset(100-pct, 7.5)
		if left != -right {
			t.Fatalf("offset(%v)=%v, offset(%v)=%v", pct, left, 100-pct, right)
		}
	}
}

func TestPlaceTicks(t *testing.T) {
	if got := PlaceTicks(nil, 7.5); got != nil {
		t.Fatalf("expected no placements for empty list")
	}
	if got := PlaceTicks([]string{"only"}, 7.5); got != nil {
		t.Fatalf("expected no placements for a single tick")
	}

	got := PlaceTicks([]string{"Low", "Mid", "High"}, 7.5)
	labels := make([]string, 0, len(got))
	for _, tick := range got {
		labels = append(labels, tick.Label)
	}
	if diff := cmp.Diff([]string{"Low", "Mid", "High"}, labels); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	if css := got[0].LeftCSS(); css != "calc(0% - (50% / 2) - -7.5px)" {
		t.Fatalf("unexpected left css %q", css)
	}
	if css := got[2].WidthCSS(); css != "50%" {
		t.Fatalf("unexpected width css %q", css)
	}
}

func TestBuildOrder(t *testing.T) {
	order, err := BuildOrder(4, false, nil)
	if err != nil {
		t.Fatalf("identity order: %v", err)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, order); diff != "" {
		t.Fatalf("identity mismatch (-want +got):\n%s", diff)
	}

	if _, err := BuildOrder(4, true, nil); !errors.Is(err, ErrShufflerRequired) {
		t.Fatalf("expected ErrShufflerRequired, got %v", err)
	}

	short := ShufflerFunc(func(v []int) []int { return v[:2] })
	if _, err := BuildOrder(4, true, short); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder, got %v", err)
	}
}

func TestRandomShufflerProducesPermutations(t *testing.T) {
	shuffler := NewRandomShuffler(rand.NewPCG(1, 2))
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		order, err := BuildOrder(5, true, shuffler)
		if err != nil {
			t.Fatalf("build order: %v", err)
		}
		sorted := append([]int(nil), order...)
		sort.Ints(sorted)
		if diff := cmp.Diff(IdentityOrder(5), sorted); diff != "" {
			t.Fatalf("not a permutation (-want +got):\n%s", diff)
		}
		seen[fmt.Sprint(order)] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected randomized orders to vary")
	}

	input := []int{0, 1, 2}
	_ = NewRandomShuffler(nil).Shuffle(input)
	if diff := cmp.Diff([]int{0, 1, 2}, input); diff != "" {
		t.Fatalf("shuffle must not mutate its input (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	valid := NewQuestion("ok")

	tests := []struct {
		name     string
		mutate   func(*Config)
		wantPath string
	}{
		{name: "no questions", mutate: func(c *Config) { c.Questions = nil }, wantPath: "questions"},
		{name: "empty prompt", mutate: func(c *Config) { c.Questions[0].Prompt = " " }, wantPath: "questions.0.prompt"},
		{name: "min above max", mutate: func(c *Config) { c.Questions[0].Min = 200 }, wantPath: "questions.0.min"},
		{name: "start outside range", mutate: func(c *Config) { c.Questions[0].SliderStart = 101 }, wantPath: "questions.0.slider_start"},
		{name: "start off step grid", mutate: func(c *Config) {
			q := &c.Questions[0]
			q.Max, q.Step, q.SliderStart = 10, 3, 5
		}, wantPath: "questions.0.slider_start"},
		{name: "zero step", mutate: func(c *Config) { c.Questions[0].Step = 0 }, wantPath: "questions.0.step"},
		{name: "one label", mutate: func(c *Config) { c.Questions[0].Labels = []string{"a"} }, wantPath: "questions.0.labels"},
		{name: "single tick", mutate: func(c *Config) { c.Questions[0].Ticks = []string{"a"} }, wantPath: "questions.0.ticks"},
		{name: "reserved name", mutate: func(c *Config) { c.Questions[0].Name = CommentKey }, wantPath: "questions.0.name"},
		{name: "name collides with positional key", mutate: func(c *Config) { c.Questions[1].Name = "Q0" }, wantPath: "questions.1.name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(valid, valid)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			found := false
			for _, issue := range verr.Issues {
				if issue.Path == tt.wantPath {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected issue at %s, got %v", tt.wantPath, verr.Issues)
			}
		})
	}

	if err := NewConfig(valid, valid).Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestNewResult(t *testing.T) {
	result, err := NewResult(2500*time.Microsecond, []Answer{{Key: "q1", Value: 5}}, "", []int{0})
	if err != nil {
		t.Fatalf("new result: %v", err)
	}
	want := Result{RT: 2.5, Response: `{"q1":5,"comment":""}`, QuestionOrder: "[0]"}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}

	order, err := result.Order()
	if err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if diff := cmp.Diff([]int{0}, order); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	escaped, err := EncodeResponse(nil, `said "hi" <b>`)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if escaped != `{"comment":"said \"hi\" <b>"}` {
		t.Fatalf("unexpected encoding %s", escaped)
	}

	if Milliseconds(-time.Second) != 0 {
		t.Fatalf("negative durations must clamp to zero")
	}
}

func TestBuildView(t *testing.T) {
	first := NewQuestion("First")
	second := NewQuestion("Second")
	second.Name = "named"
	second.Ticks = []string{"a", "b"}
	cfg := NewConfig(first, second)

	view, err := BuildView(cfg, []int{1, 0}, WithHalfThumbWidth(0))
	if err != nil {
		t.Fatalf("build view: %v", err)
	}
	want := []Control{
		{Position: 0, Index: 1, Name: "named"},
		{Position: 1, Index: 0},
	}
	if diff := cmp.Diff(want, view.Controls()); diff != "" {
		t.Fatalf("controls mismatch (-want +got):\n%s", diff)
	}
	if view.Blocks[0].Ticks[1].Offset != 0 {
		t.Fatalf("expected zero offset with zero thumb width")
	}
	if view.AutoWidth() {
		t.Fatalf("default width must not be auto")
	}

	if _, err := BuildView(cfg, []int{0}); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder, got %v", err)
	}
}

func TestLoadSliderWidth(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		want     int
		wantAuto bool
	}{
		{name: "json omitted", doc: `{"questions":[{"prompt":"a"}]}`, want: DefaultSliderWidth},
		{name: "json null", doc: `{"questions":[{"prompt":"a"}],"slider_width":null}`, wantAuto: true},
		{name: "json pixels", doc: `{"questions":[{"prompt":"a"}],"slider_width":320}`, want: 320},
		{name: "yaml omitted", doc: "questions:\n  - prompt: a\n", want: DefaultSliderWidth},
		{name: "yaml null", doc: "questions:\n  - prompt: a\nslider_width: null\n", wantAuto: true},
		{name: "yaml tilde", doc: "questions:\n  - prompt: a\nslider_width: ~\n", wantAuto: true},
		{name: "yaml pixels", doc: "questions:\n  - prompt: a\nslider_width: 640\n", want: 640},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load([]byte(tt.doc), tt.name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if cfg.AutoWidth() != tt.wantAuto {
				t.Fatalf("auto width = %v, want %v (width %d)", cfg.AutoWidth(), tt.wantAuto, cfg.SliderWidth)
			}
			if !tt.wantAuto && cfg.SliderWidth != tt.want {
				t.Fatalf("width = %d, want %d", cfg.SliderWidth, tt.want)
			}
		})
	}

	if _, err := Load([]byte("questions:\n  - prompt: a\nslider_width: wide\n"), "bad"); err == nil {
		t.Fatalf("expected an error for a non-numeric width")
	}
}
