package server

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-surveyslider/pkg/render"
	"github.com/goliatone/go-surveyslider/pkg/renderers/vanilla"
	"github.com/goliatone/go-surveyslider/pkg/slider"
	"github.com/goliatone/go-surveyslider/pkg/trial"
)

// Server hosts the surveys of a catalog.
type Server struct {
	catalog   *slider.Catalog
	renderer  render.Renderer
	sink      ResultSink
	logger    *zap.Logger
	newID     func() string
	shuffler  slider.Shuffler
	clock     trial.Clock
	retention time.Duration
	trials    *trialStore
}

// New builds a server over catalog.
func New(catalog *slider.Catalog, options ...Option) (*Server, error) {
	if catalog == nil {
		return nil, errors.New("server: catalog is required")
	}
	s := &Server{
		catalog:   catalog,
		sink:      NewMemorySink(),
		logger:    zap.NewNop(),
		newID:     uuid.NewString,
		clock:     trial.ClockFunc(nowUTC),
		retention: DefaultRetention,
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	s.trials = newTrialStore(s.retention)
	if s.renderer == nil {
		renderer, err := vanilla.New(
			vanilla.WithRuntimeURL(AssetsPrefix+vanilla.RuntimeScriptName),
			vanilla.WithStylesheetURL(AssetsPrefix+vanilla.StylesheetName),
			vanilla.WithoutInlineAssets(),
		)
		if err != nil {
			return nil, fmt.Errorf("server: default renderer: %w", err)
		}
		s.renderer = renderer
	}
	return s, nil
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /surveys", WithLogging(s.logger, s.listSurveys))
	mux.HandleFunc("POST /surveys/{name}/trials", WithLogging(s.logger, s.createTrial))
	mux.HandleFunc("GET /trials/{id}", WithLogging(s.logger, s.showTrial))
	mux.HandleFunc("POST /trials/{id}/submit", WithLogging(s.logger, s.submitTrial))
	mux.Handle("GET "+AssetsPrefix, http.StripPrefix(AssetsPrefix, http.FileServerFS(vanilla.AssetsFS())))

	return mux
}

// ActiveTrials reports how many trials are open or waiting for their result
// to be recorded.
func (s *Server) ActiveTrials() int {
	return s.trials.len()
}

// listSurveys handles GET /surveys
func (s *Server) listSurveys(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, s.logger, http.StatusOK, map[string][]string{
		"surveys": s.catalog.Names(),
	})
}

// createTrial handles POST /surveys/{name}/trials
func (s *Server) createTrial(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	cfg, ok := s.catalog.Get(name)
	if !ok {
		ErrorResponse(w, s.logger, http.StatusNotFound, fmt.Sprintf("survey %q not found", name))
		return
	}

	id := s.newID()
	surface := trial.NewBufferSurface()
	logger := s.logger.With(zap.String("trial_id", id), zap.String("survey", name))
	options := []trial.Option{
		trial.WithSurface(surface),
		trial.WithRenderer(s.renderer),
		trial.WithRenderOptions(render.RenderOptions{
			Action: trialPath(id) + "/submit",
			Hidden: render.MergeHiddenFields(nil, render.TrialField(id)),
		}),
		trial.WithClock(s.clock),
		trial.WithLogger(logger),
	}
	if s.shuffler != nil {
		options = append(options, trial.WithShuffler(s.shuffler))
	}

	ctrl, err := trial.New(cfg, options...)
	if err != nil {
		logger.Error("failed to create trial", zap.Error(err))
		ErrorResponse(w, s.logger, http.StatusInternalServerError, "Failed to create trial")
		return
	}
	if err := ctrl.Render(r.Context()); err != nil {
		logger.Error("failed to render trial", zap.Error(err))
		ErrorResponse(w, s.logger, http.StatusInternalServerError, "Failed to render trial")
		return
	}

	s.trials.put(&trialEntry{id: id, survey: name, ctrl: ctrl, surface: surface})
	logger.Info("trial created", zap.Ints("question_order", ctrl.Order()))

	http.Redirect(w, r, trialPath(id), http.StatusSeeOther)
}

// showTrial handles GET /trials/{id}
func (s *Server) showTrial(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.lookup(w, r.PathValue("id"))
	if !ok {
		return
	}
	if entry.ctrl.Finished() {
		ErrorResponse(w, s.logger, http.StatusGone, "trial already completed")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page(entry.survey, entry.surface.Content()))
}

// submitTrial handles POST /trials/{id}/submit
func (s *Server) submitTrial(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.lookup(w, r.PathValue("id"))
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		ErrorResponse(w, s.logger, http.StatusBadRequest, "Invalid form body")
		return
	}
	if posted := r.PostForm.Get(render.TrialFieldName); posted != "" && posted != entry.id {
		ErrorResponse(w, s.logger, http.StatusBadRequest, "trial id mismatch")
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.pending != nil {
		s.deliver(w, r, entry, *entry.pending)
		return
	}

	if err := applyForm(entry.ctrl, r); err != nil {
		s.writeTrialError(w, err)
		return
	}

	result, err := entry.ctrl.Submit(r.Context())
	if err != nil {
		s.writeTrialError(w, err)
		return
	}

	record := TrialRecord{
		TrialID:     entry.id,
		Survey:      entry.survey,
		Result:      result,
		CompletedAt: s.clock.Now(),
	}
	entry.pending = &record
	s.deliver(w, r, entry, record)
}

// deliver hands record to the sink. On failure the record stays pending on
// the entry and the next submit resends it.
func (s *Server) deliver(w http.ResponseWriter, r *http.Request, entry *trialEntry, record TrialRecord) {
	if err := s.sink.Record(context.WithoutCancel(r.Context()), record); err != nil {
		s.logger.Error("failed to record result", zap.String("trial_id", entry.id), zap.Error(err))
		ErrorResponse(w, s.logger, http.StatusInternalServerError, "Failed to record result, submit again to retry")
		return
	}
	entry.pending = nil
	s.trials.complete(entry.id, record.CompletedAt)

	s.logger.Info("trial completed",
		zap.String("trial_id", entry.id),
		zap.String("survey", entry.survey),
		zap.Float64("rt_ms", record.Result.RT),
	)
	JSONResponse(w, s.logger, http.StatusOK, record)
}

// lookup resolves an open trial, writing 410 for recently completed ids and
// 404 otherwise.
func (s *Server) lookup(w http.ResponseWriter, id string) (*trialEntry, bool) {
	if entry, ok := s.trials.get(id); ok {
		return entry, true
	}
	if s.trials.gone(id) {
		ErrorResponse(w, s.logger, http.StatusGone, "trial already completed")
		return nil, false
	}
	ErrorResponse(w, s.logger, http.StatusNotFound, "trial not found")
	return nil, false
}

// applyForm replays the posted form onto the controller: changed slider
// values, then touched positions, then the comment. Values and positions are
// all checked before anything is applied.
func applyForm(ctrl *trial.Controller, r *http.Request) error {
	if ctrl.Finished() {
		return trial.ErrFinished
	}
	controls := ctrl.Controls()
	changes := make(map[int]int, len(controls))
	for _, control := range controls {
		raw := strings.TrimSpace(r.PostForm.Get(control.InputName()))
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", trial.ErrValueOutOfRange, control.InputName(), raw)
		}
		current, err := ctrl.Value(control.Position)
		if err != nil {
			return err
		}
		if value != current {
			changes[control.Position] = value
		}
	}

	touched, err := render.ParseTouched(r.PostForm.Get(render.TouchedFieldName))
	if err != nil {
		return fmt.Errorf("%w: %v", trial.ErrUnknownControl, err)
	}
	for _, pos := range touched {
		if pos >= len(controls) {
			return fmt.Errorf("%w: %d", trial.ErrUnknownControl, pos)
		}
	}

	if err := ctrl.SetValues(changes); err != nil {
		return err
	}
	for _, pos := range touched {
		if err := ctrl.Touch(pos); err != nil {
			return err
		}
	}
	return ctrl.SetComment(r.PostForm.Get(render.CommentFieldName))
}

func (s *Server) writeTrialError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, trial.ErrSubmitDisabled):
		ErrorResponse(w, s.logger, http.StatusConflict, "every slider must be moved before continuing")
	case errors.Is(err, trial.ErrFinished):
		ErrorResponse(w, s.logger, http.StatusGone, "trial already completed")
	case errors.Is(err, trial.ErrValueOutOfRange), errors.Is(err, trial.ErrUnknownControl):
		ErrorResponse(w, s.logger, http.StatusUnprocessableEntity, err.Error())
	default:
		s.logger.Error("trial submission failed", zap.Error(err))
		ErrorResponse(w, s.logger, http.StatusInternalServerError, "Failed to submit trial")
	}
}

func trialPath(id string) string {
	return "/trials/" + id
}

func page(title string, body []byte) []byte {
	var b strings.Builder
	b.WriteString("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>\n</head>\n<body>\n")
	b.Write(body)
	b.WriteString("\n</body>\n</html>\n")
	return []byte(b.String())
}
