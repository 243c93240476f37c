package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/goliatone/go-surveyslider/pkg/slider"
)

// TrialRecord is a completed trial as persisted by a ResultSink.
type TrialRecord struct {
	TrialID     string        `json:"trial_id"`
	Survey      string        `json:"survey"`
	Result      slider.Result `json:"result"`
	CompletedAt time.Time     `json:"completed_at"`
}

// ResultSink receives every completed trial.
type ResultSink interface {
	Record(ctx context.Context, record TrialRecord) error
}

// ResultSinkFunc adapts a function to ResultSink.
type ResultSinkFunc func(ctx context.Context, record TrialRecord) error

// Record calls f.
func (f ResultSinkFunc) Record(ctx context.Context, record TrialRecord) error {
	return f(ctx, record)
}

// MemorySink keeps records in memory.
type MemorySink struct {
	mu      sync.Mutex
	records []TrialRecord
}

// NewMemorySink returns an empty sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Record appends record.
func (s *MemorySink) Record(ctx context.Context, record TrialRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// Records returns a copy of the stored records in completion order.
func (s *MemorySink) Records() []TrialRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]TrialRecord(nil), s.records...)
}

// JSONLinesSink appends one JSON document per record to a file.
type JSONLinesSink struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
}

// NewJSONLinesSink opens (or creates) path for appending.
func NewJSONLinesSink(path string) (*JSONLinesSink, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("server: open results file: %w", err)
	}
	return &JSONLinesSink{file: file, enc: json.NewEncoder(file)}, nil
}

// Record writes record as a single line.
func (s *JSONLinesSink) Record(ctx context.Context, record TrialRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enc.Encode(record); err != nil {
		return fmt.Errorf("server: write result: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (s *JSONLinesSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}
