package trial

import (
	"io"
	"sync"
)

// Surface is the display area a trial takes exclusive ownership of: empty on
// entry, emptied again on submit.
type Surface interface {
	Mount(content []byte) error
	Clear() error
}

// BufferSurface keeps the mounted content in memory, for transports that
// serve it on request.
type BufferSurface struct {
	mu      sync.RWMutex
	content []byte
}

// NewBufferSurface returns an empty buffer surface.
func NewBufferSurface() *BufferSurface {
	return &BufferSurface{}
}

// Mount stores content. The surface must be empty.
func (s *BufferSurface) Mount(content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.content) > 0 {
		return ErrSurfaceBusy
	}
	s.content = append([]byte(nil), content...)
	return nil
}

// Clear empties the surface.
func (s *BufferSurface) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = nil
	return nil
}

// Content returns a copy of the mounted content.
func (s *BufferSurface) Content() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]byte(nil), s.content...)
}

// Empty reports whether nothing is mounted.
func (s *BufferSurface) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.content) == 0
}

// WriterSurface writes mounted content to w. Clear writes the optional
// separator, for example an ANSI clear-screen sequence on terminals.
type WriterSurface struct {
	w         io.Writer
	separator []byte
}

// NewWriterSurface wraps w.
func NewWriterSurface(w io.Writer, separator []byte) *WriterSurface {
	return &WriterSurface{w: w, separator: separator}
}

// Mount writes content to the underlying writer.
func (s *WriterSurface) Mount(content []byte) error {
	_, err := s.w.Write(content)
	return err
}

// Clear writes the separator, if any.
func (s *WriterSurface) Clear() error {
	if len(s.separator) == 0 {
		return nil
	}
	_, err := s.w.Write(s.separator)
	return err
}

type discardSurface struct{}

func (discardSurface) Mount([]byte) error { return nil }
func (discardSurface) Clear() error       { return nil }
