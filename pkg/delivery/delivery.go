// Package delivery hands exported files (a name plus bytes) to their
// destination: a directory, an HTTP download or memory.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrInvalidName is returned for names that are empty or not a plain file name.
var ErrInvalidName = errors.New("delivery: invalid file name")

// Sink accepts a named byte blob.
type Sink interface {
	Deliver(ctx context.Context, name string, data []byte) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, name string, data []byte) error

func (f SinkFunc) Deliver(ctx context.Context, name string, data []byte) error {
	return f(ctx, name, data)
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// DirSink writes deliveries into a directory, replacing existing files.
type DirSink struct {
	Dir string
}

// NewDirSink creates dir when missing.
func NewDirSink(dir string) (*DirSink, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("delivery: create directory: %w", err)
	}
	return &DirSink{Dir: dir}, nil
}

func (s *DirSink) Deliver(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkName(name); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0o644); err != nil {
		return fmt.Errorf("delivery: write %q: %w", name, err)
	}
	return nil
}

// ResponseSink writes a delivery as an HTTP attachment download.
type ResponseSink struct {
	W http.ResponseWriter
}

func (s ResponseSink) Deliver(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkName(name); err != nil {
		return err
	}

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := s.W.Header()
	header.Set("Content-Type", contentType)
	header.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	s.W.WriteHeader(http.StatusOK)
	if _, err := s.W.Write(data); err != nil {
		return fmt.Errorf("delivery: write response: %w", err)
	}
	return nil
}

// File is one recorded delivery.
type File struct {
	Name string
	Data []byte
}

// MemorySink records deliveries in order.
type MemorySink struct {
	mu    sync.Mutex
	files []File
}

func (s *MemorySink) Deliver(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = append(s.files, File{Name: name, Data: append([]byte(nil), data...)})
	return nil
}

// Files returns the recorded deliveries.
func (s *MemorySink) Files() []File {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]File(nil), s.files...)
}

// Last returns the most recent delivery.
func (s *MemorySink) Last() (File, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.files) == 0 {
		return File{}, false
	}
	return s.files[len(s.files)-1], true
}
