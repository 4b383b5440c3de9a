// Package storage owns the append-only publications file.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/alainchaple/formulario-publicaciones-ua/publication"
)

// CSVStore wraps the shared publications file. A single file handle opened
// in append mode is reused for every write; the mutex serializes appends
// against each other and against Reset, so a record line is never split
// across two writers.
type CSVStore struct {
	path string

	mu   sync.Mutex
	file *os.File
}

// Open opens (or creates) the store at path, writing the header line when
// the file does not exist yet.
func Open(path string) (*CSVStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory %s: %w", dir, err)
		}
	}

	info, statErr := os.Stat(path)
	needsHeader := os.IsNotExist(statErr) || (statErr == nil && info.Size() == 0)
	if statErr != nil && !os.IsNotExist(statErr) {
		return nil, fmt.Errorf("stat store %s: %w", path, statErr)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}

	store := &CSVStore{path: path, file: file}
	if needsHeader {
		if _, err := file.WriteString(publication.HeaderLine()); err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("write store header: %w", err)
		}
	}

	return store, nil
}

func (s *CSVStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

// Path returns the store's file path.
func (s *CSVStore) Path() string {
	return s.path
}

// Append writes the given record lines, in order, to the end of the store.
// Lines must already be newline-terminated. The whole batch goes through
// one write call so concurrent appenders interleave at line granularity at
// worst.
func (s *CSVStore) Append(lines []string) error {
	if len(lines) == 0 {
		return nil
	}

	var batch []byte
	for _, line := range lines {
		batch = append(batch, line...)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.file.Write(batch); err != nil {
		return fmt.Errorf("append to store %s: %w", s.path, err)
	}
	return nil
}

// Reset truncates the store to just the header line, destroying all prior
// records. It holds the same lock as Append, so no in-flight write can be
// cut mid-line.
func (s *CSVStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.file.Truncate(0); err != nil {
		return fmt.Errorf("truncate store %s: %w", s.path, err)
	}
	// The handle is in append mode, so this lands at the new end of file.
	if _, err := s.file.WriteString(publication.HeaderLine()); err != nil {
		return fmt.Errorf("rewrite store header: %w", err)
	}
	return nil
}

// ReadAll returns the full current store content.
func (s *CSVStore) ReadAll() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read store %s: %w", s.path, err)
	}
	return content, nil
}

// CopyTo streams the full current store content into w, returning the
// number of bytes written.
func (s *CSVStore) CopyTo(w io.Writer) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reader, err := os.Open(s.path)
	if err != nil {
		return 0, fmt.Errorf("open store %s for read: %w", s.path, err)
	}
	defer reader.Close()

	written, err := io.Copy(w, reader)
	if err != nil {
		return written, fmt.Errorf("copy store content: %w", err)
	}
	return written, nil
}
