// Package pkg holds generic helpers shared by the codeqg commands.
package pkg

import (
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// ErrSpillClosed is returned by operations on a closed Spill.
var ErrSpillClosed = errors.New("spill is closed")

// Spill is an append-only on-disk buffer for items of type T. Batch runs use
// it to keep finished results out of memory until they are persisted.
type Spill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Get(index uint64) (T, error)
	Range(f func(index uint64, item T) error) error
	// Close releases the backing file and deletes it.
	Close() error
}

type spillImpl[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
}

// Append implements Spill.
func (s *spillImpl[T]) Append(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return ErrSpillClosed
	}

	if err := s.encoder.Encode(item); err != nil {
		slog.Error("failed to encode item", "path", s.path, "index", s.length, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	s.length++
	slog.Debug("appended item", "path", s.path, "index", s.length-1)

	return nil
}

// Path implements Spill.
func (s *spillImpl[T]) Path() string {
	return s.path
}

// AppendBatch implements Spill.
func (s *spillImpl[T]) AppendBatch(items []T) error {
	for _, item := range items {
		if err := s.Append(item); err != nil {
			return err
		}
	}

	return nil
}

// Close implements Spill.
func (s *spillImpl[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}

	err := s.file.Close()
	s.file = nil

	if err != nil {
		slog.Error("failed to close file", "path", s.path, "error", err)
		return err
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		slog.Error("failed to remove spill file", "path", s.path, "error", err)
		return err
	}

	slog.Debug("closed spill", "path", s.path, "length", s.length)

	return nil
}

// Get implements Spill. It decodes from the start of the file, so random
// access costs O(index).
func (s *spillImpl[T]) Get(index uint64) (T, error) {
	var zero T

	if index >= s.Len() {
		slog.Warn("get index out of bounds", "path", s.path, "index", index, "length", s.Len())
		return zero, fmt.Errorf("index %d out of bounds (length %d)", index, s.Len())
	}

	var (
		item  T
		found bool
	)

	err := s.Range(func(i uint64, v T) error {
		if i == index {
			item, found = v, true
			return errStopRange
		}

		return nil
	})
	if err != nil && !errors.Is(err, errStopRange) {
		return zero, err
	}

	if !found {
		return zero, fmt.Errorf("index %d not found", index)
	}

	slog.Debug("got item", "path", s.path, "index", index)

	return item, nil
}

var errStopRange = errors.New("stop range")

// Len implements Spill.
func (s *spillImpl[T]) Len() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.length
}

// Range implements Spill. Items are decoded into fresh values so slices and
// maps from one item never leak into the next.
func (s *spillImpl[T]) Range(fn func(index uint64, item T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return ErrSpillClosed
	}

	file, err := os.Open(s.path)
	if err != nil {
		slog.Error("failed to open file for range", "path", s.path, "error", err)
		return fmt.Errorf("failed to open file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close file", "path", s.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	for i := range s.length {
		var item T
		if err := decoder.Decode(&item); err != nil {
			slog.Error("failed to decode item during range", "path", s.path, "index", i, "error", err)
			return fmt.Errorf("failed to decode item at index %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			if !errors.Is(err, errStopRange) {
				slog.Warn("range callback error", "path", s.path, "index", i, "error", err)
			}

			return err
		}
	}

	slog.Debug("range completed", "path", s.path, "count", s.length)

	return nil
}

// NewSpill creates a Spill for items of type T in dir. An empty dir means a
// codeqg-spill folder under the system temp directory.
func NewSpill[T any](dir string) (Spill[T], error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "codeqg-spill")
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Error("failed to create spill directory", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spill directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "spill-*.gob")
	if err != nil {
		slog.Error("failed to create spill file", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spill file: %w", err)
	}

	slog.Debug("created spill", "path", file.Name())

	return &spillImpl[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}
