// Package jsonstore persists dataset documents as JSON files on disk.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store implements pipeline.DatasetStore under one output directory.
type Store struct {
	dir string
}

// NewStore creates the output directory if needed and returns a Store
// writing into it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// WriteDataset serializes payload and replaces the named file atomically, so
// a reader never observes a half-written document.
func (s *Store) WriteDataset(file string, payload any) error {
	tmp, err := os.CreateTemp(s.dir, file+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("encode %s: %w", file, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	dest := filepath.Join(s.dir, file)
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("replace %s: %w", dest, err)
	}
	return nil
}
