package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// JSON-backed slot storage. Single file, human-readable, portable.
// No locking; one process owns the file while it runs.

// Store maps keys to string values inside one JSON object on disk.
type Store struct {
	path string
}

func New(path string) *Store { return &Store{path: path} }

func (s *Store) read() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	slots := map[string]string{}
	if err := json.Unmarshal(b, &slots); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return slots, nil
}

func (s *Store) write(slots map[string]string) error {
	b, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func (s *Store) Get(key string) ([]byte, bool, error) {
	slots, err := s.read()
	if err != nil {
		return nil, false, err
	}
	v, ok := slots[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

func (s *Store) Set(key string, value []byte) error {
	slots, err := s.read()
	if err != nil {
		// unreadable file: overwrite it
		slots = map[string]string{}
	}
	slots[key] = string(value)
	return s.write(slots)
}

func (s *Store) Delete(key string) error {
	slots, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := slots[key]; !ok {
		return nil
	}
	delete(slots, key)
	return s.write(slots)
}

func (s *Store) Close() error { return nil }
