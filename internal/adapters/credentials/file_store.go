package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	fileStorePerm = 0o600
	tmpSuffix     = ".tmp"
)

// FileKeyValueStore keeps named values in a JSON object on disk. Writes go
// to a temp file that is renamed over the live file.
type FileKeyValueStore struct {
	path string
	mu   sync.RWMutex
}

func NewFileKeyValueStore(path string) *FileKeyValueStore {
	return &FileKeyValueStore{path: path}
}

func (s *FileKeyValueStore) GetKey(ctx context.Context, name string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values, err := s.load()
	if err != nil {
		return "", false, err
	}

	v, ok := values[name]
	return v, ok, nil
}

func (s *FileKeyValueStore) SetKey(ctx context.Context, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}

	values[name] = value
	return s.save(values)
}

func (s *FileKeyValueStore) DeleteKey(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}

	if _, ok := values[name]; !ok {
		return nil
	}

	delete(values, name)
	return s.save(values)
}

// load reads the store; caller must hold mu.
func (s *FileKeyValueStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credential file %q: %w", s.path, err)
	}

	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse credential file %q: %w", s.path, err)
	}

	return values, nil
}

// save replaces the store atomically; caller must hold mu for writing.
func (s *FileKeyValueStore) save(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credential file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credential dir: %w", err)
	}

	tmp := s.path + tmpSuffix
	if err := os.WriteFile(tmp, data, fileStorePerm); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace credential file: %w", err)
	}

	return nil
}
