package storage

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// JSONBackend keeps every namespace in a single JSON document on disk.
// It exists for users who want a plain-text store they can inspect and back
// up by hand; the SQLite backend is the default.
type JSONBackend struct {
	path string
	data map[string]json.RawMessage
}

// NewJSONBackend creates a JSON-file backend for the given path.
func NewJSONBackend(path string) *JSONBackend {
	return &JSONBackend{path: path}
}

func (s *JSONBackend) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.data = make(map[string]json.RawMessage)
	return s.save()
}

func (s *JSONBackend) Open() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'quill init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.data = make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	return nil
}

func (s *JSONBackend) Close() error {
	return nil
}

func (s *JSONBackend) ConfigPath() string {
	return s.path
}

func (s *JSONBackend) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONBackend) ReadKey(key string) ([]byte, bool, error) {
	if s.data == nil {
		return nil, false, fmt.Errorf("storage not loaded")
	}

	raw, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return raw, true, nil
}

func (s *JSONBackend) WriteKey(key string, data []byte) error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.data[key] = json.RawMessage(data)
	return s.save()
}

func (s *JSONBackend) DeleteKey(key string) error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}

	delete(s.data, key)
	return s.save()
}
