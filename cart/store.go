package cart

import (
	"encoding/json"
	"os"
)

// FileStore keeps the basket as one JSON array in a file, the same
// shape the browser keeps under its "cart" storage key.
type FileStore struct {
	Path string
}

func (s FileStore) Save(lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0644)
}

func (s FileStore) Load() ([]Line, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// MemStore is an in-memory Store for tests and throwaway sessions.
type MemStore struct {
	lines []Line
}

func (s *MemStore) Save(lines []Line) error {
	s.lines = append([]Line(nil), lines...)
	return nil
}

func (s *MemStore) Load() ([]Line, error) {
	return append([]Line(nil), s.lines...), nil
}
