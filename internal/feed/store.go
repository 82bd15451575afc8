package feed

import (
	"encoding/json"
	"fmt"
	"os"

	"comedy-houston/internal/models"
)

// Store reads the persisted feed file the fetcher writes. The file is
// the integration point between the two binaries; the store never
// mutates it.
type Store struct {
	Path string
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Raw returns the feed file bytes as written, for serving verbatim.
func (s *Store) Raw() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read feed %s: %w", s.Path, err)
	}
	return data, nil
}

// Load parses the feed file.
func (s *Store) Load() (models.Feed, error) {
	data, err := s.Raw()
	if err != nil {
		return models.Feed{}, err
	}
	var f models.Feed
	if err := json.Unmarshal(data, &f); err != nil {
		return models.Feed{}, fmt.Errorf("parse feed %s: %w", s.Path, err)
	}
	return f, nil
}
