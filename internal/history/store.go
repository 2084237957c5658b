// Package history keeps the most recent search queries.
package history

import (
	"fmt"
	"log"
	"strings"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	historyObject   = "history"
	historyProperty = "recent"
)

type record struct {
	Queries []string `yaml:"queries"`
}

// Store holds unique queries, most recent first.
//
// A nil gdata manager keeps history in memory only.
type Store struct {
	manager *gdata.Manager
	limit   int
	entries []string
}

// NewStore loads any saved history. A load failure is logged and leaves the
// store empty.
func NewStore(manager *gdata.Manager, limit int) *Store {
	s := &Store{manager: manager, limit: limit}
	if err := s.Load(); err != nil {
		log.Printf("[History] Warning: %v (starting empty)", err)
	}
	return s
}

func (s *Store) Load() error {
	s.entries = nil
	if s.manager == nil || !s.manager.ObjectPropExists(historyObject, historyProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(historyObject, historyProperty)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	var rec record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("failed to unmarshal history: %w", err)
	}
	for _, q := range rec.Queries {
		s.push(q)
	}
	return nil
}

func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(record{Queries: s.entries})
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := s.manager.SaveObjectProp(historyObject, historyProperty, data); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}

// Add records query as the most recent entry and persists the store.
func (s *Store) Add(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	for i, q := range s.entries {
		if q == query {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	s.entries = append([]string{query}, s.entries...)
	s.truncate()

	if err := s.Save(); err != nil {
		log.Printf("[History] Warning: %v", err)
	}
}

// push appends while loading, keeping file order and dropping duplicates.
func (s *Store) push(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	for _, q := range s.entries {
		if q == query {
			return
		}
	}
	s.entries = append(s.entries, query)
	s.truncate()
}

func (s *Store) truncate() {
	if s.limit > 0 && len(s.entries) > s.limit {
		s.entries = s.entries[:s.limit]
	}
}

func (s *Store) Len() int {
	return len(s.entries)
}

// At returns the i-th most recent query.
func (s *Store) At(i int) (string, bool) {
	if i < 0 || i >= len(s.entries) {
		return "", false
	}
	return s.entries[i], true
}

func (s *Store) Entries() []string {
	return append([]string(nil), s.entries...)
}
