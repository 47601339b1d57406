// Package store persists the pages of persistent paginated GUIs.
package store

import (
	"context"
	"maps"
	"sync"

	"github.com/go-mclib/guikit/pkg/stack"
)

// Page maps slot index to the stack stored in it.
type Page map[int]*stack.Stack

// Clone returns a deep copy.
func (p Page) Clone() Page {
	out := make(Page, len(p))
	for slot, s := range p {
		out[slot] = s.Clone()
	}
	return out
}

// Equal reports whether both pages hold the same stacks in the same slots.
func (p Page) Equal(o Page) bool {
	return maps.EqualFunc(p.compact(), o.compact(), stack.Equal)
}

func (p Page) compact() Page {
	out := make(Page, len(p))
	for slot, s := range p {
		if !s.IsEmpty() {
			out[slot] = s
		}
	}
	return out
}

// PageStore is the persistence collaborator of persistent GUIs.
type PageStore interface {
	// SavePage replaces the stored contents of one page.
	SavePage(ctx context.Context, key string, index int, page Page) error
	// LoadPages returns every stored page of a GUI, keyed by page index.
	LoadPages(ctx context.Context, key string) (map[int]Page, error)
}

// MemoryStore keeps pages in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	guis  map[string]map[int]Page
	saves map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		guis:  make(map[string]map[int]Page),
		saves: make(map[string]int),
	}
}

func (s *MemoryStore) SavePage(ctx context.Context, key string, index int, page Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pages, ok := s.guis[key]
	if !ok {
		pages = make(map[int]Page)
		s.guis[key] = pages
	}
	pages[index] = page.compact().Clone()
	s.saves[key]++
	return nil
}

func (s *MemoryStore) LoadPages(ctx context.Context, key string) (map[int]Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int]Page, len(s.guis[key]))
	for index, page := range s.guis[key] {
		out[index] = page.Clone()
	}
	return out, nil
}

// Page returns a copy of one stored page, or nil.
func (s *MemoryStore) Page(key string, index int) Page {
	s.mu.RLock()
	defer s.mu.RUnlock()

	page, ok := s.guis[key][index]
	if !ok {
		return nil
	}
	return page.Clone()
}

// SaveCount returns how many page writes a GUI has performed.
func (s *MemoryStore) SaveCount(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves[key]
}

// Clear drops all pages of a GUI.
func (s *MemoryStore) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.guis, key)
	delete(s.saves, key)
}
