// Package highlight tracks per-document sentence selections keyed by element
// identity.
package highlight

import (
	"fmt"
	"slices"
	"sync"
)

// Entry records which sentences of one element are selected. HasHighlight is
// a derived cache of "Sentences non-empty"; every mutation recomputes both
// together so they can never disagree.
type Entry struct {
	Sentences    []int `json:"sentences"` // sorted ascending
	HasHighlight bool  `json:"has_highlight"`
}

// Store maps document id → element key → Entry. Each mutation replaces the
// per-document map wholesale, so a reader holding a snapshot never observes a
// partially updated map.
type Store struct {
	mu   sync.RWMutex
	docs map[string]map[string]Entry
}

func NewStore() *Store {
	return &Store{docs: make(map[string]map[string]Entry)}
}

// CellKey is the element key for a single table cell.
func CellKey(elementID string, row, col int) string {
	return fmt.Sprintf("%s_r%d_c%d", elementID, row, col)
}

// ToggleSentence flips membership of sentence in the element's selection set.
// An unknown element starts from an empty entry; never errors.
func (s *Store) ToggleSentence(docID, elementID string, sentence int) {
	if docID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.cloneDoc(docID)
	entry := entries[elementID]

	if i, found := slices.BinarySearch(entry.Sentences, sentence); found {
		entry.Sentences = slices.Delete(slices.Clone(entry.Sentences), i, i+1)
	} else {
		entry.Sentences = slices.Insert(slices.Clone(entry.Sentences), i, sentence)
	}
	entry.HasHighlight = len(entry.Sentences) > 0

	entries[elementID] = entry
	s.docs[docID] = entries
}

// ToggleCell treats a table cell as a single boolean unit: the selection
// becomes {0} when turned on and empty when turned off. Cells are never
// addressed per sentence.
func (s *Store) ToggleCell(docID, elementID string, row, col int) {
	if docID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := CellKey(elementID, row, col)
	entries := s.cloneDoc(docID)
	entry := entries[key]

	if entry.HasHighlight {
		entry.Sentences = nil
		entry.HasHighlight = false
	} else {
		entry.Sentences = []int{0}
		entry.HasHighlight = true
	}

	entries[key] = entry
	s.docs[docID] = entries
}

// ClearAll resets every selection for one document.
func (s *Store) ClearAll(docID string) {
	if docID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[docID]; ok {
		s.docs[docID] = make(map[string]Entry)
	}
}

// Get returns the entry for an element key, reporting whether one exists.
func (s *Store) Get(docID, key string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.docs[docID][key]
	return entry, ok
}

// Entries returns a copy of one document's selection map.
func (s *Store) Entries(docID string) map[string]Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Entry, len(s.docs[docID]))
	for k, v := range s.docs[docID] {
		out[k] = v
	}
	return out
}

// Remove discards the whole selection map for a document. Called when the
// document leaves the collection; other documents are unaffected.
func (s *Store) Remove(docID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, docID)
}

// cloneDoc returns a fresh copy of the document's map, creating it on first
// use. Caller holds the write lock.
func (s *Store) cloneDoc(docID string) map[string]Entry {
	src := s.docs[docID]
	out := make(map[string]Entry, len(src)+1)
	for k, v := range src {
		out[k] = v
	}
	return out
}
