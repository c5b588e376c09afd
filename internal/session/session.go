// Package session owns the in-memory document collection and its sibling
// highlight state.
package session

import (
	"sync"

	"github.com/docmark/docmark/internal/element"
	"github.com/docmark/docmark/internal/highlight"
)

// Collection holds the parsed documents for one service instance, in upload
// order. Documents are immutable once added; the highlight store is a sibling
// structure keyed by document id, never embedded in the documents themselves,
// so removing a document drops both together.
type Collection struct {
	mu    sync.RWMutex
	docs  map[string]*element.Document
	order []string
	hl    *highlight.Store
}

func NewCollection(hl *highlight.Store) *Collection {
	return &Collection{
		docs: make(map[string]*element.Document),
		hl:   hl,
	}
}

// Highlights returns the store paired with this collection.
func (c *Collection) Highlights() *highlight.Store {
	return c.hl
}

// Add appends a document to the collection.
func (c *Collection) Add(doc *element.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.docs[doc.ID]; !exists {
		c.order = append(c.order, doc.ID)
	}
	c.docs[doc.ID] = doc
}

// Get returns a document by id.
func (c *Collection) Get(id string) (*element.Document, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.docs[id]
	return doc, ok
}

// List returns all documents in upload order.
func (c *Collection) List() []*element.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*element.Document, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.docs[id])
	}
	return out
}

// Remove deletes a document and its highlight map together. Reports whether
// the document existed.
func (c *Collection) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.docs[id]; !ok {
		return false
	}
	delete(c.docs, id)
	for i, ordered := range c.order {
		if ordered == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.hl.Remove(id)
	return true
}
