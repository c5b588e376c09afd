package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/docmark/docmark/internal/highlight"
)

type toggleSentenceRequest struct {
	ElementID string `json:"element_id"`
	Sentence  int    `json:"sentence"`
}

type toggleCellRequest struct {
	ElementID string `json:"element_id"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
}

func (s *Server) handleToggleSentence(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if _, ok := s.col.Get(docID); !ok {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}

	var req toggleSentenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.ElementID == "" || req.Sentence < 0 {
		jsonError(w, "element_id and a non-negative sentence index are required", http.StatusBadRequest)
		return
	}

	hl := s.col.Highlights()
	hl.ToggleSentence(docID, req.ElementID, req.Sentence)
	entry, _ := hl.Get(docID, req.ElementID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"element_id": req.ElementID,
		"entry":      entry,
	})
}

func (s *Server) handleToggleCell(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if _, ok := s.col.Get(docID); !ok {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}

	var req toggleCellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.ElementID == "" || req.Row < 0 || req.Col < 0 {
		jsonError(w, "element_id and non-negative row/col are required", http.StatusBadRequest)
		return
	}

	hl := s.col.Highlights()
	hl.ToggleCell(docID, req.ElementID, req.Row, req.Col)
	key := highlight.CellKey(req.ElementID, req.Row, req.Col)
	entry, _ := hl.Get(docID, key)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"key":   key,
		"entry": entry,
	})
}

func (s *Server) handleClearHighlights(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if _, ok := s.col.Get(docID); !ok {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	s.col.Highlights().ClearAll(docID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"cleared": docID})
}

func (s *Server) handleListHighlights(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if _, ok := s.col.Get(docID); !ok {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"highlights": s.col.Highlights().Entries(docID),
	})
}
