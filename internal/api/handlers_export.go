package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/docmark/docmark/internal/export"
)

// handleExport returns the highlighted excerpts of one document, either as
// plain text (clipboard payload) or as a downloadable standalone HTML file.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.col.Get(chi.URLParam(r, "docID"))
	if !ok {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}

	entries := export.Assemble(doc, s.col.Highlights())

	switch format := r.URL.Query().Get("format"); format {
	case "", "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, export.ClipboardText(entries))
	case "html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", export.FileName(doc.Name)))
		fmt.Fprint(w, export.HTMLDocument(doc.Name, entries))
	default:
		jsonError(w, "unknown format: "+format, http.StatusBadRequest)
	}
}
