package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/docmark/docmark/internal/convert"
	"github.com/docmark/docmark/internal/element"
	"github.com/docmark/docmark/internal/ingest"
	"github.com/docmark/docmark/internal/paginate"
	"github.com/docmark/docmark/internal/segment"
)

// handleUpload accepts a multipart batch of documents. Files failing the
// extension check or conversion are reported but never abort the rest of the
// batch.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxBatch := s.cfg.MaxUploadBytes*int64(s.cfg.MaxBatchFiles) + 1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBatch)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}
	if len(headers) > s.cfg.MaxBatchFiles {
		jsonError(w, fmt.Sprintf("too many files (max %d)", s.cfg.MaxBatchFiles), http.StatusBadRequest)
		return
	}

	var files []ingest.File
	for _, fh := range headers {
		filename := sanitizeFilename(fh.Filename)
		if !convert.IsSupportedExtension(filename) {
			s.log.Warn("rejecting file", "filename", filename, "reason", "unsupported extension")
			continue
		}
		f, err := fh.Open()
		if err != nil {
			s.log.Warn("rejecting file", "filename", filename, "error", err)
			continue
		}
		data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
		f.Close()
		if err != nil || int64(len(data)) > s.cfg.MaxUploadBytes {
			s.log.Warn("rejecting file", "filename", filename, "reason", "too large or unreadable")
			continue
		}
		files = append(files, ingest.File{Name: filename, Data: data})
	}

	docs := s.ingestor.Batch(files)
	results := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		s.col.Add(doc)
		results = append(results, map[string]any{
			"id":            doc.ID,
			"name":          doc.Name,
			"element_count": len(doc.Elements),
			"page_count":    len(paginate.Pages(doc.Elements)),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{"documents": results})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs := s.col.List()
	results := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		results = append(results, map[string]any{
			"id":            doc.ID,
			"name":          doc.Name,
			"element_count": len(doc.Elements),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": results})
}

// elementPayload is an element plus its sentence fragments, so clients can
// address sentences by index when toggling highlights.
type elementPayload struct {
	element.Element
	Sentences []string `json:"sentences,omitempty"`
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.col.Get(chi.URLParam(r, "docID"))
	if !ok {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}

	pages := paginate.Pages(doc.Elements)
	payload := make([][]elementPayload, 0, len(pages))
	for _, page := range pages {
		row := make([]elementPayload, 0, len(page))
		for _, el := range page {
			p := elementPayload{Element: el}
			if el.Kind == element.KindParagraph || el.Kind == element.KindCheckbox {
				p.Sentences = segment.Split(el.Text)
			}
			row = append(row, p)
		}
		payload = append(payload, row)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":    doc.ID,
		"name":  doc.Name,
		"pages": payload,
	})
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if !s.col.Remove(docID) {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"deleted": docID})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
