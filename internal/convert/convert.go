// Package convert holds the document-to-HTML converters. Each converter is a
// black box to the rest of the pipeline: bytes in, HTML string out.
package convert

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Converter turns raw document bytes into an HTML rendering.
type Converter interface {
	Convert(r io.Reader, filename string) (string, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".docx":     true,
	".md":       true,
	".markdown": true,
	".pdf":      true,
	".html":     true,
	".htm":      true,
}

// Options carries converter tuning that comes from service configuration.
type Options struct {
	// PDFFallbackPdftotext enables shelling out to pdftotext when the Go
	// library cannot extract any text from a PDF.
	PDFFallbackPdftotext bool
}

// ForFile returns the appropriate converter for a filename.
func ForFile(filename string, opts Options) (Converter, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".docx":
		return &DOCXConverter{}, nil
	case ".md", ".markdown":
		return &MarkdownConverter{}, nil
	case ".pdf":
		return &PDFConverter{FallbackPdftotext: opts.PDFFallbackPdftotext}, nil
	case ".html", ".htm":
		return &HTMLConverter{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
