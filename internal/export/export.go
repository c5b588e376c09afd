// Package export assembles highlighted sentences into ordered plain-text
// excerpts and renders them for delivery.
package export

import (
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/docmark/docmark/internal/element"
	"github.com/docmark/docmark/internal/highlight"
	"github.com/docmark/docmark/internal/paginate"
	"github.com/docmark/docmark/internal/segment"
)

var (
	stripPolicy = bluemonday.StrictPolicy()
	// \s in RE2 is ASCII-only; no-break spaces from unescaped &nbsp;
	// entities must collapse too.
	spaceRun = regexp.MustCompile(`[\s\x{00A0}]+`)
)

// Assemble walks the document's pages in order and returns one plain-text
// excerpt per highlighted paragraph or checkbox element, with the element's
// selected sentences joined by a single space. Table cells never export;
// export is prose-only.
func Assemble(doc *element.Document, hl *highlight.Store) []string {
	var out []string
	for _, page := range paginate.Pages(doc.Elements) {
		for _, el := range page {
			if el.Kind != element.KindParagraph && el.Kind != element.KindCheckbox {
				continue
			}
			entry, ok := hl.Get(doc.ID, el.ID)
			if !ok || !entry.HasHighlight {
				continue
			}
			text := excerpt(el.Text, entry.Sentences)
			if text == "" {
				continue
			}
			out = append(out, text)
		}
	}
	return out
}

// excerpt re-segments the element's text, picks the selected indices in
// ascending order, and flattens the markup to plain text.
func excerpt(text string, selected []int) string {
	sentences := segment.Split(text)
	var picked []string
	for _, idx := range selected { // entry slices are kept sorted
		if idx >= 0 && idx < len(sentences) {
			picked = append(picked, sentences[idx])
		}
	}
	if len(picked) == 0 {
		return ""
	}
	plain := html.UnescapeString(stripPolicy.Sanitize(strings.Join(picked, " ")))
	return strings.TrimSpace(spaceRun.ReplaceAllString(plain, " "))
}

// ClipboardText joins excerpts with blank lines for clipboard delivery.
func ClipboardText(entries []string) string {
	return strings.Join(entries, "\n\n")
}

// FileNameSuffix replaces the source file's extension in exported file names.
const FileNameSuffix = "-highlights.html"

// FileName derives the export file name from the source document name.
func FileName(source string) string {
	base := strings.TrimSuffix(source, filepath.Ext(source))
	if base == "" {
		base = "document"
	}
	return base + FileNameSuffix
}
