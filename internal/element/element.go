package element

// Kind tags the variant of an Element.
type Kind string

const (
	KindHeading   Kind = "heading"
	KindParagraph Kind = "paragraph"
	KindCheckbox  Kind = "checkbox"
	KindTable     Kind = "table"
	KindPageBreak Kind = "pagebreak"
)

// Element is one classified block-level unit of document content.
// The ID is assigned once when the element is created and never changes,
// so it can serve as a stable highlight key across re-renders.
type Element struct {
	ID      string     `json:"id"`
	Kind    Kind       `json:"kind"`
	Level   int        `json:"level,omitempty"`   // heading level 1-3
	Content string     `json:"content,omitempty"` // heading markup
	Text    string     `json:"text,omitempty"`    // paragraph/checkbox markup
	Rows    [][]string `json:"rows,omitempty"`    // table cell markup, row-major
}

// Document is a fully normalized document. It is immutable once produced;
// re-uploading a file replaces the whole Document.
type Document struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Elements []Element `json:"elements"`
}

// Page is a maximal run of elements between page-break markers. Page-break
// elements are delimiters, never payload, so a Page never contains one.
type Page []Element
