package normalize

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/docmark/docmark/internal/element"
)

// Style declarations that request a forced page break before a node. These are
// the CSS forms document-to-HTML converters emit.
var breakBeforePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)page-break-before\s*:\s*always`),
	regexp.MustCompile(`(?i)break-before\s*:\s*page`),
}

// Glyphs that mark a paragraph as a checkbox/bullet item.
var checkboxGlyphs = []string{"☐", "☑", "□", "✓", "•"}

// Enumeration prefixes that promote a plain paragraph to a heading: "3)" or
// a roman numeral followed by a dot and a space. Single roman letters are
// excluded; "i. derece" openings are ordinary prose, not enumeration.
var enumPrefix = regexp.MustCompile(`^(\d+\)|[IVXLCDMivxlcdm]{2,}\.)\s`)

const maxHeadingLen = 70

// Block-level tags. A generic node containing any of these is a container to
// recurse into; a generic node holding only text or inline markup is a text
// block in its own right.
var blockAtoms = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Section: true, atom.Article: true,
	atom.Blockquote: true, atom.Ul: true, atom.Ol: true, atom.Li: true,
	atom.Table: true, atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true,
}

// classify inspects one structural node and appends the elements it yields.
// A node with a break-before style first emits a page-break marker and is
// then classified on its own merits. Containers recurse depth-first and emit
// nothing for themselves; generic blocks without block children go through
// the paragraph heuristics, so no recognized block's text is silently lost.
func classify(n *html.Node, els *[]element.Element) {
	if n.Type != html.ElementNode {
		return
	}

	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Noscript:
		return
	}

	if requestsBreakBefore(n) {
		*els = append(*els, element.Element{ID: uuid.New().String(), Kind: element.KindPageBreak})
	}

	switch n.DataAtom {
	case atom.Table:
		rows := tableRows(n)
		if len(rows) > 0 {
			*els = append(*els, element.Element{ID: uuid.New().String(), Kind: element.KindTable, Rows: rows})
		}
		return

	case atom.H1, atom.H2, atom.H3:
		level := int(n.Data[1] - '0')
		*els = append(*els, element.Element{
			ID:      uuid.New().String(),
			Kind:    element.KindHeading,
			Level:   level,
			Content: innerHTML(n),
		})
		return

	case atom.P:
		classifyParagraph(n, els)
		return
	}

	if hasBlockChildren(n) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			classify(c, els)
		}
		return
	}
	classifyParagraph(n, els)
}

func hasBlockChildren(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && blockAtoms[c.DataAtom] {
			return true
		}
	}
	return false
}

// classifyParagraph decides between heading promotion, checkbox, and plain
// paragraph. Converters are inconsistent about rendering visual headings as
// real heading tags, so short, punctuation-free, caps-heavy or enumerated
// paragraphs are promoted to level-2 headings.
func classifyParagraph(n *html.Node, els *[]element.Element) {
	text := normalizeSpace(plainText(n))
	if text == "" {
		return // pure whitespace blocks produce nothing
	}

	if looksLikeHeading(text) {
		*els = append(*els, element.Element{
			ID:      uuid.New().String(),
			Kind:    element.KindHeading,
			Level:   2,
			Content: html.EscapeString(text),
		})
		return
	}

	kind := element.KindParagraph
	for _, glyph := range checkboxGlyphs {
		if strings.HasPrefix(text, glyph) {
			kind = element.KindCheckbox
			break
		}
	}
	*els = append(*els, element.Element{ID: uuid.New().String(), Kind: kind, Text: innerHTML(n)})
}

func looksLikeHeading(text string) bool {
	runes := []rune(text)
	if len(runes) == 0 || len(runes) > maxHeadingLen {
		return false
	}
	if strings.ContainsRune(".!?…", runes[len(runes)-1]) {
		return false
	}
	if enumPrefix.MatchString(text) {
		return true
	}
	upper := 0
	for _, r := range runes {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return float64(upper) >= math.Min(6, 0.4*float64(len(runes)))
}

func requestsBreakBefore(n *html.Node) bool {
	for _, a := range n.Attr {
		if a.Key != "style" {
			continue
		}
		for _, pat := range breakBeforePatterns {
			if pat.MatchString(a.Val) {
				return true
			}
		}
	}
	return false
}

// tableRows extracts cell markup row by row. The header row is whatever row
// comes first positionally, regardless of th/td tagging.
func tableRows(n *html.Node) [][]string {
	var rows [][]string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
			var cells []string
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.DataAtom == atom.Td || c.DataAtom == atom.Th) {
					cells = append(cells, innerHTML(c))
				}
			}
			if len(cells) > 0 {
				rows = append(rows, cells)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return rows
}

// innerHTML renders a node's children back to markup.
func innerHTML(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			continue
		}
	}
	return strings.TrimSpace(sb.String())
}

// plainText extracts text content with markup stripped.
func plainText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
