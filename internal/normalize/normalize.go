// Package normalize turns an HTML rendering of a document into a flat,
// ordered list of typed elements.
package normalize

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/docmark/docmark/internal/element"
)

// Elements parses an HTML string and classifies the body's block children,
// in document order, into a flat element list. Adjacent page-break markers
// are collapsed and a trailing one is dropped: a break either side of
// nothing is meaningless.
func Elements(src string) ([]element.Element, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	body := findBody(doc)
	if body == nil {
		body = doc
	}

	var els []element.Element
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		classify(c, &els)
	}
	return dropRedundantBreaks(els), nil
}

// dropRedundantBreaks collapses consecutive page breaks into one and strips a
// trailing break. Classifier break emission plus container recursion can
// otherwise leave adjacent duplicates.
func dropRedundantBreaks(els []element.Element) []element.Element {
	var out []element.Element
	for _, el := range els {
		if el.Kind == element.KindPageBreak &&
			len(out) > 0 && out[len(out)-1].Kind == element.KindPageBreak {
			continue
		}
		out = append(out, el)
	}
	if len(out) > 0 && out[len(out)-1].Kind == element.KindPageBreak {
		out = out[:len(out)-1]
	}
	return out
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
