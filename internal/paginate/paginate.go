// Package paginate partitions a flat element list into pages.
package paginate

import "github.com/docmark/docmark/internal/element"

// Pages splits elements at page-break markers. A break only closes the
// current page when that page has content, so doubled or leading breaks never
// produce empty pages. Every non-break element lands in exactly one page, in
// original order.
func Pages(els []element.Element) []element.Page {
	var pages []element.Page
	var current element.Page

	for _, el := range els {
		if el.Kind == element.KindPageBreak {
			if len(current) > 0 {
				pages = append(pages, current)
				current = nil
			}
			continue
		}
		current = append(current, el)
	}
	if len(current) > 0 {
		pages = append(pages, current)
	}
	return pages
}
