// Package transform rewrites inline markup, replacing token patterns with
// decorated spans before text reaches the client.
package transform

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// The > half of the arrow arrives entity-escaped when the text has been
	// round-tripped through an HTML tree.
	arrowToken  = regexp.MustCompile(`=(?:>|&gt;)`)
	bulletGlyph = regexp.MustCompile(`•`)

	// Hyphen/asterisk list markers at the start of a block or right after an
	// explicit line break. The marker itself is consumed.
	flagAtStart = regexp.MustCompile(`^- `)
	flagAtBreak = regexp.MustCompile(`(<br\s*/?>)\s*- `)
	starAtStart = regexp.MustCompile(`^\* `)
	starAtBreak = regexp.MustCompile(`(<br\s*/?>)\s*\* `)
)

// Turkish duration vocabulary, long and abbreviated forms. RE2 case folding
// does not cover dotless ı / dotted İ, so those are spelled out as classes.
// Swapping this table is all another language would need.
var durationUnits = []string{
	`y[ıiİI]l`,
	`sene`,
	`ay`,
	`hafta`,
	`hf`,
	`g[üuÜU]n`,
}

var (
	durationExpr = regexp.MustCompile(`(?i)(\d+)\s*(` + strings.Join(durationUnits, "|") + `)\b`)

	// Comparative form: unit with the -dan/-den suffix plus a comparator word,
	// e.g. "5 yıldan fazla". All three tokens are preserved inside the span.
	comparativeExpr = regexp.MustCompile(`(?i)(\d+)\s*((?:` + strings.Join(durationUnits, "|") + `)[dt][ae]n)\s+(fazla|[çcÇC]ok|az)\b`)
)

// Apply rewrites a markup fragment, substituting token patterns with decorated
// spans. Pure and order-sensitive: earlier substitutions must not produce text
// that re-matches later patterns, and no substitution introduces or removes a
// sentence terminator.
func Apply(text string) string {
	text = arrowToken.ReplaceAllString(text, `<span class="mk-arrow">➜</span>`)
	text = bulletGlyph.ReplaceAllString(text, `<span class="mk-bullet">◦</span>`)
	text = flagAtStart.ReplaceAllString(text, `<span class="mk-flag">⚑</span> `)
	text = flagAtBreak.ReplaceAllString(text, `$1<span class="mk-flag">⚑</span> `)
	text = starAtStart.ReplaceAllString(text, `<span class="mk-star">★</span> `)
	text = starAtBreak.ReplaceAllString(text, `$1<span class="mk-star">★</span> `)
	text = comparativeExpr.ReplaceAllString(text, `<span class="mk-dur">$1&nbsp;&nbsp;$2 $3</span>`)
	text = durationExpr.ReplaceAllString(text, `<span class="mk-dur">$1&nbsp;&nbsp;$2</span>`)
	return text
}
