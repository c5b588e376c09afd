// Package segment splits prose blocks into sentence-addressable fragments.
package segment

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/docmark/docmark/internal/transform"
)

// Characters that end a sentence.
const terminators = ".!?…"

// Lone punctuation that survives splitting in malformed source paragraphs,
// e.g. an orphaned closing parenthesis. Treated as noise, not a sentence.
const noiseRunes = "()[]{}-–—:"

// Split breaks a markup block into an ordered list of per-sentence fragments,
// applying the inline transform to each. Pure function of its input: calling
// it twice on the same text yields identical fragments, which matters because
// it runs at both render and export time and is never cached.
func Split(block string) []string {
	block = strings.TrimSpace(block)
	if block == "" {
		return nil
	}

	var out []string
	for _, frag := range splitSentences(block) {
		frag = strings.TrimSpace(frag)
		if frag == "" || isNoise(frag) {
			continue
		}
		out = append(out, transform.Apply(frag))
	}
	return out
}

// splitSentences cuts after a terminator that is followed by whitespace and
// then more text. The terminator stays attached to its own sentence.
func splitSentences(text string) []string {
	runes := []rune(text)
	var parts []string
	start := 0

	for i := 0; i < len(runes); i++ {
		if !strings.ContainsRune(terminators, runes[i]) {
			continue
		}
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j == i+1 || j == len(runes) {
			continue // no whitespace after, or nothing follows it
		}
		parts = append(parts, string(runes[start:i+1]))
		start = j
		i = j - 1
	}
	if start < len(runes) {
		parts = append(parts, string(runes[start:]))
	}
	return parts
}

func isNoise(frag string) bool {
	if utf8.RuneCountInString(frag) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(frag)
	return strings.ContainsRune(noiseRunes, r)
}
