package export

import (
	"fmt"
	"html"
	"strings"
)

// htmlShell wraps excerpt blocks in a standalone document. The mk-* classes
// match the spans the inline transform emits, so the same styling applies
// when a client prints this document.
const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: Georgia, serif; max-width: 48rem; margin: 2rem auto; line-height: 1.6; }
h1 { font-size: 1.3rem; border-bottom: 1px solid #ccc; padding-bottom: .4rem; }
p.excerpt { background: #fff8c5; padding: .5rem .8rem; border-radius: 4px; }
span.mk-dur { background: #dbeafe; padding: 0 .3rem; border-radius: 3px; }
</style>
</head>
<body>
<h1>%s</h1>
%s</body>
</html>
`

// HTMLDocument renders the excerpt sequence as a downloadable static HTML
// document, one styled paragraph block per excerpt.
func HTMLDocument(sourceName string, entries []string) string {
	var sb strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&sb, "<p class=\"excerpt\">%s</p>\n", html.EscapeString(entry))
	}
	title := html.EscapeString(sourceName)
	return fmt.Sprintf(htmlShell, title, title, sb.String())
}
