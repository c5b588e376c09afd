package normalize

import (
	"strings"
	"testing"

	"github.com/docmark/docmark/internal/element"
)

func mustElements(t *testing.T, src string) []element.Element {
	t.Helper()
	els, err := Elements(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return els
}

func TestElements_HeadingTags(t *testing.T) {
	els := mustElements(t, "<h1>Birinci</h1><h2>İkinci</h2><h3>Üçüncü</h3>")
	if len(els) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(els))
	}
	for i, want := range []int{1, 2, 3} {
		if els[i].Kind != element.KindHeading {
			t.Errorf("element %d: expected heading, got %s", i, els[i].Kind)
		}
		if els[i].Level != want {
			t.Errorf("element %d: expected level %d, got %d", i, want, els[i].Level)
		}
	}
}

func TestElements_EmptyParagraphEmitsNothing(t *testing.T) {
	els := mustElements(t, "<p>   </p><p></p><p>\n\t</p>")
	if len(els) != 0 {
		t.Errorf("expected no elements for whitespace paragraphs, got %v", els)
	}
}

func TestElements_ParagraphKeepsInlineMarkup(t *testing.T) {
	els := mustElements(t, "<p>Bu sözleşme <b>taraflar</b> arasında geçerli olacaktır.</p>")
	if len(els) != 1 || els[0].Kind != element.KindParagraph {
		t.Fatalf("expected one paragraph, got %v", els)
	}
	if !strings.Contains(els[0].Text, "<b>taraflar</b>") {
		t.Errorf("expected inline markup preserved, got %q", els[0].Text)
	}
}

func TestElements_HeadingPromotion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		promote bool
	}{
		{"all caps short", "<p>GENEL HÜKÜMLER VE TANIMLAR</p>", true},
		{"numbered enumeration", "<p>3) Tarafların yükümlülükleri</p>", true},
		{"roman enumeration", "<p>iv. Süre ve fesih şartları</p>", true},
		{"single roman letter prose", "<p>i. derece hasar tespiti yapılır</p>", false},
		{"ends with period", "<p>GENEL HÜKÜMLER BURADADIR.</p>", false},
		{"ordinary sentence", "<p>Bu bölüm tarafların haklarını anlatır</p>", false},
		{"too long", "<p>" + strings.Repeat("BÜYÜK HARFLİ UZUN METİN ", 5) + "</p>", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			els := mustElements(t, tt.input)
			if len(els) != 1 {
				t.Fatalf("expected 1 element, got %d", len(els))
			}
			isHeading := els[0].Kind == element.KindHeading
			if isHeading != tt.promote {
				t.Errorf("promote=%v, got kind %s", tt.promote, els[0].Kind)
			}
			if tt.promote && els[0].Level != 2 {
				t.Errorf("promoted headings are level 2, got %d", els[0].Level)
			}
		})
	}
}

func TestElements_PromotedHeadingDiscardsMarkup(t *testing.T) {
	els := mustElements(t, "<p><b>MADDELER</b> &amp; EKLER LİSTESİ</p>")
	if len(els) != 1 || els[0].Kind != element.KindHeading {
		t.Fatalf("expected promoted heading, got %v", els)
	}
	if strings.Contains(els[0].Content, "<b>") {
		t.Errorf("promoted heading should use escaped plain text, got %q", els[0].Content)
	}
}

func TestElements_CheckboxGlyphs(t *testing.T) {
	for _, glyph := range []string{"☐", "☑", "□", "✓", "•"} {
		els := mustElements(t, "<p>"+glyph+" madde içeriği burada devam ediyor.</p>")
		if len(els) != 1 {
			t.Fatalf("glyph %q: expected 1 element, got %d", glyph, len(els))
		}
		if els[0].Kind != element.KindCheckbox {
			t.Errorf("glyph %q: expected checkbox, got %s", glyph, els[0].Kind)
		}
	}
}

func TestElements_TableRows(t *testing.T) {
	src := `<table>
		<tr><th>Ad</th><th>Süre</th></tr>
		<tr><td>Deneme</td><td><b>2 yıl</b></td></tr>
	</table>`
	els := mustElements(t, src)
	if len(els) != 1 || els[0].Kind != element.KindTable {
		t.Fatalf("expected one table, got %v", els)
	}
	rows := els[0].Rows
	if len(rows) != 2 || len(rows[0]) != 2 {
		t.Fatalf("expected 2x2 rows, got %v", rows)
	}
	if rows[0][0] != "Ad" {
		t.Errorf("expected header cell %q, got %q", "Ad", rows[0][0])
	}
	if !strings.Contains(rows[1][1], "<b>2 yıl</b>") {
		t.Errorf("expected cell markup preserved, got %q", rows[1][1])
	}
}

func TestElements_BreakBeforeStyleEmitsMarkerAndElement(t *testing.T) {
	els := mustElements(t, `<p>Önceki sayfa sonu.</p><p style="page-break-before: always">Yeni sayfa başlangıcı.</p>`)
	if len(els) != 3 {
		t.Fatalf("expected 3 elements, got %d: %v", len(els), els)
	}
	if els[1].Kind != element.KindPageBreak {
		t.Errorf("expected page break marker, got %s", els[1].Kind)
	}
	if els[2].Kind != element.KindParagraph {
		t.Errorf("break node must still be classified, got %s", els[2].Kind)
	}
}

func TestElements_CollapsesAdjacentBreaks(t *testing.T) {
	src := `<p>Giriş bölümü.</p>` +
		`<div style="page-break-before: always"></div>` +
		`<div style="break-before: page"></div>` +
		`<p>Devam bölümü.</p>`
	els := mustElements(t, src)
	if len(els) != 3 {
		t.Fatalf("expected 3 elements, got %d: %v", len(els), els)
	}
	breaks := 0
	for i, el := range els {
		if el.Kind == element.KindPageBreak {
			breaks++
			if i > 0 && els[i-1].Kind == element.KindPageBreak {
				t.Error("adjacent page breaks survived normalization")
			}
		}
	}
	if breaks != 1 {
		t.Errorf("expected 1 break, got %d", breaks)
	}
}

func TestElements_StripsTrailingBreak(t *testing.T) {
	els := mustElements(t, `<p>Son paragraf.</p><div style="page-break-before: always"></div>`)
	if len(els) != 1 {
		t.Fatalf("expected trailing break stripped, got %v", els)
	}
	if els[len(els)-1].Kind == element.KindPageBreak {
		t.Error("output ends with a page break")
	}
}

func TestElements_RecursesIntoContainers(t *testing.T) {
	src := `<div><div><p>İç içe paragraf içeriği burada.</p><h2>Bölüm</h2></div></div>`
	els := mustElements(t, src)
	if len(els) != 2 {
		t.Fatalf("expected 2 elements from nested containers, got %d", len(els))
	}
	if els[0].Kind != element.KindParagraph || els[1].Kind != element.KindHeading {
		t.Errorf("unexpected kinds: %s, %s", els[0].Kind, els[1].Kind)
	}
}

func TestElements_ListItemsBecomeElements(t *testing.T) {
	els := mustElements(t, "<ul><li>birinci madde</li><li>ikinci madde</li></ul>")
	if len(els) != 2 {
		t.Fatalf("expected 2 elements from list items, got %d: %v", len(els), els)
	}
	for i, want := range []string{"birinci madde", "ikinci madde"} {
		if els[i].Kind != element.KindParagraph {
			t.Errorf("item %d: expected paragraph, got %s", i, els[i].Kind)
		}
		if els[i].Text != want {
			t.Errorf("item %d: expected %q, got %q", i, want, els[i].Text)
		}
	}
}

func TestElements_DivWithDirectText(t *testing.T) {
	els := mustElements(t, "<div>Bu genel blok metni kaybolmamalı.</div>")
	if len(els) != 1 || els[0].Kind != element.KindParagraph {
		t.Fatalf("expected one paragraph from bare div, got %v", els)
	}
	if els[0].Text != "Bu genel blok metni kaybolmamalı." {
		t.Errorf("unexpected text %q", els[0].Text)
	}
}

func TestElements_BlockquoteText(t *testing.T) {
	els := mustElements(t, "<blockquote><p>Alıntılanan sözleşme maddesi burada.</p></blockquote><blockquote>Düz alıntı metni.</blockquote>")
	if len(els) != 2 {
		t.Fatalf("expected 2 elements, got %d: %v", len(els), els)
	}
	for i, el := range els {
		if el.Kind != element.KindParagraph {
			t.Errorf("element %d: expected paragraph, got %s", i, el.Kind)
		}
	}
}

func TestElements_SkipsScriptAndStyle(t *testing.T) {
	els := mustElements(t, "<style>p { color: red }</style><script>alert(1)</script><p>Görünen metin.</p>")
	if len(els) != 1 || els[0].Kind != element.KindParagraph {
		t.Fatalf("expected only the visible paragraph, got %v", els)
	}
}

func TestElements_IDsAreUnique(t *testing.T) {
	els := mustElements(t, "<p>Bir numaralı paragraf.</p><p>İki numaralı paragraf.</p><h1>Başlık</h1>")
	seen := make(map[string]bool)
	for _, el := range els {
		if el.ID == "" {
			t.Error("element without id")
		}
		if seen[el.ID] {
			t.Errorf("duplicate id %s", el.ID)
		}
		seen[el.ID] = true
	}
}
