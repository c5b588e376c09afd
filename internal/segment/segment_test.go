package segment

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplit_TwoSentences(t *testing.T) {
	got := Split("Hello world. This is a test.")
	want := []string{"Hello world.", "This is a test."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSplit_EmptyAndWhitespaceInput(t *testing.T) {
	if got := Split(""); len(got) != 0 {
		t.Errorf("expected no fragments for empty input, got %v", got)
	}
	if got := Split("   \n\t "); len(got) != 0 {
		t.Errorf("expected no fragments for whitespace input, got %v", got)
	}
}

func TestSplit_TerminatorStaysAttached(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			"question and exclamation",
			"Nasılsın? Gayet iyiyim! Teşekkürler.",
			[]string{"Nasılsın?", "Gayet iyiyim!", "Teşekkürler."},
		},
		{
			"ellipsis",
			"Bekledi… Sonra gitti.",
			[]string{"Bekledi…", "Sonra gitti."},
		},
		{
			"no split without following whitespace",
			"Madde 4.2 geçerlidir.",
			[]string{"Madde 4.2 geçerlidir."},
		},
		{
			"trailing terminator keeps last sentence whole",
			"Tek cümle.",
			[]string{"Tek cümle."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSplit_DiscardsLonePunctuationFragment(t *testing.T) {
	got := Split("Hello world. )")
	want := []string{"Hello world."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected lone parenthesis discarded, want %v got %v", want, got)
	}
}

func TestSplit_Idempotent(t *testing.T) {
	input := "Birinci cümle. İkinci cümle! Üçüncü cümle?"
	first := Split(input)
	second := Split(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Split is not a pure function: %v vs %v", first, second)
	}
}

func TestSplit_AppliesTransformPerSentence(t *testing.T) {
	got := Split("Önce => sonra. İkinci cümle burada.")
	if len(got) != 2 {
		t.Fatalf("expected 2 fragments, got %d: %v", len(got), got)
	}
	if !strings.Contains(got[0], `<span class="mk-arrow">➜</span>`) {
		t.Errorf("expected transformed arrow in first fragment, got %q", got[0])
	}
	if got[1] != "İkinci cümle burada." {
		t.Errorf("second fragment altered: %q", got[1])
	}
}

func TestSplit_SubstitutionDoesNotMoveBoundaries(t *testing.T) {
	plain := Split("Bir şey oldu. Sonra bitti.")
	decorated := Split("Bir şey => oldu. Sonra bitti.")
	if len(plain) != len(decorated) {
		t.Errorf("substitution changed boundary count: %d vs %d", len(plain), len(decorated))
	}
}

func TestSplit_MarkupLadenText(t *testing.T) {
	got := Split("<b>Kalın</b> başlangıç. Normal devam eder.")
	if len(got) != 2 {
		t.Fatalf("expected 2 fragments, got %d: %v", len(got), got)
	}
	if !strings.Contains(got[0], "<b>Kalın</b>") {
		t.Errorf("inline markup should survive segmentation, got %q", got[0])
	}
}
