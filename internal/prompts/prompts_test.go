package prompts

import (
	"strings"
	"testing"
)

func TestCorrectionWithoutContext(t *testing.T) {
	got := Correction("", "He go to school yesterday.")
	if strings.Contains(got, ContextLabel) {
		t.Fatalf("expected no context block, got:\n%s", got)
	}
	if !strings.HasSuffix(got, OriginalLabel+"\nHe go to school yesterday.") {
		t.Fatalf("expected original text at the end, got:\n%s", got)
	}
	if !strings.Contains(got, "Return only the corrected English text.") {
		t.Fatalf("expected output-only instruction, got:\n%s", got)
	}
}

func TestCorrectionWithContext(t *testing.T) {
	got := Correction("Email to a client", "thanks for you reply")
	ctxIdx := strings.Index(got, ContextLabel+"\nEmail to a client")
	origIdx := strings.Index(got, OriginalLabel+"\nthanks for you reply")
	if ctxIdx < 0 || origIdx < 0 {
		t.Fatalf("expected both labeled blocks, got:\n%s", got)
	}
	if ctxIdx > origIdx {
		t.Fatalf("expected context block before the text to correct")
	}
}

func TestTranslationEmbedsOriginalVerbatim(t *testing.T) {
	original := "  keep   spacing\nand lines  "
	got := Translation(original)
	if !strings.HasSuffix(got, EnglishLabel+"\n"+original) {
		t.Fatalf("expected verbatim original, got:\n%q", got)
	}
	if !strings.Contains(got, "Japanese") {
		t.Fatalf("expected Japanese target, got:\n%s", got)
	}
}

func TestVariantsRequestsNumberedFormat(t *testing.T) {
	got := Variants("彼は昨日学校に行きました。")
	for _, want := range []string{"three alternative English sentences", "1. sentence one\n2. sentence two\n3. sentence three", JapaneseLabel + "\n彼は昨日学校に行きました。"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in prompt, got:\n%s", want, got)
		}
	}
}

func TestBuildersAreDeterministic(t *testing.T) {
	if Correction("c", "o") != Correction("c", "o") {
		t.Fatal("Correction is not deterministic")
	}
	if Translation("o") != Translation("o") {
		t.Fatal("Translation is not deterministic")
	}
	if Variants("j") != Variants("j") {
		t.Fatal("Variants is not deterministic")
	}
}
