package language

import "testing"

func TestGuessJoinsTextsInKeyOrder(t *testing.T) {
	var seen string
	detector := DetectorFunc(func(text string) string {
		seen = text
		return " EN "
	})
	got := Guess(detector, map[string]string{"1 1-2": "second", "1 1-1": "first", "1 1-10": "tenth"})
	if got != "en" {
		t.Fatalf("Guess = %q, want en", got)
	}
	if seen != "first tenth second" {
		t.Fatalf("detector input = %q", seen)
	}
}

func TestGuessUnknownCases(t *testing.T) {
	if got := Guess(nil, map[string]string{"a": "text"}); got != Unknown {
		t.Fatalf("nil detector: %q", got)
	}
	if got := Guess(WhatlangDetector{}, nil); got != Unknown {
		t.Fatalf("empty texts: %q", got)
	}
	blank := DetectorFunc(func(string) string { return "" })
	if got := Guess(blank, map[string]string{"a": "text"}); got != Unknown {
		t.Fatalf("blank detection: %q", got)
	}
}

func TestWhatlangDetector(t *testing.T) {
	d := WhatlangDetector{}
	english := "the government will continue to work with our partners in europe to deliver growth , " +
		"jobs and stability for the people of this country and we are determined to see it through ."
	if got := d.Detect(english); got != "en" {
		t.Fatalf("Detect(english) = %q, want en", got)
	}
	french := "le gouvernement continuera de travailler avec nos partenaires européens pour assurer " +
		"la croissance , l'emploi et la stabilité pour tous les citoyens de notre pays ."
	if got := d.Detect(french); got != "fr" {
		t.Fatalf("Detect(french) = %q, want fr", got)
	}
	for _, text := range []string{"", "   ", "1234 5678 , ."} {
		if got := d.Detect(text); got != Unknown {
			t.Fatalf("Detect(%q) = %q, want %q", text, got, Unknown)
		}
	}
}

func TestWhatlangDetectorStaysWithinCorpusLanguages(t *testing.T) {
	allowed := make(map[string]bool)
	for lang := range corpusWhitelist() {
		allowed[lang.Iso6391()] = true
	}
	if !allowed["en"] || !allowed["fr"] || !allowed["hu"] {
		t.Fatalf("whitelist missing corpus languages: %v", allowed)
	}
	if allowed["zu"] || allowed["af"] {
		t.Fatalf("whitelist holds non-corpus languages: %v", allowed)
	}
	d := WhatlangDetector{}
	for _, text := range []string{"hello world goodbye now", "thank you very much", "yes we can"} {
		got := d.Detect(text)
		if got != Unknown && !allowed[got] {
			t.Fatalf("Detect(%q) = %q, outside the corpus languages", text, got)
		}
	}
}
