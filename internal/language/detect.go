package language

import (
	"sort"
	"strings"
	"sync"

	"github.com/abadojack/whatlanggo"
)

// Unknown is returned when no language can be detected.
const Unknown = "unk"

// Detector reports the ISO 639-1 code of the most probable language of text,
// or Unknown.
type Detector interface {
	Detect(text string) string
}

// DetectorFunc adapts a function to Detector.
type DetectorFunc func(text string) string

// Detect calls f.
func (f DetectorFunc) Detect(text string) string {
	return f(text)
}

// WhatlangDetector detects languages with trigram profiles from whatlanggo,
// restricted to the corpus languages.
type WhatlangDetector struct{}

var (
	whitelistOnce sync.Once
	whitelist     map[whatlanggo.Lang]bool
)

// corpusWhitelist returns the whatlanggo languages matching namedLanguages.
// Languages whatlanggo has no profile for are left out.
func corpusWhitelist() map[whatlanggo.Lang]bool {
	whitelistOnce.Do(func() {
		named := make(map[string]bool, len(namedLanguages))
		for _, code := range namedLanguages {
			named[ToISO2(code)] = true
		}
		// whatlanggo only profiles Norwegian Bokmål.
		if named["no"] {
			named["nb"] = true
		}
		whitelist = make(map[whatlanggo.Lang]bool, len(named))
		for lang := whatlanggo.Afr; lang <= whatlanggo.Zul; lang++ {
			if named[ToISO2(lang.Iso6391())] {
				whitelist[lang] = true
			}
		}
	})
	return whitelist
}

// Detect implements Detector.
func (WhatlangDetector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return Unknown
	}
	info := whatlanggo.DetectWithOptions(text, whatlanggo.Options{Whitelist: corpusWhitelist()})
	if info.Script == nil {
		return Unknown
	}
	if code := info.Lang.Iso6391(); code != "" {
		return code
	}
	if code := ToISO2(info.Lang.Iso6393()); code != "" {
		return code
	}
	return Unknown
}

// Guess joins the texts with single spaces in key order and detects their
// language. A nil detector or empty input yields Unknown.
func Guess(detector Detector, texts map[string]string) string {
	if detector == nil || len(texts) == 0 {
		return Unknown
	}
	keys := make([]string, 0, len(texts))
	for key := range texts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, texts[key])
	}
	code := strings.ToLower(strings.TrimSpace(detector.Detect(strings.Join(parts, " "))))
	if code == "" {
		return Unknown
	}
	return code
}
