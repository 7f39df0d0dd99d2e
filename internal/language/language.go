package language

import (
	"strings"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// namedLanguages are the languages of the speech corpus; their English names
// are accepted wherever a code is.
var namedLanguages = []string{
	"en", "fr", "de", "es", "it", "pt", "nl", "ga", "hu", "el", "pl", "cs", "sk",
	"sl", "hr", "ro", "bg", "sv", "da", "fi", "et", "lv", "lt", "no", "ru",
}

// aliases maps ISO 639-2/B codes and lower-case English names onto ISO 639-1.
var aliases = map[string]string{
	"fre":     "fr",
	"ger":     "de",
	"dut":     "nl",
	"gre":     "el",
	"cze":     "cs",
	"slo":     "sk",
	"rum":     "ro",
	"gaelic":  "ga",
	"slovene": "sl",
}

var englishNames = display.English.Languages()

func init() {
	for _, code := range namedLanguages {
		base, err := xlanguage.ParseBase(code)
		if err != nil {
			continue
		}
		if name := strings.ToLower(englishNames.Name(base)); name != "" {
			aliases[name] = code
		}
	}
}

func lookup(code string) (xlanguage.Base, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" || code == Unknown {
		return xlanguage.Base{}, false
	}
	if alias, ok := aliases[code]; ok {
		code = alias
	}
	if len(code) != 2 && len(code) != 3 {
		return xlanguage.Base{}, false
	}
	base, err := xlanguage.ParseBase(code)
	if err != nil || base.String() == "und" {
		return xlanguage.Base{}, false
	}
	return base, true
}

// Recognized reports whether code is an ISO 639 code or the English name of a
// corpus language.
func Recognized(code string) bool {
	_, ok := lookup(code)
	return ok
}

// ToISO2 converts a recognized code or name to its shortest ISO 639 form,
// which is the 2-letter code whenever one exists. Unrecognized input yields "".
func ToISO2(code string) string {
	base, ok := lookup(code)
	if !ok {
		return ""
	}
	return base.String()
}

// ToISO3 converts a recognized code or name to ISO 639-3. Unrecognized input
// yields "und".
func ToISO3(code string) string {
	base, ok := lookup(code)
	if !ok {
		return "und"
	}
	return base.ISO3()
}

// DisplayName returns the English name of a language. Empty input and Unknown
// give "Unknown"; unrecognized codes are returned upper-cased.
func DisplayName(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" || strings.EqualFold(trimmed, Unknown) {
		return "Unknown"
	}
	if base, ok := lookup(trimmed); ok {
		if name := englishNames.Name(base); name != "" {
			return name
		}
	}
	return strings.ToUpper(trimmed)
}
