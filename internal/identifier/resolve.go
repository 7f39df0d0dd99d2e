package identifier

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"speechset/internal/annotations"
)

// ErrMalformedFileName reports a file name that does not carry a date and a
// speaker token.
var ErrMalformedFileName = errors.New("malformed transcript file name")

var upper = cases.Upper(language.Und)

// FromFileName derives "{Speaker} {Date}" from a transcript file name. The
// first whitespace-separated field is the date; the speaker is the part of
// the second field before the first underscore, with any file extension
// dropped and its first letter upper-cased. Directory components are ignored.
func FromFileName(name string) (string, error) {
	fields := strings.Fields(filepath.Base(name))
	if len(fields) < 2 {
		return "", fmt.Errorf("%w: %q", ErrMalformedFileName, name)
	}
	date := fields[0]
	speaker, _, _ := strings.Cut(fields[1], "_")
	speaker = strings.TrimSuffix(speaker, filepath.Ext(speaker))
	if speaker == "" {
		return "", fmt.Errorf("%w: %q", ErrMalformedFileName, name)
	}
	first, size := utf8.DecodeRuneInString(speaker)
	speaker = upper.String(string(first)) + speaker[size:]
	return speaker + " " + date, nil
}

// Status is the outcome of resolving a file name.
type Status string

const (
	StatusFound     Status = "found"
	StatusNotFound  Status = "not_found"
	StatusAmbiguous Status = "ambiguous"
	StatusMalformed Status = "malformed"
	StatusInvalidID Status = "invalid_id"
)

// Resolution describes how a file name was mapped to a speech id.
type Resolution struct {
	FileName   string `json:"file"`
	Derived    string `json:"derived,omitempty"`
	Normalized string `json:"normalized,omitempty"`
	Status     Status `json:"status"`
	SpeechID   int    `json:"speech_id,omitempty"`
	Matches    int    `json:"matches"`
}

// Found reports whether exactly one speech matched.
func (r Resolution) Found() bool {
	return r.Status == StatusFound
}

// Lookup finds speeches by exact identifier.
type Lookup interface {
	Lookup(identifier string) annotations.Match
}

// Resolver maps transcript file names onto speech ids.
type Resolver struct {
	normalizer *Normalizer
	speeches   Lookup
}

// NewResolver builds a resolver. A nil normalizer leaves identifiers as derived.
func NewResolver(normalizer *Normalizer, speeches Lookup) *Resolver {
	return &Resolver{normalizer: normalizer, speeches: speeches}
}

// Resolve derives, normalizes, and looks up the identifier of fileName.
func (r *Resolver) Resolve(fileName string) Resolution {
	res := Resolution{FileName: fileName}
	derived, err := FromFileName(fileName)
	if err != nil {
		res.Status = StatusMalformed
		return res
	}
	res.Derived = derived
	res.Normalized = r.normalizer.Normalize(derived)
	if r.speeches == nil {
		res.Status = StatusNotFound
		return res
	}

	match := r.speeches.Lookup(res.Normalized)
	res.Matches = match.Count
	switch match.Status {
	case annotations.MatchFound:
		res.Status = StatusFound
		res.SpeechID = match.SpeechID
	case annotations.MatchAmbiguous:
		res.Status = StatusAmbiguous
	case annotations.MatchInvalidID:
		res.Status = StatusInvalidID
	default:
		res.Status = StatusNotFound
	}
	return res
}
