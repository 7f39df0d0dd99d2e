package textutil

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Supported input encodings.
const (
	EncodingLatin1 = "latin1"
	EncodingUTF8   = "utf8"
)

// NormalizeEncoding maps the accepted spellings of an encoding name onto
// EncodingLatin1 or EncodingUTF8.
func NormalizeEncoding(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "latin1", "latin-1", "iso-8859-1", "iso8859-1", "l1":
		return EncodingLatin1, nil
	case "utf8", "utf-8":
		return EncodingUTF8, nil
	default:
		return "", fmt.Errorf("unsupported encoding %q", name)
	}
}

// NewDecodingReader wraps r so that reads yield UTF-8 text. Latin-1 input maps
// every byte to the code point of the same value.
func NewDecodingReader(r io.Reader, encoding string) (io.Reader, error) {
	normalized, err := NormalizeEncoding(encoding)
	if err != nil {
		return nil, err
	}
	if normalized == EncodingUTF8 {
		return r, nil
	}
	return charmap.ISO8859_1.NewDecoder().Reader(r), nil
}
