package paragraphs

import (
	"fmt"
	"strconv"
	"strings"
)

// Texts maps paragraph keys to normalized paragraph text.
type Texts map[string]string

// Labels maps paragraph keys to the label-present flag.
type Labels map[string]bool

// Key builds the "{speech_id} {paragraph}" join key. Colons are removed from
// the paragraph number on both the transcript and the annotation side.
func Key(speechID int, paragraph string) string {
	return strconv.Itoa(speechID) + " " + strings.ReplaceAll(paragraph, ":", "")
}

// SplitKey reverses Key.
func SplitKey(key string) (int, string, error) {
	idPart, paragraph, ok := strings.Cut(key, " ")
	if !ok {
		return 0, "", fmt.Errorf("paragraph key %q has no separator", key)
	}
	id, err := strconv.Atoi(idPart)
	if err != nil {
		return 0, "", fmt.Errorf("paragraph key %q: %w", key, err)
	}
	return id, paragraph, nil
}
