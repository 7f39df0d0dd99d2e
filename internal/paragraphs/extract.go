package paragraphs

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"speechset/internal/textutil"
)

var markerPattern = regexp.MustCompile(`^\d+-\d+:*$`)

// IsMarker reports whether token opens a paragraph.
func IsMarker(token string) bool {
	return markerPattern.MatchString(token)
}

// Extractor turns transcript lines into paragraph texts.
type Extractor struct {
	tokenizer Tokenizer
}

// NewExtractor returns an extractor using tokenizer, or ProseTokenizer when nil.
func NewExtractor(tokenizer Tokenizer) *Extractor {
	if tokenizer == nil {
		tokenizer = ProseTokenizer{}
	}
	return &Extractor{tokenizer: tokenizer}
}

// Extract scans lines for paragraphs of speechID. Every extracted key missing
// from labels is added to it as false. A marker with no content before the
// next marker yields no entry.
func (e *Extractor) Extract(lines []string, labels Labels, speechID int) Texts {
	texts := make(Texts)
	capturing := false
	key := ""
	for _, line := range lines {
		tokens := strings.Fields(line)
		if len(tokens) > 0 && IsMarker(tokens[0]) {
			capturing = true
			key = Key(speechID, tokens[0])
			tokens = tokens[1:]
			if len(tokens) > 0 && tokens[0] == ":" {
				tokens = tokens[1:]
			}
		}
		if len(tokens) == 0 || !capturing {
			continue
		}
		texts[key] = e.normalize(strings.Join(tokens, " "))
		if labels != nil {
			if _, ok := labels[key]; !ok {
				labels[key] = false
			}
		}
		capturing = false
	}
	return texts
}

func (e *Extractor) normalize(text string) string {
	words := e.tokenizer.Tokenize(text)
	return strings.ToLower(strings.Join(words, " "))
}

const maxLineSize = 4 * 1024 * 1024

// ReadLines reads path in the given encoding and returns its lines.
func ReadLines(path, encoding string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer file.Close()

	reader, err := textutil.NewDecodingReader(file, encoding)
	if err != nil {
		return nil, fmt.Errorf("read transcript %q: %w", path, err)
	}
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transcript %q: %w", path, err)
	}
	return lines, nil
}
