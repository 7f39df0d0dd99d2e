package annotations

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"speechset/internal/textutil"
)

// ErrMissingColumn reports a table whose header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// ReadOptions controls how delimited tables are decoded.
type ReadOptions struct {
	Encoding  string
	Delimiter rune
}

// DefaultReadOptions matches the published annotation exports.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{Encoding: textutil.EncodingLatin1, Delimiter: ','}
}

type table struct {
	path    string
	columns map[string]int
	rows    [][]string
}

func (t *table) value(row []string, column string) string {
	index, ok := t.columns[normalizeHeader(column)]
	if !ok || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

func readTable(path string, opts ReadOptions, required ...string) (*table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer file.Close()

	decoded, err := textutil.NewDecodingReader(file, opts.Encoding)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return parseTable(path, decoded, opts, required...)
}

func parseTable(path string, r io.Reader, opts ReadOptions, required ...string) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	if opts.Delimiter != 0 {
		if !validDelimiter(opts.Delimiter) {
			return nil, fmt.Errorf("read %q: invalid delimiter %q", path, opts.Delimiter)
		}
		reader.Comma = opts.Delimiter
	}

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read %q: empty table", path)
		}
		return nil, fmt.Errorf("read %q header: %w", path, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := normalizeHeader(name)
		if _, exists := columns[key]; !exists {
			columns[key] = i
		}
	}
	for _, name := range required {
		if _, ok := columns[normalizeHeader(name)]; !ok {
			return nil, fmt.Errorf("read %q: %w %s", path, ErrMissingColumn, name)
		}
	}

	t := &table{path: path, columns: columns}
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read %q row: %w", path, err)
		}
		if blankRecord(record) {
			continue
		}
		t.rows = append(t.rows, record)
	}
	return t, nil
}

func validDelimiter(r rune) bool {
	return r != '"' && r != '\r' && r != '\n' && r != utf8.RuneError
}

func normalizeHeader(value string) string {
	value = strings.TrimPrefix(value, "\ufeff")
	value = strings.ToLower(strings.TrimSpace(value))
	return strings.ReplaceAll(value, " ", "")
}

func blankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// ParseID parses a numeric identifier cell. Integral float spellings such as
// "12.0" are accepted because spreadsheet exports often widen integer columns.
func ParseID(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if id, err := strconv.Atoi(raw); err == nil {
		return id, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// NormalizeKey canonicalizes a source-local paragraph key so that "12", "12.0"
// and " 12 " compare equal. Non-numeric keys are only trimmed.
func NormalizeKey(raw string) string {
	raw = strings.TrimSpace(raw)
	if id, ok := ParseID(raw); ok {
		return strconv.Itoa(id)
	}
	return raw
}
