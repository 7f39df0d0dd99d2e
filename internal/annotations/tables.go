package annotations

import (
	"fmt"
)

// Column names used by the annotation exports.
const (
	ColumnSpeechID         = "Speech_ID"
	ColumnSpeechIdentifier = "Speech_Identifier"
	ColumnContentID        = "Speech_Content_ID"
	ColumnContentTitle     = "Speech_Content_Title"
	ColumnContentSpeechID  = "Content_Speech_ID"
	ColumnContentSourceID  = "Content_Source_ID"
)

// Speech is one canonical speech row. RawID keeps the cell as written so an
// unparsable id can be reported rather than silently dropped.
type Speech struct {
	ID         int
	RawID      string
	ValidID    bool
	Identifier string
}

// MatchStatus describes the outcome of an identifier lookup.
type MatchStatus string

const (
	MatchFound     MatchStatus = "found"
	MatchNone      MatchStatus = "not_found"
	MatchAmbiguous MatchStatus = "ambiguous"
	MatchInvalidID MatchStatus = "invalid_id"
)

// Match is the result of looking up a speech identifier. SpeechID is only
// meaningful when Status is MatchFound.
type Match struct {
	Status   MatchStatus
	SpeechID int
	Count    int
}

// Speeches indexes speech rows by identifier.
type Speeches struct {
	rows         []Speech
	byIdentifier map[string][]int
}

// NewSpeeches builds an index over rows.
func NewSpeeches(rows []Speech) *Speeches {
	s := &Speeches{
		rows:         append([]Speech(nil), rows...),
		byIdentifier: make(map[string][]int, len(rows)),
	}
	for i, row := range s.rows {
		s.byIdentifier[row.Identifier] = append(s.byIdentifier[row.Identifier], i)
	}
	return s
}

// Len returns the number of speech rows.
func (s *Speeches) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rows)
}

// Lookup finds the single speech whose identifier equals identifier exactly.
// Zero or several matching rows, or a matching row with an unusable id, are
// reported through the status instead of an error.
func (s *Speeches) Lookup(identifier string) Match {
	if s == nil {
		return Match{Status: MatchNone}
	}
	indexes := s.byIdentifier[identifier]
	switch len(indexes) {
	case 0:
		return Match{Status: MatchNone}
	case 1:
		row := s.rows[indexes[0]]
		if !row.ValidID {
			return Match{Status: MatchInvalidID, Count: 1}
		}
		return Match{Status: MatchFound, SpeechID: row.ID, Count: 1}
	default:
		return Match{Status: MatchAmbiguous, Count: len(indexes)}
	}
}

// SpeechContent is one paragraph row of a speech.
type SpeechContent struct {
	SpeechID  int
	ContentID string
	Title     string
}

// SpeechContents groups paragraph rows by speech id.
type SpeechContents struct {
	bySpeech map[int][]SpeechContent
	total    int
}

// NewSpeechContents builds a per-speech index over rows.
func NewSpeechContents(rows []SpeechContent) *SpeechContents {
	c := &SpeechContents{bySpeech: make(map[int][]SpeechContent), total: len(rows)}
	for _, row := range rows {
		row.ContentID = NormalizeKey(row.ContentID)
		c.bySpeech[row.SpeechID] = append(c.bySpeech[row.SpeechID], row)
	}
	return c
}

// Len returns the number of paragraph rows.
func (c *SpeechContents) Len() int {
	if c == nil {
		return 0
	}
	return c.total
}

// ParagraphIndex maps each source-local content id of the speech to its
// paragraph title. The result is empty, never nil, for unknown speeches.
// A repeated content id keeps the last title.
func (c *SpeechContents) ParagraphIndex(speechID int) map[string]string {
	index := make(map[string]string)
	if c == nil {
		return index
	}
	for _, row := range c.bySpeech[speechID] {
		index[row.ContentID] = row.Title
	}
	return index
}

// ContentMap marks a labeled paragraph by speech id and source-local id.
type ContentMap struct {
	SpeechID int
	SourceID string
}

// ContentMaps groups labeled-paragraph rows by speech id.
type ContentMaps struct {
	bySpeech map[int][]ContentMap
	total    int
}

// NewContentMaps builds a per-speech index over rows, preserving row order.
func NewContentMaps(rows []ContentMap) *ContentMaps {
	m := &ContentMaps{bySpeech: make(map[int][]ContentMap), total: len(rows)}
	for _, row := range rows {
		row.SourceID = NormalizeKey(row.SourceID)
		m.bySpeech[row.SpeechID] = append(m.bySpeech[row.SpeechID], row)
	}
	return m
}

// Len returns the number of map rows.
func (m *ContentMaps) Len() int {
	if m == nil {
		return 0
	}
	return m.total
}

// ForSpeech returns the map rows of a speech in table order.
func (m *ContentMaps) ForSpeech(speechID int) []ContentMap {
	if m == nil {
		return nil
	}
	return m.bySpeech[speechID]
}

// Tables bundles the three annotation tables.
type Tables struct {
	Speeches *Speeches
	Contents *SpeechContents
	Maps     *ContentMaps
}

// Paths locates the three annotation tables on disk.
type Paths struct {
	Speeches       string
	SpeechContents string
	ContentMap     string
}

// Load reads all three tables.
func Load(paths Paths, opts ReadOptions) (*Tables, error) {
	speeches, err := LoadSpeeches(paths.Speeches, opts)
	if err != nil {
		return nil, err
	}
	contents, err := LoadSpeechContents(paths.SpeechContents, opts)
	if err != nil {
		return nil, err
	}
	maps, err := LoadContentMaps(paths.ContentMap, opts)
	if err != nil {
		return nil, err
	}
	return &Tables{Speeches: speeches, Contents: contents, Maps: maps}, nil
}

// LoadSpeeches reads the speeches table.
func LoadSpeeches(path string, opts ReadOptions) (*Speeches, error) {
	t, err := readTable(path, opts, ColumnSpeechID, ColumnSpeechIdentifier)
	if err != nil {
		return nil, fmt.Errorf("load speeches: %w", err)
	}
	rows := make([]Speech, 0, len(t.rows))
	for _, record := range t.rows {
		raw := t.value(record, ColumnSpeechID)
		id, ok := ParseID(raw)
		rows = append(rows, Speech{
			ID:         id,
			RawID:      raw,
			ValidID:    ok,
			Identifier: t.value(record, ColumnSpeechIdentifier),
		})
	}
	return NewSpeeches(rows), nil
}

// LoadSpeechContents reads the speech contents table.
func LoadSpeechContents(path string, opts ReadOptions) (*SpeechContents, error) {
	t, err := readTable(path, opts, ColumnSpeechID, ColumnContentID, ColumnContentTitle)
	if err != nil {
		return nil, fmt.Errorf("load speech contents: %w", err)
	}
	rows := make([]SpeechContent, 0, len(t.rows))
	for _, record := range t.rows {
		id, ok := ParseID(t.value(record, ColumnSpeechID))
		if !ok {
			continue
		}
		rows = append(rows, SpeechContent{
			SpeechID:  id,
			ContentID: t.value(record, ColumnContentID),
			Title:     t.value(record, ColumnContentTitle),
		})
	}
	return NewSpeechContents(rows), nil
}

// LoadContentMaps reads the content map table.
func LoadContentMaps(path string, opts ReadOptions) (*ContentMaps, error) {
	t, err := readTable(path, opts, ColumnContentSpeechID, ColumnContentSourceID)
	if err != nil {
		return nil, fmt.Errorf("load content map: %w", err)
	}
	rows := make([]ContentMap, 0, len(t.rows))
	for _, record := range t.rows {
		id, ok := ParseID(t.value(record, ColumnContentSpeechID))
		if !ok {
			continue
		}
		rows = append(rows, ContentMap{
			SpeechID: id,
			SourceID: t.value(record, ColumnContentSourceID),
		})
	}
	return NewContentMaps(rows), nil
}
