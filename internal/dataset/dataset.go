package dataset

import (
	"fmt"
	"sort"
	"time"

	"speechset/internal/paragraphs"
	"speechset/internal/textutil"
)

// Dataset holds the two aligned accumulators keyed by paragraph key.
type Dataset struct {
	Texts  paragraphs.Texts
	Labels paragraphs.Labels
}

// New returns an empty dataset.
func New() *Dataset {
	return &Dataset{Texts: paragraphs.Texts{}, Labels: paragraphs.Labels{}}
}

// Merge copies texts and labels into d. Later values win on key collision.
func (d *Dataset) Merge(texts paragraphs.Texts, labels paragraphs.Labels) {
	for key, text := range texts {
		d.Texts[key] = text
	}
	for key, label := range labels {
		d.Labels[key] = label
	}
}

// Keys returns the union of text and label keys in sorted order.
func (d *Dataset) Keys() []string {
	seen := make(map[string]struct{}, len(d.Labels)+len(d.Texts))
	for key := range d.Labels {
		seen[key] = struct{}{}
	}
	for key := range d.Texts {
		seen[key] = struct{}{}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Positives counts keys labeled true.
func (d *Dataset) Positives() int {
	count := 0
	for _, label := range d.Labels {
		if label {
			count++
		}
	}
	return count
}

// SkipReason classifies why a file was left out of the dataset.
type SkipReason string

const (
	SkipUnresolved SkipReason = "unresolved"
	SkipUnreadable SkipReason = "unreadable"
	SkipLanguage   SkipReason = "language"
)

// Skip records one file left out of the dataset. Detail holds the resolution
// status, the read error, or the detected language depending on Reason.
type Skip struct {
	File   string     `json:"file"`
	Reason SkipReason `json:"reason"`
	Detail string     `json:"detail,omitempty"`
}

// Summary reports the outcome of a build.
type Summary struct {
	FilesRead    int           `json:"files_read"`
	Paragraphs   int           `json:"paragraphs"`
	Positives    int           `json:"positives"`
	FilesSkipped int           `json:"files_skipped"`
	Skips        []Skip        `json:"skips,omitempty"`
	Elapsed      time.Duration `json:"elapsed"`
}

// Line renders the one-line build summary.
func (s Summary) Line() string {
	return fmt.Sprintf("read %d files with %d paragraphs; skipped %d %s",
		s.FilesRead, s.Paragraphs, s.FilesSkipped, textutil.Plural(s.FilesSkipped, "file"))
}
