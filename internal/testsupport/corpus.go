package testsupport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"speechset/internal/config"
)

// Speech is one speech of a fixture corpus. Paragraphs maps content ids to
// paragraph titles; Labeled lists content ids present in the content map.
type Speech struct {
	ID         int
	Identifier string
	Paragraphs map[string]string
	Labeled    []string
}

// Corpus is a set of annotation rows plus transcript files.
type Corpus struct {
	Speeches    []Speech
	Transcripts map[string]string
}

// Write writes the three tables in latin-1 and the transcripts into the
// directories named by cfg.
func (c Corpus) Write(t testing.TB, cfg *config.Config) {
	t.Helper()

	speeches := [][]string{{"Speech_ID", "Speech_Identifier"}}
	contents := [][]string{{"Speech_ID", "Speech_Content_ID", "Speech_Content_Title"}}
	maps := [][]string{{"Content_Speech_ID", "Content_Source_ID"}}
	for _, s := range c.Speeches {
		id := strconv.Itoa(s.ID)
		speeches = append(speeches, []string{id, s.Identifier})
		for _, contentID := range sortedKeys(s.Paragraphs) {
			contents = append(contents, []string{id, contentID, s.Paragraphs[contentID]})
		}
		for _, contentID := range s.Labeled {
			maps = append(maps, []string{id, contentID})
		}
	}
	WriteTable(t, cfg.SpeechesPath(), speeches)
	WriteTable(t, cfg.SpeechContentsPath(), contents)
	WriteTable(t, cfg.MapContentsPath(), maps)

	for name, body := range c.Transcripts {
		WriteLatin1(t, filepath.Join(cfg.Paths.DocumentsDir, name), body)
	}
}

// WriteTable writes rows as a comma separated latin-1 table.
func WriteTable(t testing.TB, path string, rows [][]string) {
	t.Helper()
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	WriteLatin1(t, path, sb.String())
}

// WriteLatin1 writes text encoded as latin-1. Runes above U+00FF fail the test.
func WriteLatin1(t testing.TB, path, text string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	buf := make([]byte, 0, len(text))
	for _, r := range text {
		if r > 0xff {
			t.Fatalf("rune %q in %s is not latin-1", r, path)
		}
		buf = append(buf, byte(r))
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SampleCorpus returns two English speeches with three and two paragraphs and
// one French speech. The French transcript is named so that it resolves.
func SampleCorpus() Corpus {
	return Corpus{
		Speeches: []Speech{
			{
				ID:         11,
				Identifier: "Cameron 2012-06-29",
				Paragraphs: map[string]string{"101": "1-1", "102": "1-2", "103": "1-3"},
				Labeled:    []string{"101", "103"},
			},
			{
				ID:         12,
				Identifier: "Orbán 2014-07-26",
				Paragraphs: map[string]string{"201": "2-1", "202": "2-2"},
				Labeled:    []string{"202", "299"},
			},
			{
				ID:         13,
				Identifier: "Hollande 2015-03-19",
				Paragraphs: map[string]string{"301": "1-1"},
				Labeled:    []string{"301"},
			},
		},
		Transcripts: map[string]string{
			"2012-06-29 speech_european_council.txt": "Speech by the Prime Minister\n" +
				"1-1: We agreed a plan for growth\n" +
				"1-2: The banks need a stronger union\n" +
				"1-3 : Britain will keep its own currency\n",
			"2014-07-26 orban_tusnad.txt": "2-1: The era of liberal democracy is over\n" +
				"2-2:\n" +
				"We are building a new state\n",
			"2015-05-19 hollande_conseil.txt": "1-1: Nous avons trouvé un accord pour la croissance\n",
		},
	}
}

// SampleLanguages is a fake detector for SampleCorpus: French for the
// Hollande transcript, English for any other text.
func SampleLanguages(text string) string {
	if strings.Contains(text, "nous avons") {
		return "fr"
	}
	if strings.TrimSpace(text) == "" {
		return "unk"
	}
	return "en"
}
