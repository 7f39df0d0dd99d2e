package annotations_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"speechset/internal/annotations"
)

func writeTable(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadSpeechesLookup(t *testing.T) {
	content := []byte("Speech_ID,Speech_Identifier,Country\n" +
		"1,Cameron 2012-06-29,UK\n" +
		"2,Orb\xe1n 2014-07-26,HU\n" +
		"3,Kenny 2012-07-04,IE\n" +
		"4,Kenny 2012-07-04,IE\n" +
		",Honohan 2009-12-11,IE\n")
	path := writeTable(t, "speeches.csv", content)

	speeches, err := annotations.LoadSpeeches(path, annotations.DefaultReadOptions())
	if err != nil {
		t.Fatalf("LoadSpeeches: %v", err)
	}
	if speeches.Len() != 5 {
		t.Fatalf("Len = %d, want 5", speeches.Len())
	}

	tests := []struct {
		identifier string
		status     annotations.MatchStatus
		id         int
	}{
		{"Cameron 2012-06-29", annotations.MatchFound, 1},
		{"Orbán 2014-07-26", annotations.MatchFound, 2},
		{"Kenny 2012-07-04", annotations.MatchAmbiguous, 0},
		{"Honohan 2009-12-11", annotations.MatchInvalidID, 0},
		{"Draghi 2012-07-26", annotations.MatchNone, 0},
		{"cameron 2012-06-29", annotations.MatchNone, 0},
	}
	for _, tt := range tests {
		got := speeches.Lookup(tt.identifier)
		if got.Status != tt.status {
			t.Fatalf("Lookup(%q) status = %q, want %q", tt.identifier, got.Status, tt.status)
		}
		if tt.status == annotations.MatchFound && got.SpeechID != tt.id {
			t.Fatalf("Lookup(%q) id = %d, want %d", tt.identifier, got.SpeechID, tt.id)
		}
	}
}

func TestLoadSpeechesMissingColumn(t *testing.T) {
	path := writeTable(t, "speeches.csv", []byte("Speech_ID,Name\n1,Cameron\n"))
	_, err := annotations.LoadSpeeches(path, annotations.DefaultReadOptions())
	if !errors.Is(err, annotations.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}

func TestParagraphIndexScopedToSpeech(t *testing.T) {
	content := []byte("\ufeffSpeech_ID,Speech_Content_ID,Speech_Content_Title\n" +
		"7,101,1-1\n" +
		"7,102.0,1-2\n" +
		"8,101,3-1\n" +
		"x,103,9-9\n")
	path := writeTable(t, "contents.csv", content)

	contents, err := annotations.LoadSpeechContents(path, annotations.ReadOptions{Encoding: "utf-8"})
	if err != nil {
		t.Fatalf("LoadSpeechContents: %v", err)
	}
	if contents.Len() != 3 {
		t.Fatalf("Len = %d, want 3", contents.Len())
	}
	index := contents.ParagraphIndex(7)
	if len(index) != 2 || index["101"] != "1-1" || index["102"] != "1-2" {
		t.Fatalf("unexpected index for speech 7: %v", index)
	}
	if other := contents.ParagraphIndex(8); other["101"] != "3-1" {
		t.Fatalf("unexpected index for speech 8: %v", other)
	}
	empty := contents.ParagraphIndex(99)
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil index, got %#v", empty)
	}
}

func TestContentMapsForSpeech(t *testing.T) {
	content := []byte("Content_Speech_ID;Content_Source_ID\n7;101\n7; 105 \n8;101\n")
	path := writeTable(t, "map.csv", content)

	maps, err := annotations.LoadContentMaps(path, annotations.ReadOptions{Encoding: "latin1", Delimiter: ';'})
	if err != nil {
		t.Fatalf("LoadContentMaps: %v", err)
	}
	rows := maps.ForSpeech(7)
	if len(rows) != 2 || rows[0].SourceID != "101" || rows[1].SourceID != "105" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if got := maps.ForSpeech(42); len(got) != 0 {
		t.Fatalf("expected no rows, got %+v", got)
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := map[string]string{
		"12":   "12",
		"12.0": "12",
		" 12 ": "12",
		"12.5": "12.5",
		"p-12": "p-12",
		"":     "",
	}
	for in, want := range tests {
		if got := annotations.NormalizeKey(in); got != want {
			t.Fatalf("NormalizeKey(%q) = %q, want %q", in, got, want)
		}
	}
}
