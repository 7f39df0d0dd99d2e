package dataset_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"speechset/internal/annotations"
	"speechset/internal/config"
	"speechset/internal/dataset"
	"speechset/internal/language"
	"speechset/internal/testsupport"
)

type recordingReporter struct {
	unknown    []string
	mismatches []string
	skips      []dataset.Skip
	summaries  []dataset.Summary
}

func (r *recordingReporter) UnknownParagraph(speechID int, sourceID, file string) {
	r.unknown = append(r.unknown, sourceID+"@"+file)
}

func (r *recordingReporter) CountMismatch(file string, labels, texts int) {
	r.mismatches = append(r.mismatches, file)
}

func (r *recordingReporter) FileSkipped(skip dataset.Skip) {
	r.skips = append(r.skips, skip)
}

func (r *recordingReporter) Summary(summary dataset.Summary) {
	r.summaries = append(r.summaries, summary)
}

func newAssembler(t *testing.T, cfg *config.Config, reporter dataset.Reporter) *dataset.Assembler {
	t.Helper()
	tables, err := annotations.Load(cfg.AnnotationPaths(), cfg.ReadOptions())
	if err != nil {
		t.Fatalf("load tables: %v", err)
	}
	a, err := dataset.NewAssembler(dataset.Options{
		Tables:         tables,
		Detector:       language.DetectorFunc(testsupport.SampleLanguages),
		TargetLanguage: cfg.Dataset.TargetLanguage,
		Encoding:       cfg.Dataset.Encoding,
		Reporter:       reporter,
	})
	if err != nil {
		t.Fatalf("NewAssembler: %v", err)
	}
	return a
}

func TestBuildSampleCorpus(t *testing.T) {
	corpus := testsupport.SampleCorpus()
	corpus.Speeches = append(corpus.Speeches, testsupport.Speech{
		ID:         14,
		Identifier: "Kenny 2013-07-03",
		Paragraphs: map[string]string{"401": "1-1"},
		Labeled:    []string{"401"},
	})
	corpus.Transcripts["2013-03-07 speech.txt"] = "1-1: The economy is recovering\n"
	cfg := testsupport.NewConfig(t, testsupport.WithCorpus(corpus))
	reporter := &recordingReporter{}
	a := newAssembler(t, cfg, reporter)

	ds, summary, err := a.Build(context.Background(), cfg.Paths.DocumentsDir)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := summary.Line(); got != "read 3 files with 6 paragraphs; skipped 1 file" {
		t.Fatalf("summary line = %q", got)
	}
	wantLabels := map[string]bool{
		"11 1-1": true,
		"11 1-2": false,
		"11 1-3": true,
		"12 2-1": false,
		"12 2-2": true,
		"14 1-1": true,
	}
	if !reflect.DeepEqual(map[string]bool(ds.Labels), wantLabels) {
		t.Fatalf("labels = %v, want %v", ds.Labels, wantLabels)
	}
	if ds.Texts["11 1-3"] != "britain will keep its own currency" {
		t.Fatalf("text for 11 1-3 = %q", ds.Texts["11 1-3"])
	}
	if ds.Texts["12 2-2"] != "we are building a new state" {
		t.Fatalf("text for 12 2-2 = %q", ds.Texts["12 2-2"])
	}
	if ds.Texts["14 1-1"] != "the economy is recovering" {
		t.Fatalf("text for 14 1-1 = %q", ds.Texts["14 1-1"])
	}
	for key := range ds.Texts {
		if _, ok := ds.Labels[key]; !ok {
			t.Fatalf("text key %q has no label", key)
		}
	}

	if len(reporter.skips) != 1 || reporter.skips[0].Reason != dataset.SkipLanguage || reporter.skips[0].Detail != "fr" {
		t.Fatalf("unexpected skips: %+v", reporter.skips)
	}
	if len(reporter.unknown) != 1 || !strings.HasPrefix(reporter.unknown[0], "299@") {
		t.Fatalf("unexpected unknown paragraph reports: %v", reporter.unknown)
	}
	if len(reporter.mismatches) != 0 {
		t.Fatalf("unexpected mismatches: %v", reporter.mismatches)
	}
	if len(reporter.summaries) != 1 || summary.Positives != 4 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithCorpus(testsupport.SampleCorpus()))
	a := newAssembler(t, cfg, nil)

	first, _, err := a.Build(context.Background(), cfg.Paths.DocumentsDir)
	if err != nil {
		t.Fatalf("first Build: %v", err)
	}
	second, _, err := a.Build(context.Background(), cfg.Paths.DocumentsDir)
	if err != nil {
		t.Fatalf("second Build: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("builds differ:\n%v\n%v", first, second)
	}
}

func TestBuildSkipsUnresolvedAndDirectories(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithCorpus(testsupport.SampleCorpus()))
	testsupport.WriteLatin1(t, filepath.Join(cfg.Paths.DocumentsDir, "2020-01-01 nobody.txt"), "1-1: hello\n")
	testsupport.WriteLatin1(t, filepath.Join(cfg.Paths.DocumentsDir, "README"), "notes\n")
	if err := os.MkdirAll(filepath.Join(cfg.Paths.DocumentsDir, "archive"), 0o755); err != nil {
		t.Fatal(err)
	}

	reporter := &recordingReporter{}
	_, summary, err := newAssembler(t, cfg, reporter).Build(context.Background(), cfg.Paths.DocumentsDir)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if summary.FilesRead != 2 || summary.FilesSkipped != 3 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if got := summary.Line(); got != "read 2 files with 5 paragraphs; skipped 3 files" {
		t.Fatalf("summary line = %q", got)
	}
	reasons := map[string]string{}
	for _, skip := range reporter.skips {
		reasons[skip.File] = string(skip.Reason) + ":" + skip.Detail
	}
	if reasons["2020-01-01 nobody.txt"] != "unresolved:not_found" {
		t.Fatalf("unexpected skip for unmatched file: %v", reasons)
	}
	if reasons["README"] != "unresolved:malformed" {
		t.Fatalf("unexpected skip for README: %v", reasons)
	}
}

func TestBuildReportsCountMismatch(t *testing.T) {
	corpus := testsupport.Corpus{
		Speeches: []testsupport.Speech{{
			ID:         5,
			Identifier: "Kenny 2012-07-04",
			Paragraphs: map[string]string{"1": "1-1", "2": "1-2"},
			Labeled:    []string{"2"},
		}},
		Transcripts: map[string]string{
			"2012-07-04 kenny.txt": "1-1: Only the first paragraph made it\n",
		},
	}
	cfg := testsupport.NewConfig(t, testsupport.WithCorpus(corpus))
	reporter := &recordingReporter{}
	ds, summary, err := newAssembler(t, cfg, reporter).Build(context.Background(), cfg.Paths.DocumentsDir)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(reporter.mismatches) != 1 {
		t.Fatalf("expected one mismatch warning, got %v", reporter.mismatches)
	}
	if len(ds.Texts) != 1 || len(ds.Labels) != 2 || !ds.Labels["5 1-2"] {
		t.Fatalf("mappings not merged as-is: %+v", ds)
	}
	if summary.Paragraphs != 2 {
		t.Fatalf("paragraphs = %d, want 2", summary.Paragraphs)
	}
}

func TestBuildHonoursCancellation(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithCorpus(testsupport.SampleCorpus()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := newAssembler(t, cfg, nil).Build(ctx, cfg.Paths.DocumentsDir); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestBuildMissingDirectory(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithCorpus(testsupport.SampleCorpus()))
	if _, _, err := newAssembler(t, cfg, nil).Build(context.Background(), filepath.Join(cfg.Paths.DocumentsDir, "missing")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestNewAssemblerRequiresTables(t *testing.T) {
	if _, err := dataset.NewAssembler(dataset.Options{}); err == nil {
		t.Fatal("expected error without tables")
	}
}
