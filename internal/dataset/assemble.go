package dataset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"speechset/internal/annotations"
	"speechset/internal/identifier"
	"speechset/internal/language"
	"speechset/internal/paragraphs"
	"speechset/internal/textutil"
)

// Options configures an Assembler. Tables is required; every other field has
// a default.
type Options struct {
	Tables         *annotations.Tables
	Normalizer     *identifier.Normalizer
	Extractor      *paragraphs.Extractor
	Detector       language.Detector
	TargetLanguage string
	Encoding       string
	Reporter       Reporter
}

// Assembler drives the per-file pipeline across a transcript directory.
type Assembler struct {
	tables    *annotations.Tables
	resolver  *identifier.Resolver
	extractor *paragraphs.Extractor
	detector  language.Detector
	target    string
	encoding  string
	reporter  Reporter
	now       func() time.Time
}

// NewAssembler validates opts and fills defaults.
func NewAssembler(opts Options) (*Assembler, error) {
	if opts.Tables == nil || opts.Tables.Speeches == nil {
		return nil, errors.New("dataset: annotation tables are required")
	}
	normalizer := opts.Normalizer
	if normalizer == nil {
		normalizer = identifier.DefaultNormalizer()
	}
	extractor := opts.Extractor
	if extractor == nil {
		extractor = paragraphs.NewExtractor(nil)
	}
	var detector language.Detector = language.WhatlangDetector{}
	if opts.Detector != nil {
		detector = opts.Detector
	}
	target := language.ToISO2(opts.TargetLanguage)
	if target == "" {
		target = "en"
	}
	encoding, err := textutil.NormalizeEncoding(opts.Encoding)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	var reporter Reporter = NopReporter{}
	if opts.Reporter != nil {
		reporter = opts.Reporter
	}
	return &Assembler{
		tables:    opts.Tables,
		resolver:  identifier.NewResolver(normalizer, opts.Tables.Speeches),
		extractor: extractor,
		detector:  detector,
		target:    target,
		encoding:  encoding,
		reporter:  reporter,
		now:       time.Now,
	}, nil
}

// Resolver exposes the resolver used for file names.
func (a *Assembler) Resolver() *identifier.Resolver {
	return a.resolver
}

// FileResult is the outcome of processing one transcript.
type FileResult struct {
	File     string
	SpeechID int
	Language string
	Texts    paragraphs.Texts
	Labels   paragraphs.Labels
	Skip     *Skip
}

// ProcessFile runs the pipeline for a single transcript without merging.
func (a *Assembler) ProcessFile(path string) FileResult {
	name := filepath.Base(path)
	result := FileResult{File: name}

	resolution := a.resolver.Resolve(name)
	if !resolution.Found() {
		result.Skip = &Skip{File: name, Reason: SkipUnresolved, Detail: string(resolution.Status)}
		return result
	}
	speechID := resolution.SpeechID
	result.SpeechID = speechID

	index := a.tables.Contents.ParagraphIndex(speechID)
	labels := CrossReference(speechID, index, a.tables.Maps.ForSpeech(speechID), name, a.reporter)

	lines, err := paragraphs.ReadLines(path, a.encoding)
	if err != nil {
		result.Skip = &Skip{File: name, Reason: SkipUnreadable, Detail: err.Error()}
		return result
	}
	texts := a.extractor.Extract(lines, labels, speechID)

	result.Language = language.Guess(a.detector, texts)
	if result.Language != a.target {
		result.Skip = &Skip{File: name, Reason: SkipLanguage, Detail: result.Language}
		return result
	}
	result.Texts = texts
	result.Labels = labels
	return result
}

// Build processes every regular file of dir in name order. Subdirectories are
// ignored. Only a missing directory or cancellation of ctx returns an error.
func (a *Assembler) Build(ctx context.Context, dir string) (*Dataset, Summary, error) {
	start := a.now()
	files, err := listTranscripts(dir)
	if err != nil {
		return nil, Summary{}, err
	}

	ds := New()
	var summary Summary
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, Summary{}, err
		}
		result := a.ProcessFile(path)
		if result.Skip != nil {
			summary.FilesSkipped++
			summary.Skips = append(summary.Skips, *result.Skip)
			a.reporter.FileSkipped(*result.Skip)
			continue
		}
		if len(result.Labels) != len(result.Texts) {
			a.reporter.CountMismatch(result.File, len(result.Labels), len(result.Texts))
		}
		ds.Merge(result.Texts, result.Labels)
		summary.FilesRead++
	}

	summary.Paragraphs = len(ds.Labels)
	summary.Positives = ds.Positives()
	summary.Elapsed = a.now().Sub(start)
	a.reporter.Summary(summary)
	return ds, summary, nil
}

func listTranscripts(dir string) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("documents directory is required")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list transcripts: %w", err)
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
