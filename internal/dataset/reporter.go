package dataset

import (
	"log/slog"

	"speechset/internal/language"
	"speechset/internal/logging"
)

// Reporter receives diagnostics while a dataset is assembled.
type Reporter interface {
	UnknownParagraph(speechID int, sourceID, file string)
	CountMismatch(file string, labels, texts int)
	FileSkipped(skip Skip)
	Summary(summary Summary)
}

// NopReporter discards diagnostics.
type NopReporter struct{}

func (NopReporter) UnknownParagraph(int, string, string) {}

func (NopReporter) CountMismatch(string, int, int) {}

func (NopReporter) FileSkipped(Skip) {}

func (NopReporter) Summary(Summary) {}

// LogReporter writes diagnostics to a structured logger.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter returns a reporter logging under the dataset component.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	return &LogReporter{logger: logging.NewComponentLogger(logger, "dataset")}
}

func (r *LogReporter) UnknownParagraph(speechID int, sourceID, file string) {
	logging.WarnWithContext(r.logger, "unknown paragraph id", "unknown_paragraph",
		logging.String("paragraph_id", sourceID),
		logging.SpeechID(speechID),
		logging.File(file),
		logging.String(logging.FieldErrorHint, "check Map_Contents against Speech_Contents for this speech"),
		logging.String(logging.FieldImpact, "label dropped for this paragraph"),
	)
}

func (r *LogReporter) CountMismatch(file string, labels, texts int) {
	logging.WarnWithContext(r.logger, "mismatch meta data vs file", "paragraph_count_mismatch",
		logging.Int("meta_data", labels),
		logging.Int("file_paragraphs", texts),
		logging.File(file),
		logging.String(logging.FieldErrorHint, "compare paragraph markers in the transcript with Speech_Contents"),
		logging.String(logging.FieldImpact, "file merged as-is"),
	)
}

func (r *LogReporter) FileSkipped(skip Skip) {
	attrs := []logging.Attr{
		logging.File(skip.File),
		logging.String("reason", string(skip.Reason)),
	}
	switch skip.Reason {
	case SkipLanguage:
		attrs = append(attrs, logging.String("language", language.DisplayName(skip.Detail)))
		attrs = append(attrs, logging.DecisionAttrs("language_filter", "rejected", "detected "+skip.Detail)...)
		r.logger.Info("skipping file in other language", logging.Args(attrs...)...)
	case SkipUnreadable:
		attrs = append(attrs, logging.String("error", skip.Detail))
		logging.WarnWithContext(r.logger, "skipping unreadable file", "transcript_unreadable", append(attrs,
			logging.String(logging.FieldErrorHint, "check file permissions and encoding"),
			logging.String(logging.FieldImpact, "file left out of dataset"),
		)...)
	default:
		attrs = append(attrs, logging.String("resolution", skip.Detail))
		r.logger.Info("skipping file", logging.Args(attrs...)...)
	}
}

func (r *LogReporter) Summary(summary Summary) {
	r.logger.Info(summary.Line(),
		logging.Int("files_read", summary.FilesRead),
		logging.Int("paragraphs", summary.Paragraphs),
		logging.Int("positives", summary.Positives),
		logging.Int("files_skipped", summary.FilesSkipped),
		logging.Duration("elapsed", summary.Elapsed),
	)
}
