package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"speechset/internal/config"
	"speechset/internal/logging"
)

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.StateDir = t.TempDir()

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("dataset build started")

	content, err := os.ReadFile(filepath.Join(cfg.LogDir(), "speechset.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "dataset build started") {
		t.Fatalf("log file missing message: %q", content)
	}
}

func newFileLogger(t *testing.T, format, level string) (*slog.Logger, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), format+"-"+level+".log")
	logger, err := logging.New(logging.Options{
		Format:      format,
		Level:       level,
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return logger, logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(content)
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logger, logPath := newFileLogger(t, "console", "info")
	logger.Info("message without caller")

	if content := readLog(t, logPath); strings.Contains(content, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logger, logPath := newFileLogger(t, "console", "debug")
	logger.Info("message with caller")

	if content := readLog(t, logPath); !strings.Contains(content, ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", content)
	}
}

func TestConsoleLoggerFormatsComponentAndFields(t *testing.T) {
	logger, logPath := newFileLogger(t, "console", "info")
	logging.NewComponentLogger(logger, "dataset").Warn("unknown paragraph id",
		logging.String("file", "2012-06-29 cameron.txt"),
		logging.Int("speech_id", 11),
	)

	content := readLog(t, logPath)
	for _, want := range []string{"WARN dataset: unknown paragraph id", `file="2012-06-29 cameron.txt"`, "speech_id=11"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in %q", want, content)
		}
	}
	if strings.Contains(content, "\033[") {
		t.Fatalf("expected no color codes in file output, got %q", content)
	}
}

func TestJSONLoggerRenamesKeys(t *testing.T) {
	logger, logPath := newFileLogger(t, "json", "info")
	logger.Info("json message", logging.String("k", "v"))

	var record map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(readLog(t, logPath))), &record); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if record["msg"] != "json message" || record["level"] != "info" || record["k"] != "v" {
		t.Fatalf("unexpected record: %v", record)
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", record)
	}
}

func TestNewInvalidLevelDefaultsToInfo(t *testing.T) {
	logger, logPath := newFileLogger(t, "console", "invalid")
	logger.Debug("hidden")
	logger.Info("shown")

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden") || !strings.Contains(content, "shown") {
		t.Fatalf("unexpected level filtering: %q", content)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logging.WarnWithContext(logger, "mismatch", "paragraph_count_mismatch", logging.String(logging.FieldImpact, "merged"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if record[logging.FieldEventType] != "paragraph_count_mismatch" {
		t.Fatalf("event_type = %v", record[logging.FieldEventType])
	}
	if record[logging.FieldErrorHint] == nil {
		t.Fatal("expected default error hint")
	}
	if record[logging.FieldImpact] != "merged" {
		t.Fatalf("impact overwritten: %v", record[logging.FieldImpact])
	}
}

func TestWithContextAddsRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := logging.WithRunID(context.Background(), "run-123")

	logging.WithContext(ctx, logger).Info("contextual log", logging.Error(errors.New("boom")))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if record[logging.FieldRunID] != "run-123" {
		t.Fatalf("run_id = %v", record[logging.FieldRunID])
	}
	if id, ok := logging.RunIDFromContext(context.Background()); ok || id != "" {
		t.Fatalf("unexpected run id on empty context: %q", id)
	}
}

func TestConsoleLoggerShowsShortRunID(t *testing.T) {
	logger, logPath := newFileLogger(t, "console", "info")
	ctx := logging.WithRunID(context.Background(), "0123456789abcdef")
	runLogger := logging.NewComponentLogger(logging.WithContext(ctx, logger), "dataset")
	runLogger.Info("build finished", logging.File("a b.txt"))

	content := readLog(t, logPath)
	for _, want := range []string{"INFO dataset[run 01234567]: build finished", `file="a b.txt"`} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in %q", want, content)
		}
	}
	if strings.Contains(content, "run_id=") {
		t.Fatalf("run id should not repeat as a field: %q", content)
	}
}

func TestLoggerWritesEveryOutput(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")
	logger, err := logging.New(logging.Options{Format: "console", OutputPaths: []string{first, second, first}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Warn("fanned out", logging.SpeechID(4))

	for _, path := range []string{first, second} {
		content := readLog(t, path)
		if strings.Count(content, "fanned out") != 1 || !strings.Contains(content, "speech_id=4") {
			t.Fatalf("unexpected content in %s: %q", path, content)
		}
	}
}
