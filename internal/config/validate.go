package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"speechset/internal/language"
	"speechset/internal/textutil"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateDataset(); err != nil {
		return err
	}
	if err := c.validateSplit(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DocumentsDir == "" {
		return errors.New("paths.documents_dir must be set (or SPEECHSET_DOCUMENTS_DIR)")
	}
	if c.Paths.AnnotationsDir == "" {
		return errors.New("paths.annotations_dir must be set (or SPEECHSET_ANNOTATIONS_DIR)")
	}
	if c.Paths.SpeechesFile == "" {
		return errors.New("paths.speeches_file must be set")
	}
	if c.Paths.SpeechContentsFile == "" {
		return errors.New("paths.speech_contents_file must be set")
	}
	if c.Paths.MapContentsFile == "" {
		return errors.New("paths.map_contents_file must be set")
	}
	return nil
}

func (c *Config) validateDataset() error {
	if !language.Recognized(c.Dataset.TargetLanguage) {
		return fmt.Errorf("dataset.target_language %q is not a recognized language", c.Dataset.TargetLanguage)
	}
	if _, err := textutil.NormalizeEncoding(c.Dataset.Encoding); err != nil {
		return fmt.Errorf("dataset.encoding: %w", err)
	}
	if utf8.RuneCountInString(c.Dataset.Delimiter) != 1 {
		return fmt.Errorf("dataset.delimiter must be a single character, got %q", c.Dataset.Delimiter)
	}
	if strings.ContainsAny(c.Dataset.Delimiter, "\"\r\n") {
		return errors.New("dataset.delimiter must not be a quote or newline")
	}
	return nil
}

func (c *Config) validateSplit() error {
	ratios := []struct {
		name  string
		value float64
	}{
		{"split.train_ratio", c.Split.TrainRatio},
		{"split.validation_ratio", c.Split.ValidationRatio},
		{"split.test_ratio", c.Split.TestRatio},
	}
	for _, r := range ratios {
		if r.value <= 0 || r.value >= 1 {
			return fmt.Errorf("%s must be between 0 and 1 (exclusive)", r.name)
		}
	}
	sum := c.Split.TrainRatio + c.Split.ValidationRatio + c.Split.TestRatio
	if math.Abs(sum-1) > 1e-6 {
		return fmt.Errorf("split ratios must sum to 1, got %.4f", sum)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
