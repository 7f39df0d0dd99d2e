package config

import (
	"fmt"
	"os"
	"strings"

	"speechset/internal/language"
	"speechset/internal/textutil"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDataset()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.DocumentsDir) == "" {
		c.Paths.DocumentsDir = defaultDocumentsDir
		if value, ok := os.LookupEnv("SPEECHSET_DOCUMENTS_DIR"); ok && strings.TrimSpace(value) != "" {
			c.Paths.DocumentsDir = strings.TrimSpace(value)
		}
	}
	if strings.TrimSpace(c.Paths.AnnotationsDir) == "" {
		c.Paths.AnnotationsDir = defaultAnnotationsDir
		if value, ok := os.LookupEnv("SPEECHSET_ANNOTATIONS_DIR"); ok && strings.TrimSpace(value) != "" {
			c.Paths.AnnotationsDir = strings.TrimSpace(value)
		}
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}

	var err error
	if c.Paths.DocumentsDir, err = expandPath(strings.TrimSpace(c.Paths.DocumentsDir)); err != nil {
		return fmt.Errorf("paths.documents_dir: %w", err)
	}
	if c.Paths.AnnotationsDir, err = expandPath(strings.TrimSpace(c.Paths.AnnotationsDir)); err != nil {
		return fmt.Errorf("paths.annotations_dir: %w", err)
	}
	if c.Paths.StateDir, err = expandPath(strings.TrimSpace(c.Paths.StateDir)); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	c.Paths.SpeechesFile = strings.TrimSpace(c.Paths.SpeechesFile)
	c.Paths.SpeechContentsFile = strings.TrimSpace(c.Paths.SpeechContentsFile)
	c.Paths.MapContentsFile = strings.TrimSpace(c.Paths.MapContentsFile)
	return nil
}

func (c *Config) normalizeDataset() {
	target := strings.TrimSpace(c.Dataset.TargetLanguage)
	if target == "" {
		target = defaultTargetLanguage
	}
	if iso2 := language.ToISO2(target); iso2 != "" {
		target = iso2
	}
	c.Dataset.TargetLanguage = strings.ToLower(target)

	if normalized, err := textutil.NormalizeEncoding(c.Dataset.Encoding); err == nil {
		c.Dataset.Encoding = normalized
	} else {
		c.Dataset.Encoding = strings.ToLower(strings.TrimSpace(c.Dataset.Encoding))
	}

	switch c.Dataset.Delimiter {
	case "":
		c.Dataset.Delimiter = defaultDelimiter
	case `\t`, "tab":
		c.Dataset.Delimiter = "\t"
	}
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch format {
	case "", "console", "text", "pretty":
		c.Logging.Format = "console"
	default:
		c.Logging.Format = format
	}
	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if level == "" {
		level = defaultLogLevel
	}
	c.Logging.Level = level
}
