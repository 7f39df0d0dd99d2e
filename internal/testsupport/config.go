package testsupport

import (
	"path/filepath"
	"testing"

	"speechset/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DocumentsDir = filepath.Join(base, "documents")
	cfgVal.Paths.AnnotationsDir = filepath.Join(base, "annotations")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.SpeechesFile = "Speeches.csv"
	cfgVal.Paths.SpeechContentsFile = "Speech_Contents.csv"
	cfgVal.Paths.MapContentsFile = "Map_Contents.csv"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithCorpus writes the given corpus into the config's documents and
// annotations directories.
func WithCorpus(c Corpus) ConfigOption {
	return func(b *configBuilder) {
		c.Write(b.t, b.cfg)
	}
}

// WithTargetLanguage overrides the dataset target language.
func WithTargetLanguage(code string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Dataset.TargetLanguage = code
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}
