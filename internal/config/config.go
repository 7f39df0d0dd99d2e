package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"speechset/internal/annotations"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths locates inputs and the state directory.
type Paths struct {
	DocumentsDir       string `toml:"documents_dir"`
	AnnotationsDir     string `toml:"annotations_dir"`
	SpeechesFile       string `toml:"speeches_file"`
	SpeechContentsFile string `toml:"speech_contents_file"`
	MapContentsFile    string `toml:"map_contents_file"`
	StateDir           string `toml:"state_dir"`
}

// Dataset controls how transcripts and tables are read and filtered.
type Dataset struct {
	TargetLanguage string `toml:"target_language"`
	Encoding       string `toml:"encoding"`
	Delimiter      string `toml:"delimiter"`
}

// Split controls train/validation/test partitioning.
type Split struct {
	TrainRatio      float64 `toml:"train_ratio"`
	ValidationRatio float64 `toml:"validation_ratio"`
	TestRatio       float64 `toml:"test_ratio"`
	Seed            uint64  `toml:"seed"`
	Oversample      bool    `toml:"oversample"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for speechset.
//
// Configuration sections:
//   - Paths: transcript directory, annotation tables, state directory
//   - Dataset: target language and table decoding
//   - Split: ratios, seed, and oversampling for exported splits
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	Dataset Dataset `toml:"dataset"`
	Split   Split   `toml:"split"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the state and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.StateDir, c.LogDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// SpeechesPath returns the absolute path of the speeches table.
func (c *Config) SpeechesPath() string {
	return c.annotationPath(c.Paths.SpeechesFile)
}

// SpeechContentsPath returns the absolute path of the speech contents table.
func (c *Config) SpeechContentsPath() string {
	return c.annotationPath(c.Paths.SpeechContentsFile)
}

// MapContentsPath returns the absolute path of the content map table.
func (c *Config) MapContentsPath() string {
	return c.annotationPath(c.Paths.MapContentsFile)
}

func (c *Config) annotationPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Paths.AnnotationsDir, name)
}

// AnnotationPaths bundles the three table locations.
func (c *Config) AnnotationPaths() annotations.Paths {
	return annotations.Paths{
		Speeches:       c.SpeechesPath(),
		SpeechContents: c.SpeechContentsPath(),
		ContentMap:     c.MapContentsPath(),
	}
}

// ReadOptions returns the table decoding options.
func (c *Config) ReadOptions() annotations.ReadOptions {
	opts := annotations.DefaultReadOptions()
	opts.Encoding = c.Dataset.Encoding
	if r := []rune(c.Dataset.Delimiter); len(r) == 1 {
		opts.Delimiter = r[0]
	}
	return opts
}

// DatabasePath returns the dataset database location.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Paths.StateDir, "dataset.db")
}

// LockPath returns the build lock location.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.StateDir, "speechset.lock")
}

// LogDir returns the directory holding log files.
func (c *Config) LogDir() string {
	return filepath.Join(c.Paths.StateDir, "logs")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
