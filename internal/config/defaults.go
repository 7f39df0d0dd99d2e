package config

const (
	defaultConfigPath         = "~/.config/speechset/config.toml"
	projectConfigName         = "speechset.toml"
	defaultDocumentsDir       = "data/documents"
	defaultAnnotationsDir     = "data/annotations"
	defaultSpeechesFile       = "Speeches-20210520.txt"
	defaultSpeechContentsFile = "Speech_Contents-20210520.txt"
	defaultMapContentsFile    = "Map_Contents-20200726.csv"
	defaultStateDir           = "~/.local/share/speechset"
	defaultTargetLanguage     = "en"
	defaultEncoding           = "latin1"
	defaultDelimiter          = ","
	defaultTrainRatio         = 0.8
	defaultValidationRatio    = 0.1
	defaultTestRatio          = 0.1
	defaultSplitSeed          = 42
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults. The input
// directories stay empty so environment fallbacks can apply during Load.
func Default() Config {
	return Config{
		Paths: Paths{
			SpeechesFile:       defaultSpeechesFile,
			SpeechContentsFile: defaultSpeechContentsFile,
			MapContentsFile:    defaultMapContentsFile,
			StateDir:           defaultStateDir,
		},
		Dataset: Dataset{
			TargetLanguage: defaultTargetLanguage,
			Encoding:       defaultEncoding,
			Delimiter:      defaultDelimiter,
		},
		Split: Split{
			TrainRatio:      defaultTrainRatio,
			ValidationRatio: defaultValidationRatio,
			TestRatio:       defaultTestRatio,
			Seed:            defaultSplitSeed,
			Oversample:      true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
