package preflight

import (
	"context"

	"speechset/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll executes every check for the given config in a fixed order.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryReadable("Documents directory", cfg.Paths.DocumentsDir),
		CheckDirectoryReadable("Annotations directory", cfg.Paths.AnnotationsDir),
		CheckTable("Speeches table", cfg.SpeechesPath(), cfg.ReadOptions(), SpeechesRows),
		CheckTable("Speech contents table", cfg.SpeechContentsPath(), cfg.ReadOptions(), SpeechContentsRows),
		CheckTable("Content map table", cfg.MapContentsPath(), cfg.ReadOptions(), ContentMapRows),
		CheckDirectoryAccess("State directory", cfg.Paths.StateDir),
	}
	return append(results, CheckStore(ctx, cfg.DatabasePath()))
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}
