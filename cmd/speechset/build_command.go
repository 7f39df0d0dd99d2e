package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"speechset/internal/annotations"
	"speechset/internal/config"
	"speechset/internal/dataset"
	"speechset/internal/language"
	"speechset/internal/logging"
	"speechset/internal/store"
	"speechset/internal/textutil"
)

type buildOutput struct {
	RunID   string          `json:"run_id,omitempty"`
	Stored  bool            `json:"stored"`
	Summary dataset.Summary `json:"summary"`
}

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var documentsDir string
	var annotationsDir string
	var targetLanguage string
	var noStore bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble the labeled paragraph dataset from the transcript directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyBuildOverrides(cfg, documentsDir, annotationsDir, targetLanguage); err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			lock, err := store.AcquireLock(cfg.LockPath())
			if err != nil {
				return err
			}
			defer lock.Release()

			tables, err := annotations.Load(cfg.AnnotationPaths(), cfg.ReadOptions())
			if err != nil {
				return fmt.Errorf("load annotations: %w", err)
			}

			runID := store.NewRunID()
			runCtx := logging.WithRunID(cmd.Context(), runID)
			runLogger := logging.WithContext(runCtx, logger)
			runLogger.Info("building dataset",
				logging.String("documents_dir", cfg.Paths.DocumentsDir),
				logging.String("target_language", language.DisplayName(cfg.Dataset.TargetLanguage)),
				logging.Int("speeches", tables.Speeches.Len()),
			)

			assembler, err := dataset.NewAssembler(dataset.Options{
				Tables:         tables,
				Detector:       newDetector(),
				TargetLanguage: cfg.Dataset.TargetLanguage,
				Encoding:       cfg.Dataset.Encoding,
				Reporter:       dataset.NewLogReporter(runLogger),
			})
			if err != nil {
				return err
			}
			ds, summary, err := assembler.Build(runCtx, cfg.Paths.DocumentsDir)
			if err != nil {
				return fmt.Errorf("build dataset: %w", err)
			}

			result := buildOutput{Summary: summary}
			if !noStore {
				st, err := store.Open(runCtx, cfg.DatabasePath())
				if err != nil {
					return fmt.Errorf("open store: %w", err)
				}
				defer st.Close()
				run := store.NewRun(runID, cfg.Paths.DocumentsDir, cfg.Dataset.TargetLanguage, summary)
				if err := st.SaveRun(runCtx, run, ds, summary.Skips); err != nil {
					return err
				}
				result.RunID = runID
				result.Stored = true
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, summary.Line())
			if result.Stored {
				fmt.Fprintf(out, "Run %s stored in %s\n", runID, cfg.DatabasePath())
			}
			fmt.Fprintf(out, "Elapsed %s\n", textutil.FormatElapsed(summary.Elapsed))
			return nil
		},
	}

	cmd.Flags().StringVar(&documentsDir, "documents", "", "Transcript directory (overrides paths.documents_dir)")
	cmd.Flags().StringVar(&annotationsDir, "annotations", "", "Annotation table directory (overrides paths.annotations_dir)")
	cmd.Flags().StringVar(&targetLanguage, "language", "", "Language to keep (overrides dataset.target_language)")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "Do not record the run in the state database")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the build summary as JSON")
	return cmd
}

func applyBuildOverrides(cfg *config.Config, documentsDir, annotationsDir, targetLanguage string) error {
	if dir := strings.TrimSpace(documentsDir); dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return fmt.Errorf("resolve documents directory: %w", err)
		}
		cfg.Paths.DocumentsDir = expanded
	}
	if dir := strings.TrimSpace(annotationsDir); dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return fmt.Errorf("resolve annotations directory: %w", err)
		}
		cfg.Paths.AnnotationsDir = expanded
	}
	if code := strings.TrimSpace(targetLanguage); code != "" {
		if !language.Recognized(code) {
			return fmt.Errorf("unrecognized language %q", code)
		}
		cfg.Dataset.TargetLanguage = language.ToISO2(code)
	}
	return nil
}
