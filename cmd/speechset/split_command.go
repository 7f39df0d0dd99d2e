package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"speechset/internal/config"
	"speechset/internal/split"
	"speechset/internal/store"
)

func newSplitCommand(ctx *commandContext) *cobra.Command {
	var runID string
	var outDir string
	var noOversample bool

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Export train, validation and test CSV files from a stored run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			target := strings.TrimSpace(outDir)
			if target == "" {
				target = filepath.Join(cfg.Paths.StateDir, "splits")
			} else if target, err = config.ExpandPath(target); err != nil {
				return fmt.Errorf("resolve output directory: %w", err)
			}

			return ctx.withStore(cmd, func(c context.Context, st *store.Store) error {
				var run store.Run
				var err error
				if id := strings.TrimSpace(runID); id != "" {
					run, err = st.GetRun(c, id)
				} else {
					run, err = st.LatestRun(c)
				}
				if err != nil {
					return err
				}
				examples, err := st.LoadExamples(c, run.ID)
				if err != nil {
					return err
				}
				if len(examples) == 0 {
					return fmt.Errorf("run %s has no paragraphs with text", run.ID)
				}

				ratios := split.Ratios{
					Train:      cfg.Split.TrainRatio,
					Validation: cfg.Split.ValidationRatio,
					Test:       cfg.Split.TestRatio,
				}
				partition, err := split.Split(examples, ratios, cfg.Split.Seed)
				if err != nil {
					return err
				}
				oversampled := cfg.Split.Oversample && !noOversample
				if oversampled {
					partition.Train = split.Oversample(partition.Train, cfg.Split.Seed)
				}
				if err := split.WriteDir(target, partition); err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				rows := [][]string{
					splitRow(split.TrainFile, partition.Train),
					splitRow(split.ValidationFile, partition.Validation),
					splitRow(split.TestFile, partition.Test),
				}
				fmt.Fprint(out, renderTable(
					[]string{"File", "Examples", "Positives", "Negatives"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
				))
				fmt.Fprintln(out)
				fmt.Fprintf(out, "Run %s split into %s (oversampled train: %s)\n", run.ID, target, yesNo(oversampled))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&runID, "run", "", "Run to export (defaults to the latest run)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (defaults to <state_dir>/splits)")
	cmd.Flags().BoolVar(&noOversample, "no-oversample", false, "Keep the training set unbalanced")
	return cmd
}

func splitRow(name string, examples []split.Example) []string {
	positives, negatives := split.Counts(examples)
	return []string{name, strconv.Itoa(len(examples)), strconv.Itoa(positives), strconv.Itoa(negatives)}
}
