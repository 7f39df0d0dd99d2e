package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"speechset/internal/dataset"
	"speechset/internal/language"
	"speechset/internal/store"
	"speechset/internal/textutil"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect dataset builds recorded in the state database",
	}
	runsCmd.AddCommand(newRunsListCommand(ctx))
	runsCmd.AddCommand(newRunsShowCommand(ctx))
	runsCmd.AddCommand(newRunsDeleteCommand(ctx))
	return runsCmd
}

// withStore opens the state database for the duration of fn.
func (c *commandContext) withStore(cmd *cobra.Command, fn func(context.Context, *store.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	st, err := store.Open(cmd.Context(), cfg.DatabasePath())
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	return fn(cmd.Context(), st)
}

func newRunsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd, func(c context.Context, st *store.Store) error {
				runs, err := st.ListRuns(c)
				if err != nil {
					return err
				}
				if jsonOutput {
					if runs == nil {
						runs = []store.Run{}
					}
					return writeJSON(cmd, runs)
				}
				out := cmd.OutOrStdout()
				if len(runs) == 0 {
					fmt.Fprintln(out, "No runs stored")
					return nil
				}
				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, []string{
						run.ID,
						run.CreatedAt.Local().Format(time.DateTime),
						language.DisplayName(run.TargetLanguage),
						strconv.Itoa(run.FilesRead),
						strconv.Itoa(run.FilesSkipped),
						strconv.Itoa(run.Paragraphs),
						strconv.Itoa(run.Positives),
					})
				}
				fmt.Fprint(out, renderTable(
					[]string{"Run", "Created", "Language", "Read", "Skipped", "Paragraphs", "Positives"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
				))
				fmt.Fprintln(out)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output runs as JSON")
	return cmd
}

type runDetail struct {
	store.Run
	Skips []dataset.Skip `json:"skips"`
}

func newRunsShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "show [run-id]",
		Short: "Show a stored run and its skipped files (latest when no id is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd, func(c context.Context, st *store.Store) error {
				run, err := lookupRun(c, st, args)
				if err != nil {
					return err
				}
				skips, err := st.ListSkips(c, run.ID)
				if err != nil {
					return err
				}
				if jsonOutput {
					if skips == nil {
						skips = []dataset.Skip{}
					}
					return writeJSON(cmd, runDetail{Run: run, Skips: skips})
				}

				out := cmd.OutOrStdout()
				summary := dataset.Summary{
					FilesRead:    run.FilesRead,
					Paragraphs:   run.Paragraphs,
					FilesSkipped: run.FilesSkipped,
				}
				fmt.Fprintf(out, "Run:       %s\n", run.ID)
				fmt.Fprintf(out, "Created:   %s\n", run.CreatedAt.Local().Format(time.DateTime))
				fmt.Fprintf(out, "Documents: %s\n", run.DocumentsDir)
				fmt.Fprintf(out, "Language:  %s\n", language.DisplayName(run.TargetLanguage))
				fmt.Fprintf(out, "Positives: %d\n", run.Positives)
				fmt.Fprintf(out, "Elapsed:   %s\n", textutil.FormatElapsed(run.Duration))
				fmt.Fprintln(out, summary.Line())
				if len(skips) == 0 {
					return nil
				}
				rows := make([][]string, 0, len(skips))
				for _, skip := range skips {
					rows = append(rows, []string{skip.File, string(skip.Reason), skip.Detail})
				}
				fmt.Fprint(out, renderTable([]string{"File", "Reason", "Detail"}, rows, nil))
				fmt.Fprintln(out)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the run as JSON")
	return cmd
}

func newRunsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Delete a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd, func(c context.Context, st *store.Store) error {
				if err := st.DeleteRun(c, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s\n", args[0])
				return nil
			})
		},
	}
}

func lookupRun(ctx context.Context, st *store.Store, args []string) (store.Run, error) {
	if len(args) > 0 && args[0] != "" {
		return st.GetRun(ctx, args[0])
	}
	return st.LatestRun(ctx)
}
