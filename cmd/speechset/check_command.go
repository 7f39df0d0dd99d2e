package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"speechset/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the transcript directory, annotation tables and state database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(cmd.Context(), cfg)
			if jsonOutput {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				rows := make([][]string, 0, len(results))
				for _, r := range results {
					rows = append(rows, []string{r.Name, checkStatus(r.Passed), r.Detail})
				}
				out := cmd.OutOrStdout()
				fmt.Fprint(out, renderTable([]string{"Check", "Status", "Detail"}, rows, nil))
				fmt.Fprintln(out)
			}
			if preflight.Failed(results) {
				return errors.New("one or more checks failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output check results as JSON")
	return cmd
}

func checkStatus(passed bool) string {
	if passed {
		return "ok"
	}
	return "FAIL"
}
