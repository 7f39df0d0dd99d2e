package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"speechset/internal/annotations"
	"speechset/internal/identifier"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "resolve [file...]",
		Short: "Show how transcript file names map to speech ids",
		Long: "Resolve derives the speech identifier from each transcript file name, " +
			"applies the known corrections, and looks it up in the speeches table. " +
			"Without arguments every file of the documents directory is resolved.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			speeches, err := annotations.LoadSpeeches(cfg.SpeechesPath(), cfg.ReadOptions())
			if err != nil {
				return fmt.Errorf("load speeches: %w", err)
			}

			names := args
			if len(names) == 0 {
				names, err = transcriptNames(cfg.Paths.DocumentsDir)
				if err != nil {
					return err
				}
			}

			resolver := identifier.NewResolver(identifier.DefaultNormalizer(), speeches)
			results := make([]identifier.Resolution, 0, len(names))
			for _, name := range names {
				results = append(results, resolver.Resolve(name))
			}

			if jsonOutput {
				return writeJSON(cmd, results)
			}
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No transcripts found")
				return nil
			}
			rows := make([][]string, 0, len(results))
			for _, res := range results {
				id := ""
				if res.Found() {
					id = strconv.Itoa(res.SpeechID)
				}
				rows = append(rows, []string{res.FileName, res.Normalized, string(res.Status), id})
			}
			fmt.Fprint(out, renderTable(
				[]string{"File", "Identifier", "Status", "Speech ID"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
			))
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output resolutions as JSON")
	return cmd
}

func transcriptNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list transcripts: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
