package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"hansard/internal/ingest"
	"hansard/internal/names"
)

func newParseCommand(ctx *commandContext) *cobra.Command {
	var sittingDate string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a local transcript document without storing it",
		Long: `Parse runs the full pipeline over a transcript document on disk and
prints the records and anomalies it would produce. Nothing is fetched
and nothing is written, so it is useful for inspecting a document
offline or debugging extraction.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if _, err := time.Parse("2006-01-02", sittingDate); err != nil {
				return fmt.Errorf("invalid sitting date %q: expected YYYY-MM-DD", sittingDate)
			}

			doc, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}
			absPath, err := filepath.Abs(args[0])
			if err != nil {
				absPath = args[0]
			}

			result, err := ingest.NewPipeline(cfg).Process(string(doc), sittingDate, "file://"+absPath, names.NewRoster(nil))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			records := result.Records
			fmt.Fprintf(out, "Sitting %s (parliament %d)\n", records.Sitting.Date, records.Sitting.ParliamentNo)
			fmt.Fprintf(out, "  Attendance rows: %d\n", len(records.Attendance))
			fmt.Fprintf(out, "  Absence rows:    %d\n", len(records.PTBA))
			fmt.Fprintf(out, "  Speech rows:     %d\n", len(records.Speeches))

			if len(records.Speeches) > 0 {
				rows := make([][]string, 0, len(records.Speeches))
				for _, speech := range records.Speeches {
					rows = append(rows, []string{
						strconv.Itoa(speech.Seq),
						speech.Speaker,
						string(speech.Role),
						yesNo(speech.Resolved),
						truncate(speech.Topic, 40),
						strconv.Itoa(speech.WordCount),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Seq", "Speaker", "Role", "Resolved", "Topic", "Words"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
				))
			}

			if len(result.Anomalies) > 0 {
				fmt.Fprintf(out, "Anomalies (%d):\n", len(result.Anomalies))
				for _, anomaly := range result.Anomalies {
					fmt.Fprintf(out, "  %s\n", anomaly)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sittingDate, "date", "", "Sitting date of the document (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
