package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hansard/internal/fetch"
	"hansard/internal/ingest"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	var (
		fromDate string
		toDate   string
		oneDate  string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Fetch, parse, and store sittings for a date range",
		Long: `Ingest walks a date range, fetching the transcript for each day,
parsing it into attendance, absence, and speech records, and applying
an idempotent upsert plan to the local database. With no flags the walk
resumes after the most recently stored sitting and ends today.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if oneDate != "" && (fromDate != "" || toDate != "") {
				return errors.New("--date cannot be combined with --from or --to")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}
			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			roster, err := loadRoster(cmd.Context(), st)
			if err != nil {
				return err
			}
			runner, err := ingest.NewRunner(cfg, st, fetch.NewClient(cfg), logger, roster, ingest.WithDryRun(dryRun))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if oneDate != "" {
				counts, anomalies, err := runner.ProcessDate(cmd.Context(), oneDate)
				if errors.Is(err, fetch.ErrNoSitting) {
					fmt.Fprintf(out, "No sitting on %s\n", oneDate)
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Ingested %s: %d inserted, %d updated, %d unchanged, %d anomalies\n",
					oneDate, counts.Inserts, counts.Updates, counts.Noops, anomalies)
				if dryRun {
					fmt.Fprintln(out, "Dry run: nothing was written")
				}
				return nil
			}

			summary, err := runner.Run(cmd.Context(), fromDate, toDate)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Run complete: %s to %s\n", summary.From, summary.To)
			fmt.Fprintf(out, "  Sittings ingested:  %d\n", summary.Processed)
			fmt.Fprintf(out, "  Days without one:   %d\n", summary.NoSitting)
			fmt.Fprintf(out, "  Sittings skipped:   %d\n", summary.Skipped)
			fmt.Fprintf(out, "  Records inserted:   %d\n", summary.Inserts)
			fmt.Fprintf(out, "  Records updated:    %d\n", summary.Updates)
			fmt.Fprintf(out, "  Anomalies reported: %d\n", summary.Anomalies)
			if dryRun {
				fmt.Fprintln(out, "Dry run: nothing was written")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromDate, "from", "", "First sitting date to ingest (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toDate, "to", "", "Last sitting date to ingest (YYYY-MM-DD)")
	cmd.Flags().StringVar(&oneDate, "date", "", "Re-ingest a single sitting date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Plan every sitting without writing to the database")

	return cmd
}
