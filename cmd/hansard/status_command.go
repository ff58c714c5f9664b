package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const (
	ansiReset = "\x1b[0m"
	ansiBlue  = "\x1b[34m"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show per-sitting record counts for the stored database",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			summaries, err := st.Summaries(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(summaries) == 0 {
				fmt.Fprintln(out, "No sittings stored")
				return nil
			}

			for _, line := range renderSectionHeader("Stored sittings", shouldColorize(out)) {
				fmt.Fprintln(out, line)
			}

			rows := make([][]string, 0, len(summaries))
			for _, sum := range summaries {
				rows = append(rows, []string{
					sum.Date,
					strconv.Itoa(sum.ParliamentNo),
					strconv.Itoa(sum.Attendance),
					strconv.Itoa(sum.PTBA),
					strconv.Itoa(sum.Speeches),
					strconv.Itoa(sum.Words),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Date", "Parliament", "Attendance", "Absences", "Speeches", "Words"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of sittings to show (0 for all)")

	return cmd
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", title)
	if colorize {
		line = ansiBlue + line + ansiReset
	}
	return []string{line}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
