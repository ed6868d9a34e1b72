package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/luach-api/internal/calendar"
	"github.com/zapponejosh/luach-api/internal/daf"
)

// dafRow is one line of daf output.
type dafRow struct {
	Date       string `json:"date"`
	Volume     int    `json:"volume"`
	VolumeName string `json:"volume_name"`
	Page       int    `json:"page"`
	Folio      int    `json:"folio"`
}

func newDafCmd(a *app) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "daf <cycle> [YYYY-MM-DD]",
		Short: "Show the study page of a cycle",
		Long: `Daf prints the page of a study cycle read on a day, or on each day of
a span with --days. Days without a reading are left out.

Built-in cycles are bavli and yerushalmi; more can be added with --cycles.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := a.resolver.Dafs().Get(args[0])
			if err != nil {
				return fmt.Errorf("%w (known: %v)", err, a.resolver.Dafs().Names())
			}
			start, err := a.day(args[1:])
			if err != nil {
				return err
			}
			if days < 1 {
				return fmt.Errorf("--days must be positive, got %d", days)
			}

			rows := dafRows(calc, calc.Range(start, start.Add(days-1)))
			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), rows)
			}
			if len(rows) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No %s reading on %s\n", args[0], start)
				return nil
			}
			first := dayOf(rows[0].Date)
			if n, ok := calc.CycleNumber(first); ok {
				began, _ := calc.CycleStart(first)
				fmt.Fprintf(cmd.OutOrStdout(), "Cycle %d of %s, began %s\n", n, args[0], began)
			}
			return printDafRows(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().IntVarP(&days, "days", "n", 1, "Number of days to show")
	return cmd
}

func dafRows(calc *daf.Calculator, entries []daf.Entry) []dafRow {
	c := calc.Cycle()
	rows := make([]dafRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, dafRow{
			Date:       e.Day.String(),
			Volume:     e.Daf.Volume,
			VolumeName: c.VolumeName(e.Daf),
			Page:       e.Daf.Page,
			Folio:      c.Folio(e.Daf),
		})
	}
	return rows
}

func printDafRows(w io.Writer, rows []dafRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s %d\n", r.Date, calendar.DayName(dayOf(r.Date)), r.VolumeName, r.Folio)
	}
	return tw.Flush()
}
