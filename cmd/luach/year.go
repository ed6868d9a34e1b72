package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/luach-api/internal/calendar"
	"github.com/zapponejosh/luach-api/internal/hebdate"
)

func newYearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "year [hebrew-year]",
		Short: "Show the structure and key dates of a Hebrew year",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := a.hebrewYear(args)
			if err != nil {
				return err
			}
			info, err := a.resolver.Year(year)
			if err != nil {
				return err
			}
			info = info.Localize(a.catalog())

			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), info)
			}
			return printYear(cmd.OutOrStdout(), info)
		},
	}
}

// hebrewYear parses the optional year argument, defaulting to the current
// Hebrew year.
func (a *app) hebrewYear(args []string) (int, error) {
	if len(args) == 0 {
		d, err := hebdate.FromEpochDay(calendar.Today(time.Now(), a.cfg.Location()))
		if err != nil {
			return 0, err
		}
		return d.Year(), nil
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", args[0])
	}
	return year, nil
}

func printYear(w io.Writer, y calendar.YearInfo) error {
	leap := "common"
	if y.LeapYear {
		leap = "leap"
	}
	fmt.Fprintf(w, "=== Hebrew Year %d ===\n\n", y.Year)
	fmt.Fprintf(w, "  %s year, %s, %d days, %d months\n", leap, y.Type, y.Length, y.Months)
	fmt.Fprintf(w, "  Year %d of cycle %d\n", y.YearOfCycle, y.Cycle)
	fmt.Fprintf(w, "  Rosh Hashana:  %s (%s)\n", y.RoshHashana, calendar.DayName(dayOf(y.RoshHashana)))
	fmt.Fprintf(w, "  Molad Tishrei: %s %d:%02d and %d chalakim\n", y.Molad.Date, y.Molad.Hours, y.Molad.Minutes, y.Molad.Chalakim)
	fmt.Fprintf(w, "  Parsha row:    %d\n", y.ParshaRow)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Key Dates:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, k := range y.KeyDates {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", k.Name, k.Hebrew.Formatted, k.Date, calendar.DayName(dayOf(k.Date)))
	}
	return tw.Flush()
}

// dayOf parses a date produced by the calendar package.
func dayOf(s string) hebdate.EpochDay {
	e, _ := calendar.ParseDateString(s)
	return e
}
