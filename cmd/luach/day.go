package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/luach-api/internal/calendar"
)

func newDayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "Show the Hebrew date, holiday, parsha and study pages of a day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.day(args)
			if err != nil {
				return err
			}
			info, err := a.resolver.Resolve(e)
			if err != nil {
				return err
			}
			info = info.Localize(a.catalog())

			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), info)
			}
			return printDay(cmd.OutOrStdout(), info)
		},
	}
}

func printDay(w io.Writer, d calendar.DayInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Date:\t%s (%s)\n", d.Date, d.WeekdayName)
	fmt.Fprintf(tw, "Hebrew:\t%s\n", d.Hebrew.Formatted)
	if d.HolidayName != "" {
		fmt.Fprintf(tw, "Holiday:\t%s\n", d.HolidayName)
	}
	if obs := observanceList(d.Observances); len(obs) > 0 {
		fmt.Fprintf(tw, "Observances:\t%s\n", strings.Join(obs, ", "))
	}
	if d.DayOfOmer > 0 {
		fmt.Fprintf(tw, "Omer:\t%s day\n", calendar.Ordinal(d.DayOfOmer))
	}
	if d.DayOfChanukah > 0 {
		fmt.Fprintf(tw, "Chanukah:\t%s day\n", calendar.Ordinal(d.DayOfChanukah))
	}
	if d.ParshaName != "" {
		fmt.Fprintf(tw, "Parsha:\t%s\n", d.ParshaName)
	}
	if d.SpecialShabbosName != "" {
		fmt.Fprintf(tw, "Shabbos:\t%s\n", d.SpecialShabbosName)
	}
	if d.Upcoming.Name != "" {
		fmt.Fprintf(tw, "Upcoming:\t%s (%s)\n", d.Upcoming.Name, d.Upcoming.Date)
	}
	if m := d.Molad; m != nil {
		fmt.Fprintf(tw, "Molad %s:\t%s %d:%02d and %d chalakim\n", m.MonthName, m.Date, m.Hours, m.Minutes, m.Chalakim)
	}
	for _, df := range d.Dafs {
		fmt.Fprintf(tw, "Daf (%s):\t%s %d\n", df.Cycle, df.VolumeName, df.Folio)
	}

	return tw.Flush()
}

// observanceList names the observances that hold on a day.
func observanceList(o calendar.Observances) []string {
	flags := []struct {
		on   bool
		name string
	}{
		{o.YomTov, "yom tov"},
		{o.ErevYomTov, "erev yom tov"},
		{o.AssurBemelacha, "assur bemelacha"},
		{o.FastDay, "fast day"},
		{o.CholHamoed, "chol hamoed"},
		{o.RoshChodesh, "rosh chodesh"},
		{o.ErevRoshChodesh, "erev rosh chodesh"},
		{o.Chanukah, "chanukah"},
		{o.Purim, "purim"},
		{o.AseresYemeiTeshuva, "aseres yemei teshuva"},
		{o.TaanisBechoros, "taanis bechoros"},
		{o.YomKippurKatan, "yom kippur katan"},
		{o.BeHaB, "behab"},
	}

	var out []string
	for _, f := range flags {
		if f.on {
			out = append(out, f.name)
		}
	}
	return out
}
