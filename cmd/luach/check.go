package main

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/luach-api/internal/calendar"
	"github.com/zapponejosh/luach-api/internal/daf"
	"github.com/zapponejosh/luach-api/internal/hebdate"
)

// CheckFailure is one violated property.
type CheckFailure struct {
	Check  string `json:"check"`
	Date   string `json:"date"`
	Detail string `json:"detail"`
}

// CheckReport summarizes a sweep.
type CheckReport struct {
	From     string         `json:"from"`
	To       string         `json:"to"`
	Days     int            `json:"days"`
	Years    int            `json:"years"`
	Failures []CheckFailure `json:"failures"`
}

// ByCheck counts failures per check name.
func (r CheckReport) ByCheck() map[string]int {
	out := make(map[string]int)
	for _, f := range r.Failures {
		out[f.Check]++
	}
	return out
}

func newCheckCmd(a *app) *cobra.Command {
	var (
		fromStr string
		toStr   string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Sweep a span of days and verify calendar invariants",
		Long: `Check resolves every day in the span and verifies that:

  - Hebrew dates round-trip to the same civil day
  - Rosh Hashana never falls on Sunday, Wednesday or Friday
  - year lengths and leap years follow the 19-year cycle
  - the upcoming parsha is on a later Shabbos
  - every study cycle advances one page per reading day and wraps at its end

It exits non-zero when any check fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseSpan(fromStr, toStr)
			if err != nil {
				return err
			}

			report := runChecks(a.resolver, from, to)
			if a.asJSON {
				if err := printJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			} else {
				printReport(cmd.OutOrStdout(), report, verbose)
			}

			if n := len(report.Failures); n > 0 {
				return fmt.Errorf("%d checks failed", n)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "First day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "Last day (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every failure")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// dafTrack follows one cycle through the sweep.
type dafTrack struct {
	name  string
	cycle daf.Cycle
	total int
	prev  int // linear page index of the last reading day, -1 before the first
}

// index returns the zero-based position of d within one pass of c.
func index(c daf.Cycle, d daf.Daf) int {
	n := 0
	for i := 0; i < d.Volume && i < len(c.Volumes); i++ {
		n += c.Volumes[i].Pages
	}
	return n + d.Page - 1
}

func isLeapPosition(pos int) bool {
	switch pos {
	case 3, 6, 8, 11, 14, 17, 19:
		return true
	}
	return false
}

func runChecks(r *calendar.Resolver, from, to hebdate.EpochDay) CheckReport {
	report := CheckReport{From: from.String(), To: to.String(), Failures: []CheckFailure{}}
	fail := func(check string, e hebdate.EpochDay, format string, args ...any) {
		report.Failures = append(report.Failures, CheckFailure{
			Check:  check,
			Date:   e.String(),
			Detail: fmt.Sprintf(format, args...),
		})
	}

	var tracks []*dafTrack
	for _, name := range r.Dafs().Names() {
		calc, err := r.Dafs().Get(name)
		if err != nil {
			continue
		}
		c := calc.Cycle()
		tracks = append(tracks, &dafTrack{name: name, cycle: c, total: c.TotalPages(), prev: -1})
	}

	years := make(map[int]bool)
	for e := from; e <= to; e++ {
		report.Days++

		d, err := hebdate.FromEpochDay(e)
		if err != nil {
			fail("round_trip", e, "%v", err)
			continue
		}
		if back := d.EpochDay(); back != e {
			fail("round_trip", e, "%s maps back to %s", d, back)
		}
		if d.Weekday() != e.Weekday() {
			fail("weekday", e, "hebrew weekday %s, civil weekday %s", d.Weekday(), e.Weekday())
		}

		if !years[d.Year()] {
			years[d.Year()] = true
			checkYear(d.Year(), fail)
		}

		info := r.ResolveDate(d)
		up, err := calendar.ParseDateString(info.Upcoming.Date)
		switch {
		case err != nil:
			fail("upcoming_parsha", e, "bad date %q", info.Upcoming.Date)
		case up <= e || up.Weekday() != time.Saturday:
			fail("upcoming_parsha", e, "upcoming parsha on %s (%s)", up, up.Weekday())
		}

		for _, t := range tracks {
			page, ok := findDaf(info.Dafs, t.name)
			if !ok {
				continue
			}
			idx := index(t.cycle, daf.Daf{Volume: page.Volume, Page: page.Page})
			if t.prev >= 0 && idx != t.prev+1 && !(idx == 0 && t.prev == t.total-1) {
				fail("daf_sequence", e, "%s went from page %d to %d", t.name, t.prev, idx)
			}
			t.prev = idx
		}
	}

	report.Years = len(years)
	return report
}

// checkYear verifies the year-level rules of the calendar.
func checkYear(year int, fail func(string, hebdate.EpochDay, string, ...any)) {
	rh := hebdate.RoshHashana(year)
	switch rh.Weekday() {
	case time.Sunday, time.Wednesday, time.Friday:
		fail("rosh_hashana_weekday", rh, "Rosh Hashana %d on %s", year, rh.Weekday())
	}

	length := hebdate.YearLength(year)
	if hebdate.RoshHashana(year+1)-rh != hebdate.EpochDay(length) {
		fail("year_length", rh, "year %d length %d does not reach the next Rosh Hashana", year, length)
	}
	leap := hebdate.IsLeapYear(year)
	switch {
	case leap && (length < 383 || length > 385),
		!leap && (length < 353 || length > 355):
		fail("year_length", rh, "year %d (leap %v) has %d days", year, leap, length)
	}

	_, pos := calendar.MetonicCycle(year)
	if leap != isLeapPosition(pos) {
		fail("leap_cycle", rh, "year %d is position %d of its cycle, leap %v", year, pos, leap)
	}
}

func findDaf(dafs []calendar.DafInfo, cycle string) (calendar.DafInfo, bool) {
	for _, d := range dafs {
		if d.Cycle == cycle {
			return d, true
		}
	}
	return calendar.DafInfo{}, false
}

func printReport(w io.Writer, r CheckReport, verbose bool) {
	fmt.Fprintln(w, "================================================================")
	fmt.Fprintln(w, "Luach - Invariant Check")
	fmt.Fprintln(w, "================================================================")
	fmt.Fprintf(w, "Date Range:  %s to %s\n", r.From, r.To)
	fmt.Fprintf(w, "Days:        %d\n", r.Days)
	fmt.Fprintf(w, "Years:       %d\n", r.Years)
	fmt.Fprintf(w, "Failures:    %d\n", len(r.Failures))

	if len(r.Failures) == 0 {
		fmt.Fprintln(w, "\nAll checks passed.")
		return
	}

	counts := r.ByCheck()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "\nFailures by check:")
	for _, name := range names {
		fmt.Fprintf(w, "  %-22s %d\n", name, counts[name])
	}

	limit := len(r.Failures)
	if !verbose && limit > 20 {
		limit = 20
	}
	fmt.Fprintln(w, "\nFailures:")
	for _, f := range r.Failures[:limit] {
		fmt.Fprintf(w, "  %s  %-22s %s\n", f.Date, f.Check, f.Detail)
	}
	if limit < len(r.Failures) {
		fmt.Fprintf(w, "  ... %d more (use -v to list all)\n", len(r.Failures)-limit)
	}
}
