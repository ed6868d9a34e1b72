package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/zapponejosh/luach-api/internal/daf"
	"github.com/zapponejosh/luach-api/internal/database"
	"github.com/zapponejosh/luach-api/internal/hebdate"
	"github.com/zapponejosh/luach-api/internal/holiday"
	"github.com/zapponejosh/luach-api/internal/parsha"
)

// ErrInvalidRange is returned when a range ends before it starts.
var ErrInvalidRange = errors.New("end date is before start date")

// Store caches resolved days.
// This allows us to use either *database.DB or *database.Tx.
type Store interface {
	GetDay(ctx context.Context, date string, inIsrael bool) (*database.CalendarDay, error)
	GetDaysInRange(ctx context.Context, startDate, endDate string, inIsrael bool) ([]database.CalendarDay, error)
	UpsertDay(ctx context.Context, day *database.CalendarDay) error
}

// Resolver computes DayInfo for civil days. It is safe for concurrent use
// when its Store is.
type Resolver struct {
	opts   holiday.Options
	dafs   *daf.Registry
	store  Store
	logger *slog.Logger
}

// NewResolver creates a resolver. A nil registry resolves no study pages.
func NewResolver(opts holiday.Options, dafs *daf.Registry) *Resolver {
	if dafs == nil {
		dafs = daf.NewRegistry()
	}
	return &Resolver{opts: opts, dafs: dafs, logger: slog.Default()}
}

// WithStore returns a copy of r that reads through store.
func (r *Resolver) WithStore(store Store, logger *slog.Logger) *Resolver {
	c := *r
	c.store = store
	if logger != nil {
		c.logger = logger
	}
	return &c
}

// WithIsrael returns a copy of r for the Israel or diaspora schedule.
func (r *Resolver) WithIsrael(inIsrael bool) *Resolver {
	c := *r
	c.opts.InIsrael = inIsrael
	return &c
}

// Options returns the holiday options in use.
func (r *Resolver) Options() holiday.Options {
	return r.opts
}

// Dafs returns the study cycle registry.
func (r *Resolver) Dafs() *daf.Registry {
	return r.dafs
}

// Settings fingerprints everything besides the date and schedule that
// shapes a resolved day: the study cycles and the holiday options.
func (r *Resolver) Settings() string {
	return fmt.Sprintf("%s/m%t/w%t", r.dafs.Fingerprint(), r.opts.ModernHolidays, r.opts.WalledCity)
}

// Record converts info into a storable row stamped with r's settings.
func (r *Resolver) Record(info DayInfo) (*database.CalendarDay, error) {
	rec, err := info.Record()
	if err != nil {
		return nil, err
	}
	rec.Settings = r.Settings()
	return rec, nil
}

// Resolve computes the facts of civil day e.
func (r *Resolver) Resolve(e hebdate.EpochDay) (DayInfo, error) {
	d, err := hebdate.FromEpochDay(e)
	if err != nil {
		return DayInfo{}, err
	}
	return r.ResolveDate(d), nil
}

// ResolveDate computes the facts of Hebrew date d.
func (r *Resolver) ResolveDate(d hebdate.Date) DayInfo {
	e := d.EpochDay()
	day := holiday.NewDay(d, r.opts)

	info := DayInfo{
		Date:     e.String(),
		Weekday:  int(d.Weekday()),
		InIsrael: r.opts.InIsrael,
		Hebrew: HebrewDate{
			Year:     d.Year(),
			Month:    int(d.Month()),
			Day:      d.Day(),
			LeapYear: d.IsLeapYear(),
		},
		Holiday:       day.Holiday(),
		Observances:   observances(day),
		DayOfOmer:     day.DayOfOmer(),
		DayOfChanukah: day.DayOfChanukah(),
		Parsha:        parsha.ForDate(d, r.opts.InIsrael),
	}

	info.SpecialShabbos = parsha.Special(d, r.opts.InIsrael)
	next, p := parsha.Upcoming(d, r.opts.InIsrael)
	info.Upcoming = UpcomingParsha{Date: next.EpochDay().String(), Parsha: p}
	info.Molad = mevorchim(d)
	info.Dafs = r.dafsFor(e)

	return info
}

func observances(day holiday.Day) Observances {
	return Observances{
		YomTov:             day.IsYomTov(),
		ErevYomTov:         day.IsErevYomTov(),
		AssurBemelacha:     day.IsYomTovAssurBemelacha(),
		WorkProhibited:     day.IsWorkProhibited(),
		FastDay:            day.IsFastDay(),
		CholHamoed:         day.IsCholHamoed(),
		RoshChodesh:        day.IsRoshChodesh(),
		ErevRoshChodesh:    day.IsErevRoshChodesh(),
		Chanukah:           day.IsChanukah(),
		Purim:              day.IsPurim(),
		AseresYemeiTeshuva: day.IsAseresYemeiTeshuva(),
		TaanisBechoros:     day.IsTaanisBechoros(),
		YomKippurKatan:     day.IsYomKippurKatan(),
		BeHaB:              day.IsBeHaB(),
	}
}

// mevorchim returns the molad of the coming month when d is the Shabbos
// on which it is announced: the last Shabbos of a month other than Elul.
func mevorchim(d hebdate.Date) *MoladInfo {
	if d.Weekday() != time.Saturday || d.Month() == hebdate.Elul || d.Day() < 23 || d.Day() > 29 {
		return nil
	}
	next := d.Add(hebdate.DaysInMonth(d.Year(), d.Month()) - d.Day() + 1)
	m := moladInfo(next.Year(), next.Month())
	return &m
}

func moladInfo(year int, month hebdate.Month) MoladInfo {
	m := hebdate.MoladOf(year, month)
	return MoladInfo{
		Year:     year,
		Month:    int(month),
		Date:     m.Day.String(),
		Weekday:  int(m.Day.Weekday()),
		Hours:    m.Hours,
		Minutes:  m.Minutes,
		Chalakim: m.Chalakim,
	}
}

func (r *Resolver) dafsFor(e hebdate.EpochDay) []DafInfo {
	out := []DafInfo{}
	for _, name := range r.dafs.Names() {
		if info, ok, err := r.Daf(name, e); err == nil && ok {
			out = append(out, info)
		}
	}
	return out
}

// Daf returns the page of the named cycle on e. It reports false before the
// cycle starts and on days without a reading.
func (r *Resolver) Daf(cycle string, e hebdate.EpochDay) (DafInfo, bool, error) {
	calc, err := r.dafs.Get(cycle)
	if err != nil {
		return DafInfo{}, false, err
	}
	page, ok := calc.PageFor(e)
	if !ok {
		return DafInfo{}, false, nil
	}
	n, _ := calc.CycleNumber(e)
	c := calc.Cycle()
	return DafInfo{
		Cycle:       c.Name,
		CycleNumber: n,
		Volume:      page.Volume,
		VolumeName:  c.VolumeName(page),
		Page:        page.Page,
		Folio:       c.Folio(page),
	}, true, nil
}

// Lookup resolves e through the store. A stored day resolved under the
// current settings is returned as is; a missing or stale one is computed
// and stored. Store write failures are logged and do not fail the lookup.
func (r *Resolver) Lookup(ctx context.Context, e hebdate.EpochDay) (DayInfo, error) {
	if r.store == nil {
		return r.Resolve(e)
	}

	date := e.String()
	rec, err := r.store.GetDay(ctx, date, r.opts.InIsrael)
	switch {
	case err == nil:
		if info, ok := r.fromStored(rec, r.Settings()); ok {
			return info, nil
		}
	case !database.IsNotFound(err):
		return DayInfo{}, fmt.Errorf("load day %s: %w", date, err)
	}

	return r.resolveAndStore(ctx, e)
}

// Range looks up every day in [from, to]. Stored days are read in one
// query; only the missing or stale ones are computed and stored.
func (r *Resolver) Range(ctx context.Context, from, to hebdate.EpochDay) ([]DayInfo, error) {
	if to < from {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidRange, from, to)
	}

	out := make([]DayInfo, 0, int(to-from)+1)
	if r.store == nil {
		for e := from; e <= to; e++ {
			info, err := r.Resolve(e)
			if err != nil {
				return nil, err
			}
			out = append(out, info)
		}
		return out, nil
	}

	recs, err := r.store.GetDaysInRange(ctx, from.String(), to.String(), r.opts.InIsrael)
	if err != nil {
		return nil, fmt.Errorf("load days %s to %s: %w", from, to, err)
	}
	settings := r.Settings()
	stored := make(map[string]DayInfo, len(recs))
	for i := range recs {
		if info, ok := r.fromStored(&recs[i], settings); ok {
			stored[info.Date] = info
		}
	}

	for e := from; e <= to; e++ {
		if info, ok := stored[e.String()]; ok {
			out = append(out, info)
			continue
		}
		info, err := r.resolveAndStore(ctx, e)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, nil
}

// fromStored decodes rec if it was resolved under settings.
func (r *Resolver) fromStored(rec *database.CalendarDay, settings string) (DayInfo, bool) {
	if rec.Settings != settings {
		r.logger.Debug("recomputing day stored under other settings",
			slog.String("date", rec.Date),
			slog.String("stored", rec.Settings),
			slog.String("current", settings),
		)
		return DayInfo{}, false
	}
	info, err := FromRecord(rec)
	if err != nil {
		r.logger.Warn("discarding unreadable stored day",
			slog.String("date", rec.Date),
			slog.String("error", err.Error()),
		)
		return DayInfo{}, false
	}
	return info, true
}

func (r *Resolver) resolveAndStore(ctx context.Context, e hebdate.EpochDay) (DayInfo, error) {
	info, err := r.Resolve(e)
	if err != nil {
		return DayInfo{}, err
	}

	rec, err := r.Record(info)
	if err == nil {
		err = r.store.UpsertDay(ctx, rec)
	}
	if err != nil {
		r.logger.WarnContext(ctx, "failed to store day",
			slog.String("date", info.Date),
			slog.String("error", err.Error()),
		)
	}
	return info, nil
}
