package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/luach-api/internal/calendar"
	"github.com/zapponejosh/luach-api/internal/config"
	"github.com/zapponejosh/luach-api/internal/daf"
	"github.com/zapponejosh/luach-api/internal/database"
	"github.com/zapponejosh/luach-api/internal/hebdate"
	"github.com/zapponejosh/luach-api/internal/i18n"
)

// MaxRangeDays is the longest span GetRange resolves in one request.
const MaxRangeDays = 90

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db       *database.DB // nil when the day cache is disabled
	resolver *calendar.Resolver
	cfg      *config.Config
	logger   *slog.Logger
	now      func() time.Time
}

// NewHandlers creates a new Handlers instance. When db is non-nil resolved
// days are read through and stored in it.
func NewHandlers(db *database.DB, resolver *calendar.Resolver, cfg *config.Config, logger *slog.Logger) *Handlers {
	if db != nil {
		resolver = resolver.WithStore(db, logger)
	}
	return &Handlers{
		db:       db,
		resolver: resolver,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		WriteSuccess(w, map[string]string{
			"status": "healthy",
			"store":  "disabled",
		})
		return
	}

	if err := h.db.Health(r.Context()); err != nil {
		h.logger.WarnContext(r.Context(), "health check failed", slog.Any("error", err))
		WriteError(w, CodeUnhealthy, "Database unhealthy")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
		"store":  "ok",
	})
}

// GetToday handles GET /api/v1/days/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	h.writeDay(w, r, calendar.Today(h.now(), h.cfg.Location()))
}

// GetDay handles GET /api/v1/days/{date}
func (h *Handlers) GetDay(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")
	date, err := calendar.ParseDateString(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}
	h.writeDay(w, r, date)
}

// GetRange handles GET /api/v1/days?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) GetRange(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end query parameters are required")
		return
	}

	start, err := calendar.ParseDateString(startStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid start date: %s. Use YYYY-MM-DD", startStr))
		return
	}
	end, err := calendar.ParseDateString(endStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid end date: %s. Use YYYY-MM-DD", endStr))
		return
	}

	if start > end {
		WriteBadRequest(w, "Start date must be before or equal to end date")
		return
	}

	// Limit range to prevent abuse
	if int(end-start) > MaxRangeDays {
		WriteBadRequest(w, fmt.Sprintf("Date range cannot exceed %d days", MaxRangeDays))
		return
	}

	resolver, ok := h.resolverFor(w, r)
	if !ok {
		return
	}

	days, err := resolver.Range(r.Context(), start, end)
	if err != nil {
		h.writeResolveError(w, r, err)
		return
	}

	cat := h.catalog(w, r)
	for i := range days {
		days[i] = days[i].Localize(cat)
	}

	WriteSuccess(w, map[string]interface{}{
		"start":     startStr,
		"end":       endStr,
		"in_israel": resolver.Options().InIsrael,
		"days":      days,
	})
}

// GetHebrewDay handles GET /api/v1/hebrew/{year}/{month}/{day}. Months are
// numbered from Nisan (1) to Adar II (13).
func (h *Handlers) GetHebrewDay(w http.ResponseWriter, r *http.Request) {
	year, err1 := strconv.Atoi(chi.URLParam(r, "year"))
	month, err2 := strconv.Atoi(chi.URLParam(r, "month"))
	day, err3 := strconv.Atoi(chi.URLParam(r, "day"))
	if err := errors.Join(err1, err2, err3); err != nil {
		WriteBadRequest(w, "Year, month and day must be integers")
		return
	}

	d, err := hebdate.NewDate(year, hebdate.Month(month), day)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid Hebrew date: %v", err))
		return
	}
	if d.Day() != day {
		WriteBadRequest(w, fmt.Sprintf("Invalid Hebrew date: %s has %d days", d.Month(), d.Day()))
		return
	}

	h.writeDay(w, r, d.EpochDay())
}

// GetYear handles GET /api/v1/years/{year}
func (h *Handlers) GetYear(w http.ResponseWriter, r *http.Request) {
	yearStr := chi.URLParam(r, "year")
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", yearStr))
		return
	}

	resolver, ok := h.resolverFor(w, r)
	if !ok {
		return
	}

	info, err := resolver.Year(year)
	if err != nil {
		h.writeResolveError(w, r, err)
		return
	}

	WriteSuccess(w, info.Localize(h.catalog(w, r)))
}

// ListCycles handles GET /api/v1/daf
func (h *Handlers) ListCycles(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]interface{}{
		"cycles": h.resolver.Dafs().Names(),
	})
}

// DafResponse is the page of one cycle on one day. Reading is nil before the
// cycle starts and on days without a page.
type DafResponse struct {
	Date    string            `json:"date"`
	Cycle   string            `json:"cycle"`
	Reading *calendar.DafInfo `json:"reading"`
}

// GetDaf handles GET /api/v1/daf/{cycle}/{date}
func (h *Handlers) GetDaf(w http.ResponseWriter, r *http.Request) {
	cycle := chi.URLParam(r, "cycle")
	dateStr := chi.URLParam(r, "date")

	date, err := calendar.ParseDateString(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	info, ok, err := h.resolver.Daf(cycle, date)
	if err != nil {
		h.writeResolveError(w, r, err)
		return
	}

	resp := DafResponse{Date: date.String(), Cycle: cycle}
	if ok {
		resp.Reading = &info
	}
	WriteSuccess(w, resp)
}

// GetStats handles GET /api/v1/admin/stats
func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		WriteStoreDisabled(w)
		return
	}

	stats, err := h.db.GetStats(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to get stats", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve stats")
		return
	}

	WriteSuccess(w, stats)
}

// DeleteDay handles DELETE /api/v1/admin/days/{date}?israel=
func (h *Handlers) DeleteDay(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		WriteStoreDisabled(w)
		return
	}

	dateStr := chi.URLParam(r, "date")
	date, err := calendar.ParseDateString(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	resolver, ok := h.resolverFor(w, r)
	if !ok {
		return
	}
	inIsrael := resolver.Options().InIsrael

	if err := h.db.DeleteDay(r.Context(), date.String(), inIsrael); err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, fmt.Sprintf("No stored day for %s", date))
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to delete day", slog.String("date", date.String()), slog.Any("error", err))
		WriteInternalError(w, "Failed to delete day")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"date":      date.String(),
		"in_israel": inIsrael,
		"deleted":   true,
	})
}

// writeDay looks up a single day and writes it localized for the request.
func (h *Handlers) writeDay(w http.ResponseWriter, r *http.Request, date hebdate.EpochDay) {
	resolver, ok := h.resolverFor(w, r)
	if !ok {
		return
	}

	info, err := resolver.Lookup(r.Context(), date)
	if err != nil {
		h.writeResolveError(w, r, err)
		return
	}

	WriteSuccess(w, info.Localize(h.catalog(w, r)))
}

// resolverFor applies the israel query flag. It writes a 400 and reports
// false when the flag is malformed.
func (h *Handlers) resolverFor(w http.ResponseWriter, r *http.Request) (*calendar.Resolver, bool) {
	v := r.URL.Query().Get("israel")
	if v == "" {
		return h.resolver, true
	}
	inIsrael, err := strconv.ParseBool(v)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid israel flag: %s. Use true or false", v))
		return nil, false
	}
	return h.resolver.WithIsrael(inIsrael), true
}

// catalog picks the name table for the request and sets Content-Language.
func (h *Handlers) catalog(w http.ResponseWriter, r *http.Request) i18n.Catalog {
	tag := i18n.ResolveTag(r)
	w.Header().Set("Content-Language", tag.String())
	return i18n.For(tag)
}

// writeResolveError maps calendar errors to responses.
func (h *Handlers) writeResolveError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, daf.ErrUnknownCycle):
		WriteNotFound(w, err.Error())
	case errors.Is(err, hebdate.ErrOutOfRange),
		errors.Is(err, hebdate.ErrInvalidYear),
		errors.Is(err, calendar.ErrInvalidRange):
		WriteBadRequest(w, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "failed to resolve",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		WriteInternalError(w, "Failed to resolve calendar day")
	}
}
