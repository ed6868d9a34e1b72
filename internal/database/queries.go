package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound means no row is stored for the requested date.
	ErrNotFound = errors.New("not found")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// parseTimestamp returns nil for NULL or unparseable SQLite TEXT.
func parseTimestamp(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}

	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.999999",
	} {
		if t, err := time.Parse(layout, ns.String); err == nil {
			return &t
		}
	}
	return nil
}

const dayColumns = `
	id, date, in_israel,
	hebrew_year, hebrew_month, hebrew_day,
	holiday, parsha, settings, payload,
	created_at, updated_at
`

type scanner interface {
	Scan(dest ...any) error
}

func scanDay(s scanner) (*CalendarDay, error) {
	var day CalendarDay
	var payload string
	var createdAtStr, updatedAtStr sql.NullString

	err := s.Scan(
		&day.ID,
		&day.Date,
		&day.InIsrael,
		&day.HebrewYear,
		&day.HebrewMonth,
		&day.HebrewDay,
		&day.Holiday,
		&day.Parsha,
		&day.Settings,
		&payload,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	day.Payload = []byte(payload)
	if t := parseTimestamp(createdAtStr); t != nil {
		day.CreatedAt = *t
	}
	if t := parseTimestamp(updatedAtStr); t != nil {
		day.UpdatedAt = *t
	}
	return &day, nil
}

// GetDay retrieves the stored day for a date and locale.
// Returns ErrNotFound if the day has not been stored.
func (db *DB) GetDay(ctx context.Context, date string, inIsrael bool) (*CalendarDay, error) {
	return getDay(ctx, db.DB, date, inIsrael)
}

// GetDay retrieves the stored day within the transaction.
func (tx *Tx) GetDay(ctx context.Context, date string, inIsrael bool) (*CalendarDay, error) {
	return getDay(ctx, tx.Tx, date, inIsrael)
}

func getDay(ctx context.Context, q querier, date string, inIsrael bool) (*CalendarDay, error) {
	query := `SELECT ` + dayColumns + `
		FROM calendar_days
		WHERE date = ? AND in_israel = ?
	`

	day, err := scanDay(q.QueryRowContext(ctx, query, date, inIsrael))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query day %s: %w", date, err)
	}
	return day, nil
}

// GetDaysInRange retrieves stored days for a date range (inclusive).
// Returns an empty slice if nothing is stored in the range.
func (db *DB) GetDaysInRange(ctx context.Context, startDate, endDate string, inIsrael bool) ([]CalendarDay, error) {
	return getDaysInRange(ctx, db.DB, startDate, endDate, inIsrael)
}

// GetDaysInRange retrieves stored days for a date range within the transaction.
func (tx *Tx) GetDaysInRange(ctx context.Context, startDate, endDate string, inIsrael bool) ([]CalendarDay, error) {
	return getDaysInRange(ctx, tx.Tx, startDate, endDate, inIsrael)
}

func getDaysInRange(ctx context.Context, q querier, startDate, endDate string, inIsrael bool) ([]CalendarDay, error) {
	query := `SELECT ` + dayColumns + `
		FROM calendar_days
		WHERE date >= ? AND date <= ? AND in_israel = ?
		ORDER BY date ASC
	`

	rows, err := q.QueryContext(ctx, query, startDate, endDate, inIsrael)
	if err != nil {
		return nil, fmt.Errorf("query days by range: %w", err)
	}
	defer rows.Close()

	days := []CalendarDay{}
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("scan day row: %w", err)
		}
		days = append(days, *day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate day rows: %w", err)
	}

	return days, nil
}

// UpsertDay inserts or updates a stored day.
//
// Idempotent: the (date, in_israel) pair is unique, so storing the same
// day twice rewrites the row.
func (db *DB) UpsertDay(ctx context.Context, day *CalendarDay) error {
	return upsertDay(ctx, db.DB, day)
}

// UpsertDay inserts or updates a stored day within the transaction.
func (tx *Tx) UpsertDay(ctx context.Context, day *CalendarDay) error {
	return upsertDay(ctx, tx.Tx, day)
}

func upsertDay(ctx context.Context, q querier, day *CalendarDay) error {
	if len(day.Payload) == 0 {
		return fmt.Errorf("upsert day %s: empty payload", day.Date)
	}

	query := `
		INSERT INTO calendar_days (
			date, in_israel,
			hebrew_year, hebrew_month, hebrew_day,
			holiday, parsha, settings, payload, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))
		ON CONFLICT(date, in_israel) DO UPDATE SET
			hebrew_year = excluded.hebrew_year,
			hebrew_month = excluded.hebrew_month,
			hebrew_day = excluded.hebrew_day,
			holiday = excluded.holiday,
			parsha = excluded.parsha,
			settings = excluded.settings,
			payload = excluded.payload,
			updated_at = datetime('now')
	`

	_, err := q.ExecContext(ctx, query,
		day.Date,
		day.InIsrael,
		day.HebrewYear,
		day.HebrewMonth,
		day.HebrewDay,
		day.Holiday,
		day.Parsha,
		day.Settings,
		string(day.Payload),
	)
	if err != nil {
		return fmt.Errorf("upsert day %s: %w", day.Date, err)
	}

	return nil
}

// DeleteDay removes a stored day.
// Returns ErrNotFound if the day isn't stored.
func (db *DB) DeleteDay(ctx context.Context, date string, inIsrael bool) error {
	result, err := db.ExecContext(ctx,
		`DELETE FROM calendar_days WHERE date = ? AND in_israel = ?`,
		date, inIsrael,
	)
	if err != nil {
		return fmt.Errorf("delete day: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// GetStats returns statistics about the stored days.
func (db *DB) GetStats(ctx context.Context) (*DayStats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(in_israel), 0),
			COALESCE(MIN(date), ''),
			COALESCE(MAX(date), ''),
			MAX(updated_at)
		FROM calendar_days
	`

	var stats DayStats
	var lastUpdatedAtStr sql.NullString

	err := db.QueryRowContext(ctx, query).Scan(
		&stats.TotalDays,
		&stats.IsraelDays,
		&stats.EarliestDate,
		&stats.LatestDate,
		&lastUpdatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("query day stats: %w", err)
	}

	stats.LastUpdatedAt = parseTimestamp(lastUpdatedAtStr)
	return &stats, nil
}
