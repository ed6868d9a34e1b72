package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
// Each migration should be idempotent (safe to run multiple times).
var migrationsSQL = map[int]string{
	1: migrationV1CalendarDays,
	2: migrationV2HolidayIndex,
	3: migrationV3Settings,
}

// migrationV1CalendarDays creates the resolved-day table.
//
// A row is one civil date for one locale (diaspora or Israel). The Hebrew
// date, holiday and parsha are broken out for querying; payload holds the
// full resolved day as JSON.
const migrationV1CalendarDays = `
-- Migration 001: calendar days

CREATE TABLE IF NOT EXISTS calendar_days (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Civil date, YYYY-MM-DD
    date TEXT NOT NULL,

    -- 1 for the Israel schedule, 0 for the diaspora
    in_israel INTEGER NOT NULL DEFAULT 0 CHECK (in_israel IN (0, 1)),

    hebrew_year INTEGER NOT NULL,
    hebrew_month INTEGER NOT NULL CHECK (hebrew_month BETWEEN 1 AND 13),
    hebrew_day INTEGER NOT NULL CHECK (hebrew_day BETWEEN 1 AND 30),

    -- Stable keys, '' when none
    holiday TEXT NOT NULL DEFAULT '',
    parsha TEXT NOT NULL DEFAULT '',

    payload TEXT NOT NULL,

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now')),

    UNIQUE (date, in_israel)
);

CREATE INDEX IF NOT EXISTS idx_calendar_days_hebrew
    ON calendar_days(hebrew_year, hebrew_month, hebrew_day);
`

// migrationV2HolidayIndex indexes days that carry a holiday.
const migrationV2HolidayIndex = `
-- Migration 002: holiday lookups

CREATE INDEX IF NOT EXISTS idx_calendar_days_holiday
    ON calendar_days(holiday, date)
    WHERE holiday != '';
`

// migrationV3Settings records the calendar settings a row was resolved
// under. Rows from other settings are recomputed on read.
const migrationV3Settings = `
-- Migration 003: resolver settings

ALTER TABLE calendar_days ADD COLUMN settings TEXT NOT NULL DEFAULT '';
`
