package database

import (
	"encoding/json"
	"time"
)

// CalendarDay is a resolved day as stored. Holiday and Parsha are stable
// keys; Payload is the full resolved day as JSON.
type CalendarDay struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"` // ISO 8601 format: YYYY-MM-DD
	InIsrael    bool            `json:"in_israel"`
	HebrewYear  int             `json:"hebrew_year"`
	HebrewMonth int             `json:"hebrew_month"` // 1=Nisan through 13=Adar II
	HebrewDay   int             `json:"hebrew_day"`
	Holiday     string          `json:"holiday"`
	Parsha      string          `json:"parsha"`
	Settings    string          `json:"settings"` // fingerprint of the resolver settings
	Payload     json.RawMessage `json:"payload"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DayStats summarizes the stored days.
type DayStats struct {
	TotalDays     int        `json:"total_days"`
	IsraelDays    int        `json:"israel_days"`
	EarliestDate  string     `json:"earliest_date"`
	LatestDate    string     `json:"latest_date"`
	LastUpdatedAt *time.Time `json:"last_updated_at"`
}
