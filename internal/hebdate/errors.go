package hebdate

import "errors"

var (
	// ErrInvalidYear is returned for Hebrew years outside 1 through MaxYear.
	ErrInvalidYear = errors.New("invalid hebrew year")

	// ErrInvalidMonth is returned for a month that does not occur in the year.
	ErrInvalidMonth = errors.New("invalid hebrew month")

	// ErrInvalidDay is returned for a day of month below 1.
	ErrInvalidDay = errors.New("invalid hebrew day")

	// ErrInvalidGregorian is returned for a malformed Gregorian date.
	ErrInvalidGregorian = errors.New("invalid gregorian date")

	// ErrOutOfRange is returned for days before 1 Tishrei of year 1.
	ErrOutOfRange = errors.New("date before the start of the hebrew calendar")
)
