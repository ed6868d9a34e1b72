// Package daf maps a civil day onto a page of a multi-volume study cycle
// that advances one page a day and starts over after the last page.
package daf

import (
	"errors"
	"fmt"

	"github.com/zapponejosh/luach-api/internal/hebdate"
)

var (
	// ErrInvalidCycle is returned for a cycle that cannot be paginated.
	ErrInvalidCycle = errors.New("invalid cycle")

	// ErrUnknownCycle is returned when a cycle name is not registered.
	ErrUnknownCycle = errors.New("unknown cycle")
)

// Volume is one tractate of a cycle.
type Volume struct {
	Name string
	// Pages is the number of days spent on the volume.
	Pages int
	// FirstFolio is the folio number studied on the first day.
	FirstFolio int
}

// NoReading marks the days on which a cycle does not advance.
type NoReading interface {
	// Excluded reports whether no page is read on day.
	Excluded(day hebdate.EpochDay) bool
	// Count returns the excluded days in [from, to).
	Count(from, to hebdate.EpochDay) int
}

// Cycle describes a study schedule.
type Cycle struct {
	Name      string
	Start     hebdate.EpochDay
	Volumes   []Volume
	NoReading NoReading
}

// Daf is a position within a cycle: a volume index and a one-based page
// within that volume.
type Daf struct {
	Volume int `json:"volume"`
	Page   int `json:"page"`
}

// TotalPages returns the number of reading days in one pass of c.
func (c Cycle) TotalPages() int {
	total := 0
	for _, v := range c.Volumes {
		total += v.Pages
	}
	return total
}

// Validate checks that c can be paginated.
func (c Cycle) Validate() error {
	var errs []error
	if c.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if len(c.Volumes) == 0 {
		errs = append(errs, errors.New("at least one volume is required"))
	}
	for i, v := range c.Volumes {
		if v.Name == "" {
			errs = append(errs, fmt.Errorf("volume %d: name is required", i))
		}
		if v.Pages < 1 {
			errs = append(errs, fmt.Errorf("volume %d (%s): pages must be positive, got %d", i, v.Name, v.Pages))
		}
		if v.FirstFolio < 0 {
			errs = append(errs, fmt.Errorf("volume %d (%s): first folio must not be negative", i, v.Name))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w %q: %w", ErrInvalidCycle, c.Name, errors.Join(errs...))
	}
	return nil
}

// VolumeName returns the name of the volume d points into.
func (c Cycle) VolumeName(d Daf) string {
	if d.Volume < 0 || d.Volume >= len(c.Volumes) {
		return ""
	}
	return c.Volumes[d.Volume].Name
}

// Folio returns the folio number studied for d.
func (c Cycle) Folio(d Daf) int {
	if d.Volume < 0 || d.Volume >= len(c.Volumes) {
		return 0
	}
	return c.Volumes[d.Volume].FirstFolio + d.Page - 1
}

// noExclusions is the NoReading of a cycle that reads every day.
type noExclusions struct{}

func (noExclusions) Excluded(hebdate.EpochDay) bool { return false }
func (noExclusions) Count(hebdate.EpochDay, hebdate.EpochDay) int { return 0 }
