package daf

import (
	"github.com/zapponejosh/luach-api/internal/hebdate"
)

// Calculator answers page queries for one cycle. It holds no mutable
// state and is safe for concurrent use.
type Calculator struct {
	cycle Cycle
	total int
}

// Entry is the page read on a day.
type Entry struct {
	Day hebdate.EpochDay
	Daf Daf
}

// NewCalculator validates c and returns a calculator for it. A nil
// NoReading reads every day.
func NewCalculator(c Cycle) (*Calculator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.NoReading == nil {
		c.NoReading = noExclusions{}
	}
	return &Calculator{cycle: c, total: c.TotalPages()}, nil
}

// Cycle returns the cycle being paginated.
func (c *Calculator) Cycle() Cycle {
	return c.cycle
}

// cycleEnd returns the first day after the pass that begins on start.
// The pass spans the total page count plus every excluded day inside it,
// so the end is found by iterating to a fixed point.
func (c *Calculator) cycleEnd(start hebdate.EpochDay) hebdate.EpochDay {
	end := start.Add(c.total)
	skipped := 0
	for {
		k := c.cycle.NoReading.Count(start, end)
		if k == skipped {
			return end
		}
		end = end.Add(k - skipped)
		skipped = k
	}
}

// locate returns the start and one-based number of the pass containing day.
func (c *Calculator) locate(day hebdate.EpochDay) (hebdate.EpochDay, int, bool) {
	if day < c.cycle.Start {
		return 0, 0, false
	}
	start, n := c.cycle.Start, 1
	for {
		end := c.cycleEnd(start)
		if day < end {
			return start, n, true
		}
		start, n = end, n+1
	}
}

// PageFor returns the page read on day. It reports false before the cycle
// starts and on excluded days.
func (c *Calculator) PageFor(day hebdate.EpochDay) (Daf, bool) {
	if day < c.cycle.Start || c.cycle.NoReading.Excluded(day) {
		return Daf{}, false
	}
	start, _, _ := c.locate(day)
	return c.pageIn(start, day), true
}

// pageIn walks the volumes by the reading days elapsed since start.
func (c *Calculator) pageIn(start, day hebdate.EpochDay) Daf {
	offset := int(day-start) - c.cycle.NoReading.Count(start, day)
	for i, v := range c.cycle.Volumes {
		if offset < v.Pages {
			return Daf{Volume: i, Page: offset + 1}
		}
		offset -= v.Pages
	}
	// The pass length bounds offset; reaching here means cycleEnd is wrong.
	panic("daf: offset past the last volume")
}

// CycleNumber returns the one-based pass that day belongs to.
func (c *Calculator) CycleNumber(day hebdate.EpochDay) (int, bool) {
	_, n, ok := c.locate(day)
	return n, ok
}

// CycleStart returns the first day of the pass that day belongs to.
func (c *Calculator) CycleStart(day hebdate.EpochDay) (hebdate.EpochDay, bool) {
	start, _, ok := c.locate(day)
	return start, ok
}

// Range returns the pages read on each day in [from, to], skipping days
// without a reading.
func (c *Calculator) Range(from, to hebdate.EpochDay) []Entry {
	if to < from {
		return nil
	}
	if from < c.cycle.Start {
		from = c.cycle.Start
	}

	var out []Entry
	start, _, ok := c.locate(from)
	if !ok {
		return nil
	}
	end := c.cycleEnd(start)
	for day := from; day <= to; day++ {
		if day >= end {
			start, end = end, c.cycleEnd(end)
		}
		if c.cycle.NoReading.Excluded(day) {
			continue
		}
		out = append(out, Entry{Day: day, Daf: c.pageIn(start, day)})
	}
	return out
}
