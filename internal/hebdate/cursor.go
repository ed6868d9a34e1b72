package hebdate

// Cursor steps through consecutive days without reconverting from the
// day count each time. A Cursor is not safe for concurrent use; give each
// goroutine its own.
type Cursor struct {
	date Date
	day  EpochDay
}

// NewCursor returns a cursor positioned on d.
func NewCursor(d Date) *Cursor {
	return &Cursor{date: d, day: d.EpochDay()}
}

// Date returns the current date.
func (c *Cursor) Date() Date { return c.date }

// EpochDay returns the current civil day.
func (c *Cursor) EpochDay() EpochDay { return c.day }

// Next advances the cursor by one day.
func (c *Cursor) Next() {
	c.day++
	d := c.date
	if d.day < DaysInMonth(d.year, d.month) {
		c.date.day++
		return
	}
	ordinal := d.month.Ordinal(d.year)
	if ordinal < MonthsInYear(d.year) {
		c.date = Date{year: d.year, month: MonthFromOrdinal(d.year, ordinal+1), day: 1}
		return
	}
	c.date = Date{year: d.year + 1, month: Tishrei, day: 1}
}

// Prev moves the cursor back one day. It returns ErrOutOfRange at
// 1 Tishrei of year 1 and leaves the cursor unchanged.
func (c *Cursor) Prev() error {
	d := c.date
	if d.day > 1 {
		c.day--
		c.date.day--
		return nil
	}
	ordinal := d.month.Ordinal(d.year)
	if ordinal > 1 {
		m := MonthFromOrdinal(d.year, ordinal-1)
		c.day--
		c.date = Date{year: d.year, month: m, day: DaysInMonth(d.year, m)}
		return nil
	}
	if d.year == 1 {
		return ErrOutOfRange
	}
	y := d.year - 1
	c.day--
	c.date = Date{year: y, month: Elul, day: DaysInMonth(y, Elul)}
	return nil
}

// Advance moves the cursor n days, forward or back.
func (c *Cursor) Advance(n int) error {
	d, err := FromEpochDay(c.day.Add(n))
	if err != nil {
		return err
	}
	c.date = d
	c.day += EpochDay(n)
	return nil
}

// Set repositions the cursor on d.
func (c *Cursor) Set(d Date) {
	c.date = d
	c.day = d.EpochDay()
}
