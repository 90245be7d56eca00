/*
Package holiday supplies public-holiday calendars to the bonus engine.

PURPOSE:
  Implements engine.HolidaySet on top of github.com/rickar/cal holiday
  definitions. The engine only ever asks "is this date a holiday?"; all
  calendar math (Easter-relative holidays, fixed dates) lives in the
  library's per-country definition sets.

DESIGN:
  The calendar is precomputed/cacheable and queried synchronously; a
  country profile wraps exactly one calendar at construction time, so no
  I/O or locking happens during shift evaluation.

USAGE:
  holidays := holiday.Germany()
  holidays.Contains(time.Date(2018, time.May, 10, 3, 0, 0, 0, time.UTC)) // true, Ascension

SEE ALSO:
  - engine/rule.go: the HolidaySet interface
  - countries: profiles bind a calendar per country
*/
package holiday

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/de"

	"github.com/warp/bonus-engine/engine"
)

// Calendar answers holiday-date queries for one country.
type Calendar struct {
	cal *cal.Calendar
}

var _ engine.HolidaySet = (*Calendar)(nil)

// NewCalendar builds a calendar from the given holiday definitions.
func NewCalendar(name string, definitions ...*cal.Holiday) *Calendar {
	c := &cal.Calendar{Name: name, Cacheable: true}
	c.AddHoliday(definitions...)
	return &Calendar{cal: c}
}

// Germany returns the nationwide German public holidays.
func Germany() *Calendar {
	return NewCalendar("Germany", de.Holidays...)
}

// Contains reports whether the date falls on a public holiday. The
// time-of-day part of the argument is ignored.
func (c *Calendar) Contains(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	actual, _, _ := c.cal.IsHoliday(day)
	return actual
}
