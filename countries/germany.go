/*
germany.go - German bonus rule table (EStG §3b shape)

PURPOSE:
  The German profile: night work, Sunday and public-holiday work, plus
  the fixed calendar days that get special treatment without being
  official holidays (Christmas Eve and New Year's Eve afternoons).

RULE TABLE:
  GRP_DE_NIGHT (night work):
    DE_NIGHT                  20:00-06:00                 x0.25
    DE_NIGHT_START_YESTERDAY  00:00-04:00, started the
                              previous calendar day       x0.40
  GRP_DE_HOLIDAYS (Sunday and holiday work):
    DE_SUNDAY                 any Sunday minute           x0.50
    DE_SUNDAY_NEXT_NIGHT      00:00-04:00, started Sunday x0.50
    DE_HOLIDAY                public holiday              x1.25
    DE_HOLIDAY_NEXT_NIGHT     00:00-04:00, started on a
                              public holiday              x1.25
    DE_HEILIGABEND            Dec 24 from 14:00           x1.25
    DE_SILVESTER              Dec 31 from 14:00           x1.25
    DE_WEIHNACHTSFEIERTAG_1   Dec 25                      x1.50
    DE_WEIHNACHTSFEIERTAG_2   Dec 26                      x1.50
    DE_TAGDERARBEIT           May 1                       x1.50

  Within a group only the highest bonus counts, so a Sunday that is also
  a holiday pays the holiday rate, not both.
*/
package countries

import (
	"fmt"
	"time"

	"github.com/warp/bonus-engine/engine"
	"github.com/warp/bonus-engine/holiday"
)

func init() {
	Register(Descriptor{
		Code:    "DE",
		Name:    "Germany",
		Aliases: []string{"GERMANY"},
	}, NewGermany)
}

// NewGermany builds a fresh German profile.
func NewGermany(opts ...Option) (*Profile, error) {
	return newProfile("DE", "Germany", []string{"DE", "GERMANY"},
		holiday.Germany(), germanGroups(), opts...)
}

// startedPreviousDay reports whether the shift began on an earlier
// calendar day than the minute under test. Tells "deep night of a shift
// started yesterday" apart from "shift that began after midnight".
func startedPreviousDay(minute, shiftStart time.Time) bool {
	sy, sm, sd := shiftStart.Date()
	my, mm, md := minute.Date()
	return time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC).
		Before(time.Date(my, mm, md, 0, 0, 0, 0, time.UTC))
}

func germanGroups() []*engine.RuleGroup {
	night := mustGroup(engine.NewRuleGroup("GRP_DE_NIGHT", "Nachtarbeit",
		must(engine.NewRule(
			"DE_NIGHT", "Nachtarbeit 20:00-06:00",
			engine.Multiply(engine.MustDecimal("0.25")),
			func(m, _ time.Time, _ engine.HolidaySet) bool {
				return m.Hour() >= 20 || m.Hour() < 6
			},
		)),
		must(engine.NewRule(
			"DE_NIGHT_START_YESTERDAY", "Nachtarbeit 00:00-04:00 (Folgetag)",
			engine.Multiply(engine.MustDecimal("0.4")),
			func(m, s time.Time, _ engine.HolidaySet) bool {
				return m.Hour() < 4 && startedPreviousDay(m, s)
			},
		)),
	))

	holidays := mustGroup(engine.NewRuleGroup("GRP_DE_HOLIDAYS", "Sonntags- und Feiertagsarbeit",
		must(engine.NewRule(
			"DE_SUNDAY", "Sonntagsarbeit",
			engine.Multiply(engine.MustDecimal("0.5")),
			func(m, _ time.Time, _ engine.HolidaySet) bool {
				return m.Weekday() == time.Sunday
			},
		)),
		must(engine.NewRule(
			"DE_SUNDAY_NEXT_NIGHT", "Sonntagsarbeit (Montag)",
			engine.Multiply(engine.MustDecimal("0.5")),
			func(m, s time.Time, _ engine.HolidaySet) bool {
				return s.Weekday() == time.Sunday && m.Hour() < 4
			},
		)),
		must(engine.NewRule(
			"DE_HOLIDAY", "Feiertagsarbeit",
			engine.Multiply(engine.MustDecimal("1.25")),
			func(m, _ time.Time, h engine.HolidaySet) bool {
				return h.Contains(m)
			},
		)),
		must(engine.NewRule(
			"DE_HOLIDAY_NEXT_NIGHT", "Feiertagsarbeit (Folgetag)",
			engine.Multiply(engine.MustDecimal("1.25")),
			func(m, s time.Time, h engine.HolidaySet) bool {
				return h.Contains(s) && m.Hour() < 4
			},
		)),
		must(engine.NewDayTimeRule("DE_HEILIGABEND", time.December, 24, 14,
			engine.Multiply(engine.MustDecimal("1.25")))),
		must(engine.NewDayTimeRule("DE_SILVESTER", time.December, 31, 14,
			engine.Multiply(engine.MustDecimal("1.25")))),
		must(engine.NewDayRule("DE_WEIHNACHTSFEIERTAG_1", time.December, 25,
			engine.Multiply(engine.MustDecimal("1.5")))),
		must(engine.NewDayRule("DE_WEIHNACHTSFEIERTAG_2", time.December, 26,
			engine.Multiply(engine.MustDecimal("1.5")))),
		must(engine.NewDayRule("DE_TAGDERARBEIT", time.May, 1,
			engine.Multiply(engine.MustDecimal("1.5")))),
	))

	return []*engine.RuleGroup{night, holidays}
}

// must panics on rule table construction errors; the tables are static,
// so a failure here is a programming error caught by the test suite.
func must(r *engine.Rule, err error) *engine.Rule {
	if err != nil {
		panic(fmt.Sprintf("countries: invalid rule: %v", err))
	}
	return r
}

func mustGroup(g *engine.RuleGroup, err error) *engine.RuleGroup {
	if err != nil {
		panic(fmt.Sprintf("countries: invalid rule group: %v", err))
	}
	return g
}
