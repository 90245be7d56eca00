/*
Package engine provides the core shift bonus calculation engine.

PURPOSE:
  This package contains the country-agnostic model and algorithms for
  deciding which pay bonus conditions (night work, Sunday work, holiday
  work, fixed calendar days) apply to a worked shift, and for how long.
  Country packages supply rule tables and holiday calendars; this package
  supplies the matching and segmentation machinery.

KEY CONCEPTS IN THIS FILE (rule.go):
  - Bonus: A tagged value - either a pay factor (Multiply) or a fixed
    currency amount (Add). Never both.
  - Predicate: A pure function deciding whether a rule applies to one
    minute of a shift.
  - Rule: A named bonus condition: predicate + bonus.
  - HolidaySet: The external public-holiday calendar, queried by date.

DESIGN PRINCIPLES:
  1. Immutability: Rules never change after construction.
  2. Precision: Uses decimal.Decimal for bonus values, never float64.
  3. Purity: Predicates are functions of (minute, shiftStart, holidays)
     only. No I/O, no clock access, no shared state.
  4. Fixed arity: Every predicate takes all three parameters and ignores
     what it does not need.

USAGE:
  night, err := engine.NewRule("NIGHT", "Night work 20:00-06:00",
      engine.Multiply(engine.MustDecimal("0.25")),
      func(m, _ time.Time, _ engine.HolidaySet) bool {
          return m.Hour() >= 20 || m.Hour() < 6
      })

SEE ALSO:
  - group.go: RuleGroup and highest-bonus-wins selection
  - evaluator.go: Shift segmentation
  - match.go: The output unit
*/
package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// HOLIDAY SET - External public-holiday calendar
// =============================================================================

// HolidaySet answers "is this date a public holiday?" for one country.
// Implementations must ignore the time-of-day part of the argument.
type HolidaySet interface {
	Contains(date time.Time) bool
}

// EmptyHolidaySet is a no-op set for rule tables without holiday rules.
type EmptyHolidaySet struct{}

func (EmptyHolidaySet) Contains(date time.Time) bool { return false }

// =============================================================================
// BONUS - Tagged union: pay factor or fixed amount
// =============================================================================

// BonusKind discriminates the two bonus variants. Rules of different kinds
// never share a group and are never compared against each other.
type BonusKind string

const (
	// BonusMultiply increases base pay by a factor; 0.25 means +25%.
	BonusMultiply BonusKind = "multiply"

	// BonusAdd grants a fixed amount of currency per segment.
	BonusAdd BonusKind = "add"
)

// Bonus is the magnitude of a rule's pay bonus.
type Bonus struct {
	Kind  BonusKind
	Value decimal.Decimal
}

// Multiply builds a factor bonus.
func Multiply(factor decimal.Decimal) Bonus {
	return Bonus{Kind: BonusMultiply, Value: factor}
}

// Add builds a fixed-amount bonus.
func Add(amount decimal.Decimal) Bonus {
	return Bonus{Kind: BonusAdd, Value: amount}
}

// MustDecimal parses a decimal literal, panicking on malformed input.
// Intended for static rule tables; use decimal.NewFromString for user input.
func MustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Compare orders two bonuses by magnitude. Returns -1, 0 or +1 like
// decimal.Cmp. Bonuses of different kinds are incomparable; asking for
// their order signals a malformed group and fails.
func (b Bonus) Compare(other Bonus) (int, error) {
	if b.Kind != other.Kind {
		return 0, &IncomparableBonusError{Left: b.Kind, Right: other.Kind}
	}
	return b.Value.Cmp(other.Value), nil
}

func (b Bonus) validate() error {
	if b.Kind != BonusMultiply && b.Kind != BonusAdd {
		return fmt.Errorf("bonus kind must be %q or %q, got %q", BonusMultiply, BonusAdd, b.Kind)
	}
	if !b.Value.IsPositive() {
		return fmt.Errorf("%s bonus must be positive, got %s", b.Kind, b.Value)
	}
	return nil
}

// =============================================================================
// RULE - One named bonus condition
// =============================================================================

// Predicate decides whether a rule applies to a single minute of a shift.
//
//   minute:     the minute under test
//   shiftStart: the first minute of the shift; enables "worked past
//               midnight but started the day before" conditions
//   holidays:   the active country's public-holiday calendar
//
// Predicates that do not need shiftStart or holidays simply ignore them.
type Predicate func(minute, shiftStart time.Time, holidays HolidaySet) bool

// Rule is a single named bonus condition. Immutable after construction;
// owned by exactly one RuleGroup.
type Rule struct {
	id          string
	description string
	bonus       Bonus
	matches     Predicate
}

// NewRule validates and builds a rule.
func NewRule(id, description string, bonus Bonus, matches Predicate) (*Rule, error) {
	if id == "" {
		return nil, fmt.Errorf("rule id must not be empty")
	}
	if description == "" {
		return nil, fmt.Errorf("rule %s: description must not be empty", id)
	}
	if matches == nil {
		return nil, fmt.Errorf("rule %s: predicate must not be nil", id)
	}
	if err := bonus.validate(); err != nil {
		return nil, fmt.Errorf("rule %s: %w", id, err)
	}
	return &Rule{id: id, description: description, bonus: bonus, matches: matches}, nil
}

// NewDayRule builds a rule matching one calendar day (any year). Useful for
// days that are not official holidays but still get special treatment, like
// December 31st in Germany.
func NewDayRule(id string, month time.Month, day int, bonus Bonus) (*Rule, error) {
	if err := validateMonthDay(month, day); err != nil {
		return nil, fmt.Errorf("rule %s: %w", id, err)
	}
	return NewRule(
		id,
		fmt.Sprintf("YYYY-%02d-%02d", month, day),
		bonus,
		func(m, _ time.Time, _ HolidaySet) bool {
			return m.Month() == month && m.Day() == day
		},
	)
}

// NewDayTimeRule is NewDayRule restricted to the hours from H:00 to
// midnight. Supplying hour 14 matches 14:00 through 23:59.
func NewDayTimeRule(id string, month time.Month, day, hour int, bonus Bonus) (*Rule, error) {
	if err := validateMonthDay(month, day); err != nil {
		return nil, fmt.Errorf("rule %s: %w", id, err)
	}
	if hour < 0 || hour > 23 {
		return nil, fmt.Errorf("rule %s: hour must be within 0..23, got %d", id, hour)
	}
	return NewRule(
		id,
		fmt.Sprintf("YYYY-%02d-%02d %02d:00+", month, day, hour),
		bonus,
		func(m, _ time.Time, _ HolidaySet) bool {
			return m.Month() == month && m.Day() == day && m.Hour() >= hour
		},
	)
}

func validateMonthDay(month time.Month, day int) error {
	if month < time.January || month > time.December {
		return fmt.Errorf("month must be within 1..12, got %d", month)
	}
	if day < 1 || day > 31 {
		return fmt.Errorf("day must be within 1..31, got %d", day)
	}
	return nil
}

// ID returns the rule's unique, immutable key within its group.
func (r *Rule) ID() string { return r.id }

// Description returns the human-readable short form.
func (r *Rule) Description() string { return r.description }

// Bonus returns the rule's bonus specification.
func (r *Rule) Bonus() Bonus { return r.bonus }

// Matches reports whether the rule applies to the given minute.
func (r *Rule) Matches(minute, shiftStart time.Time, holidays HolidaySet) bool {
	return r.matches(minute, shiftStart, holidays)
}

func (r *Rule) String() string {
	return fmt.Sprintf("<Rule: %s %s>", r.id, r.description)
}
