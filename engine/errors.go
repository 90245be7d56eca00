/*
errors.go - Centralized error types for the bonus engine

PURPOSE:
  All engine error types in one place for consistency and discoverability.
  Country packages wrap these errors with additional context.

ERROR CATEGORIES:
  1. Usage errors - invalid evaluation input (bad shift bounds)
  2. Configuration errors - malformed rule tables, caught at startup

USAGE:
  Callers match with errors.Is:

    if errors.Is(err, engine.ErrInvalidShift) {
        // reject the request, do not retry
    }

  All errors are raised synchronously at the point of violation. There are
  no partial results and nothing is retriable.

SEE ALSO:
  - group.go: raises duplicate/incompatible errors
  - evaluator.go: raises invalid shift errors
  - countries: raises unknown country errors built on these conventions
*/
package engine

import (
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidShift is returned when a shift's start is not before its
	// end after truncation to whole minutes.
	ErrInvalidShift = errors.New("invalid shift: start must be before end")

	// ErrDuplicateRuleID is returned when a rule is appended to a group
	// that already holds a rule with the same id and replace was not
	// requested.
	ErrDuplicateRuleID = errors.New("duplicate rule id")

	// ErrIncompatibleBonusKind is returned when a multiply rule is added
	// to a group of add rules, or vice versa.
	ErrIncompatibleBonusKind = errors.New("incompatible bonus kind")

	// ErrIncomparableBonus is returned when bonuses of different kinds are
	// ordered against each other. A well-formed group never triggers this;
	// seeing it means the group invariant was broken earlier.
	ErrIncomparableBonus = errors.New("cannot compare bonuses of different kinds")

	// ErrNoRuleGroups is returned when an evaluator or profile ends up
	// with an empty rule group list after construction.
	ErrNoRuleGroups = errors.New("at least one rule group is required")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidShiftError reports the offending shift bounds, already truncated
// to minute resolution.
type InvalidShiftError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidShiftError) Error() string {
	return fmt.Sprintf("invalid shift [%s, %s): start must be before end",
		e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}

func (e *InvalidShiftError) Unwrap() error { return ErrInvalidShift }

// DuplicateRuleError reports which rule id collided in which group.
type DuplicateRuleError struct {
	GroupID string
	RuleID  string
}

func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("group %s already contains rule %s", e.GroupID, e.RuleID)
}

func (e *DuplicateRuleError) Unwrap() error { return ErrDuplicateRuleID }

// IncompatibleBonusKindError reports a kind mismatch between a group and a
// rule being added to it.
type IncompatibleBonusKindError struct {
	GroupID   string
	RuleID    string
	GroupKind BonusKind
	RuleKind  BonusKind
}

func (e *IncompatibleBonusKindError) Error() string {
	return fmt.Sprintf("cannot add %s rule %s to group %s containing %s rules",
		e.RuleKind, e.RuleID, e.GroupID, e.GroupKind)
}

func (e *IncompatibleBonusKindError) Unwrap() error { return ErrIncompatibleBonusKind }

// IncomparableBonusError reports the two kinds that were ordered against
// each other.
type IncomparableBonusError struct {
	Left  BonusKind
	Right BonusKind
}

func (e *IncomparableBonusError) Error() string {
	return fmt.Sprintf("cannot compare %s bonus to %s bonus", e.Left, e.Right)
}

func (e *IncomparableBonusError) Unwrap() error { return ErrIncomparableBonus }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsConfigurationError reports whether the error stems from a malformed
// rule table. These surface while assembling a profile, before any shift
// is evaluated, and should be treated as startup failures.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrDuplicateRuleID) ||
		errors.Is(err, ErrIncompatibleBonusKind) ||
		errors.Is(err, ErrIncomparableBonus) ||
		errors.Is(err, ErrNoRuleGroups)
}

// IsUsageError reports whether the error is due to invalid caller input.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrInvalidShift)
}
