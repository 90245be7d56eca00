/*
evaluator.go - Shift segmentation: minute walk and match compression

PURPOSE:
  Turns a shift into the minimal sequence of Match segments. The shift is
  walked minute by minute; each minute's active rule set is the winner of
  every group. Consecutive minutes with identical rule sets collapse into
  one segment.

BOUNDARY SEMANTICS:
  - Shift bounds are truncated (not rounded) to whole minutes before
    anything else. A shift that collapses to zero length is invalid.
  - The walk covers [start, end): the start minute is evaluated, the end
    minute is not.
  - shiftStart is the first walked minute and is passed to every
    predicate, enabling cross-midnight lookback rules.

GUARANTEES:
  The returned segments are contiguous, cover [start, end) exactly, and
  are maximal: adjacent segments never share an identical rule set. A
  shift matching nothing yields one segment with an empty rule set.

COMPLEXITY:
  O(shift length in minutes * total rule count). Shifts are human worked
  intervals, so the per-minute walk is kept for its obviousness.

SEE ALSO:
  - timespan.go: input normalization for the multi-shift entry point
  - group.go: per-minute winner selection
*/
package engine

import (
	"time"
)

// Evaluator applies a fixed rule table and holiday calendar to shifts.
// Configure once, then use read-only; evaluation itself is pure and
// touches no shared state.
type Evaluator struct {
	groups   []*RuleGroup
	holidays HolidaySet
}

// NewEvaluator builds an evaluator over the given groups. At least one
// group is required. A nil holiday set is replaced by an empty one.
func NewEvaluator(groups []*RuleGroup, holidays HolidaySet) (*Evaluator, error) {
	if len(groups) == 0 {
		return nil, ErrNoRuleGroups
	}
	if holidays == nil {
		holidays = EmptyHolidaySet{}
	}
	return &Evaluator{groups: groups, holidays: holidays}, nil
}

// Groups returns the evaluator's rule groups in evaluation order.
func (e *Evaluator) Groups() []*RuleGroup { return e.groups }

// EvaluateShift segments one shift [start, end).
func (e *Evaluator) EvaluateShift(start, end time.Time) ([]Match, error) {
	start = start.Truncate(time.Minute)
	end = end.Truncate(time.Minute)
	if !start.Before(end) {
		return nil, &InvalidShiftError{Start: start, End: end}
	}

	shiftStart := start
	var matches []Match

	for minute := start; minute.Before(end); minute = minute.Add(time.Minute) {
		active, err := e.activeRules(minute, shiftStart)
		if err != nil {
			return nil, err
		}

		if n := len(matches); n > 0 && sameRules(matches[n-1].Rules, active) {
			// same rule set as the previous minute: grow the segment
			matches[n-1].End = matches[n-1].End.Add(time.Minute)
		} else {
			matches = append(matches, Match{
				Start: minute,
				End:   minute.Add(time.Minute),
				Rules: active,
			})
		}
	}

	return matches, nil
}

// EvaluateShifts merges the given shifts into disjoint intervals, then
// segments each merged interval independently. Results are concatenated
// in interval order; the outcome does not depend on input order. Every
// input shift must be valid on its own.
func (e *Evaluator) EvaluateShifts(shifts []Timespan) ([]Match, error) {
	for _, s := range shifts {
		if !s.Start.Truncate(time.Minute).Before(s.End.Truncate(time.Minute)) {
			return nil, &InvalidShiftError{
				Start: s.Start.Truncate(time.Minute),
				End:   s.End.Truncate(time.Minute),
			}
		}
	}

	var matches []Match
	for _, span := range Union(shifts) {
		spanMatches, err := e.EvaluateShift(span.Start, span.End)
		if err != nil {
			return nil, err
		}
		matches = append(matches, spanMatches...)
	}
	return matches, nil
}

// activeRules collects this minute's winner from every group, in group
// order. At most one rule per group, possibly none at all.
func (e *Evaluator) activeRules(minute, shiftStart time.Time) ([]*Rule, error) {
	var active []*Rule
	for _, group := range e.groups {
		winner, err := group.Evaluate(minute, shiftStart, e.holidays)
		if err != nil {
			return nil, err
		}
		if winner != nil {
			active = append(active, winner)
		}
	}
	return active, nil
}

// sameRules compares two active rule sets. Both are produced in group
// evaluation order, so positional id comparison suffices.
func sameRules(a, b []*Rule) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID() != b[i].ID() {
			return false
		}
	}
	return true
}
