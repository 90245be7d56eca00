/*
timespan.go - Interval normalization for multi-shift evaluation

PURPOSE:
  Callers hand in worked shifts as they were recorded, which may overlap
  or touch (a shift split across two bookings, a correction overlapping
  the original). Evaluating them independently would double-count bonus
  minutes and break the cross-midnight lookback. Union collapses the
  input into a minimal set of disjoint intervals first.

SEMANTICS:
  - Overlaps treats touching intervals as overlapping: [5,8) and [8,9)
    merge into [5,9). A shift that continues seamlessly is one shift.
  - Union sorts by start and folds left; output is minimal, disjoint and
    start-ordered, covering exactly the same total time.
*/
package engine

import (
	"fmt"
	"sort"
	"time"
)

// Timespan is a normalization-only interval; it never appears in results.
type Timespan struct {
	Start time.Time
	End   time.Time
}

// NewTimespan validates that start precedes end.
func NewTimespan(start, end time.Time) (Timespan, error) {
	if !start.Before(end) {
		return Timespan{}, &InvalidShiftError{Start: start, End: end}
	}
	return Timespan{Start: start, End: end}, nil
}

// Overlaps reports whether the two spans share time or touch.
func (t Timespan) Overlaps(other Timespan) bool {
	return !t.Start.After(other.End) && !other.Start.After(t.End)
}

// MergeWith returns the span covering both this span and the other. The
// spans must overlap or touch.
func (t Timespan) MergeWith(other Timespan) (Timespan, error) {
	if !t.Overlaps(other) {
		return Timespan{}, fmt.Errorf("only overlapping timespans can be merged: %s and %s", t, other)
	}
	merged := t
	if other.Start.Before(merged.Start) {
		merged.Start = other.Start
	}
	if other.End.After(merged.End) {
		merged.End = other.End
	}
	return merged, nil
}

// Union returns the minimal, start-ordered, disjoint list of spans
// covering the same total time as the input. The input is not modified.
func Union(spans []Timespan) []Timespan {
	if len(spans) == 0 {
		return nil
	}

	sorted := make([]Timespan, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	result := []Timespan{sorted[0]}
	for _, span := range sorted[1:] {
		last := &result[len(result)-1]
		if span.Overlaps(*last) {
			// sorted by start, so only the end can grow
			if span.End.After(last.End) {
				last.End = span.End
			}
		} else {
			result = append(result, span)
		}
	}
	return result
}

func (t Timespan) String() string {
	return fmt.Sprintf("[%s, %s)", t.Start.Format(time.RFC3339), t.End.Format(time.RFC3339))
}
