/*
match.go - Match: the evaluator's output unit

PURPOSE:
  A Match links a maximal contiguous part of a shift to the set of rules
  active throughout it. The caller turns matches into payroll lines: pay
  for the segment's duration at base rate times (1 + BonusMultiply), plus
  BonusAdd in currency.

INVARIANTS:
  - [Start, End) is half-open with End > Start, minute resolution.
  - Rules holds at most one rule per group; group resolution already
    picked the winners. It may be empty: "no bonus applies here".
  - Adjacent matches produced for one shift never share an identical
    rule set (segments are maximal).
*/
package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Match is one segment of an evaluated shift.
type Match struct {
	// Start is inclusive, End exclusive; both at minute resolution.
	Start time.Time
	End   time.Time

	// Rules active for every minute in [Start, End), at most one per
	// group, ordered by group evaluation order.
	Rules []*Rule
}

// Duration returns End - Start.
func (m Match) Duration() time.Duration { return m.End.Sub(m.Start) }

// Minutes returns the segment length in whole minutes as a decimal,
// ready for payroll arithmetic.
func (m Match) Minutes() decimal.Decimal {
	return decimal.NewFromInt(int64(m.Duration() / time.Minute))
}

// BonusMultiply returns the sum of the Multiply factors of the member
// rules. Zero when no multiply rule is active.
func (m Match) BonusMultiply() decimal.Decimal { return m.sumBonus(BonusMultiply) }

// BonusAdd returns the sum of the Add amounts of the member rules. Zero
// when no add rule is active.
func (m Match) BonusAdd() decimal.Decimal { return m.sumBonus(BonusAdd) }

func (m Match) sumBonus(kind BonusKind) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range m.Rules {
		if r.Bonus().Kind == kind {
			sum = sum.Add(r.Bonus().Value)
		}
	}
	return sum
}

// RulesString returns the matched rule ids joined by "+", or "None" when
// the segment carries no bonus.
func (m Match) RulesString() string {
	if len(m.Rules) == 0 {
		return "None"
	}
	ids := make([]string, len(m.Rules))
	for i, r := range m.Rules {
		ids[i] = r.ID()
	}
	return strings.Join(ids, "+")
}

func (m Match) String() string {
	return fmt.Sprintf("<Match %s~%s, %s, multiply=%s, add=%s>",
		m.Start.Format(time.RFC3339), m.End.Format(time.RFC3339),
		m.RulesString(), m.BonusMultiply(), m.BonusAdd())
}
