/*
group.go - RuleGroup: mutually exclusive rules, highest bonus wins

PURPOSE:
  Groups collect rules describing the same kind of bonus condition (all
  night-work variants, all Sunday/holiday variants). At most one rule per
  group counts for any given minute - the one with the highest bonus.

KEY INVARIANTS:
  - Rule ids are unique within a group; Append fails on collision unless
    replace is requested. Replacing keeps the rule's original position.
  - All rules in a group share one bonus kind. Mixing Multiply and Add
    rules would make "highest bonus" meaningless and is rejected.
  - Insertion order is preserved and is the tie-breaker: when two rules
    match with equal bonus magnitude, the one inserted first wins.

LIFECYCLE:
  Groups are assembled once while a country profile is constructed and are
  read-only afterwards. Configure, then use.

SEE ALSO:
  - rule.go: Rule and Bonus
  - evaluator.go: evaluates every group per minute
*/
package engine

import (
	"fmt"
	"time"
)

// RuleGroup is a named, insertion-ordered collection of same-kind rules.
type RuleGroup struct {
	id          string
	description string
	order       []string
	rules       map[string]*Rule
}

// NewRuleGroup builds a group holding the given rules, in order.
func NewRuleGroup(id, description string, rules ...*Rule) (*RuleGroup, error) {
	if id == "" {
		return nil, fmt.Errorf("rule group id must not be empty")
	}
	if description == "" {
		return nil, fmt.Errorf("rule group %s: description must not be empty", id)
	}
	g := &RuleGroup{
		id:          id,
		description: description,
		rules:       make(map[string]*Rule, len(rules)),
	}
	if err := g.Extend(rules, false); err != nil {
		return nil, err
	}
	return g, nil
}

// ID returns the group's unique, immutable key.
func (g *RuleGroup) ID() string { return g.id }

// Description returns the human-readable short form.
func (g *RuleGroup) Description() string { return g.description }

// Kind returns the bonus kind shared by all member rules. Empty for an
// empty group; the first appended rule establishes it.
func (g *RuleGroup) Kind() BonusKind {
	if len(g.order) == 0 {
		return ""
	}
	return g.rules[g.order[0]].Bonus().Kind
}

// Len returns the number of member rules.
func (g *RuleGroup) Len() int { return len(g.order) }

// Contains reports whether a rule with the given id is a member.
func (g *RuleGroup) Contains(id string) bool {
	_, ok := g.rules[id]
	return ok
}

// Rules returns the member rules in insertion order.
func (g *RuleGroup) Rules() []*Rule {
	out := make([]*Rule, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.rules[id])
	}
	return out
}

// Append adds one rule. A duplicate id fails unless replace is set; a
// replaced rule keeps its original position. A bonus kind different from
// the group's established kind always fails, replace or not.
func (g *RuleGroup) Append(rule *Rule, replace bool) error {
	if rule == nil {
		return fmt.Errorf("group %s: rule must not be nil", g.id)
	}
	if _, exists := g.rules[rule.ID()]; exists && !replace {
		return &DuplicateRuleError{GroupID: g.id, RuleID: rule.ID()}
	}
	if kind := g.Kind(); kind != "" && kind != rule.Bonus().Kind {
		return &IncompatibleBonusKindError{
			GroupID:   g.id,
			RuleID:    rule.ID(),
			GroupKind: kind,
			RuleKind:  rule.Bonus().Kind,
		}
	}
	if _, exists := g.rules[rule.ID()]; !exists {
		g.order = append(g.order, rule.ID())
	}
	g.rules[rule.ID()] = rule
	return nil
}

// Extend applies Append to every given rule.
func (g *RuleGroup) Extend(rules []*Rule, replace bool) error {
	for _, r := range rules {
		if err := g.Append(r, replace); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate tests every member rule against the given minute and returns
// the matching rule with the greatest bonus, or nil if none match. Ties
// resolve to the rule inserted first.
func (g *RuleGroup) Evaluate(minute, shiftStart time.Time, holidays HolidaySet) (*Rule, error) {
	var best *Rule
	for _, id := range g.order {
		rule := g.rules[id]
		if !rule.Matches(minute, shiftStart, holidays) {
			continue
		}
		if best == nil {
			best = rule
			continue
		}
		cmp, err := rule.Bonus().Compare(best.Bonus())
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", g.id, err)
		}
		if cmp > 0 {
			best = rule
		}
	}
	return best, nil
}
