/*
Package countries provides per-country bonus profiles.

PURPOSE:
  A Profile binds a country's default rule groups and its public-holiday
  calendar to the engine. Profiles are looked up by ISO code or alias in
  an explicit registry and may be customized once, at construction time,
  by merging in extra groups or replacing the defaults entirely.

KEY CONCEPTS IN THIS FILE (profile.go):
  - Profile: immutable country ruleset + evaluator
  - Option: construction-time customization (WithGroups, WithReplacedGroups)

CUSTOMIZATION SEMANTICS:
  WithGroups merges by group id:
    - group id already present: its rules are merged in with replace
      semantics (same rule id overwrites, new rule id appends)
    - new group id: the group is appended after the defaults
  WithReplacedGroups discards the defaults before merging starts.
  A profile must end up with at least one group; afterwards it is
  read-only. Configure, then use.

SEE ALSO:
  - registry.go: code/alias lookup
  - germany.go: the German rule table
*/
package countries

import (
	"fmt"
	"time"

	"github.com/warp/bonus-engine/engine"
)

// Profile is one country's immutable bonus ruleset.
type Profile struct {
	code      string
	name      string
	aliases   []string
	evaluator *engine.Evaluator
}

// Option customizes a profile during construction.
type Option func(*profileConfig)

type profileConfig struct {
	add     []*engine.RuleGroup
	replace []*engine.RuleGroup
}

// WithGroups merges the given groups into the profile's defaults by group
// id. Rules inside an existing group override same-id defaults.
func WithGroups(groups ...*engine.RuleGroup) Option {
	return func(c *profileConfig) { c.add = append(c.add, groups...) }
}

// WithReplacedGroups discards the profile's default groups entirely and
// starts from the given ones instead.
func WithReplacedGroups(groups ...*engine.RuleGroup) Option {
	return func(c *profileConfig) { c.replace = groups }
}

// newProfile assembles a profile from a country's defaults plus options.
func newProfile(code, name string, aliases []string, holidays engine.HolidaySet, defaults []*engine.RuleGroup, opts ...Option) (*Profile, error) {
	var cfg profileConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	groups := defaults
	if cfg.replace != nil {
		groups = append([]*engine.RuleGroup(nil), cfg.replace...)
	}

	for _, incoming := range cfg.add {
		existing := findGroup(groups, incoming.ID())
		if existing == nil {
			groups = append(groups, incoming)
			continue
		}
		if err := existing.Extend(incoming.Rules(), true); err != nil {
			return nil, fmt.Errorf("profile %s: merging group %s: %w", code, incoming.ID(), err)
		}
	}

	evaluator, err := engine.NewEvaluator(groups, holidays)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", code, err)
	}

	return &Profile{
		code:      code,
		name:      name,
		aliases:   aliases,
		evaluator: evaluator,
	}, nil
}

func findGroup(groups []*engine.RuleGroup, id string) *engine.RuleGroup {
	for _, g := range groups {
		if g.ID() == id {
			return g
		}
	}
	return nil
}

// Code returns the profile's primary ISO country code.
func (p *Profile) Code() string { return p.code }

// Name returns the country's display name.
func (p *Profile) Name() string { return p.name }

// Aliases returns all codes the profile is registered under.
func (p *Profile) Aliases() []string {
	return append([]string(nil), p.aliases...)
}

// Groups returns the profile's rule groups in evaluation order.
func (p *Profile) Groups() []*engine.RuleGroup { return p.evaluator.Groups() }

// CalculateShift segments one shift [start, end) into matches.
func (p *Profile) CalculateShift(start, end time.Time) ([]engine.Match, error) {
	return p.evaluator.EvaluateShift(start, end)
}

// CalculateShifts merges possibly-overlapping shifts and segments each
// merged interval, concatenating the results in interval order.
func (p *Profile) CalculateShifts(shifts []engine.Timespan) ([]engine.Match, error) {
	return p.evaluator.EvaluateShifts(shifts)
}
