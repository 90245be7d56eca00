/*
Package factory provides JSON to rule group conversion.

PURPOSE:
  Converts JSON rule group definitions into engine.RuleGroup objects.
  This enables customization without code changes - payroll admins can
  add company-specific bonus days in JSON, and the factory creates the
  proper rules.

SCOPE:
  Only calendar-day rules are expressible in data: a plain day rule
  (month + day) or a day-time rule (month + day + from-hour). Conditions
  over weekdays, holiday calendars or shift starts are arbitrary code
  and stay in country rule tables.

JSON SCHEMA:
  [
    {
      "id": "GRP_COMPANY_DAYS",
      "description": "Company bonus days",
      "rules": [
        {"id": "FOUNDING_DAY", "month": 6, "day": 12, "multiply": "0.5"},
        {"id": "NYE_EVENING", "month": 12, "day": 31, "hour": 18, "add": "25"}
      ]
    }
  ]

  Exactly one of "multiply"/"add" per rule, as a decimal string. All
  rules in a group must use the same one.

SEE ALSO:
  - engine/rule.go: NewDayRule / NewDayTimeRule
  - api: accepts these definitions for per-request customization
*/
package factory

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/bonus-engine/engine"
)

// GroupDefinition is the JSON shape of one rule group.
type GroupDefinition struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Rules       []RuleDefinition `json:"rules"`
}

// RuleDefinition is the JSON shape of one calendar-day rule. Hour is
// optional; when present the rule only matches from that hour onwards.
type RuleDefinition struct {
	ID       string `json:"id"`
	Month    int    `json:"month"`
	Day      int    `json:"day"`
	Hour     *int   `json:"hour,omitempty"`
	Multiply string `json:"multiply,omitempty"`
	Add      string `json:"add,omitempty"`
}

// ParseGroups decodes and builds rule groups from JSON.
func ParseGroups(data []byte) ([]*engine.RuleGroup, error) {
	var defs []GroupDefinition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parsing rule groups: %w", err)
	}
	return BuildGroups(defs)
}

// BuildGroups turns decoded definitions into engine rule groups.
func BuildGroups(defs []GroupDefinition) ([]*engine.RuleGroup, error) {
	if len(defs) == 0 {
		return nil, nil
	}

	groups := make([]*engine.RuleGroup, 0, len(defs))
	for _, def := range defs {
		group, err := buildGroup(def)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func buildGroup(def GroupDefinition) (*engine.RuleGroup, error) {
	if len(def.Rules) == 0 {
		return nil, fmt.Errorf("group %s: at least one rule is required", def.ID)
	}

	group, err := engine.NewRuleGroup(def.ID, def.Description)
	if err != nil {
		return nil, err
	}

	for _, rd := range def.Rules {
		rule, err := buildRule(rd)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", def.ID, err)
		}
		if err := group.Append(rule, false); err != nil {
			return nil, err
		}
	}
	return group, nil
}

func buildRule(rd RuleDefinition) (*engine.Rule, error) {
	bonus, err := parseBonus(rd)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", rd.ID, err)
	}
	if rd.Hour != nil {
		return engine.NewDayTimeRule(rd.ID, time.Month(rd.Month), rd.Day, *rd.Hour, bonus)
	}
	return engine.NewDayRule(rd.ID, time.Month(rd.Month), rd.Day, bonus)
}

func parseBonus(rd RuleDefinition) (engine.Bonus, error) {
	switch {
	case rd.Multiply != "" && rd.Add != "":
		return engine.Bonus{}, fmt.Errorf("provide either multiply or add, not both")
	case rd.Multiply != "":
		value, err := decimal.NewFromString(rd.Multiply)
		if err != nil {
			return engine.Bonus{}, fmt.Errorf("multiply: %w", err)
		}
		return engine.Multiply(value), nil
	case rd.Add != "":
		value, err := decimal.NewFromString(rd.Add)
		if err != nil {
			return engine.Bonus{}, fmt.Errorf("add: %w", err)
		}
		return engine.Add(value), nil
	default:
		return engine.Bonus{}, fmt.Errorf("provide either multiply or add")
	}
}
