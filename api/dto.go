/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Request types carry validator/v10 struct tags; handlers run the
  validator before touching the engine. Decimal values travel as strings
  to keep precision out of float64 territory.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/groups.go: GroupDefinition, embedded for customization
*/
package api

import (
	"time"

	"github.com/warp/bonus-engine/countries"
	"github.com/warp/bonus-engine/engine"
	"github.com/warp/bonus-engine/factory"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// ShiftDTO is one worked interval, RFC 3339 timestamps.
type ShiftDTO struct {
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end" validate:"required"`
}

// CalculateRequest asks for the bonus segmentation of a batch of shifts.
// CustomGroups merge into the country's defaults by group id; with
// ReplaceGroups set they replace the defaults entirely.
type CalculateRequest struct {
	Shifts        []ShiftDTO                `json:"shifts" validate:"required,min=1,dive"`
	CustomGroups  []factory.GroupDefinition `json:"custom_groups,omitempty"`
	ReplaceGroups bool                      `json:"replace_groups,omitempty"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// RuleDTO describes one bonus rule.
type RuleDTO struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	BonusKind   string `json:"bonus_kind"`
	BonusValue  string `json:"bonus_value"`
}

// GroupDTO describes one rule group.
type GroupDTO struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	BonusKind   string    `json:"bonus_kind"`
	Rules       []RuleDTO `json:"rules"`
}

// CountryDTO describes one registered country profile.
type CountryDTO struct {
	Code    string     `json:"code"`
	Name    string     `json:"name"`
	Aliases []string   `json:"aliases"`
	Groups  []GroupDTO `json:"groups,omitempty"`
}

// MatchDTO is one evaluated shift segment.
type MatchDTO struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Minutes       string    `json:"minutes"`
	Rules         []RuleDTO `json:"rules"`
	BonusMultiply string    `json:"bonus_multiply"`
	BonusAdd      string    `json:"bonus_add"`
}

// CalculateResponse is the segmentation of all (merged) input shifts.
type CalculateResponse struct {
	Country string     `json:"country"`
	Matches []MatchDTO `json:"matches"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERTERS
// =============================================================================

func toRuleDTO(r *engine.Rule) RuleDTO {
	return RuleDTO{
		ID:          r.ID(),
		Description: r.Description(),
		BonusKind:   string(r.Bonus().Kind),
		BonusValue:  r.Bonus().Value.String(),
	}
}

func toGroupDTO(g *engine.RuleGroup) GroupDTO {
	rules := make([]RuleDTO, 0, g.Len())
	for _, r := range g.Rules() {
		rules = append(rules, toRuleDTO(r))
	}
	return GroupDTO{
		ID:          g.ID(),
		Description: g.Description(),
		BonusKind:   string(g.Kind()),
		Rules:       rules,
	}
}

func toCountryDTO(p *countries.Profile, includeGroups bool) CountryDTO {
	dto := CountryDTO{
		Code:    p.Code(),
		Name:    p.Name(),
		Aliases: p.Aliases(),
	}
	if includeGroups {
		for _, g := range p.Groups() {
			dto.Groups = append(dto.Groups, toGroupDTO(g))
		}
	}
	return dto
}

func toMatchDTOs(matches []engine.Match) []MatchDTO {
	dtos := make([]MatchDTO, 0, len(matches))
	for _, m := range matches {
		rules := make([]RuleDTO, 0, len(m.Rules))
		for _, r := range m.Rules {
			rules = append(rules, toRuleDTO(r))
		}
		dtos = append(dtos, MatchDTO{
			Start:         m.Start,
			End:           m.End,
			Minutes:       m.Minutes().String(),
			Rules:         rules,
			BonusMultiply: m.BonusMultiply().String(),
			BonusAdd:      m.BonusAdd().String(),
		})
	}
	return dtos
}
