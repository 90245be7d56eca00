package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/bonus-engine/engine"
)

func multiplyRule(t *testing.T, id, factor string, pred engine.Predicate) *engine.Rule {
	t.Helper()
	return mustRule(t, id, engine.Multiply(engine.MustDecimal(factor)), pred)
}

func TestNewRuleGroup_Invalid(t *testing.T) {
	_, err := engine.NewRuleGroup("", "desc")
	assert.Error(t, err)

	_, err = engine.NewRuleGroup("GRP", "")
	assert.Error(t, err)
}

func TestRuleGroup_AppendDuplicate(t *testing.T) {
	// GIVEN: A group already holding rule A
	// WHEN: Another rule with id A is appended without replace
	// THEN: The append fails with ErrDuplicateRuleID

	g, err := engine.NewRuleGroup("GRP", "group",
		multiplyRule(t, "A", "0.25", alwaysTrue))
	require.NoError(t, err)

	err = g.Append(multiplyRule(t, "A", "0.5", alwaysTrue), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrDuplicateRuleID)

	var dup *engine.DuplicateRuleError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "GRP", dup.GroupID)
	assert.Equal(t, "A", dup.RuleID)
}

func TestRuleGroup_ReplaceKeepsPosition(t *testing.T) {
	// GIVEN: A group with rules A, B in that order
	// WHEN: A is replaced
	// THEN: The new A keeps the first position and the new bonus

	g, err := engine.NewRuleGroup("GRP", "group",
		multiplyRule(t, "A", "0.25", alwaysTrue),
		multiplyRule(t, "B", "0.5", alwaysTrue))
	require.NoError(t, err)

	require.NoError(t, g.Append(multiplyRule(t, "A", "0.75", alwaysTrue), true))

	rules := g.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "A", rules[0].ID())
	assert.True(t, rules[0].Bonus().Value.Equal(engine.MustDecimal("0.75")))
	assert.Equal(t, "B", rules[1].ID())
}

func TestRuleGroup_MixedKindsRejected(t *testing.T) {
	g, err := engine.NewRuleGroup("GRP", "group",
		multiplyRule(t, "A", "0.25", alwaysTrue))
	require.NoError(t, err)

	err = g.Append(mustRule(t, "B", engine.Add(engine.MustDecimal("5")), alwaysTrue), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrIncompatibleBonusKind)

	// replace does not bypass the kind check either
	err = g.Append(mustRule(t, "A", engine.Add(engine.MustDecimal("5")), alwaysTrue), true)
	assert.ErrorIs(t, err, engine.ErrIncompatibleBonusKind)
}

func TestRuleGroup_EvaluatePicksHighestBonus(t *testing.T) {
	g, err := engine.NewRuleGroup("GRP", "group",
		multiplyRule(t, "LOW", "0.25", alwaysTrue),
		multiplyRule(t, "HIGH", "1.25", alwaysTrue),
		multiplyRule(t, "MID", "0.5", alwaysTrue))
	require.NoError(t, err)

	now := dt(2018, time.February, 1, 12, 0)
	winner, err := g.Evaluate(now, now, nil)
	require.NoError(t, err)
	require.NotNil(t, winner)
	assert.Equal(t, "HIGH", winner.ID())
}

func TestRuleGroup_EvaluateIgnoresNonMatching(t *testing.T) {
	g, err := engine.NewRuleGroup("GRP", "group",
		multiplyRule(t, "LOW", "0.25", alwaysTrue),
		multiplyRule(t, "HIGH", "1.25", alwaysFalse))
	require.NoError(t, err)

	now := dt(2018, time.February, 1, 12, 0)
	winner, err := g.Evaluate(now, now, nil)
	require.NoError(t, err)
	require.NotNil(t, winner)
	assert.Equal(t, "LOW", winner.ID())
}

func TestRuleGroup_EvaluateNoMatch(t *testing.T) {
	g, err := engine.NewRuleGroup("GRP", "group",
		multiplyRule(t, "A", "0.25", alwaysFalse))
	require.NoError(t, err)

	now := dt(2018, time.February, 1, 12, 0)
	winner, err := g.Evaluate(now, now, nil)
	require.NoError(t, err)
	assert.Nil(t, winner)
}

func TestRuleGroup_EvaluateTieBreaksByInsertionOrder(t *testing.T) {
	// GIVEN: Two matching rules with equal bonus magnitude
	// WHEN: The group is evaluated
	// THEN: The rule inserted first wins, deterministically

	g, err := engine.NewRuleGroup("GRP", "group",
		multiplyRule(t, "FIRST", "0.5", alwaysTrue),
		multiplyRule(t, "SECOND", "0.5", alwaysTrue))
	require.NoError(t, err)

	now := dt(2018, time.February, 1, 12, 0)
	for i := 0; i < 10; i++ {
		winner, err := g.Evaluate(now, now, nil)
		require.NoError(t, err)
		require.NotNil(t, winner)
		assert.Equal(t, "FIRST", winner.ID())
	}
}

func TestRuleGroup_Accessors(t *testing.T) {
	g, err := engine.NewRuleGroup("GRP", "group",
		multiplyRule(t, "A", "0.25", alwaysTrue),
		multiplyRule(t, "B", "0.5", alwaysTrue))
	require.NoError(t, err)

	assert.Equal(t, "GRP", g.ID())
	assert.Equal(t, "group", g.Description())
	assert.Equal(t, engine.BonusMultiply, g.Kind())
	assert.Equal(t, 2, g.Len())
	assert.True(t, g.Contains("A"))
	assert.False(t, g.Contains("C"))
}
