package countries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/bonus-engine/countries"
	"github.com/warp/bonus-engine/engine"
)

func dt(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func germany(t *testing.T) *countries.Profile {
	t.Helper()
	p, err := countries.NewGermany()
	require.NoError(t, err)
	return p
}

func TestGermany_NightShift(t *testing.T) {
	// GIVEN: A shift [02:00, 07:00) on an ordinary weekday
	// WHEN: Calculated under the German profile
	// THEN: Night work until 06:00, nothing afterwards

	matches, err := germany(t).CalculateShift(
		dt(2018, time.February, 1, 2, 0), dt(2018, time.February, 1, 7, 0))
	require.NoError(t, err)

	require.Len(t, matches, 2)

	assert.Equal(t, dt(2018, time.February, 1, 2, 0), matches[0].Start)
	assert.Equal(t, dt(2018, time.February, 1, 6, 0), matches[0].End)
	assert.Equal(t, "DE_NIGHT", matches[0].RulesString())
	assert.True(t, matches[0].BonusMultiply().Equal(engine.MustDecimal("0.25")))

	assert.Equal(t, dt(2018, time.February, 1, 6, 0), matches[1].Start)
	assert.Equal(t, dt(2018, time.February, 1, 7, 0), matches[1].End)
	assert.Empty(t, matches[1].Rules)
}

func TestGermany_DaytimeShiftNoBonus(t *testing.T) {
	matches, err := germany(t).CalculateShift(
		dt(2018, time.February, 1, 8, 0), dt(2018, time.February, 1, 9, 1))
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, dt(2018, time.February, 1, 8, 0), matches[0].Start)
	assert.Equal(t, dt(2018, time.February, 1, 9, 1), matches[0].End)
	assert.Empty(t, matches[0].Rules)
}

func TestGermany_SundayNightComposesAcrossGroups(t *testing.T) {
	// GIVEN: A shift [20:00, 22:00) on Sunday 2018-09-16
	// WHEN: Calculated
	// THEN: One match with night work AND Sunday work active together

	matches, err := germany(t).CalculateShift(
		dt(2018, time.September, 16, 20, 0), dt(2018, time.September, 16, 22, 0))
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, "DE_NIGHT+DE_SUNDAY", matches[0].RulesString())
	assert.True(t, matches[0].BonusMultiply().Equal(engine.MustDecimal("0.75")))
}

func TestGermany_ChristmasEveIntoChristmasDay(t *testing.T) {
	// The reference scenario: working 2018-12-24 13:00 through 02:00 the
	// next morning crosses four distinct bonus situations.

	matches, err := germany(t).CalculateShift(
		dt(2018, time.December, 24, 13, 0), dt(2018, time.December, 25, 2, 0))
	require.NoError(t, err)

	require.Len(t, matches, 4)

	// 13:00-14:00 plain afternoon
	assert.Equal(t, dt(2018, time.December, 24, 14, 0), matches[0].End)
	assert.Equal(t, "None", matches[0].RulesString())

	// 14:00-20:00 Christmas Eve bonus
	assert.Equal(t, dt(2018, time.December, 24, 20, 0), matches[1].End)
	assert.Equal(t, "DE_HEILIGABEND", matches[1].RulesString())

	// 20:00-00:00 night work joins
	assert.Equal(t, dt(2018, time.December, 25, 0, 0), matches[2].End)
	assert.Equal(t, "DE_NIGHT+DE_HEILIGABEND", matches[2].RulesString())

	// 00:00-02:00 Christmas Day (x1.5 beats the x1.25 holiday rule) plus
	// the deeper started-yesterday night rate
	assert.Equal(t, dt(2018, time.December, 25, 2, 0), matches[3].End)
	assert.Equal(t, "DE_NIGHT_START_YESTERDAY+DE_WEIHNACHTSFEIERTAG_1", matches[3].RulesString())
	assert.True(t, matches[3].BonusMultiply().Equal(engine.MustDecimal("1.9")))
}

func TestGermany_PublicHoliday(t *testing.T) {
	// 2018-05-10 is Ascension day; its night spills into May 11th.
	matches, err := germany(t).CalculateShift(
		dt(2018, time.May, 10, 22, 0), dt(2018, time.May, 11, 5, 0))
	require.NoError(t, err)

	require.Len(t, matches, 3)
	assert.Equal(t, "DE_NIGHT+DE_HOLIDAY", matches[0].RulesString())
	assert.Equal(t, dt(2018, time.May, 11, 0, 0), matches[0].End)
	assert.Equal(t, "DE_NIGHT_START_YESTERDAY+DE_HOLIDAY_NEXT_NIGHT", matches[1].RulesString())
	assert.Equal(t, dt(2018, time.May, 11, 4, 0), matches[1].End)
	assert.Equal(t, "DE_NIGHT", matches[2].RulesString())
}

func TestGermany_SundayIntoMonday(t *testing.T) {
	// 2018-09-16 is a Sunday; after midnight only the Monday-carryover
	// Sunday rule applies, and only until 04:00.
	matches, err := germany(t).CalculateShift(
		dt(2018, time.September, 16, 23, 0), dt(2018, time.September, 17, 5, 0))
	require.NoError(t, err)

	require.Len(t, matches, 3)
	assert.Equal(t, "DE_NIGHT+DE_SUNDAY", matches[0].RulesString())
	assert.Equal(t, "DE_NIGHT_START_YESTERDAY+DE_SUNDAY_NEXT_NIGHT", matches[1].RulesString())
	assert.Equal(t, dt(2018, time.September, 17, 4, 0), matches[1].End)
	assert.Equal(t, "DE_NIGHT", matches[2].RulesString())
}

func TestGermany_CalculateShifts_MergesBeforeEvaluation(t *testing.T) {
	// GIVEN: Shifts [02:00,06:00) and [01:00,02:00) on the same day
	// WHEN: Calculated together
	// THEN: One merged interval evaluated with shiftStart 01:00

	matches, err := germany(t).CalculateShifts([]engine.Timespan{
		{Start: dt(2018, time.February, 1, 2, 0), End: dt(2018, time.February, 1, 6, 0)},
		{Start: dt(2018, time.February, 1, 1, 0), End: dt(2018, time.February, 1, 2, 0)},
	})
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, dt(2018, time.February, 1, 1, 0), matches[0].Start)
	assert.Equal(t, dt(2018, time.February, 1, 6, 0), matches[0].End)
	assert.Equal(t, "DE_NIGHT", matches[0].RulesString())
}
