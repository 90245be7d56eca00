package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/bonus-engine/engine"
)

func span(startHour, endHour int) engine.Timespan {
	return engine.Timespan{
		Start: dt(2018, time.October, 2, startHour, 0),
		End:   dt(2018, time.October, 2, endHour, 0),
	}
}

func TestNewTimespan(t *testing.T) {
	_, err := engine.NewTimespan(dt(2018, time.October, 2, 5, 0), dt(2018, time.October, 2, 8, 0))
	assert.NoError(t, err)

	_, err = engine.NewTimespan(dt(2018, time.October, 2, 8, 0), dt(2018, time.October, 2, 5, 0))
	assert.ErrorIs(t, err, engine.ErrInvalidShift)

	_, err = engine.NewTimespan(dt(2018, time.October, 2, 5, 0), dt(2018, time.October, 2, 5, 0))
	assert.ErrorIs(t, err, engine.ErrInvalidShift)
}

func TestTimespan_Overlaps(t *testing.T) {
	nextDay := engine.Timespan{
		Start: dt(2018, time.October, 3, 5, 0),
		End:   dt(2018, time.October, 3, 8, 0),
	}

	tests := []struct {
		name     string
		a, b     engine.Timespan
		overlaps bool
	}{
		{"different days", span(5, 8), nextDay, false},
		{"identical", span(5, 8), span(5, 8), true},
		{"touching", span(5, 8), span(8, 9), true},
		{"partial overlap", span(5, 8), span(7, 9), true},
		{"disjoint", span(5, 8), span(9, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// symmetric in both directions
			assert.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.overlaps, tc.b.Overlaps(tc.a))
		})
	}
}

func TestTimespan_MergeWith(t *testing.T) {
	tests := []struct {
		name   string
		a, b   engine.Timespan
		merged engine.Timespan
	}{
		{"touching", span(5, 8), span(8, 10), span(5, 10)},
		{"overlapping", span(5, 8), span(7, 10), span(5, 10)},
		{"contained", span(5, 8), span(6, 7), span(5, 8)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.a.MergeWith(tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.merged, got)

			got, err = tc.b.MergeWith(tc.a)
			require.NoError(t, err)
			assert.Equal(t, tc.merged, got)
		})
	}
}

func TestTimespan_MergeWithNonOverlapping(t *testing.T) {
	_, err := span(5, 8).MergeWith(span(9, 10))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlapping")
}

func TestUnion(t *testing.T) {
	tests := []struct {
		name string
		in   []engine.Timespan
		out  []engine.Timespan
	}{
		{
			"unsorted touching spans merge",
			[]engine.Timespan{span(8, 10), span(5, 8)},
			[]engine.Timespan{span(5, 10)},
		},
		{
			"disjoint spans stay separate",
			[]engine.Timespan{span(5, 8), span(9, 10)},
			[]engine.Timespan{span(5, 8), span(9, 10)},
		},
		{
			"bridging span joins its neighbors",
			[]engine.Timespan{span(5, 8), span(9, 10), span(8, 9), span(11, 12)},
			[]engine.Timespan{span(5, 10), span(11, 12)},
		},
		{
			"empty input",
			nil,
			nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, engine.Union(tc.in))
		})
	}
}

func TestUnion_DoesNotModifyInput(t *testing.T) {
	in := []engine.Timespan{span(8, 10), span(5, 8)}
	engine.Union(in)
	assert.Equal(t, span(8, 10), in[0])
	assert.Equal(t, span(5, 8), in[1])
}
