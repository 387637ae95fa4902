package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatesOrder(t *testing.T) {
	want := []State{StatePlanned, StateGrowing, StateFruiting, StateHarvesting, StateCleaning, StateEmpty}
	assert.Equal(t, want, States())
}

func TestValid(t *testing.T) {
	for _, s := range States() {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, State("DORMANT").Valid())
	assert.False(t, State("planned").Valid()) // case-sensitive on purpose
	assert.False(t, State("").Valid())
}

func TestNext(t *testing.T) {
	cases := []struct {
		from State
		want State
	}{
		{StatePlanned, StateGrowing},
		{StateGrowing, StateFruiting},
		{StateFruiting, StateHarvesting},
		{StateHarvesting, StateCleaning},
		{StateCleaning, StateEmpty},
	}
	for _, tc := range cases {
		next, ok := tc.from.Next()
		require.True(t, ok, string(tc.from))
		assert.Equal(t, tc.want, next)
	}

	_, ok := StateEmpty.Next()
	assert.False(t, ok)
	_, ok = State("DORMANT").Next()
	assert.False(t, ok)
}

func TestActive(t *testing.T) {
	assert.True(t, StatePlanned.Active())
	assert.True(t, StateCleaning.Active())
	assert.False(t, StateEmpty.Active())
	assert.False(t, State("DORMANT").Active())
}

func TestCanTransition(t *testing.T) {
	// Every single forward step is legal.
	for i, s := range States() {
		if next, ok := s.Next(); ok {
			assert.True(t, CanTransition(s, next), "step %d", i)
		}
	}

	// Re-entry: a cleaned-out block can be planted again.
	assert.True(t, CanTransition(StateEmpty, StatePlanned))

	// No skipping, no going backward, no self-loop.
	assert.False(t, CanTransition(StatePlanned, StateFruiting))
	assert.False(t, CanTransition(StateGrowing, StatePlanned))
	assert.False(t, CanTransition(StateGrowing, StateGrowing))
	assert.False(t, CanTransition(StateEmpty, StateGrowing))
	assert.False(t, CanTransition(State("DORMANT"), StatePlanned))
}
