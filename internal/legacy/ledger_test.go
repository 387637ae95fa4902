package legacy

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerFirstOccurrenceOnly(t *testing.T) {
	l := NewLedger()
	id := uuid.New()

	assert.True(t, l.Observe(id))
	assert.False(t, l.Observe(id))
	assert.False(t, l.Observe(id))
	assert.Equal(t, 1, l.Len())

	other := uuid.New()
	assert.True(t, l.Observe(other))
	assert.Equal(t, 2, l.Len())
}

func TestLedgerConcurrentObserve(t *testing.T) {
	l := NewLedger()
	id := uuid.New()

	const workers = 32
	wins := make(chan bool, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- l.Observe(id)
		}()
	}
	wg.Wait()
	close(wins)

	var first int
	for won := range wins {
		if won {
			first++
		}
	}
	require.Equal(t, 1, first)
	assert.Equal(t, 1, l.Len())
}
