package concurrent

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftline/draftline/pkg/sequence"
)

func TestConcurrentVisitsEveryElement(t *testing.T) {
	var mx sync.Mutex
	seen := make(map[int]bool)

	err := Concurrent(sequence.From([]int{1, 2, 3, 4, 5}), 2, func(v int) error {
		mx.Lock()
		defer mx.Unlock()
		seen[v] = true
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}, seen)
}

func TestConcurrentPropagatesError(t *testing.T) {
	boom := errors.New("boom")

	err := Concurrent(sequence.From([]int{1, 2, 3}), 0, func(v int) error {
		if v == 2 {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
}

func TestConcurrentRespectsWorkerLimit(t *testing.T) {
	var active, peak atomic.Int32

	err := Concurrent(sequence.Generate(50, func(i int) int { return i }), 4, func(int) error {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		active.Add(-1)
		return nil
	})

	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(4))
}

func TestConcurrentEmptyIterator(t *testing.T) {
	assert.NoError(t, Concurrent(sequence.From[int](nil), 2, func(int) error {
		return nil
	}))
}
