package conntrack

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_EntryStableAcrossCalls(t *testing.T) {
	tab := NewTable(nil)
	e := tab.Entry(12)
	e.HitIncr()
	e.HitIncr()
	assert.Same(t, e, tab.Entry(12))
	assert.Equal(t, int64(2), tab.Entry(12).Hits())
	assert.Equal(t, int64(0), tab.Entry(13).Hits(), "neighbouring ids have independent slots")
}

func TestTable_ConcurrentHits(t *testing.T) {
	const workers = 16
	const perWorker = 1000
	tab := NewTable(nil)

	var done sync.WaitGroup
	done.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer done.Done()
			for i := 0; i < perWorker; i++ {
				tab.Entry(3).HitIncr()
			}
		}()
	}
	done.Wait()

	assert.Equal(t, int64(workers*perWorker), tab.Entry(3).Hits())
}

func TestEntry_InFlight(t *testing.T) {
	var e Entry
	assert.Equal(t, int64(1), e.Acquire())
	assert.Equal(t, int64(2), e.Acquire())
	assert.Equal(t, int64(1), e.Release())
	assert.Equal(t, int64(1), e.InFlight())
}

func TestTable_Limits(t *testing.T) {
	l := NewFdLimits()
	l.SetSoft(5)
	l.SetHard(9)
	tab := NewTable(l)
	assert.Equal(t, uint64(4), tab.Limits().Overflow())
}
