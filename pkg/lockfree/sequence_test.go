package lockfree

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence_Addressing(t *testing.T) {
	tests := []struct {
		name string
		n    uint64
	}{
		{"first block", 0},
		{"second block start", 1},
		{"second block end", 2},
		{"third block start", 3},
		{"third block end", 6},
		{"fourth block start", 7},
		{"large index", 1<<20 + 3},
	}
	var s Sequence[int]
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := s.Get(tt.n)
			assert.Equal(t, 0, *p, "fresh elements are zero valued")
			*p = int(tt.n) + 1
			assert.Equal(t, int(tt.n)+1, *s.Get(tt.n), "same index resolves to same storage")
		})
	}
}

func TestSequence_DistinctIndexesDistinctStorage(t *testing.T) {
	var s Sequence[uint64]
	for n := uint64(0); n < 512; n++ {
		*s.Get(n) = n
	}
	for n := uint64(0); n < 512; n++ {
		assert.Equal(t, n, *s.Get(n))
	}
}

func TestSequence_ConcurrentGetSameIndex(t *testing.T) {
	const workers = 32
	var s Sequence[int64]

	ptrs := make([]*int64, workers)
	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer done.Done()
			start.Wait()
			// index 100 sits in block 6. every worker races the allocation
			ptrs[w] = s.Get(100)
		}(w)
	}
	start.Done()
	done.Wait()

	for w := 1; w < workers; w++ {
		assert.Same(t, ptrs[0], ptrs[w], "all racers must resolve to the winning block")
	}
}

func TestSequence_WriteVisibleAfterPublish(t *testing.T) {
	const workers = 16
	var s Sequence[int]

	*s.Get(41) = 7

	var done sync.WaitGroup
	done.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer done.Done()
			assert.Equal(t, 7, *s.Get(41))
		}()
	}
	done.Wait()
}

func TestSequence_ConcurrentDisjointIndexes(t *testing.T) {
	const workers = 8
	const perWorker = 1024
	var s Sequence[uint64]

	var done sync.WaitGroup
	done.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer done.Done()
			for i := 0; i < perWorker; i++ {
				n := uint64(w*perWorker + i)
				*s.Get(n) = n + 1
			}
		}(w)
	}
	done.Wait()

	for n := uint64(0); n < workers*perWorker; n++ {
		assert.Equal(t, n+1, *s.Get(n))
	}
}

func TestSequence_IndexOverflowPanics(t *testing.T) {
	var s Sequence[int]
	assert.Panics(t, func() {
		s.Get(^uint64(0))
	})
}
