// Package benchmark holds comparative experiments that guided the
// concurrency primitives. They are not correctness tests.
package benchmark

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/wirehttp/wirehttp/pkg/lockfree"
)

// baseline: the obvious mutex guarded map a slot table would otherwise be
type lockedTable struct {
	mu sync.Mutex
	m  map[uint64]*atomic.Int64
}

func (t *lockedTable) get(n uint64) *atomic.Int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.m == nil {
		t.m = make(map[uint64]*atomic.Int64)
	}
	v, ok := t.m[n]
	if !ok {
		v = new(atomic.Int64)
		t.m[n] = v
	}
	return v
}

func BenchmarkSequenceGet(b *testing.B) {
	var s lockfree.Sequence[atomic.Int64]
	b.RunParallel(func(pb *testing.PB) {
		n := uint64(0)
		for pb.Next() {
			s.Get(n % 4096).Add(1)
			n++
		}
	})
}

func BenchmarkLockedMapGet(b *testing.B) {
	var t lockedTable
	b.RunParallel(func(pb *testing.PB) {
		n := uint64(0)
		for pb.Next() {
			t.get(n % 4096).Add(1)
			n++
		}
	})
}

func BenchmarkSequenceGetFixedIndex(b *testing.B) {
	var s lockfree.Sequence[atomic.Int64]
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s.Get(100).Add(1)
		}
	})
}
