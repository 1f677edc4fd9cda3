// Package lockfree provides wait-free growable containers used for
// per-connection bookkeeping in the transport hotpath.
package lockfree

import (
	"math/bits"
	"sync/atomic"
)

// Sequence is a lock-free, unbounded-by-index container of zero valued T.
// It behaves like an infinite zero-indexed slice of T where every element
// already exists; storage is allocated lazily in power of two sized blocks
// the first time an index inside a block is touched.
//
// Block i covers the index range [2^i - 1, 2^(i+1) - 2], so block sizes run
// 1, 2, 4, 8, ... and 64 block slots address the whole uint64 index space.
//
// Get never blocks and never invalidates previously returned pointers. The
// only synchronization is the compare-and-swap that publishes a freshly
// allocated block; a goroutine that loses the race drops its allocation and
// reads the winner. Go's atomic.Pointer gives the release on publish /
// acquire on load ordering required for the zeroed block contents to be
// visible to every reader.
//
// Tearing the container down while other goroutines may still call Get is
// not supported. The zero value is ready to use.
type Sequence[T any] struct {
	blocks [bits.UintSize]atomic.Pointer[[]T]
}

// Get returns a pointer to element n. The pointer stays valid for the
// remaining lifetime of the sequence and is safe to use concurrently with
// Get calls for any index.
//
// n must be below the addressable maximum (MaxUint64 - 1); passing
// MaxUint64 is a programming error and panics rather than aliasing
// another element.
func (s *Sequence[T]) Get(n uint64) *T {
	i := bits.Len64(n+1) - 1
	if i < 0 {
		panic("lockfree: sequence index out of range")
	}
	return &s.block(i)[n+1-uint64(1)<<i]
}

// block returns the published block for slot i, allocating and publishing
// it if this is the first access. At most one allocation survives per slot
// regardless of how many goroutines race here.
func (s *Sequence[T]) block(i int) []T {
	slot := &s.blocks[i]
	if p := slot.Load(); p != nil {
		return *p
	}
	nb := make([]T, uint64(1)<<i)
	if slot.CompareAndSwap(nil, &nb) {
		return nb
	}
	// lost the publish race. nb is dropped and the winner is used
	return *slot.Load()
}
