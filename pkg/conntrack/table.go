// Package conntrack provides per-connection bookkeeping for the transport:
// descriptor budgets and a lock-free slot table keyed by connection id.
package conntrack

import (
	"sync/atomic"

	"github.com/wirehttp/wirehttp/pkg/lockfree"
)

// Entry is the bookkeeping slot for a single connection id. All counters
// are safe for concurrent use from any goroutine touching the connection.
type Entry struct {
	hits     atomic.Int64
	inflight atomic.Int64
}

// HitIncr records a request performed on the connection and returns the
// new total.
func (e *Entry) HitIncr() int64 {
	return e.hits.Add(1)
}

// Hits returns the number of requests performed on the connection.
func (e *Entry) Hits() int64 {
	return e.hits.Load()
}

// HitReset zeroes the hit counter and returns the old value.
func (e *Entry) HitReset() int64 {
	return e.hits.Swap(0)
}

// Acquire marks a request in flight on the connection.
func (e *Entry) Acquire() int64 {
	return e.inflight.Add(1)
}

// Release marks a previously acquired request as complete.
func (e *Entry) Release() int64 {
	return e.inflight.Add(-1)
}

// InFlight returns the number of requests currently in flight.
func (e *Entry) InFlight() int64 {
	return e.inflight.Load()
}

// Table maps connection ids to their bookkeeping entries. Lookups never
// block and the entry for a given id is allocated on first use, so the
// event loop can index straight by fd or connection id without sizing the
// table up front.
type Table struct {
	entries lockfree.Sequence[Entry]
	limits  *FdLimits
}

// NewTable returns a table guarded by the provided limits. A nil limits
// gets the package defaults.
func NewTable(limits *FdLimits) *Table {
	if limits == nil {
		limits = NewFdLimits()
	}
	return &Table{limits: limits}
}

// Entry returns the bookkeeping slot for the connection id. The returned
// pointer stays valid for the lifetime of the table.
func (t *Table) Entry(id uint64) *Entry {
	return t.entries.Get(id)
}

// Limits returns the descriptor budgets the table was built with.
func (t *Table) Limits() *FdLimits {
	return t.limits
}
