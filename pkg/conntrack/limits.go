package conntrack

import "sync/atomic"

const (
	// DefaultSoftLimit and DefaultHardLimit mirror the usual process fd
	// headroom a transport reserves before it starts shedding connections.
	DefaultSoftLimit = 10000
	DefaultHardLimit = 15000
)

// FdLimits carries the soft and hard descriptor budgets for a transport.
// Both fields are independently readable and writable from any goroutine
// with plain atomic loads and stores. There is no transactional guarantee
// across the pair, so a reader may observe a soft value from before an
// update paired with a hard value from after it. Consumers only derive a
// shed count from the pair and tolerate that.
type FdLimits struct {
	soft atomic.Uint64
	hard atomic.Uint64
}

// NewFdLimits returns limits primed with the package defaults.
func NewFdLimits() *FdLimits {
	l := &FdLimits{}
	l.soft.Store(DefaultSoftLimit)
	l.hard.Store(DefaultHardLimit)
	return l
}

func (l *FdLimits) Soft() uint64 { return l.soft.Load() }

func (l *FdLimits) Hard() uint64 { return l.hard.Load() }

func (l *FdLimits) SetSoft(v uint64) { l.soft.Store(v) }

func (l *FdLimits) SetHard(v uint64) { l.hard.Store(v) }

// Overflow returns how far the hard limit sits above the soft limit, i.e.
// the number of connections that may be accepted past the soft budget
// before the transport must start refusing. Zero when soft >= hard.
func (l *FdLimits) Overflow() uint64 {
	return ExceedLimit(l.hard.Load(), l.soft.Load())
}

// ExceedLimit returns val - limit when val is above limit, otherwise 0.
func ExceedLimit(val, limit uint64) uint64 {
	if val > limit {
		return val - limit
	}
	return 0
}
