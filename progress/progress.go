// Package progress defines the abstract progress/cancellation interface
// that every long-running layout or alignment operation calls into
// (spec.md §4.12), plus a throttling LoopReporter and a no-op Monitor for
// batch and test use.
package progress

import "errors"

// ErrCancelled is returned by any operation whose Monitor signaled
// cancellation mid-loop. It propagates up through the entire pipeline
// unwrapped, so callers can test it with errors.Is.
var ErrCancelled = errors.New("progress: operation cancelled")

// Monitor is the single abstraction every long-running component calls
// through. Implementations must be safe to call from multiple goroutines:
// spec.md §5 allows a layout to parallelize independent per-node loops
// internally while still reporting through one shared Monitor.
type Monitor interface {
	// SetTotal declares the expected number of units of work ahead.
	SetTotal(total int)

	// Update reports that done units have completed. Returns false if the
	// caller should stop (cancellation requested).
	Update(done int) bool

	// UpdateWithPhase is Update plus a human-readable phase label, used by
	// multi-stage operations (e.g. alignment merge -> score -> group).
	UpdateWithPhase(done int, phase string) bool

	// KeepGoing is a lightweight cancellation check usable without a
	// progress count, for loops that don't have a natural "done" unit.
	KeepGoing() bool
}

// NoOp is a Monitor that always reports progress accepted and never
// cancels. It is the default for batch and test callers that have no UI to
// drive.
type NoOp struct{}

// SetTotal is a no-op.
func (NoOp) SetTotal(int) {}

// Update always returns true (never cancels).
func (NoOp) Update(int) bool { return true }

// UpdateWithPhase always returns true (never cancels).
func (NoOp) UpdateWithPhase(int, string) bool { return true }

// KeepGoing always returns true (never cancels).
func (NoOp) KeepGoing() bool { return true }

var _ Monitor = NoOp{}
