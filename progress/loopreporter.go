package progress

// LoopReporter throttles Monitor calls so a tight loop over graph-sized
// data reports progress at most Bins+1 times across one pass over Total
// iterations (at 0, at each Total/Bins step, and at Total), instead of
// once per iteration. Every non-O(1) loop in the core is
// expected to drive one of these (spec.md §4.12).
type LoopReporter struct {
	monitor Monitor
	phase   string
	total   int
	bins    int
	nextBin int
}

// DefaultBins is the bin count used when NewLoopReporter is given bins <= 0.
const DefaultBins = 100

// NewLoopReporter creates a LoopReporter over total iterations, reporting
// through monitor at most bins times. A nil monitor is treated as NoOp{}.
// bins <= 0 is normalized to DefaultBins.
func NewLoopReporter(monitor Monitor, phase string, total, bins int) *LoopReporter {
	if monitor == nil {
		monitor = NoOp{}
	}
	if bins <= 0 {
		bins = DefaultBins
	}
	monitor.SetTotal(total)

	return &LoopReporter{monitor: monitor, phase: phase, total: total, bins: bins, nextBin: 0}
}

// Tick reports that done iterations have completed so far. It only calls
// through to the Monitor when done reaches the next reporting threshold
// (a multiple of total/bins) or equals total, so one pass from 0 to total
// makes at most bins+1 Monitor calls regardless of total. Returns
// ErrCancelled if the Monitor requested a stop.
func (r *LoopReporter) Tick(done int) error {
	if r.total > 0 {
		threshold := (r.nextBin * r.total) / r.bins
		if done < threshold && done != r.total {
			return nil
		}
		for r.nextBin < r.bins && done >= (r.nextBin*r.total)/r.bins {
			r.nextBin++
		}
	}

	var ok bool
	if r.phase != "" {
		ok = r.monitor.UpdateWithPhase(done, r.phase)
	} else {
		ok = r.monitor.Update(done)
	}
	if !ok {
		return ErrCancelled
	}

	return nil
}

// Finish reports the final tick (done == total) unconditionally, then
// returns ErrCancelled if the Monitor requested a stop even on this last
// call.
func (r *LoopReporter) Finish() error {
	return r.Tick(r.total)
}
