package cli

import (
	"context"

	"github.com/charmbracelet/log"
)

// logMonitor reports layout/alignment progress as debug log lines and
// turns context cancellation (e.g. Ctrl-C via signal.NotifyContext in
// main.go) into the false return progress.Monitor callers treat as a
// cancellation request (spec.md §5).
type logMonitor struct {
	ctx    context.Context
	logger *log.Logger
	total  int
}

func newLogMonitor(ctx context.Context, logger *log.Logger) *logMonitor {
	return &logMonitor{ctx: ctx, logger: logger}
}

func (m *logMonitor) SetTotal(total int) {
	m.total = total
	m.logger.Debugf("starting (%d units of work)", total)
}

func (m *logMonitor) Update(done int) bool {
	m.logger.Debugf("progress: %d/%d", done, m.total)

	return m.ctx.Err() == nil
}

func (m *logMonitor) UpdateWithPhase(done int, phase string) bool {
	m.logger.Debugf("progress[%s]: %d/%d", phase, done, m.total)

	return m.ctx.Err() == nil
}

func (m *logMonitor) KeepGoing() bool {
	return m.ctx.Err() == nil
}
