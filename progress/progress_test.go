package progress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobiofabric/biofabric/progress"
)

type countingMonitor struct {
	calls  int
	cancel bool
}

func (m *countingMonitor) SetTotal(int) {}
func (m *countingMonitor) Update(int) bool {
	m.calls++
	return !m.cancel
}
func (m *countingMonitor) UpdateWithPhase(int, string) bool {
	m.calls++
	return !m.cancel
}
func (m *countingMonitor) KeepGoing() bool { return !m.cancel }

func TestLoopReporterThrottles(t *testing.T) {
	m := &countingMonitor{}
	r := progress.NewLoopReporter(m, "", 1000, 10)
	for i := 0; i <= 1000; i++ {
		require.NoError(t, r.Tick(i))
	}
	assert.LessOrEqual(t, m.calls, 11)
	assert.Greater(t, m.calls, 0)
}

func TestLoopReporterCancellation(t *testing.T) {
	m := &countingMonitor{cancel: true}
	r := progress.NewLoopReporter(m, "phase", 100, 10)
	err := r.Tick(0)
	assert.ErrorIs(t, err, progress.ErrCancelled)
}

func TestNoOpNeverCancels(t *testing.T) {
	var mon progress.Monitor = progress.NoOp{}
	assert.True(t, mon.Update(5))
	assert.True(t, mon.KeepGoing())
}
