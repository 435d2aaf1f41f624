package engine

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fixedMode int

func (m fixedMode) Mode() int { return int(m) }

type countingRunner struct {
	calls  atomic.Int32
	during func()
}

func (r *countingRunner) Run() Outcome {
	r.calls.Add(1)
	if r.during != nil {
		r.during()
	}
	return OutcomeTooExpensive
}

type recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *recorder) log(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, msg)
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

func newTestBot(state *State, mode int, procs map[int]Runner, logs *recorder) *Bot {
	return NewBot(state, fixedMode(mode), procs, logs.log, func(string) {}, func(string, ...interface{}) {})
}

func TestStepIdleWhenNotRunning(t *testing.T) {
	runner := &countingRunner{}
	b := newTestBot(NewState(), 1, map[int]Runner{1: runner}, &recorder{})

	b.step()
	assert.Equal(t, int32(0), runner.calls.Load())
}

func TestStepDispatchesByMode(t *testing.T) {
	state := NewState()
	state.SetRunning(true)
	m1, m2 := &countingRunner{}, &countingRunner{}
	b := newTestBot(state, 2, map[int]Runner{1: m1, 2: m2}, &recorder{})

	b.step()
	assert.Equal(t, int32(0), m1.calls.Load())
	assert.Equal(t, int32(1), m2.calls.Load())
}

func TestStopMidCycleFinishesCurrentCycle(t *testing.T) {
	state := NewState()
	state.SetRunning(true)

	var finished bool
	runner := &countingRunner{}
	runner.during = func() {
		state.SetRunning(false)
		finished = true
	}
	b := newTestBot(state, 1, map[int]Runner{1: runner}, &recorder{})

	b.step()
	b.step()

	assert.True(t, finished)
	assert.Equal(t, int32(1), runner.calls.Load())
}

func TestUnknownModeLogs(t *testing.T) {
	state := NewState()
	state.SetRunning(true)
	logs := &recorder{}
	runner := &countingRunner{}
	b := newTestBot(state, 7, map[int]Runner{1: runner}, logs)

	b.step()
	assert.Equal(t, []string{MsgUnknownMode}, logs.all())
	assert.Equal(t, int32(0), runner.calls.Load())
}

func TestLoopRunsUntilClosed(t *testing.T) {
	state := NewState()
	state.SetRunning(true)
	runner := &countingRunner{}
	b := newTestBot(state, 1, map[int]Runner{1: runner}, &recorder{})
	b.Interval = time.Millisecond

	b.Start()
	b.Start()
	assert.Eventually(t, func() bool { return runner.calls.Load() >= 3 }, time.Second, time.Millisecond)

	b.Close()
	after := runner.calls.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, runner.calls.Load())

	// Closing twice is harmless
	b.Close()
}
