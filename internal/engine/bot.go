package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/ConserveLee/mgbuy/internal/constants"
)

const MsgUnknownMode = "未知模式，请检查配置文件"

// Runner runs one purchase cycle.
type Runner interface {
	Run() Outcome
}

// ModeSource reports the currently selected mode.
type ModeSource interface {
	Mode() int
}

// Bot is the control loop. It ticks for the whole process lifetime and runs
// the selected procedure whenever the run flag is set.
type Bot struct {
	Interval time.Duration

	// Callbacks for UI updates
	LogFunc    func(string)                 // For persistent logs (History)
	StatusFunc func(string)                 // For transient status (Label)
	DebugFunc  func(string, ...interface{}) // For console debug

	state      *State
	modes      ModeSource
	procedures map[int]Runner

	stopChan chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
	started  bool
	closed   bool
}

// NewBot creates a control loop over the given procedures keyed by mode.
func NewBot(state *State, modes ModeSource, procedures map[int]Runner,
	logFunc func(string), statusFunc func(string), debugFunc func(string, ...interface{})) *Bot {
	return &Bot{
		Interval:   constants.TickInterval,
		LogFunc:    logFunc,
		StatusFunc: statusFunc,
		DebugFunc:  debugFunc,
		state:      state,
		modes:      modes,
		procedures: procedures,
		stopChan:   make(chan struct{}),
	}
}

// Start launches the loop. Later calls are no-ops.
func (b *Bot) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started || b.closed {
		return
	}
	b.started = true

	b.DebugFunc("Control loop started")
	b.wg.Add(1)
	go b.loop()
}

// Close stops the loop and waits for an in-flight cycle to finish.
func (b *Bot) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.stopChan)
	b.mu.Unlock()

	b.wg.Wait()
	b.DebugFunc("Control loop stopped")
}

func (b *Bot) loop() {
	defer b.wg.Done()
	ticker := time.NewTicker(b.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stopChan:
			return
		case <-ticker.C:
			b.step()
		}
	}
}

// step performs at most one cycle of the selected mode.
func (b *Bot) step() {
	if !b.state.Running() {
		return
	}

	mode := b.modes.Mode()
	proc, ok := b.procedures[mode]
	if !ok {
		b.LogFunc(MsgUnknownMode)
		return
	}

	b.StatusFunc(fmt.Sprintf("状态: 模式%d 检查中...", mode))
	outcome := proc.Run()
	b.DebugFunc("模式%d 本轮结果: %s", mode, outcome)
}
