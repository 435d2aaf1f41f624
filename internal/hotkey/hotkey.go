// Package hotkey maps the F8/F9 keys to start and stop actions.
package hotkey

import "sync"

// Key is a recognized hotkey.
type Key int

const (
	KeyNone  Key = iota
	KeyStart     // F8
	KeyStop      // F9
)

// Manager listens for global hotkeys where the platform allows it.
type Manager struct {
	OnStart func()
	OnStop  func()

	LogFunc   func(string)
	DebugFunc func(string, ...interface{})

	mu       sync.Mutex
	stopChan chan struct{}
	wg       sync.WaitGroup
}

func NewManager(onStart, onStop func(), logFunc func(string), debugFunc func(string, ...interface{})) *Manager {
	return &Manager{
		OnStart:   onStart,
		OnStop:    onStop,
		LogFunc:   logFunc,
		DebugFunc: debugFunc,
	}
}

// Start begins listening. Calling it twice is a no-op.
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopChan != nil {
		return
	}
	m.stopChan = make(chan struct{})
	m.listen(m.stopChan)
}

// Stop releases the hook and waits for the listener to exit.
func (m *Manager) Stop() {
	m.mu.Lock()
	if m.stopChan == nil {
		m.mu.Unlock()
		return
	}
	close(m.stopChan)
	m.stopChan = nil
	m.mu.Unlock()

	m.wg.Wait()
}

func (m *Manager) handle(k Key) {
	switch k {
	case KeyStart:
		m.OnStart()
	case KeyStop:
		m.OnStop()
	}
}
