package hotkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandle(t *testing.T) {
	var started, stopped int
	m := NewManager(func() { started++ }, func() { stopped++ }, func(string) {}, func(string, ...interface{}) {})

	m.handle(KeyStart)
	m.handle(KeyStart)
	m.handle(KeyStop)
	m.handle(KeyNone)

	assert.Equal(t, 2, started)
	assert.Equal(t, 1, stopped)
}

func TestStartStopIdempotent(t *testing.T) {
	m := NewManager(func() {}, func() {}, func(string) {}, func(string, ...interface{}) {})

	m.Stop()
	m.Start()
	m.Start()
	m.Stop()
	m.Stop()
}
