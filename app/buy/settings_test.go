package buy

import (
	"testing"
	"time"

	"github.com/ConserveLee/mgbuy/internal/engine"

	"github.com/stretchr/testify/assert"
)

type modeStore struct{ mode int }

func (m *modeStore) SetMode(mode int) { m.mode = mode }

type logSink []string

func (l *logSink) add(msg string) { *l = append(*l, msg) }

func TestSaveDelaysRejectsText(t *testing.T) {
	state := engine.NewState()
	var logs logSink

	assert.False(t, saveDelays(state, "abc", "0.2", logs.add))
	assert.Equal(t, []string{msgInvalidDelay}, []string(logs))
	assert.Equal(t, 100*time.Millisecond, state.Delay(1))
	assert.Equal(t, 170*time.Millisecond, state.Delay(2))
}

func TestSaveDelays(t *testing.T) {
	state := engine.NewState()
	var logs logSink

	assert.True(t, saveDelays(state, "0.3", "0.05", logs.add))
	assert.Equal(t, 300*time.Millisecond, state.Delay(1))
	assert.Equal(t, 50*time.Millisecond, state.Delay(2))
	assert.Len(t, logs, 1)
	assert.Contains(t, logs[0], "0.3s")
}

func TestSavePrices(t *testing.T) {
	tests := []struct {
		name     string
		mode1    string
		mode2    string
		ok       bool
		expected [2]int
	}{
		{"valid", "1800000", "95", true, [2]int{1800000, 95}},
		{"text", "cheap", "95", false, [2]int{2000000, 100}},
		{"one bad", "1800000", "", false, [2]int{2000000, 100}},
		{"zero", "0", "95", false, [2]int{2000000, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := engine.NewState()
			var logs logSink

			assert.Equal(t, tt.ok, savePrices(state, tt.mode1, tt.mode2, logs.add))
			assert.Equal(t, tt.expected[0], state.IdealPrice(1))
			assert.Equal(t, tt.expected[1], state.IdealPrice(2))
			if !tt.ok {
				assert.Equal(t, []string{msgInvalidPrice}, []string(logs))
			}
		})
	}
}

func TestSelectMode(t *testing.T) {
	store := &modeStore{mode: 1}
	var logs logSink

	mode, ok := selectMode(store, "模式2", logs.add)
	assert.True(t, ok)
	assert.Equal(t, 2, mode)
	assert.Equal(t, 2, store.mode)
	assert.Equal(t, []string{"已选择模式2"}, []string(logs))

	_, ok = selectMode(store, "", logs.add)
	assert.False(t, ok)
	assert.Equal(t, 2, store.mode)

	assert.Equal(t, "模式1", modeLabel(1))
	assert.Equal(t, "", modeLabel(3))
}

func TestControl(t *testing.T) {
	state := engine.NewState()
	var logs logSink
	var changes []bool

	c := NewControl(state, logs.add)
	c.OnChange = func(running bool) { changes = append(changes, running) }

	c.Stop()
	c.Start()
	c.Start()
	assert.True(t, state.Running())
	c.Stop()
	assert.False(t, state.Running())

	assert.Equal(t, []bool{true, false}, changes)
	assert.Equal(t, []string{"开始执行", "停止执行"}, []string(logs))
}
