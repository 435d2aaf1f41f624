package buy

import (
	"fmt"

	"github.com/ConserveLee/mgbuy/internal/engine"
)

const (
	msgInvalidPrice = "请输入有效的数字价格"
	msgInvalidDelay = "请输入有效的数字延迟"
)

// ModeOptions are the radio labels, index+1 is the mode.
var ModeOptions = []string{"模式1", "模式2"}

// ModeSetter stores the selected mode.
type ModeSetter interface {
	SetMode(mode int)
}

// selectMode maps a radio label to its mode and stores it.
func selectMode(cfg ModeSetter, label string, logf func(string)) (int, bool) {
	for i, opt := range ModeOptions {
		if opt == label {
			mode := i + 1
			cfg.SetMode(mode)
			logf(fmt.Sprintf("已选择模式%d", mode))
			return mode, true
		}
	}
	return 0, false
}

// modeLabel is the inverse of selectMode, empty for an unknown mode.
func modeLabel(mode int) string {
	if mode < 1 || mode > len(ModeOptions) {
		return ""
	}
	return ModeOptions[mode-1]
}

// savePrices commits both ideal prices or, on bad input, keeps the old ones.
func savePrices(state *engine.State, mode1, mode2 string, logf func(string)) bool {
	if err := state.ApplyPrices(mode1, mode2); err != nil {
		logf(msgInvalidPrice)
		return false
	}
	logf(fmt.Sprintf("理想价格已保存: 模式1 %d, 模式2 %d", state.IdealPrice(1), state.IdealPrice(2)))
	return true
}

// saveDelays commits both delays or, on bad input, keeps the old ones.
func saveDelays(state *engine.State, mode1, mode2 string, logf func(string)) bool {
	if err := state.ApplyDelays(mode1, mode2); err != nil {
		logf(msgInvalidDelay)
		return false
	}
	logf(fmt.Sprintf("延迟已保存: 模式1 %ss, 模式2 %ss",
		engine.FormatDelay(state.Delay(1)), engine.FormatDelay(state.Delay(2))))
	return true
}

// Control flips the run flag. Buttons, window shortcuts and global hotkeys all
// go through it, so it may be called from any goroutine.
type Control struct {
	LogFunc  func(string)
	OnChange func(running bool)

	state *engine.State
}

func NewControl(state *engine.State, logFunc func(string)) *Control {
	return &Control{state: state, LogFunc: logFunc, OnChange: func(bool) {}}
}

func (c *Control) Start() {
	if c.state.Running() {
		return
	}
	c.state.SetRunning(true)
	c.LogFunc("开始执行")
	c.OnChange(true)
}

func (c *Control) Stop() {
	if !c.state.Running() {
		return
	}
	c.state.SetRunning(false)
	c.LogFunc("停止执行")
	c.OnChange(false)
}
