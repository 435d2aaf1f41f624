//go:build windows

package hotkey

import (
	"github.com/moutend/go-hook/pkg/keyboard"
	"github.com/moutend/go-hook/pkg/types"
)

func (m *Manager) listen(stop <-chan struct{}) {
	eventChan := make(chan types.KeyboardEvent, 100)
	if err := keyboard.Install(nil, eventChan); err != nil {
		m.LogFunc("[错误] 全局快捷键注册失败，请使用窗口内 F8/F9")
		m.DebugFunc("keyboard hook: %v", err)
		return
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer keyboard.Uninstall()

		for {
			select {
			case <-stop:
				return
			case event := <-eventChan:
				if event.Message != types.WM_KEYDOWN {
					continue
				}
				m.handle(keyFor(event.VKCode))
			}
		}
	}()
	m.DebugFunc("Global hotkeys installed")
}

func keyFor(code types.VKCode) Key {
	switch code {
	case types.VK_F8:
		return KeyStart
	case types.VK_F9:
		return KeyStop
	default:
		return KeyNone
	}
}
