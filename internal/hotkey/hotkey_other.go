//go:build !windows

package hotkey

// Global hooks are Windows only; the window shortcuts still work.
func (m *Manager) listen(stop <-chan struct{}) {
	m.DebugFunc("Global hotkeys unsupported on this platform, using window shortcuts")
}
