package buy

import (
	"strconv"

	"github.com/ConserveLee/mgbuy/internal/config"
	"github.com/ConserveLee/mgbuy/internal/engine"
	"github.com/ConserveLee/mgbuy/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// Panel bundles what the purchase panel reads and writes.
type Panel struct {
	State   *engine.State
	Config  *config.Store
	Logger  *logger.AppLogger
	LogData binding.StringList
	Status  binding.String
}

// NewBuyPanel creates the purchase panel and registers F8/F9 on the window.
// The returned Control is shared with the global hotkeys.
func NewBuyPanel(win fyne.Window, p Panel) (fyne.CanvasObject, *Control) {
	logf := p.Logger.Line
	control := NewControl(p.State, logf)

	// --- UI Components ---

	// 1. Mode
	modeRadio := widget.NewRadioGroup(ModeOptions, nil)
	modeRadio.Horizontal = true
	modeRadio.Required = true
	modeRadio.Selected = modeLabel(p.Config.Mode())
	modeRadio.OnChanged = func(selected string) {
		selectMode(p.Config, selected, logf)
	}

	// 2. Prices
	price1Entry := widget.NewEntry()
	price1Entry.SetText(strconv.Itoa(p.State.IdealPrice(1)))
	price2Entry := widget.NewEntry()
	price2Entry.SetText(strconv.Itoa(p.State.IdealPrice(2)))
	savePriceBtn := widget.NewButton("保存价格", func() {
		savePrices(p.State, price1Entry.Text, price2Entry.Text, logf)
	})

	// 3. Delays
	delay1Entry := widget.NewEntry()
	delay1Entry.SetText(engine.FormatDelay(p.State.Delay(1)))
	delay2Entry := widget.NewEntry()
	delay2Entry.SetText(engine.FormatDelay(p.State.Delay(2)))
	saveDelayBtn := widget.NewButton("保存延迟", func() {
		saveDelays(p.State, delay1Entry.Text, delay2Entry.Text, logf)
	})

	settings := widget.NewForm(
		widget.NewFormItem("模式1理想价格", price1Entry),
		widget.NewFormItem("模式2理想价格", price2Entry),
		widget.NewFormItem("", savePriceBtn),
		widget.NewFormItem("模式1延迟(秒)", delay1Entry),
		widget.NewFormItem("模式2延迟(秒)", delay2Entry),
		widget.NewFormItem("", saveDelayBtn),
	)

	// 4. Status & Logs
	statusLabel := widget.NewLabelWithData(p.Status)
	statusLabel.TextStyle = fyne.TextStyle{Bold: true}

	logList := widget.NewListWithData(
		p.LogData,
		func() fyne.CanvasObject { return widget.NewLabel("Log entry template") },
		func(i binding.DataItem, o fyne.CanvasObject) { o.(*widget.Label).Bind(i.(binding.String)) },
	)

	// Auto-scroll
	p.LogData.AddListener(binding.NewDataListener(func() {
		list, _ := p.LogData.Get()
		if len(list) > 0 {
			logList.ScrollToBottom()
		}
	}))

	// 5. Buttons
	startBtn := widget.NewButton("开始执行(F8)", control.Start)
	stopBtn := widget.NewButton("停止执行(F9)", control.Stop)
	stopBtn.Disable()

	control.OnChange = func(running bool) {
		fyne.Do(func() {
			if running {
				p.Status.Set("状态: 运行中")
				startBtn.Disable()
				stopBtn.Enable()
				modeRadio.Disable()
			} else {
				p.Status.Set("状态: 已停止")
				stopBtn.Disable()
				startBtn.Enable()
				modeRadio.Enable()
			}
		})
	}

	win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyF8:
			control.Start()
		case fyne.KeyF9:
			control.Stop()
		}
	})

	// --- Layout ---
	controls := container.NewVBox(
		widget.NewLabel("购买模式:"),
		modeRadio,
		settings,
		statusLabel,
		container.NewHBox(startBtn, stopBtn),
		widget.NewSeparator(),
		widget.NewLabel("运行日志:"),
	)

	return container.NewBorder(controls, nil, nil, nil, logList), control
}
