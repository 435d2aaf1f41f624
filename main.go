package main

import (
	"github.com/ConserveLee/mgbuy/app/buy"
	"github.com/ConserveLee/mgbuy/app/tools"
	"github.com/ConserveLee/mgbuy/internal/config"
	"github.com/ConserveLee/mgbuy/internal/constants"
	"github.com/ConserveLee/mgbuy/internal/engine"
	"github.com/ConserveLee/mgbuy/internal/engine/ocr"
	"github.com/ConserveLee/mgbuy/internal/engine/screen"
	"github.com/ConserveLee/mgbuy/internal/hotkey"
	"github.com/ConserveLee/mgbuy/internal/ledger"
	"github.com/ConserveLee/mgbuy/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
)

func main() {
	myApp := app.New()
	myWindow := myApp.NewWindow("mgbuy")
	myWindow.Resize(fyne.NewSize(520, 680))

	// --- Data Binding ---
	logData := binding.NewStringList()
	statusData := binding.NewString()
	statusData.Set("状态: 已停止")

	appLogger := logger.NewAppLogger(logData)
	logCallback := appLogger.Line
	statusCallback := func(msg string) { fyne.Do(func() { statusData.Set(msg) }) }
	debugCallback := appLogger.Debug

	// --- Engine ---
	cfg := config.Load(constants.ConfigFile, appLogger)
	state := engine.NewState()
	sampler := screen.NewSampler()

	var reader tools.Reader
	var priceReader engine.PriceReader = unavailableOCR{}
	tesseract, err := ocr.NewTesseract()
	if err != nil {
		appLogger.Error("OCR 初始化失败: %v", err)
	} else {
		extractor := ocr.NewExtractor(tesseract)
		reader = extractor
		priceReader = extractor
	}

	deps := engine.Deps{
		Input:   engine.NewRobot(),
		Sampler: sampler,
		Reader:  priceReader,
		Regions: cfg,
		State:   state,
		Ledger:  ledger.New(constants.LedgerFile),
	}
	bot := engine.NewBot(state, cfg, map[int]engine.Runner{
		1: engine.NewProcedure(engine.Mode1Spec(), deps, logCallback, debugCallback),
		2: engine.NewProcedure(engine.Mode2Spec(), deps, logCallback, debugCallback),
	}, logCallback, statusCallback, debugCallback)

	// --- UI ---
	buyPanel, control := buy.NewBuyPanel(myWindow, buy.Panel{
		State:   state,
		Config:  cfg,
		Logger:  appLogger,
		LogData: logData,
		Status:  statusData,
	})

	tabs := container.NewAppTabs(
		container.NewTabItem("自动购买", buyPanel),
		container.NewTabItem("区域工具", tools.NewToolsPanel(myWindow, tools.Deps{
			Config:  cfg,
			Sampler: sampler,
			Reader:  reader,
			Logger:  appLogger,
		})),
	)
	tabs.SetTabLocation(container.TabLocationTop)

	keys := hotkey.NewManager(control.Start, control.Stop, logCallback, debugCallback)
	keys.Start()
	bot.Start()

	myWindow.SetOnClosed(func() {
		state.SetRunning(false)
		keys.Stop()
		bot.Close()
		if tesseract != nil {
			tesseract.Close()
		}
	})

	myWindow.SetContent(tabs)
	myWindow.ShowAndRun()
}

// unavailableOCR stands in when tesseract failed to start. Every cycle then
// reports no price.
type unavailableOCR struct{}

func (unavailableOCR) Price(string) (int, error) {
	return 0, ocr.ErrNoPrice
}
