package tools

import (
	"fmt"
	"image"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/ConserveLee/mgbuy/internal/config"
	"github.com/ConserveLee/mgbuy/internal/constants"
	"github.com/ConserveLee/mgbuy/internal/engine/screen"
	"github.com/ConserveLee/mgbuy/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Deps are what the region tool reads and writes. Reader may be nil when OCR
// failed to start; previews then show the image only.
type Deps struct {
	Config  *config.Store
	Sampler *screen.Sampler
	Reader  Reader
	Logger  *logger.AppLogger
}

// NewToolsPanel creates the region tool panel
func NewToolsPanel(win fyne.Window, deps Deps) fyne.CanvasObject {
	// State
	selectedDisplay := 0

	// --- UI Components ---

	// 1. Screen Selector
	var displayOptions []string
	for i, bounds := range screen.Displays() {
		displayOptions = append(displayOptions, fmt.Sprintf("Display %d (%dx%d)", i, bounds.Dx(), bounds.Dy()))
	}
	if len(displayOptions) == 0 {
		displayOptions = []string{"Display 0 (Default)"}
	}

	displaySelect := widget.NewSelect(displayOptions, func(selected string) {
		var id int
		if _, err := fmt.Sscanf(selected, "Display %d", &id); err == nil {
			selectedDisplay = id
		}
	})
	displaySelect.SetSelected(displayOptions[0])

	// 2. Info Label
	infoLabel := widget.NewLabel("1. 打开游戏购买界面\n2. 点击“截取并框选”\n3. 在弹出的窗口中框选价格或名称区域\n4. 预览识别结果并保存到配置文件")
	infoLabel.Alignment = fyne.TextAlignCenter

	// 3. Action Buttons
	cropBtn := widget.NewButton("截取并框选 (Capture & Select)", func() {
		img, origin, err := screen.CaptureDisplay(selectedDisplay)
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		showCropperWindow(img, origin, deps)
	})
	cropBtn.Importance = widget.HighImportance

	openDirBtn := widget.NewButton("打开识别图片目录 (Open Images)", func() {
		if err := openDir(constants.ScratchDir); err != nil {
			deps.Logger.Error("无法打开目录 %s: %v", constants.ScratchDir, err)
		}
	})

	return container.NewVBox(
		widget.NewLabel("选择屏幕:"),
		displaySelect,
		widget.NewSeparator(),
		infoLabel,
		layoutSpacer(),
		cropBtn,
		layoutSpacer(),
		widget.NewSeparator(),
		openDirBtn,
	)
}

func layoutSpacer() fyne.CanvasObject {
	return widget.NewLabel("") // rudimentary spacer
}

func openDir(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", absPath)
	case "windows":
		cmd = exec.Command("explorer", absPath)
	default:
		cmd = exec.Command("xdg-open", absPath)
	}
	return cmd.Start()
}

func showCropperWindow(fullImg image.Image, origin image.Point, deps Deps) {
	w := fyne.CurrentApp().NewWindow("框选区域 (Select Region)")
	w.Resize(fyne.NewSize(800, 600))

	lbl := widget.NewLabel("请在图片上拖拽鼠标框选区域...")
	lbl.Alignment = fyne.TextAlignCenter

	nextBtn := widget.NewButton("下一步", nil)
	nextBtn.Disable()

	var currentSelection image.Rectangle

	cropper := NewCropperWidget(fullImg, func(rect image.Rectangle) {
		currentSelection = rect
		lbl.SetText(fmt.Sprintf("已选区: %s (点击下一步)", toScreenRegion(rect, origin)))
		nextBtn.Enable()
	})

	nextBtn.OnTapped = func() {
		if currentSelection.Empty() {
			return
		}
		sub, err := cropImage(fullImg, currentSelection)
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		showSaveForm(w, sub, toScreenRegion(currentSelection, origin), deps)
	}

	w.SetContent(container.NewBorder(
		nil,
		container.NewVBox(lbl, nextBtn),
		nil, nil,
		cropper,
	))
	w.Show()
}

func showSaveForm(win fyne.Window, img image.Image, region config.Region, deps Deps) {
	// Preview
	imageObj := canvas.NewImageFromImage(img)
	imageObj.FillMode = canvas.ImageFillContain
	imageObj.SetMinSize(fyne.NewSize(200, 60))

	resultLabel := widget.NewLabel("")

	targetSelect := widget.NewSelect(targetTitles(), nil)
	targetSelect.OnChanged = func(title string) {
		target, ok := targetByTitle(title)
		if !ok {
			return
		}
		prepared := deps.Sampler.Prepare(img, target.Threshold)
		imageObj.Image = prepared
		imageObj.Refresh()

		path, err := screen.SaveScratch(constants.ScratchDir, target.Image, prepared)
		if err != nil {
			resultLabel.SetText(err.Error())
			return
		}
		resultLabel.SetText(recognize(deps.Reader, target, path))
	}
	targetSelect.SetSelected(regionTargets[0].Title)

	content := container.NewVBox(
		widget.NewLabel(fmt.Sprintf("区域: %s", region)),
		container.NewCenter(imageObj),
		resultLabel,
		widget.NewLabel("保存为 (Config Key):"),
		targetSelect,
	)

	dialog.ShowCustomConfirm("保存区域", "保存", "取消", content, func(confirm bool) {
		if !confirm {
			return
		}
		target, ok := targetByTitle(targetSelect.Selected)
		if !ok {
			return
		}

		if err := deps.Config.SaveRegion(target.Key, region); err != nil {
			dialog.ShowError(err, win)
			return
		}

		deps.Logger.Info("已保存 %s = %s 到 %s", target.Key, region, deps.Config.Path())
		dialog.ShowInformation("成功", fmt.Sprintf("已保存: %s\n%s", target.Title, region), win)
		win.Close()
	}, win)
}
