package tools

import (
	"errors"
	"fmt"
	"image"

	"github.com/ConserveLee/mgbuy/internal/config"
	"github.com/ConserveLee/mgbuy/internal/constants"
)

// regionTarget is one configurable screen region.
type regionTarget struct {
	Title     string
	Key       string
	Threshold uint8
	Image     string // Scratch file the preview is written to
	IsPrice   bool
}

var regionTargets = []regionTarget{
	{"模式1 价格区域", constants.KeyMode1PriceRegion, constants.PriceThreshold, constants.PriceImage, true},
	{"模式2 价格区域", constants.KeyMode2PriceRegion, constants.PriceThreshold, constants.PriceImage, true},
	{"物品名称区域", constants.KeyItemNameRegion, constants.NameThreshold, constants.NameImage, false},
}

func targetTitles() []string {
	titles := make([]string, len(regionTargets))
	for i, t := range regionTargets {
		titles[i] = t.Title
	}
	return titles
}

func targetByTitle(title string) (regionTarget, bool) {
	for _, t := range regionTargets {
		if t.Title == title {
			return t, true
		}
	}
	return regionTarget{}, false
}

// toScreenRegion converts a selection in screenshot pixels into a region in
// global screen coordinates. origin is the display's top-left corner.
func toScreenRegion(sel image.Rectangle, origin image.Point) config.Region {
	return config.RegionFromRect(sel.Add(origin))
}

// Reader is the subset of the OCR extractor the preview needs.
type Reader interface {
	Price(path string) (int, error)
	Label(path string) (string, error)
}

// recognize runs the OCR pass matching the target and renders the result.
func recognize(r Reader, t regionTarget, path string) string {
	if r == nil {
		return "OCR 不可用"
	}
	if t.IsPrice {
		price, err := r.Price(path)
		if err != nil {
			return fmt.Sprintf("识别失败: %v", err)
		}
		return fmt.Sprintf("识别价格: %d", price)
	}
	label, err := r.Label(path)
	if err != nil {
		return fmt.Sprintf("识别失败: %v", err)
	}
	return fmt.Sprintf("识别名称: %s", label)
}

// cropImage returns the selected part of a screenshot.
func cropImage(img image.Image, sel image.Rectangle) (image.Image, error) {
	sub, ok := img.(interface {
		SubImage(r image.Rectangle) image.Image
	})
	if !ok {
		return nil, errors.New("image type does not support cropping")
	}
	return sub.SubImage(sel), nil
}
