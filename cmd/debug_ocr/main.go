// Command debug_ocr runs the price and label extraction offline, for tuning
// thresholds against saved screenshots.
package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/ConserveLee/mgbuy/internal/constants"
	"github.com/ConserveLee/mgbuy/internal/engine/ocr"
	"github.com/ConserveLee/mgbuy/internal/engine/screen"

	"github.com/vcaesar/imgo"
)

func main() {
	pricePath := flag.String("price", filepath.Join(constants.ScratchDir, constants.PriceImage), "binarized price image")
	namePath := flag.String("name", filepath.Join(constants.ScratchDir, constants.NameImage), "binarized item name image")
	rawPath := flag.String("raw", "", "unprocessed crop; binarized with -threshold before OCR")
	threshold := flag.Int("threshold", constants.PriceThreshold, "binarization threshold for -raw")
	flag.Parse()

	engine, err := ocr.NewTesseract()
	if err != nil {
		fmt.Printf("Failed to init tesseract: %v\n", err)
		return
	}
	defer engine.Close()
	extractor := ocr.NewExtractor(engine)

	if *rawPath != "" {
		prepared, err := prepare(*rawPath, uint8(*threshold))
		if err != nil {
			fmt.Printf("Failed to prepare %s: %v\n", *rawPath, err)
			return
		}
		*pricePath = prepared
		fmt.Printf("Binarized %s at threshold %d -> %s\n", *rawPath, *threshold, prepared)
	}

	fmt.Printf("\n=== Price: %s ===\n", *pricePath)
	if raw, err := extractor.RawPrice(*pricePath); err != nil {
		fmt.Printf("  raw: error %v\n", err)
	} else {
		fmt.Printf("  raw: %q\n", raw)
	}
	if price, err := extractor.Price(*pricePath); err != nil {
		fmt.Printf("  parsed: %v\n", err)
	} else {
		fmt.Printf("  parsed: %d\n", price)
	}

	fmt.Printf("\n=== Name: %s ===\n", *namePath)
	if label, err := extractor.Label(*namePath); err != nil {
		fmt.Printf("  label: %v\n", err)
	} else {
		fmt.Printf("  label: %s\n", label)
	}
}

func prepare(path string, threshold uint8) (string, error) {
	img, err := imgo.Read(path)
	if err != nil {
		return "", err
	}
	fmt.Printf("Loaded %s (%dx%d)\n", path, img.Bounds().Dx(), img.Bounds().Dy())

	sampler := screen.NewSampler()
	return screen.SaveScratch(constants.ScratchDir, "debug_"+constants.PriceImage, sampler.Prepare(img, threshold))
}
