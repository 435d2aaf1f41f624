package screen

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/ConserveLee/mgbuy/internal/config"
	"github.com/ConserveLee/mgbuy/internal/constants"

	"github.com/kbinani/screenshot"
	"github.com/nfnt/resize"
	"github.com/vcaesar/imgo"
)

// Sampler captures screen regions and prepares them for OCR.
type Sampler struct {
	Scale int // Upscale factor before thresholding, 1 disables

	capture func(image.Rectangle) (*image.RGBA, error)
}

// NewSampler creates a sampler backed by kbinani/screenshot
func NewSampler() *Sampler {
	return &Sampler{
		Scale:   constants.OCRUpscale,
		capture: screenshot.CaptureRect,
	}
}

// Sample captures the region, converts it to greyscale and applies an inverse
// binary threshold. Bright text ends up black on white.
func (s *Sampler) Sample(r config.Region, threshold uint8) (image.Image, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("invalid capture region %s", r)
	}

	img, err := s.capture(r.Rect())
	if err != nil {
		return nil, fmt.Errorf("failed to capture region %s: %w", r, err)
	}

	return s.Prepare(img, threshold), nil
}

// Prepare applies the OCR preprocessing to an already captured image.
func (s *Sampler) Prepare(img image.Image, threshold uint8) *image.Gray {
	return Binarize(Upscale(img, s.Scale), threshold)
}

// Upscale enlarges the image by an integer factor with bicubic interpolation.
func Upscale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	return resize.Resize(uint(b.Dx()*factor), uint(b.Dy()*factor), img, resize.Bicubic)
}

// Binarize converts to greyscale and thresholds inversely: grey values above
// threshold become 0, the rest 255. The result starts at the origin.
func Binarize(img image.Image, threshold uint8) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			v := uint8(255)
			if g.Y > threshold {
				v = 0
			}
			out.SetGray(x-b.Min.X, y-b.Min.Y, color.Gray{Y: v})
		}
	}
	return out
}

// SaveScratch writes img as dir/name, creating dir on demand and overwriting
// any previous file. Returns the written path.
func SaveScratch(dir, name string, img image.Image) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := imgo.Save(path, img); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", path, err)
	}
	return path, nil
}

// Displays lists the bounds of every active display.
func Displays() []image.Rectangle {
	n := screenshot.NumActiveDisplays()
	bounds := make([]image.Rectangle, 0, n)
	for i := 0; i < n; i++ {
		bounds = append(bounds, screenshot.GetDisplayBounds(i))
	}
	return bounds
}

// CaptureDisplay grabs a whole display. Pixel (0,0) of the result maps to the
// display's top-left in global coordinates, which is returned alongside.
func CaptureDisplay(index int) (*image.RGBA, image.Point, error) {
	bounds := screenshot.GetDisplayBounds(index)
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, image.Point{}, fmt.Errorf("failed to capture screen %d: %w", index, err)
	}
	return img, bounds.Min, nil
}
