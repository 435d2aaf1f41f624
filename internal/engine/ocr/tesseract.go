package ocr

import (
	"fmt"
	"sync"

	"github.com/ConserveLee/mgbuy/internal/constants"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract is an Engine backed by two long-lived gosseract clients, one per
// profile. Clients are not goroutine safe, so calls are serialized.
type Tesseract struct {
	mu     sync.Mutex
	digits *gosseract.Client
	label  *gosseract.Client
}

// NewTesseract initializes both clients. Call Close when done.
func NewTesseract() (*Tesseract, error) {
	digits := gosseract.NewClient()
	if err := configure(digits, constants.PriceLanguage, gosseract.PSM_SINGLE_LINE); err != nil {
		digits.Close()
		return nil, fmt.Errorf("digits client: %w", err)
	}
	if err := digits.SetWhitelist(constants.PriceWhitelist); err != nil {
		digits.Close()
		return nil, fmt.Errorf("digits whitelist: %w", err)
	}

	label := gosseract.NewClient()
	if err := configure(label, constants.LabelLanguage, gosseract.PSM_AUTO_OSD); err != nil {
		digits.Close()
		label.Close()
		return nil, fmt.Errorf("label client: %w", err)
	}

	return &Tesseract{digits: digits, label: label}, nil
}

func configure(c *gosseract.Client, lang string, mode gosseract.PageSegMode) error {
	if err := c.SetLanguage(lang); err != nil {
		return err
	}
	return c.SetPageSegMode(mode)
}

// Recognize returns text lines in reading order.
func (t *Tesseract) Recognize(path string, p Profile) ([]Line, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	client := t.digits
	if p == ProfileLabel {
		client = t.label
	}

	if err := client.SetImage(path); err != nil {
		return nil, fmt.Errorf("set image %s: %w", path, err)
	}
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("recognize %s (%s): %w", path, p, err)
	}

	lines := make([]Line, 0, len(boxes))
	for _, b := range boxes {
		lines = append(lines, Line{Text: b.Word, Box: b.Box, Confidence: b.Confidence})
	}
	return lines, nil
}

func (t *Tesseract) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	err := t.digits.Close()
	if lerr := t.label.Close(); err == nil {
		err = lerr
	}
	return err
}
