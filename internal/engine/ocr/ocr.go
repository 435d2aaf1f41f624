// Package ocr turns sampled screen images into prices and item labels.
package ocr

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"
	"unicode"
)

// Profile selects how an engine is configured for a recognition pass.
type Profile int

const (
	ProfileDigits Profile = iota // Latin digits, single line
	ProfileLabel                 // Local script, orientation detection on
)

func (p Profile) String() string {
	if p == ProfileLabel {
		return "label"
	}
	return "digits"
}

// Line is one recognized text line.
type Line struct {
	Text       string
	Box        image.Rectangle
	Confidence float64
}

// Engine is the external recognition capability.
type Engine interface {
	Recognize(path string, p Profile) ([]Line, error)
}

var (
	ErrNoPrice = errors.New("no price recognized")
	ErrNoLabel = errors.New("no label recognized")
)

// Extractor reads prices and labels from saved images.
type Extractor struct {
	engine Engine
}

func NewExtractor(e Engine) *Extractor {
	return &Extractor{engine: e}
}

// Price runs a digits pass and parses the first line. Every failure is
// reported as ErrNoPrice.
func (x *Extractor) Price(path string) (int, error) {
	text, err := x.firstLine(path, ProfileDigits)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNoPrice, err)
	}
	return ParsePrice(text)
}

// RawPrice returns the unparsed first line of a digits pass, for debugging.
func (x *Extractor) RawPrice(path string) (string, error) {
	return x.firstLine(path, ProfileDigits)
}

// Label runs a label pass and returns the first line without whitespace.
func (x *Extractor) Label(path string) (string, error) {
	text, err := x.firstLine(path, ProfileLabel)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoLabel, err)
	}
	label := CleanLabel(text)
	if label == "" {
		return "", ErrNoLabel
	}
	return label, nil
}

func (x *Extractor) firstLine(path string, p Profile) (string, error) {
	lines, err := x.engine.Recognize(path, p)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", errors.New("nothing recognized")
	}
	return lines[0].Text, nil
}

// ParsePrice keeps only ASCII digits and parses the rest, so "1,850,000"
// becomes 1850000.
func ParsePrice(text string) (int, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)
	if digits == "" {
		return 0, fmt.Errorf("%w: no digits in %q", ErrNoPrice, text)
	}

	price, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNoPrice, err)
	}
	return price, nil
}

// CleanLabel removes every whitespace rune.
func CleanLabel(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}
