package ocr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	lines   []Line
	err     error
	profile Profile
	path    string
}

func (f *fakeEngine) Recognize(path string, p Profile) ([]Line, error) {
	f.path, f.profile = path, p
	return f.lines, f.err
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		ok       bool
	}{
		{"1,850,000", 1850000, true},
		{"2.500.000", 2500000, true},
		{" 99 ", 99, true},
		{"$1 234x", 1234, true},
		{"abc", 0, false},
		{"", 0, false},
		{"---", 0, false},
		{"99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		price, err := ParsePrice(tt.input)
		if tt.ok {
			require.NoError(t, err, tt.input)
			assert.Equal(t, tt.expected, price, tt.input)
		} else {
			assert.ErrorIs(t, err, ErrNoPrice, tt.input)
		}
	}
}

func TestCleanLabel(t *testing.T) {
	assert.Equal(t, "零号大坝门卡", CleanLabel(" 零号 大坝\t门卡\n"))
	assert.Equal(t, "", CleanLabel("   "))
}

func TestPriceUsesFirstLineAndDigitsProfile(t *testing.T) {
	eng := &fakeEngine{lines: []Line{{Text: "1,850,000"}, {Text: "7"}}}
	price, err := NewExtractor(eng).Price("images/item_price.png")

	require.NoError(t, err)
	assert.Equal(t, 1850000, price)
	assert.Equal(t, ProfileDigits, eng.profile)
	assert.Equal(t, "images/item_price.png", eng.path)
}

func TestPriceFailures(t *testing.T) {
	tests := []*fakeEngine{
		{lines: nil},
		{lines: []Line{{Text: "no digits here"}}},
		{err: errors.New("tesseract exploded")},
	}

	for _, eng := range tests {
		_, err := NewExtractor(eng).Price("x.png")
		assert.ErrorIs(t, err, ErrNoPrice)
	}
}

func TestLabel(t *testing.T) {
	eng := &fakeEngine{lines: []Line{{Text: "航天 基地 门卡"}}}
	label, err := NewExtractor(eng).Label("images/item_name.png")

	require.NoError(t, err)
	assert.Equal(t, "航天基地门卡", label)
	assert.Equal(t, ProfileLabel, eng.profile)

	_, err = NewExtractor(&fakeEngine{}).Label("x.png")
	assert.ErrorIs(t, err, ErrNoLabel)

	_, err = NewExtractor(&fakeEngine{lines: []Line{{Text: " "}}}).Label("x.png")
	assert.ErrorIs(t, err, ErrNoLabel)
}
