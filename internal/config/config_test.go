package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	errors []string
}

func (l *recordingLogger) Error(format string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `{
		"mode1_item_price_range": [100, 200, 300, 40],
		"mode2_item_price_range": [10.0, 20.0, 30.0, 4.0],
		"item_name_range": [1, 2, 3, 4],
		"mode": 2
	}`)
	log := &recordingLogger{}
	s := Load(path, log)

	r, ok := s.Region("mode1_item_price_range")
	require.True(t, ok)
	assert.Equal(t, Region{X: 100, Y: 200, Width: 300, Height: 40}, r)

	r, ok = s.Region("mode2_item_price_range")
	require.True(t, ok)
	assert.Equal(t, Region{X: 10, Y: 20, Width: 30, Height: 4}, r)

	assert.Equal(t, 2, s.Mode())
	assert.Empty(t, log.errors)
}

func TestLoadMissingFileIsEmptyConfig(t *testing.T) {
	log := &recordingLogger{}
	s := Load(filepath.Join(t.TempDir(), "nope.json"), log)

	require.Len(t, log.errors, 1)
	assert.Contains(t, log.errors[0], "不存在")

	_, ok := s.Region("mode1_item_price_range")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Mode())
}

func TestLoadMalformedFileIsEmptyConfig(t *testing.T) {
	path := writeConfig(t, `{"mode1_item_price_range": [1, 2,`)
	log := &recordingLogger{}
	s := Load(path, log)

	require.NotEmpty(t, log.errors)
	assert.Contains(t, log.errors[0], "格式错误")

	_, ok := s.Region("mode1_item_price_range")
	assert.False(t, ok)
}

func TestRegionInvalidValues(t *testing.T) {
	path := writeConfig(t, `{
		"short": [1, 2, 3],
		"long": [1, 2, 3, 4, 5],
		"empty_size": [1, 2, 0, 4],
		"text": "1,2,3,4"
	}`)
	s := Load(path, &recordingLogger{})

	for _, key := range []string{"short", "long", "empty_size", "text", "missing"} {
		log := &recordingLogger{}
		s.log = log
		_, ok := s.Region(key)
		assert.False(t, ok, key)
		assert.Len(t, log.errors, 1, key)
	}
}

func TestSetModeStaysInMemory(t *testing.T) {
	path := writeConfig(t, `{"mode": 1}`)
	s := Load(path, &recordingLogger{})

	s.SetMode(2)
	assert.Equal(t, 2, s.Mode())

	reloaded := Load(path, &recordingLogger{})
	assert.Equal(t, 1, reloaded.Mode())
}

func TestSaveRegionWritesFile(t *testing.T) {
	path := writeConfig(t, `{"item_name_range": [1, 2, 3, 4]}`)
	s := Load(path, &recordingLogger{})

	want := Region{X: 50, Y: 60, Width: 70, Height: 80}
	require.NoError(t, s.SaveRegion("mode1_item_price_range", want))

	reloaded := Load(path, &recordingLogger{})
	got, ok := reloaded.Region("mode1_item_price_range")
	require.True(t, ok)
	assert.Equal(t, want, got)

	name, ok := reloaded.Region("item_name_range")
	require.True(t, ok)
	assert.Equal(t, Region{X: 1, Y: 2, Width: 3, Height: 4}, name)
}

func TestSaveRegionRejectsEmpty(t *testing.T) {
	s := Load(writeConfig(t, `{}`), &recordingLogger{})
	assert.Error(t, s.SaveRegion("item_name_range", Region{X: 1, Y: 1}))
}

func TestRegionRectRoundTrip(t *testing.T) {
	r := Region{X: 5, Y: 6, Width: 7, Height: 8}
	assert.Equal(t, r, RegionFromRect(r.Rect()))
}
