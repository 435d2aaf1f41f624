package config

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"sync"

	"github.com/ConserveLee/mgbuy/internal/constants"
	"github.com/spf13/viper"
)

// Region is a screen rectangle in absolute pixels, stored as [x, y, width, height].
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Rect converts the region into an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// RegionFromRect is the inverse of Rect.
func RegionFromRect(rect image.Rectangle) Region {
	return Region{X: rect.Min.X, Y: rect.Min.Y, Width: rect.Dx(), Height: rect.Dy()}
}

func (r Region) String() string {
	return fmt.Sprintf("[%d, %d, %d, %d]", r.X, r.Y, r.Width, r.Height)
}

// Logger receives configuration problems. They are never fatal.
type Logger interface {
	Error(format string, args ...interface{})
}

// Store holds the flat key/value configuration loaded from disk.
type Store struct {
	mu   sync.RWMutex
	v    *viper.Viper
	path string
	log  Logger
}

// Load reads the JSON config at path. A missing or malformed file is logged
// and treated as an empty configuration.
func Load(path string, log Logger) *Store {
	s := &Store{path: path, log: log}

	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Error("[错误] 配置文件 %s 不存在", path)
		case errors.As(err, &parseErr):
			log.Error("[错误] 配置文件 %s 格式错误: %v", path, err)
		default:
			log.Error("[错误] 读取配置时发生未知错误: %v", err)
		}
		v = newViper(path)
	}
	s.v = v
	return s
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault(constants.KeyMode, 1)
	return v
}

// Path returns the file the store was loaded from.
func (s *Store) Path() string {
	return s.path
}

// Region looks up a named rectangle. It reports false (and logs) when the key
// is missing, is not a 4-element array, or has a non-positive size.
func (s *Store) Region(key string) (Region, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.v.IsSet(key) {
		s.log.Error("[错误] 配置文件中缺少有效的 %s 字段，请检查配置文件", key)
		return Region{}, false
	}
	vals := s.v.GetIntSlice(key)
	if len(vals) != 4 || vals[2] <= 0 || vals[3] <= 0 {
		s.log.Error("[错误] 配置文件中缺少有效的 %s 字段，请检查配置文件", key)
		return Region{}, false
	}
	return Region{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, true
}

// Mode returns the selected purchase mode (1 when unset).
func (s *Store) Mode() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.GetInt(constants.KeyMode)
}

// SetMode changes the mode in memory only; the file is left untouched.
func (s *Store) SetMode(mode int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(constants.KeyMode, mode)
}

// SaveRegion stores a region and writes the whole configuration back to disk.
// Only called on an explicit user action from the region tool.
func (s *Store) SaveRegion(key string, r Region) error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("region %s has empty size %s", key, r)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.v.Set(key, []int{r.X, r.Y, r.Width, r.Height})
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", s.path, err)
	}
	return nil
}
