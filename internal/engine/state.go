package engine

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ConserveLee/mgbuy/internal/constants"
)

var (
	ErrUnknownMode  = errors.New("unknown mode")
	ErrInvalidPrice = errors.New("invalid ideal price")
	ErrInvalidDelay = errors.New("invalid delay")
)

// State is shared between the UI (writer) and the control loop (reader).
type State struct {
	mu      sync.RWMutex
	running bool
	paused  bool // kept alongside running, the loop never reads it
	prices  [2]int
	delays  [2]time.Duration
}

func NewState() *State {
	return &State{
		prices: [2]int{constants.DefaultMode1IdealPrice, constants.DefaultMode2IdealPrice},
		delays: [2]time.Duration{constants.DefaultMode1Delay, constants.DefaultMode2Delay},
	}
}

func modeIndex(mode int) (int, error) {
	if mode != 1 && mode != 2 {
		return 0, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
	}
	return mode - 1, nil
}

func (s *State) Running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

func (s *State) SetRunning(running bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = running
}

func (s *State) Paused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paused
}

func (s *State) SetPaused(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = paused
}

// IdealPrice returns 0 for an unknown mode.
func (s *State) IdealPrice(mode int) int {
	i, err := modeIndex(mode)
	if err != nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prices[i]
}

func (s *State) SetIdealPrice(mode, price int) error {
	i, err := modeIndex(mode)
	if err != nil {
		return err
	}
	if price <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPrice, price)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices[i] = price
	return nil
}

// Delay returns 0 for an unknown mode.
func (s *State) Delay(mode int) time.Duration {
	i, err := modeIndex(mode)
	if err != nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.delays[i]
}

// SetDelay takes seconds.
func (s *State) SetDelay(mode int, seconds float64) error {
	i, err := modeIndex(mode)
	if err != nil {
		return err
	}
	d, err := toDuration(seconds)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays[i] = d
	return nil
}

// ApplyPrices parses both entries and commits them together. On any error
// neither price changes.
func (s *State) ApplyPrices(mode1, mode2 string) error {
	p1, err := ParseIdealPrice(mode1)
	if err != nil {
		return err
	}
	p2, err := ParseIdealPrice(mode2)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices = [2]int{p1, p2}
	return nil
}

// ApplyDelays is ApplyPrices for delays in seconds.
func (s *State) ApplyDelays(mode1, mode2 string) error {
	d1, err := ParseDelay(mode1)
	if err != nil {
		return err
	}
	d2, err := ParseDelay(mode2)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays = [2]time.Duration{d1, d2}
	return nil
}

// ParseIdealPrice accepts a positive decimal integer.
func ParseIdealPrice(text string) (int, error) {
	price, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, text)
	}
	if price <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPrice, price)
	}
	return price, nil
}

// ParseDelay accepts a non-negative number of seconds, e.g. "0.17".
func ParseDelay(text string) (time.Duration, error) {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDelay, text)
	}
	return toDuration(seconds)
}

func toDuration(seconds float64) (time.Duration, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDelay, seconds)
	}
	return time.Duration(math.Round(seconds * float64(time.Second))), nil
}

// FormatDelay renders a delay as seconds for the settings entries.
func FormatDelay(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
