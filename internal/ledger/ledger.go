// Package ledger appends purchase records to the plain-text purchase log.
package ledger

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Entry is one executed purchase.
type Entry struct {
	Time       time.Time
	Label      string
	IdealPrice int
	Price      int
	Premium    float64 // percent, negative when under the ideal price
}

// Format renders the fixed one-line record, trailing newline included.
func (e Entry) Format() string {
	return fmt.Sprintf("购买时间：%s | 门卡名称: %s | 理想价格: %d | 购买价格: %d | 溢价: %.2f%% \n",
		e.Time.Format("2006-01-02 15:04:05"), e.Label, e.IdealPrice, e.Price, e.Premium)
}

// Ledger is an append-only UTF-8 file.
type Ledger struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

func New(path string) *Ledger {
	return &Ledger{path: path, now: time.Now}
}

// Record stamps the entry (when Time is zero), appends it and returns the
// rendered line.
func (l *Ledger) Record(e Entry) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e.Time.IsZero() {
		e.Time = l.now()
	}
	line := e.Format()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return line, fmt.Errorf("failed to open ledger %s: %w", l.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return line, fmt.Errorf("failed to append ledger %s: %w", l.path, err)
	}
	return line, nil
}
