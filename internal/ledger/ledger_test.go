package ledger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryFormat(t *testing.T) {
	tests := []struct {
		entry    Entry
		expected string
	}{
		{
			Entry{Time: time.Date(2024, 3, 9, 8, 5, 1, 0, time.Local), Label: "模式一成功购买！", IdealPrice: 2000000, Price: 1850000, Premium: -7.5},
			"购买时间：2024-03-09 08:05:01 | 门卡名称: 模式一成功购买！ | 理想价格: 2000000 | 购买价格: 1850000 | 溢价: -7.50% \n",
		},
		{
			Entry{Time: time.Date(2024, 12, 31, 23, 59, 59, 0, time.Local), Label: "模式二成功购买！", IdealPrice: 100, Price: 99, Premium: -1},
			"购买时间：2024-12-31 23:59:59 | 门卡名称: 模式二成功购买！ | 理想价格: 100 | 购买价格: 99 | 溢价: -1.00% \n",
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.entry.Format())
	}
}

func TestRecordAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.txt")
	l := New(path)
	l.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local) }

	first, err := l.Record(Entry{Label: "a", IdealPrice: 10, Price: 9, Premium: -10})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first, "购买时间：2025-01-02 03:04:05 |"))

	_, err = l.Record(Entry{Label: "b", IdealPrice: 10, Price: 8, Premium: -20})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "门卡名称: a")
	assert.Contains(t, lines[1], "溢价: -20.00%")
}

func TestRecordUnwritablePath(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "missing", "logs.txt"))
	line, err := l.Record(Entry{Label: "x", IdealPrice: 1, Price: 1})
	assert.Error(t, err)
	assert.NotEmpty(t, line)
}
