package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/kakeibo/internal/logging"
	"fjacquet/kakeibo/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEntries = []models.Entry{
	{ID: 1715000000001, Date: "2024-05-20", Type: models.EntryTypeExpense, Amount: 1200, Memo: "ランチ, 駅前", Category: models.CategoryFood},
	{ID: 1715000000000, Date: "2024-05-01", Type: models.EntryTypeIncome, Amount: 250000, Memo: "給料"},
}

func TestCSV_Write(t *testing.T) {
	var buf bytes.Buffer
	c := NewCSV(0, logging.NewMockLogger())
	require.NoError(t, c.Write(&buf, testEntries))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,date,type,amount,memo,category", lines[0])
	assert.Equal(t, `1715000000001,2024-05-20,expense,1200,"ランチ, 駅前",Food`, lines[1])
	assert.Equal(t, "1715000000000,2024-05-01,income,250000,給料,", lines[2])
}

func TestCSV_WriteRead(t *testing.T) {
	tests := []struct {
		name      string
		delimiter rune
	}{
		{"comma", ','},
		{"semicolon", ';'},
		{"tab", '\t'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCSV(tt.delimiter, logging.NewMockLogger())
			var buf bytes.Buffer
			require.NoError(t, c.Write(&buf, testEntries))

			got, err := c.Read(&buf)
			require.NoError(t, err)
			assert.Equal(t, testEntries, got)
		})
	}
}

func TestCSV_ReadIgnoresUnknownColumns(t *testing.T) {
	input := "date,amount,memo,note\n2024-05-03,500,バス,extra\n"
	c := NewCSV(',', logging.NewMockLogger())

	got, err := c.Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-05-03", got[0].Date)
	assert.Equal(t, int64(500), got[0].Amount)
	assert.Equal(t, "バス", got[0].Memo)
	assert.Empty(t, got[0].Type)
	assert.Zero(t, got[0].ID)
}

func TestCSV_ReadInvalid(t *testing.T) {
	c := NewCSV(',', logging.NewMockLogger())

	_, err := c.Read(strings.NewReader("date,amount\n2024-05-03,lots\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing CSV data")
}

func TestCSV_Files(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "may.csv")
	c := NewCSV(';', logging.NewMockLogger())

	require.NoError(t, c.WriteFile(path, testEntries))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	got, err := c.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testEntries, got)

	_, err = c.ReadFile(filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error opening CSV file")
}

func TestCSV_WriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	c := NewCSV(',', logging.NewMockLogger())
	require.NoError(t, c.Write(&buf, nil))
	assert.Equal(t, "id,date,type,amount,memo,category", strings.TrimSpace(buf.String()))
	assert.Equal(t, ',', c.Delimiter())
}
