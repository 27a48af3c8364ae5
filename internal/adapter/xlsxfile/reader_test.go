package xlsxfile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "환율"))
	require.NoError(t, f.SetCellValue("환율", "A1", "날짜"))
	require.NoError(t, f.SetCellValue("환율", "B1", "USD"))
	require.NoError(t, f.SetCellValue("환율", "A2", "2025-07-21"))
	require.NoError(t, f.SetCellValue("환율", "B2", "1383.5"))

	path := filepath.Join(t.TempDir(), "dashboard.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestGetGrid(t *testing.T) {
	reader := NewReader(writeTestWorkbook(t))

	grid, err := reader.GetGrid(context.Background(), "환율")
	require.NoError(t, err)

	require.Equal(t, 2, grid.NumRows())
	assert.Equal(t, "날짜", grid.Cell(0, 0))
	assert.Equal(t, "USD", grid.Cell(0, 1))
	assert.Equal(t, "2025-07-21", grid.Cell(1, 0))
	assert.Equal(t, "1383.5", grid.Cell(1, 1))
}

func TestGetGrid_MissingWorksheet(t *testing.T) {
	reader := NewReader(writeTestWorkbook(t))

	_, err := reader.GetGrid(context.Background(), "Crawling_Data")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Crawling_Data")
}

func TestGetGrid_MissingFile(t *testing.T) {
	reader := NewReader(filepath.Join(t.TempDir(), "absent.xlsx"))

	_, err := reader.GetGrid(context.Background(), "환율")
	require.Error(t, err)
}
