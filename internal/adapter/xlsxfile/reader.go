// Package xlsxfile fetches worksheet grids from a local .xlsx workbook. It
// serves offline extraction runs against a downloaded copy of the
// spreadsheet.
package xlsxfile

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/freightdash/dashboard-etl/internal/domain"
)

// Reader implements pipeline.GridFetcher over one workbook file.
type Reader struct {
	path string
}

// NewReader creates a Reader for the workbook at path. The file is opened
// per fetch so a re-downloaded workbook is picked up without restarting.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// GetGrid reads one worksheet as a grid of formatted cell values.
func (r *Reader) GetGrid(_ context.Context, worksheet string) (domain.Grid, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", r.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(worksheet)
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", worksheet, err)
	}
	return domain.Grid(rows), nil
}
