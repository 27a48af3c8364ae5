package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// Extraction diagnostics. These signal that a configured column layout is
// entirely absent from the grid; callers log them and publish an empty
// section rather than failing the run.
var (
	ErrHeaderRowMissing  = errors.New("header row is outside the grid")
	ErrDateColumnMissing = errors.New("date column is outside the grid")
	ErrNoDataColumns     = errors.New("no data columns present in the grid")
)

// ChartStats counts what an extraction saw, for observability.
type ChartStats struct {
	RowsScanned int
	RowsDropped int // rows excluded because the date cell parsed with no format
	CellsFailed int // data cells that became null
}

// ExtractChartSeries extracts one section's chronological series from a grid.
//
// Columns are selected by fixed position from the spec, then the raw header
// text at each position is mapped to its canonical field name; positions
// whose header is not in the spec's mapping are skipped. Rows whose date
// cell parses with no accepted format are dropped. The result is sorted
// ascending by date, with the date re-rendered as ISO under the canonical
// "date" key.
func ExtractChartSeries(grid Grid, spec SectionSpec) ([]ChartRecord, ChartStats, error) {
	var stats ChartStats

	if spec.HeaderRow >= grid.NumRows() {
		return nil, stats, fmt.Errorf("section %s: %w", spec.Name, ErrHeaderRowMissing)
	}
	headerRow := grid[spec.HeaderRow]
	if spec.DateCol >= len(headerRow) {
		return nil, stats, fmt.Errorf("section %s: %w", spec.Name, ErrDateColumnMissing)
	}

	// Resolve the data columns that are both inside the grid and known to
	// the spec. Header text repeats across sections, so resolution is
	// per-position, not a sheet-wide header lookup.
	type boundColumn struct {
		col       int
		canonical string
	}
	var bound []boundColumn
	for col := spec.DataStartCol; col <= spec.DataEndCol; col++ {
		if col >= len(headerRow) {
			break
		}
		canonical, ok := spec.canonicalFor(headerText(headerRow[col]))
		if !ok || canonical == spec.DateField() {
			continue
		}
		bound = append(bound, boundColumn{col: col, canonical: canonical})
	}
	if len(bound) == 0 {
		return nil, stats, fmt.Errorf("section %s: %w", spec.Name, ErrNoDataColumns)
	}

	type dated struct {
		at  time.Time
		rec ChartRecord
	}
	var rows []dated
	for r := spec.HeaderRow + 1; r < grid.NumRows(); r++ {
		stats.RowsScanned++
		at, ok := ParseDate(grid.Cell(r, spec.DateCol))
		if !ok {
			stats.RowsDropped++
			continue
		}

		fields := make([]FieldValue, 0, len(bound))
		for _, bc := range bound {
			v := ParseNumber(grid.Cell(r, bc.col))
			if v == nil && grid.Cell(r, bc.col) != "" {
				stats.CellsFailed++
			}
			fields = append(fields, FieldValue{Name: bc.canonical, Value: v})
		}
		rows = append(rows, dated{at: at, rec: ChartRecord{Date: at.Format("2006-01-02"), Fields: fields}})
	}

	// Stable sort: rows with duplicate dates pass through unmerged in sheet
	// order.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].at.Before(rows[j].at) })

	records := make([]ChartRecord, len(rows))
	for i, d := range rows {
		records[i] = d.rec
	}
	return records, stats, nil
}

// ExtractChartSeriesByHeader is the header-keyed variant used by worksheets
// with a plain tabular layout (row 1 headers, data below): the date column is
// found by header text and every other headed column becomes a numeric series
// keyed by its raw header.
func ExtractChartSeriesByHeader(grid Grid, dateHeader string) ([]ChartRecord, ChartStats, error) {
	var stats ChartStats

	if grid.NumRows() == 0 {
		return nil, stats, ErrHeaderRowMissing
	}
	headerRow := grid[0]

	dateCol := -1
	for col := range headerRow {
		if headerText(headerRow[col]) == dateHeader {
			dateCol = col
			break
		}
	}
	if dateCol < 0 {
		return nil, stats, fmt.Errorf("header %q: %w", dateHeader, ErrDateColumnMissing)
	}

	spec := SectionSpec{
		Name:         dateHeader,
		HeaderRow:    0,
		DateCol:      dateCol,
		DataStartCol: 0,
		DataEndCol:   len(headerRow) - 1,
		Headers:      []HeaderMapping{{Raw: dateHeader, Canonical: dateHeader}},
	}
	for col, raw := range headerRow {
		h := headerText(raw)
		if col == dateCol || h == "" {
			continue
		}
		spec.Headers = append(spec.Headers, HeaderMapping{Raw: h, Canonical: h})
	}
	return ExtractChartSeries(grid, spec)
}

// ExtractLatestRates reads the single most recent value row of a header-keyed
// worksheet (row 1 headers, row 2 values) into a header-to-number mapping.
// Returns nil when the grid has no value row.
func ExtractLatestRates(grid Grid) map[string]*float64 {
	if grid.NumRows() < 2 {
		return nil
	}
	rates := make(map[string]*float64)
	for col, raw := range grid[0] {
		h := headerText(raw)
		if h == "" {
			continue
		}
		rates[h] = ParseNumber(grid.Cell(1, col))
	}
	return rates
}
