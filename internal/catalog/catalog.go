// Package catalog holds the static, hand-mapped layout of the dashboard
// spreadsheet: which worksheet each dataset lives in, where each section's
// columns sit, and how raw sheet headers map to canonical JSON field names.
// The specs are loaded once and never mutated; Validate rejects a catalog
// whose specs violate their structural invariants.
package catalog

import "fmt"

// Worksheet names inside the dashboard spreadsheet.
const (
	ChartWorksheet    = "Crawling_Data"
	TableWorksheet    = "Crawling_Data2"
	ExchangeWorksheet = "환율"
	WeatherWorksheet  = "LA날씨"
)

// ExchangeDateHeader is the date column header of the exchange-rate
// worksheet, which uses the plain header-keyed layout.
const ExchangeDateHeader = "날짜"

// chartHeaderRow is the sheet row (0-based) carrying the raw headers on the
// chart worksheet; row 1 holds the section titles.
const chartHeaderRow = 1

// Validate checks every spec in the catalog. Called once at startup; a
// failure here is a programming error in this package.
func Validate() error {
	for _, s := range ChartSections {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
	}
	for _, t := range SummaryTables {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
	}
	return nil
}
