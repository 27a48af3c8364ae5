package domain

import (
	"encoding/json"
	"fmt"
)

// RoutesHeader is the first display header of every summary table, the
// literal the dashboard renders above the route column.
const RoutesHeader = "항로"

// AnchorPredicate reports whether a row anchors a summary table.
type AnchorPredicate func(row []string) bool

// CellEquals returns a predicate matching rows whose cell at col equals the
// given literal exactly (after trimming).
func CellEquals(col int, text string) AnchorPredicate {
	return func(row []string) bool {
		if col < 0 || col >= len(row) {
			return false
		}
		return Grid{row}.Cell(0, col) == text
	}
}

// FindAnchor scans rows top to bottom and returns the index of the first row
// the predicate matches. The boolean is false when no row matches.
func FindAnchor(grid Grid, pred AnchorPredicate) (int, bool) {
	for i, row := range grid {
		if pred(row) {
			return i, true
		}
	}
	return 0, false
}

// ExtractSummaryTable locates a summary table by its anchor marker and reads
// the current/previous rows at the spec's offsets into route rows with
// computed week-over-week changes.
//
// The boolean is false when the anchor is not present in the grid, which
// means the sheet legitimately lacks this section; callers omit the table
// from their output entirely rather than publishing an empty one.
func ExtractSummaryTable(grid Grid, spec TableSpec) (SummaryTable, bool) {
	anchor, ok := FindAnchor(grid, CellEquals(spec.AnchorCol, spec.AnchorText))
	if !ok {
		return SummaryTable{}, false
	}

	currentRow := anchor + spec.CurrentOffset
	previousRow := anchor + spec.PreviousOffset

	headers := []string{
		RoutesHeader,
		annotateHeader("Current Index", grid.Cell(currentRow, spec.LabelCol)),
		annotateHeader("Previous Index", grid.Cell(previousRow, spec.LabelCol)),
		"Weekly Change",
	}

	rows := make([]TableRow, 0, len(spec.Routes))
	for _, rc := range spec.Routes {
		current := grid.Cell(currentRow, rc.Col)
		previous := grid.Cell(previousRow, rc.Col)
		rows = append(rows, TableRow{
			Route:         spec.Name + "_" + rc.Route,
			CurrentIndex:  textOrNil(current),
			PreviousIndex: textOrNil(previous),
			WeeklyChange:  ComputeWeeklyChange(current, previous),
		})
	}
	return SummaryTable{Headers: headers, Rows: rows}, true
}

// ComputeWeeklyChange derives the change between two raw index cells.
//
// The change value is present iff both cells parse as numbers. The percentage
// is change/previous as a 2-decimal percent string, "N/A" when the previous
// value is exactly zero, and null when either cell failed to parse. The class
// follows the sign of the change and stays neutral when there is no change
// value.
func ComputeWeeklyChange(currentCell, previousCell string) WeeklyChange {
	current := ParseNumber(currentCell)
	previous := ParseNumber(previousCell)
	if current == nil || previous == nil {
		return WeeklyChange{ColorClass: ChangeNeutral}
	}

	change := *current - *previous
	value := json.Number(fmt.Sprintf("%.2f", change))

	var percentage string
	if *previous == 0 {
		percentage = "N/A"
	} else {
		percentage = fmt.Sprintf("%.2f%%", change / *previous*100)
	}

	class := ChangeNeutral
	switch {
	case change > 0:
		class = ChangeIncrease
	case change < 0:
		class = ChangeDecrease
	}

	return WeeklyChange{Value: &value, Percentage: &percentage, ColorClass: class}
}

// annotateHeader suffixes a display header with the reading date parsed from
// a label cell, e.g. "Current Index (07-21-2025)". The plain header is used
// when the label carries no recognizable date.
func annotateHeader(header, label string) string {
	if date := ParseLabelDate(label); date != "" {
		return fmt.Sprintf("%s (%s)", header, date)
	}
	return header
}

func textOrNil(cell string) *string {
	if cell == "" {
		return nil
	}
	return &cell
}
