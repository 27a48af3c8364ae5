package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in priority order. The slash layouts use non-padded
// verbs so both "7/4/2025" and "07/04/2025" parse.
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"1/2/06",
}

var (
	// parenISODateRe matches the parenthesized date in labels like
	// "Current Index (2025-07-21)".
	parenISODateRe = regexp.MustCompile(`\((\d{4}-\d{2}-\d{2})\)`)

	// slashDateRe matches bare M/D/YYYY labels like "7/17/2025".
	slashDateRe = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`)
)

// ParseDate parses a cell against the accepted date formats.
// Returns false when no format matches.
func ParseDate(cell string) (time.Time, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseNumber parses a cell as a float after stripping thousands separators.
// Empty or unparseable cells yield nil, never zero.
func ParseNumber(cell string) *float64 {
	cell = strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	if cell == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil
	}
	// ParseFloat accepts "NaN" and "Inf" spellings; neither has a JSON
	// representation, so they are null like any other unparseable cell.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ParseLabelDate extracts the reading date embedded in a summary-table label
// cell and reformats it as MM-DD-YYYY. Labels carry either a parenthesized
// ISO date or a bare slash date; returns "" when neither pattern matches.
func ParseLabelDate(label string) string {
	if m := parenISODateRe.FindStringSubmatch(label); len(m) == 2 {
		if t, err := time.Parse("2006-01-02", m[1]); err == nil {
			return t.Format("01-02-2006")
		}
	}
	if m := slashDateRe.FindString(label); m != "" {
		if t, err := time.Parse("1/2/2006", m); err == nil {
			return t.Format("01-02-2006")
		}
	}
	return ""
}
