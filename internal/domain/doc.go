// Package domain models dashboard data extracted from Google Sheets worksheet
// snapshots: shipping freight index series, weekly summary tables, exchange
// rates, and Los Angeles weather.
//
// # Data Source
//
// An upstream crawler writes freight index data into a shared spreadsheet on a
// weekly schedule. Each worksheet is fetched as one raw grid of cell text
// (see [Grid]); all extraction in this package is a pure transform of such a
// snapshot. Grids are ragged: rows may be shorter than the widest row, and an
// out-of-bounds read yields the empty string.
//
// # Worksheet Conventions
//
// Chart data ("Crawling_Data"):
//
//	Several logical sections (KCCI, SCFI, WCI, ...) sit side by side in one
//	sheet, each occupying a fixed column range. Row 2 carries the raw headers.
//	Sections are located by column position, never by header matching, because
//	header text repeats across sections (every section has a "종합지수"
//	composite-index column). The raw header text is only used to map a column
//	position to its canonical JSON field name.
//
// Summary tables ("Crawling_Data2"):
//
//	Each section is a small block: a marker row holding the section title in
//	column A, followed by a "current" reading row and a "previous" reading
//	row. Blocks move around as rows are inserted above them, so they are
//	located by scanning for the marker text rather than by absolute row.
//	The label cells next to the readings carry the reading dates, either as
//	a parenthesized ISO date ("Current Index (2025-07-21)") or as a slash
//	date ("7/17/2025").
//
// Date formats:
//
//	Accepted in priority order: "2006-01-02", "1/2/2006" (also matches
//	zero-padded month/day), and "1/2/06". Rows whose date cell matches no
//	format are dropped from chart output entirely, never kept with a null
//	date.
//
// Numbers:
//
//	Cells use thousands separators ("1,234.5"). Separators are stripped
//	before parsing. A cell that does not parse becomes a JSON null, not a
//	zero: the dashboard renders gaps for nulls but would chart a zero.
package domain
