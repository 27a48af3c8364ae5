package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSectionSpec() SectionSpec {
	return SectionSpec{
		Name:         "KCCI",
		HeaderRow:    1,
		DateCol:      0,
		DataStartCol: 1,
		DataEndCol:   2,
		Headers: []HeaderMapping{
			{Raw: "Date", Canonical: "date"},
			{Raw: "종합지수", Canonical: "KCCI_composite_index"},
			{Raw: "미주서안", Canonical: "KCCI_us_west_coast"},
		},
	}
}

func TestExtractChartSeries(t *testing.T) {
	t.Run("parses, sorts, and renders ISO dates", func(t *testing.T) {
		grid := Grid{
			{"KCCI"},
			{"Date", "종합지수", "미주서안"},
			{"2025-07-23", "1,250.5", "980"},
			{"7/21/2025", "1234.5", ""},
			{"2025-07-22", "bad", "970.25"},
		}

		records, stats, err := ExtractChartSeries(grid, testSectionSpec())
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, "2025-07-21", records[0].Date)
		assert.Equal(t, "2025-07-22", records[1].Date)
		assert.Equal(t, "2025-07-23", records[2].Date)

		require.Len(t, records[0].Fields, 2)
		assert.Equal(t, "KCCI_composite_index", records[0].Fields[0].Name)
		require.NotNil(t, records[0].Fields[0].Value)
		assert.Equal(t, 1234.5, *records[0].Fields[0].Value)
		assert.Nil(t, records[0].Fields[1].Value, "empty cell is null")

		assert.Nil(t, records[1].Fields[0].Value, "unparseable cell is null")
		require.NotNil(t, records[1].Fields[1].Value)
		assert.Equal(t, 970.25, *records[1].Fields[1].Value)

		require.NotNil(t, records[2].Fields[0].Value)
		assert.Equal(t, 1250.5, *records[2].Fields[0].Value, "thousands separator stripped")

		assert.Equal(t, 3, stats.RowsScanned)
		assert.Equal(t, 0, stats.RowsDropped)
		assert.Equal(t, 1, stats.CellsFailed, "only the non-empty bad cell counts")
	})

	t.Run("drops rows whose date does not parse", func(t *testing.T) {
		grid := Grid{
			{"KCCI"},
			{"Date", "종합지수", "미주서안"},
			{"2025-07-21", "100", "200"},
			{"", "101", "201"},
			{"not a date", "102", "202"},
		}

		records, stats, err := ExtractChartSeries(grid, testSectionSpec())
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "2025-07-21", records[0].Date)
		assert.Equal(t, 3, stats.RowsScanned)
		assert.Equal(t, 2, stats.RowsDropped)
	})

	t.Run("duplicate dates keep sheet order", func(t *testing.T) {
		grid := Grid{
			{"KCCI"},
			{"Date", "종합지수", "미주서안"},
			{"2025-07-21", "1", ""},
			{"2025-07-21", "2", ""},
		}

		records, _, err := ExtractChartSeries(grid, testSectionSpec())
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, 1.0, *records[0].Fields[0].Value)
		assert.Equal(t, 2.0, *records[1].Fields[0].Value)
	})

	t.Run("non-finite cells become null and the series still marshals", func(t *testing.T) {
		grid := Grid{
			{"KCCI"},
			{"Date", "종합지수", "미주서안"},
			{"2025-07-21", "NaN", "Infinity"},
		}

		records, stats, err := ExtractChartSeries(grid, testSectionSpec())
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Nil(t, records[0].Fields[0].Value)
		assert.Nil(t, records[0].Fields[1].Value)
		assert.Equal(t, 2, stats.CellsFailed)

		data, err := json.Marshal(records)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"KCCI_종합지수":null`)
	})

	t.Run("unknown headers are skipped", func(t *testing.T) {
		grid := Grid{
			{"KCCI"},
			{"Date", "종합지수", "something else"},
			{"2025-07-21", "100", "999"},
		}

		records, _, err := ExtractChartSeries(grid, testSectionSpec())
		require.NoError(t, err)
		require.Len(t, records[0].Fields, 1)
		assert.Equal(t, "KCCI_composite_index", records[0].Fields[0].Name)
	})

	t.Run("quoted headers resolve", func(t *testing.T) {
		grid := Grid{
			{"KCCI"},
			{"Date", `"종합지수"`, " 미주서안 "},
			{"2025-07-21", "100", "200"},
		}

		records, _, err := ExtractChartSeries(grid, testSectionSpec())
		require.NoError(t, err)
		require.Len(t, records[0].Fields, 2)
	})

	t.Run("header row outside grid", func(t *testing.T) {
		grid := Grid{{"KCCI"}}

		records, _, err := ExtractChartSeries(grid, testSectionSpec())
		require.ErrorIs(t, err, ErrHeaderRowMissing)
		assert.Nil(t, records)
	})

	t.Run("date column outside header row", func(t *testing.T) {
		spec := testSectionSpec()
		spec.DateCol = 10
		grid := Grid{
			{"KCCI"},
			{"Date", "종합지수"},
		}

		_, _, err := ExtractChartSeries(grid, spec)
		require.ErrorIs(t, err, ErrDateColumnMissing)
	})

	t.Run("no recognizable data columns", func(t *testing.T) {
		grid := Grid{
			{"KCCI"},
			{"Date", "colA", "colB"},
			{"2025-07-21", "1", "2"},
		}

		_, _, err := ExtractChartSeries(grid, testSectionSpec())
		require.ErrorIs(t, err, ErrNoDataColumns)
	})

	t.Run("empty series when no data rows", func(t *testing.T) {
		grid := Grid{
			{"KCCI"},
			{"Date", "종합지수", "미주서안"},
		}

		records, stats, err := ExtractChartSeries(grid, testSectionSpec())
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Equal(t, 0, stats.RowsScanned)
	})
}

func TestChartRecordMarshalJSON(t *testing.T) {
	v := 1234.5
	rec := ChartRecord{
		Date: "2025-07-21",
		Fields: []FieldValue{
			{Name: "KCCI_composite_index", Value: &v},
			{Name: "KCCI_us_west_coast", Value: nil},
		},
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t,
		`{"date":"2025-07-21","KCCI_composite_index":1234.5,"KCCI_us_west_coast":null}`,
		string(data), "date first, then fields in spec order, nulls preserved")
}

func TestExtractChartSeriesByHeader(t *testing.T) {
	t.Run("finds date column by header", func(t *testing.T) {
		grid := Grid{
			{"날짜", "USD", "EUR"},
			{"2025-07-22", "1,383.5", "1,501.2"},
			{"2025-07-21", "1382.1", "oops"},
		}

		records, stats, err := ExtractChartSeriesByHeader(grid, "날짜")
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "2025-07-21", records[0].Date)
		require.Len(t, records[0].Fields, 2)
		assert.Equal(t, "USD", records[0].Fields[0].Name)
		assert.Equal(t, 1382.1, *records[0].Fields[0].Value)
		assert.Nil(t, records[0].Fields[1].Value)

		assert.Equal(t, "2025-07-22", records[1].Date)
		assert.Equal(t, 1383.5, *records[1].Fields[0].Value)
		assert.Equal(t, 1, stats.CellsFailed)
	})

	t.Run("empty grid", func(t *testing.T) {
		_, _, err := ExtractChartSeriesByHeader(Grid{}, "날짜")
		require.ErrorIs(t, err, ErrHeaderRowMissing)
	})

	t.Run("date header absent", func(t *testing.T) {
		grid := Grid{{"USD", "EUR"}}
		_, _, err := ExtractChartSeriesByHeader(grid, "날짜")
		require.ErrorIs(t, err, ErrDateColumnMissing)
	})
}

func TestExtractLatestRates(t *testing.T) {
	t.Run("maps headers to first value row", func(t *testing.T) {
		grid := Grid{
			{"날짜", "USD", "EUR", ""},
			{"2025-07-22", "1,383.5", "junk"},
		}

		rates := ExtractLatestRates(grid)
		require.Len(t, rates, 3, "empty header column skipped")

		require.NotNil(t, rates["USD"])
		assert.Equal(t, 1383.5, *rates["USD"])
		assert.Nil(t, rates["EUR"], "unparseable value is null")
		assert.Nil(t, rates["날짜"], "date cell is not numeric")
	})

	t.Run("nil when no value row", func(t *testing.T) {
		assert.Nil(t, ExtractLatestRates(Grid{{"날짜", "USD"}}))
		assert.Nil(t, ExtractLatestRates(Grid{}))
	})
}
