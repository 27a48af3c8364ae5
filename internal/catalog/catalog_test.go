package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestChartSectionsLayout(t *testing.T) {
	names := make(map[string]bool, len(ChartSections))
	for _, s := range ChartSections {
		assert.False(t, names[s.Name], "duplicate section %s", s.Name)
		names[s.Name] = true

		assert.Less(t, s.DateCol, s.DataStartCol,
			"section %s: date column sits left of its data range", s.Name)
	}

	for _, want := range []string{"KCCI", "SCFI", "WCI", "IACI", "BLANK_SAILING", "FBX", "XSI", "MBCI"} {
		assert.True(t, names[want], "missing section %s", want)
	}
}

func TestChartSectionsDoNotOverlap(t *testing.T) {
	// Sections sit side by side in the worksheet; each one's column span
	// (date column through last data column) must not intersect another's.
	type span struct {
		name     string
		from, to int
	}
	spans := make([]span, 0, len(ChartSections))
	for _, s := range ChartSections {
		spans = append(spans, span{name: s.Name, from: s.DateCol, to: s.DataEndCol})
	}

	for i := range spans {
		for j := i + 1; j < len(spans); j++ {
			a, b := spans[i], spans[j]
			overlap := a.from <= b.to && b.from <= a.to
			assert.False(t, overlap, "%s [%d..%d] overlaps %s [%d..%d]",
				a.name, a.from, a.to, b.name, b.from, b.to)
		}
	}
}

func TestSummaryTablesLayout(t *testing.T) {
	names := make(map[string]bool, len(SummaryTables))
	for _, s := range SummaryTables {
		assert.False(t, names[s.Name], "duplicate table %s", s.Name)
		names[s.Name] = true

		assert.Equal(t, 1, s.CurrentOffset, "table %s", s.Name)
		assert.Equal(t, 2, s.PreviousOffset, "table %s", s.Name)
	}

	for _, want := range []string{"KCCI", "SCFI", "WCI", "IACI", "BLANK_SAILING", "FBX", "XSI", "MBCI"} {
		assert.True(t, names[want], "missing table %s", want)
	}
}
