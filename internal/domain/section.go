package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// HeaderMapping pairs a raw sheet header with the canonical JSON field name it
// is published under.
type HeaderMapping struct {
	Raw       string
	Canonical string
}

// SectionSpec is the static descriptor of one chart section: where its
// columns sit in the worksheet and how its raw headers map to canonical
// field names. The first mapping is always the date field.
type SectionSpec struct {
	Name         string
	HeaderRow    int // 0-based row holding the raw headers
	DateCol      int // 0-based column of the date cell
	DataStartCol int // inclusive
	DataEndCol   int // inclusive
	Headers      []HeaderMapping
}

// Validate checks the structural invariants a spec must satisfy before it can
// drive an extraction: a non-inverted column range and unique canonical
// field names with the date field first.
func (s SectionSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("section spec has no name")
	}
	if s.DataStartCol > s.DataEndCol {
		return fmt.Errorf("section %s: data column range %d..%d is inverted", s.Name, s.DataStartCol, s.DataEndCol)
	}
	if len(s.Headers) < 2 {
		return fmt.Errorf("section %s: needs a date mapping and at least one data mapping", s.Name)
	}
	seen := make(map[string]bool, len(s.Headers))
	for _, h := range s.Headers {
		if h.Canonical == "" {
			return fmt.Errorf("section %s: header %q has no canonical name", s.Name, h.Raw)
		}
		if seen[h.Canonical] {
			return fmt.Errorf("section %s: duplicate canonical field %q", s.Name, h.Canonical)
		}
		seen[h.Canonical] = true
	}
	return nil
}

// DateField returns the canonical name of the section's date field.
func (s SectionSpec) DateField() string {
	return s.Headers[0].Canonical
}

// canonicalFor resolves a raw header to its canonical name.
func (s SectionSpec) canonicalFor(raw string) (string, bool) {
	for _, h := range s.Headers {
		if h.Raw == raw {
			return h.Canonical, true
		}
	}
	return "", false
}

// FieldValue is one named numeric reading in a chart record. A nil value
// serializes as JSON null.
type FieldValue struct {
	Name  string
	Value *float64
}

// ChartRecord is one chronological observation of a section: an ISO date plus
// the section's data fields in spec order. Records are write-once; they are
// built by extraction and then serialized.
type ChartRecord struct {
	Date   string
	Fields []FieldValue
}

// MarshalJSON emits the record as a flat object with "date" first and the
// data fields in spec order, which encoding/json cannot do with a map.
func (r ChartRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"date":`)
	d, err := json.Marshal(r.Date)
	if err != nil {
		return nil, err
	}
	buf.Write(d)
	for _, f := range r.Fields {
		buf.WriteByte(',')
		k, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		if f.Value == nil {
			buf.WriteString("null")
			continue
		}
		v, err := json.Marshal(*f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RouteColumn names one route of a summary table and the worksheet column its
// readings occupy. The same column serves the current and previous rows:
// misaligned current/previous ranges cannot be expressed.
type RouteColumn struct {
	Route string
	Col   int
}

// TableSpec describes how to locate and read one summary table embedded in a
// larger sheet: the marker text that anchors it, row offsets from the anchor
// to the current and previous reading rows, the label column carrying the
// reading dates, and the ordered route columns.
type TableSpec struct {
	Name           string
	AnchorText     string
	AnchorCol      int
	CurrentOffset  int // rows below the anchor
	PreviousOffset int
	LabelCol       int
	Routes         []RouteColumn
}

// Validate checks a table spec's structural invariants.
func (s TableSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("table spec has no name")
	}
	if s.AnchorText == "" {
		return fmt.Errorf("table %s: anchor text is empty", s.Name)
	}
	if s.CurrentOffset == s.PreviousOffset {
		return fmt.Errorf("table %s: current and previous rows coincide", s.Name)
	}
	if len(s.Routes) == 0 {
		return fmt.Errorf("table %s: no route columns", s.Name)
	}
	seen := make(map[string]bool, len(s.Routes))
	for _, rc := range s.Routes {
		if rc.Route == "" {
			return fmt.Errorf("table %s: route with empty name at column %d", s.Name, rc.Col)
		}
		if seen[rc.Route] {
			return fmt.Errorf("table %s: duplicate route %q", s.Name, rc.Route)
		}
		seen[rc.Route] = true
	}
	return nil
}

// ChangeClass labels the direction of a week-over-week change.
type ChangeClass string

const (
	ChangeIncrease ChangeClass = "increase"
	ChangeDecrease ChangeClass = "decrease"
	ChangeNeutral  ChangeClass = "neutral"
)

// WeeklyChange is the computed delta between the current and previous
// readings of one route. Value is present iff both readings parse as numbers;
// Percentage is "N/A" iff the previous reading is exactly zero.
type WeeklyChange struct {
	Value      *json.Number `json:"value"`
	Percentage *string      `json:"percentage"`
	ColorClass ChangeClass  `json:"color_class"`
}

// TableRow is one route's row in a summary table. Index cells keep the raw
// sheet text; empty cells become null.
type TableRow struct {
	Route         string       `json:"route"`
	CurrentIndex  *string      `json:"current_index"`
	PreviousIndex *string      `json:"previous_index"`
	WeeklyChange  WeeklyChange `json:"weekly_change"`
}

// SummaryTable is a located and extracted summary block: display headers
// annotated with the reading dates, plus one row per route.
type SummaryTable struct {
	Headers []string   `json:"headers"`
	Rows    []TableRow `json:"rows"`
}
