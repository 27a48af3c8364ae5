package domain

import "time"

// Dataset is one assembled dashboard document, ready to be written to the
// output directory and optionally republished downstream.
type Dataset struct {
	Name        string // stable dataset identifier, e.g. "chart_data"
	File        string // output file name, e.g. "crawling_data.json"
	Payload     any
	GeneratedAt time.Time
}
