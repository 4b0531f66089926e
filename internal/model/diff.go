package model

import "visage.dev/pkg/visage/pkg/face"

// Diff compares the expected data for a page with what was scraped.
type Diff struct {
	URL      string
	Expected face.Fields
	Actual   face.Fields
	Unified  string
}

// Changed reports whether expected and actual differ.
func (d Diff) Changed() bool {
	return d.Unified != ""
}
