package model

import (
	"time"

	"github.com/google/uuid"

	"visage.dev/pkg/visage/pkg/face"
)

// Snapshot is the result of scraping one page.
type Snapshot struct {
	ID       uuid.UUID
	URL      string
	FaceFile Path
	Taken    time.Time
	Fields   face.Fields
	Err      string
}

// Failed reports whether the scrape ended with an error.
func (s Snapshot) Failed() bool {
	return s.Err != ""
}

// ShortID returns the first block of the snapshot id.
func (s Snapshot) ShortID() string {
	return s.ID.String()[:8]
}
