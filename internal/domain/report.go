package domain

import (
	"context"
	"time"
)

// ZoneReport is the canonical per-zone record all report formats normalize
// into. The Action/Color/AssessedAt fields are empty until RecommendActions
// runs; parsers never populate them.
type ZoneReport struct {
	Zone         string  `json:"zone"`
	DoseMSv      float64 `json:"dose_msv"`
	Radionuclide string  `json:"radionuclide"` // free-form label, e.g. "I-131"
	RadiusKm     float64 `json:"radius_km"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Incident     string  `json:"incident"`
	Timestamp    string  `json:"timestamp"`

	// Assessment enrichment fields.
	Action     Action    `json:"action,omitempty"`
	Color      Color     `json:"color,omitempty"`
	AssessedAt time.Time `json:"assessed_at,omitzero"`
}

// RawReport is one unprocessed report file read from the source topic.
type RawReport struct {
	Key       []byte
	Value     []byte // full report file content
	Format    string // encoding tag from the "format" message header
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Summary holds the scalar aggregates the presentation layer shows in its
// incident overview panel. Derivable from any record set; kept here so every
// caller aggregates the same way.
type Summary struct {
	Incident   string  `json:"incident"`
	Timestamp  string  `json:"timestamp"`
	Zones      int     `json:"zones"`
	MaxDoseMSv float64 `json:"max_dose_msv"`
}

// Summarize aggregates a record set into a Summary. An empty set yields a
// zero Summary.
func Summarize(zones []ZoneReport) Summary {
	if len(zones) == 0 {
		return Summary{}
	}
	s := Summary{
		Incident:  zones[0].Incident,
		Timestamp: zones[0].Timestamp,
		Zones:     len(zones),
	}
	for i := range zones {
		if zones[i].DoseMSv > s.MaxDoseMSv {
			s.MaxDoseMSv = zones[i].DoseMSv
		}
	}
	return s
}
