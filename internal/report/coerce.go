package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/couchcryptid/rascal-ingest-service/internal/domain"
)

// rawZone holds the six per-zone fields as decoded text, before numeric
// coercion. Every format-specific decoder produces rawZones so all three
// formats share one validation path.
type rawZone struct {
	zone         string
	dose         string
	radionuclide string
	radius       string
	latitude     string
	longitude    string
	source       string // original line or element, for skip reporting
}

// coerce validates the numeric fields and builds the canonical record.
// The returned error names the first field that failed so skip reasons stay
// actionable.
func (r rawZone) coerce(incident, timestamp string) (domain.ZoneReport, error) {
	dose, err := parseField("dose", r.dose)
	if err != nil {
		return domain.ZoneReport{}, err
	}
	radius, err := parseField("radius", r.radius)
	if err != nil {
		return domain.ZoneReport{}, err
	}
	lat, err := parseField("latitude", r.latitude)
	if err != nil {
		return domain.ZoneReport{}, err
	}
	lon, err := parseField("longitude", r.longitude)
	if err != nil {
		return domain.ZoneReport{}, err
	}

	return domain.ZoneReport{
		Zone:         strings.TrimSpace(r.zone),
		DoseMSv:      dose,
		Radionuclide: strings.TrimSpace(r.radionuclide),
		RadiusKm:     radius,
		Latitude:     lat,
		Longitude:    lon,
		Incident:     incident,
		Timestamp:    timestamp,
	}, nil
}

func parseField(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("non-numeric %s %q", name, strings.TrimSpace(value))
	}
	return v, nil
}
