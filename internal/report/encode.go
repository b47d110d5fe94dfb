package report

import (
	"bytes"
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/couchcryptid/rascal-ingest-service/internal/domain"
)

// Encoders render a canonical record set back into each report format.
// They exist for the genmock fixture tool and for round-trip tests; the
// ingest pipeline itself only decodes.

// EncodeTXT renders the semicolon/colon-delimited TXT format.
func EncodeTXT(zones []domain.ZoneReport) []byte {
	var b strings.Builder
	if len(zones) > 0 {
		fmt.Fprintf(&b, "Incident: %s\n", zones[0].Incident)
		fmt.Fprintf(&b, "Timestamp: %s\n", zones[0].Timestamp)
	}
	b.WriteString("Zone;Dose (mSv);Radionuclide;Radius (km);Latitude;Longitude\n")
	for i := range zones {
		z := &zones[i]
		fmt.Fprintf(&b, "%s;%s;%s;%s;%s;%s\n",
			z.Zone,
			formatFloat(z.DoseMSv),
			z.Radionuclide,
			formatFloat(z.RadiusKm),
			formatFloat(z.Latitude),
			formatFloat(z.Longitude),
		)
	}
	return []byte(b.String())
}

// EncodeCSV renders the comma-separated format with the canonical header row.
func EncodeCSV(zones []domain.ZoneReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvColumns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for i := range zones {
		z := &zones[i]
		row := []string{
			z.Zone,
			formatFloat(z.DoseMSv),
			z.Radionuclide,
			formatFloat(z.RadiusKm),
			formatFloat(z.Latitude),
			formatFloat(z.Longitude),
			z.Incident,
			z.Timestamp,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

type xmlZone struct {
	XMLName      xml.Name `xml:"Zone"`
	Name         string   `xml:"name,attr"`
	DoseMSv      string   `xml:"dose_mSv,attr"`
	Radionuclide string   `xml:"radionuclide,attr"`
	RadiusKm     string   `xml:"radius_km,attr"`
	Latitude     string   `xml:"latitude,attr"`
	Longitude    string   `xml:"longitude,attr"`
}

type xmlIncident struct {
	XMLName   xml.Name `xml:"Incident"`
	Name      string   `xml:"name,attr"`
	Timestamp string   `xml:"timestamp,attr"`
	Zones     []xmlZone
}

type xmlReport struct {
	XMLName  xml.Name `xml:"RascalReport"`
	Incident xmlIncident
}

// EncodeXML renders the XML format, nesting the Zone elements under the
// Incident element (decoders accept zones at any depth).
func EncodeXML(zones []domain.ZoneReport) ([]byte, error) {
	doc := xmlReport{}
	if len(zones) > 0 {
		doc.Incident.Name = zones[0].Incident
		doc.Incident.Timestamp = zones[0].Timestamp
	}
	for i := range zones {
		z := &zones[i]
		doc.Incident.Zones = append(doc.Incident.Zones, xmlZone{
			Name:         z.Zone,
			DoseMSv:      formatFloat(z.DoseMSv),
			Radionuclide: z.Radionuclide,
			RadiusKm:     formatFloat(z.RadiusKm),
			Latitude:     formatFloat(z.Latitude),
			Longitude:    formatFloat(z.Longitude),
		})
	}
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal xml report: %w", err)
	}
	return append(out, '\n'), nil
}

// formatFloat prints the shortest representation that round-trips, so
// encoded fixtures stay stable under re-parse.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
