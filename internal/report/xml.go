package report

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// xmlDefault is the placeholder used when an XML report has no Incident
// element. This is deliberately the literal "N/A", not the empty string the
// TXT decoder defaults to; the legacy ingest behaved this way and downstream
// displays rely on each.
const xmlDefault = "N/A"

// Attributes every Zone element must carry.
var xmlZoneAttrs = []string{"name", "dose_mSv", "radionuclide", "radius_km", "latitude", "longitude"}

// ParseXML decodes an XML RASCAL report. The root holds one Incident
// element (attributes name, timestamp) and any number of Zone elements at
// any depth, each with the six per-zone attributes. A Zone missing an
// attribute or failing numeric coercion is skipped with a warning; broken
// XML syntax fails the whole parse.
func ParseXML(data []byte) (Result, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	incident, timestamp := xmlDefault, xmlDefault
	incidentSeen := false

	type pending struct {
		raw  rawZone
		skip *Skip // set when the element already failed the attribute check
	}
	var found []pending

	depth := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("parse xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			attrs := make(map[string]string, len(t.Attr))
			for _, a := range t.Attr {
				attrs[a.Name.Local] = a.Value
			}

			// Incident metadata comes from the first Incident element
			// directly under the root.
			if t.Name.Local == "Incident" && depth == 2 && !incidentSeen {
				incidentSeen = true
				if v, ok := attrs["name"]; ok {
					incident = v
				}
				if v, ok := attrs["timestamp"]; ok {
					timestamp = v
				}
			}

			if t.Name.Local == "Zone" && depth >= 2 {
				p := pending{}
				source := fmt.Sprintf("<Zone name=%q>", attrs["name"])
				if missing := firstMissingAttr(attrs); missing != "" {
					p.skip = &Skip{
						Reason: fmt.Sprintf("missing attribute %q", missing),
						Source: source,
					}
				} else {
					p.raw = rawZone{
						zone:         attrs["name"],
						dose:         attrs["dose_mSv"],
						radionuclide: attrs["radionuclide"],
						radius:       attrs["radius_km"],
						latitude:     attrs["latitude"],
						longitude:    attrs["longitude"],
						source:       source,
					}
				}
				found = append(found, p)
			}
		case xml.EndElement:
			depth--
		}
	}

	// Incident metadata may follow the zones in document order, so records
	// are materialized only after the full document has been walked.
	res := Result{Incident: incident, Timestamp: timestamp}
	for _, p := range found {
		if p.skip != nil {
			res.Skipped = append(res.Skipped, *p.skip)
			continue
		}
		zone, err := p.raw.coerce(incident, timestamp)
		if err != nil {
			res.Skipped = append(res.Skipped, Skip{Reason: err.Error(), Source: p.raw.source})
			continue
		}
		res.Zones = append(res.Zones, zone)
	}
	return res, nil
}

// firstMissingAttr returns the name of the first required Zone attribute not
// present, or "" when all six are there.
func firstMissingAttr(attrs map[string]string) string {
	for _, req := range xmlZoneAttrs {
		if _, ok := attrs[req]; !ok {
			return req
		}
	}
	return ""
}
