package report

import (
	"fmt"
	"strings"
)

// txtFieldCount is the fixed column count of a TXT data line:
// Zone;Dose (mSv);Radionuclide;Radius (km);Latitude;Longitude.
const txtFieldCount = 6

// txtHeaderRow is the literal column-header line RASCAL TXT drops carry.
// It contains semicolons but is never a data line.
const txtHeaderRow = "Zone;"

// ParseTXT decodes a semicolon/colon-delimited RASCAL TXT report.
//
// Header lines are those containing a colon; the values after the literal
// "Incident:" and "Timestamp:" keys are taken trimmed, and a missing key
// leaves the empty string. Data lines are those containing a semicolon,
// excluding the column-header row. TXT input has no structural failure
// mode: a report with zero valid data lines yields an empty record set with
// the header values still attached.
func ParseTXT(data []byte) Result {
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")

	var incident, timestamp string
	for _, line := range lines {
		if !strings.Contains(line, ":") {
			continue
		}
		if i := strings.Index(line, "Incident:"); i >= 0 {
			incident = strings.TrimSpace(line[i+len("Incident:"):])
		} else if i := strings.Index(line, "Timestamp:"); i >= 0 {
			timestamp = strings.TrimSpace(line[i+len("Timestamp:"):])
		}
	}

	res := Result{Incident: incident, Timestamp: timestamp}
	for _, line := range lines {
		if !strings.Contains(line, ";") || strings.HasPrefix(line, txtHeaderRow) {
			continue
		}
		parts := strings.Split(line, ";")
		if len(parts) != txtFieldCount {
			res.Skipped = append(res.Skipped, Skip{
				Reason: fmt.Sprintf("expected %d fields, got %d", txtFieldCount, len(parts)),
				Source: line,
			})
			continue
		}
		raw := rawZone{
			zone:         parts[0],
			dose:         parts[1],
			radionuclide: parts[2],
			radius:       parts[3],
			latitude:     parts[4],
			longitude:    parts[5],
			source:       line,
		}
		zone, err := raw.coerce(incident, timestamp)
		if err != nil {
			res.Skipped = append(res.Skipped, Skip{Reason: err.Error(), Source: line})
			continue
		}
		res.Zones = append(res.Zones, zone)
	}
	return res
}
