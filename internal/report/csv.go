package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// Canonical CSV column names. Incident and Timestamp are carried per row in
// CSV drops; all rows of one report hold the same values.
var csvColumns = []string{
	"Zone",
	"Dose (mSv)",
	"Radionuclide",
	"Radius (km)",
	"Latitude",
	"Longitude",
	"Incident",
	"Timestamp",
}

// ParseCSV decodes a comma-separated RASCAL report whose header row names
// the canonical columns. Header cells are trimmed of surrounding whitespace
// before matching. Column presence is validated eagerly: a missing canonical
// column is a parse-level failure, not a deferred point-of-use surprise.
// Rows whose numeric fields fail coercion are skipped with a warning, the
// same surface the TXT and XML decoders report.
func ParseCSV(data []byte) (Result, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return Result{}, fmt.Errorf("read csv: empty input")
	}

	colIdx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		colIdx[strings.TrimSpace(h)] = i
	}
	for _, col := range csvColumns {
		if _, ok := colIdx[col]; !ok {
			return Result{}, fmt.Errorf("read csv: missing column %q", col)
		}
	}

	var res Result
	if len(rows) > 1 {
		res.Incident = rows[1][colIdx["Incident"]]
		res.Timestamp = rows[1][colIdx["Timestamp"]]
	}
	for _, row := range rows[1:] {
		cell := func(col string) string { return row[colIdx[col]] }

		raw := rawZone{
			zone:         cell("Zone"),
			dose:         cell("Dose (mSv)"),
			radionuclide: cell("Radionuclide"),
			radius:       cell("Radius (km)"),
			latitude:     cell("Latitude"),
			longitude:    cell("Longitude"),
			source:       strings.Join(row, ","),
		}
		zone, err := raw.coerce(cell("Incident"), cell("Timestamp"))
		if err != nil {
			res.Skipped = append(res.Skipped, Skip{Reason: err.Error(), Source: raw.source})
			continue
		}
		res.Zones = append(res.Zones, zone)
	}
	return res, nil
}
