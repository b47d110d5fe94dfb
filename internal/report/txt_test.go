package report_test

import (
	"testing"

	"github.com/couchcryptid/rascal-ingest-service/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const txtReport = `Incident: Koeberg Drill 12
Timestamp: 2024-06-12 08:00:00
Zone;Dose (mSv);Radionuclide;Radius (km);Latitude;Longitude
Zone A;12.5;I-131;5.0;-33.586;18.402
Zone B;3.0;Cs-137;8.5;-33.601;18.390
`

func TestParseTXT(t *testing.T) {
	t.Run("well-formed report", func(t *testing.T) {
		res := report.ParseTXT([]byte(txtReport))

		assert.Equal(t, "Koeberg Drill 12", res.Incident)
		assert.Equal(t, "2024-06-12 08:00:00", res.Timestamp)
		assert.Empty(t, res.Skipped)
		require.Len(t, res.Zones, 2)

		a := res.Zones[0]
		assert.Equal(t, "Zone A", a.Zone)
		assert.Equal(t, 12.5, a.DoseMSv)
		assert.Equal(t, "I-131", a.Radionuclide)
		assert.Equal(t, 5.0, a.RadiusKm)
		assert.Equal(t, -33.586, a.Latitude)
		assert.Equal(t, 18.402, a.Longitude)
		assert.Equal(t, "Koeberg Drill 12", a.Incident)
		assert.Equal(t, "2024-06-12 08:00:00", a.Timestamp)

		b := res.Zones[1]
		assert.Equal(t, "Zone B", b.Zone)
		assert.Equal(t, 3.0, b.DoseMSv)
	})

	t.Run("input order is preserved", func(t *testing.T) {
		res := report.ParseTXT([]byte(txtReport))
		require.Len(t, res.Zones, 2)
		assert.Equal(t, "Zone A", res.Zones[0].Zone)
		assert.Equal(t, "Zone B", res.Zones[1].Zone)
	})

	t.Run("column-header row is not a data line", func(t *testing.T) {
		res := report.ParseTXT([]byte(txtReport))
		for _, z := range res.Zones {
			assert.NotEqual(t, "Zone", z.Zone)
		}
		assert.Empty(t, res.Skipped)
	})

	t.Run("line with five fields skipped with warning", func(t *testing.T) {
		in := "Incident: X\nTimestamp: T\nZone A;12.5;I-131;5.0;-33.586\n"
		res := report.ParseTXT([]byte(in))

		assert.Empty(t, res.Zones)
		require.Len(t, res.Skipped, 1)
		assert.Contains(t, res.Skipped[0].Reason, "expected 6 fields, got 5")
	})

	t.Run("line with seven fields skipped with warning", func(t *testing.T) {
		in := "Zone A;12.5;I-131;5.0;-33.586;18.402;extra\n"
		res := report.ParseTXT([]byte(in))

		assert.Empty(t, res.Zones)
		require.Len(t, res.Skipped, 1)
		assert.Contains(t, res.Skipped[0].Reason, "expected 6 fields, got 7")
	})

	t.Run("non-numeric dose skipped with warning", func(t *testing.T) {
		in := "Zone A;high;I-131;5.0;-33.586;18.402\n"
		res := report.ParseTXT([]byte(in))

		assert.Empty(t, res.Zones)
		require.Len(t, res.Skipped, 1)
		assert.Contains(t, res.Skipped[0].Reason, `non-numeric dose "high"`)
	})

	t.Run("bad line does not poison the rest", func(t *testing.T) {
		in := txtReport + "Zone C;oops;Sr-90;2.0;-33.59;18.41\nZone D;1.1;Sr-90;2.0;-33.59;18.41\n"
		res := report.ParseTXT([]byte(in))

		require.Len(t, res.Zones, 3)
		assert.Equal(t, "Zone D", res.Zones[2].Zone)
		require.Len(t, res.Skipped, 1)
	})

	t.Run("missing header keys default to empty strings", func(t *testing.T) {
		in := "Zone A;12.5;I-131;5.0;-33.586;18.402\n"
		res := report.ParseTXT([]byte(in))

		assert.Equal(t, "", res.Incident)
		assert.Equal(t, "", res.Timestamp)
		require.Len(t, res.Zones, 1)
		assert.Equal(t, "", res.Zones[0].Incident)
		assert.Equal(t, "", res.Zones[0].Timestamp)
	})

	t.Run("zero valid data lines still carries header values", func(t *testing.T) {
		in := "Incident: Empty Drill\nTimestamp: 2024-06-12 09:00:00\nZone;Dose (mSv);Radionuclide;Radius (km);Latitude;Longitude\n"
		res := report.ParseTXT([]byte(in))

		assert.Empty(t, res.Zones)
		assert.Empty(t, res.Skipped)
		assert.Equal(t, "Empty Drill", res.Incident)
		assert.Equal(t, "2024-06-12 09:00:00", res.Timestamp)
	})

	t.Run("empty input", func(t *testing.T) {
		res := report.ParseTXT(nil)
		assert.Empty(t, res.Zones)
		assert.Empty(t, res.Skipped)
		assert.Equal(t, "", res.Incident)
	})
}
