package report_test

import (
	"testing"

	"github.com/couchcryptid/rascal-ingest-service/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvReport = `Zone,Dose (mSv),Radionuclide,Radius (km),Latitude,Longitude,Incident,Timestamp
Zone A,12.5,I-131,5.0,-33.586,18.402,Koeberg Drill 12,2024-06-12 08:00:00
Zone B,3.0,Cs-137,8.5,-33.601,18.390,Koeberg Drill 12,2024-06-12 08:00:00
`

func TestParseCSV(t *testing.T) {
	t.Run("well-formed report", func(t *testing.T) {
		res, err := report.ParseCSV([]byte(csvReport))
		require.NoError(t, err)

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
	})

	t.Run("header whitespace is trimmed", func(t *testing.T) {
		in := "Zone , Dose (mSv) ,Radionuclide, Radius (km),Latitude,Longitude,Incident,Timestamp\n" +
			"Zone A,12.5,I-131,5.0,-33.586,18.402,X,T\n"
		res, err := report.ParseCSV([]byte(in))
		require.NoError(t, err)
		require.Len(t, res.Zones, 1)
		assert.Equal(t, 12.5, res.Zones[0].DoseMSv)
	})

	t.Run("missing column fails eagerly", func(t *testing.T) {
		in := "Zone,Dose (mSv),Radionuclide,Radius (km),Latitude,Longitude,Incident\n" +
			"Zone A,12.5,I-131,5.0,-33.586,18.402,X\n"
		_, err := report.ParseCSV([]byte(in))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `missing column "Timestamp"`)
	})

	t.Run("non-numeric row skipped with warning", func(t *testing.T) {
		in := csvReport + "Zone C,elevated,Sr-90,2.0,-33.59,18.41,Koeberg Drill 12,2024-06-12 08:00:00\n"
		res, err := report.ParseCSV([]byte(in))
		require.NoError(t, err)

		require.Len(t, res.Zones, 2)
		require.Len(t, res.Skipped, 1)
		assert.Contains(t, res.Skipped[0].Reason, `non-numeric dose "elevated"`)
	})

	t.Run("ragged row is a structural failure", func(t *testing.T) {
		in := csvReport + "Zone C,1.0\n"
		_, err := report.ParseCSV([]byte(in))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read csv")
	})

	t.Run("empty input is a structural failure", func(t *testing.T) {
		_, err := report.ParseCSV(nil)
		require.Error(t, err)
	})

	t.Run("header only yields empty record set", func(t *testing.T) {
		in := "Zone,Dose (mSv),Radionuclide,Radius (km),Latitude,Longitude,Incident,Timestamp\n"
		res, err := report.ParseCSV([]byte(in))
		require.NoError(t, err)
		assert.Empty(t, res.Zones)
		assert.Empty(t, res.Skipped)
	})
}
