package domain

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIncident(t *testing.T) {
	t.Run("field distributions and rounding", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(1, 1))
		zones := GenerateIncident(50, rng)
		require.Len(t, zones, 50)

		for i := range zones {
			z := &zones[i]
			assert.GreaterOrEqual(t, z.DoseMSv, 0.5)
			assert.LessOrEqual(t, z.DoseMSv, 25.0)
			assert.Equal(t, z.DoseMSv, roundTo(z.DoseMSv, 2), "dose not rounded to 2 decimals")

			assert.GreaterOrEqual(t, z.RadiusKm, 1.0)
			assert.LessOrEqual(t, z.RadiusKm, 20.0)
			assert.Equal(t, z.RadiusKm, roundTo(z.RadiusKm, 1), "radius not rounded to 1 decimal")

			assert.LessOrEqual(t, math.Abs(z.Latitude-koebergLat), 0.02+1e-9)
			assert.LessOrEqual(t, math.Abs(z.Longitude-koebergLon), 0.02+1e-9)
			assert.Equal(t, z.Latitude, roundTo(z.Latitude, 4))
			assert.Equal(t, z.Longitude, roundTo(z.Longitude, 4))

			assert.Contains(t, radionuclides, z.Radionuclide)
		}
	})

	t.Run("zones share incident and timestamp", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(2, 2))
		zones := GenerateIncident(5, rng)
		require.Len(t, zones, 5)

		for i := range zones {
			assert.Equal(t, zones[0].Incident, zones[i].Incident)
			assert.Equal(t, zones[0].Timestamp, zones[i].Timestamp)
		}
	})

	t.Run("sequential single-letter zone names", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(3, 3))
		zones := GenerateIncident(4, rng)

		require.Len(t, zones, 4)
		assert.Equal(t, "Zone A", zones[0].Zone)
		assert.Equal(t, "Zone B", zones[1].Zone)
		assert.Equal(t, "Zone C", zones[2].Zone)
		assert.Equal(t, "Zone D", zones[3].Zone)
	})

	t.Run("timestamp lags frozen clock by 1-60 minutes", func(t *testing.T) {
		frozen := time.Date(2024, 6, 12, 8, 30, 0, 0, time.UTC)
		SetClock(clockwork.NewFakeClockAt(frozen))
		defer SetClock(nil)

		rng := rand.New(rand.NewPCG(4, 4))
		zones := GenerateIncident(0, rng)
		require.Len(t, zones, DefaultZoneCount)

		ts, err := time.Parse(TimestampLayout, zones[0].Timestamp)
		require.NoError(t, err)
		lag := frozen.Sub(ts)
		assert.GreaterOrEqual(t, lag, time.Minute)
		assert.LessOrEqual(t, lag, 60*time.Minute)
	})

	t.Run("same seed reproduces the incident", func(t *testing.T) {
		frozen := time.Date(2024, 6, 12, 8, 30, 0, 0, time.UTC)
		SetClock(clockwork.NewFakeClockAt(frozen))
		defer SetClock(nil)

		a := GenerateIncident(3, rand.New(rand.NewPCG(42, 42)))
		b := GenerateIncident(3, rand.New(rand.NewPCG(42, 42)))
		assert.Equal(t, a, b)
	})

	t.Run("nil rng still generates", func(t *testing.T) {
		zones := GenerateIncident(2, nil)
		require.Len(t, zones, 2)
		assert.NotEmpty(t, zones[0].Incident)
	})

	t.Run("incident name has the expected shape", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(5, 5))
		zones := GenerateIncident(1, rng)
		require.Len(t, zones, 1)
		assert.Regexp(t, `^Random Incident \d{3}$`, zones[0].Incident)
	})
}
