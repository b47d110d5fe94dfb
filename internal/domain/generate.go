package domain

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// DefaultZoneCount is the number of zones a synthetic incident gets when the
// caller does not ask for a specific count.
const DefaultZoneCount = 3

// TimestampLayout is the incident timestamp format RASCAL drops use.
const TimestampLayout = "2006-01-02 15:04:05"

// Koeberg nuclear power station, the reference site synthetic incidents
// cluster around.
const (
	koebergLat = -33.586
	koebergLon = 18.402
)

// Radionuclides that appear in synthetic zones.
var radionuclides = []string{"I-131", "Cs-137", "Sr-90", "Co-60", "Pu-239"}

// GenerateIncident produces a synthetic incident with numZones canonical
// records and no file input. Zones are named "Zone A", "Zone B", ... and
// share one incident name and one timestamp set 1-60 minutes in the past to
// simulate detection lag. Coordinates are the Koeberg base perturbed by up
// to ±0.02° per axis so the zones of one incident stay spatially clustered.
//
// The random source is injected so callers can seed it for reproducible
// incidents; a nil rng falls back to a nondeterministic source. numZones <= 0
// means DefaultZoneCount. Generated records always survive assessment: every
// field is well formed by construction.
func GenerateIncident(numZones int, rng *rand.Rand) []ZoneReport {
	if numZones <= 0 {
		numZones = DefaultZoneCount
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	incident := fmt.Sprintf("Random Incident %d", 100+rng.IntN(900))
	lag := time.Duration(1+rng.IntN(60)) * time.Minute
	timestamp := clock.Now().Add(-lag).Format(TimestampLayout)

	zones := make([]ZoneReport, 0, numZones)
	for i := 0; i < numZones; i++ {
		zones = append(zones, ZoneReport{
			Zone:         fmt.Sprintf("Zone %c", 'A'+rune(i)),
			DoseMSv:      roundTo(0.5+rng.Float64()*24.5, 2),
			Radionuclide: radionuclides[rng.IntN(len(radionuclides))],
			RadiusKm:     roundTo(1.0+rng.Float64()*19.0, 1),
			Latitude:     roundTo(koebergLat+offsetDeg(rng), 4),
			Longitude:    roundTo(koebergLon+offsetDeg(rng), 4),
			Incident:     incident,
			Timestamp:    timestamp,
		})
	}
	return zones
}

// offsetDeg draws a uniform coordinate perturbation in [-0.02, 0.02].
func offsetDeg(rng *rand.Rand) float64 {
	return rng.Float64()*0.04 - 0.02
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}
