// Command genmock renders one synthetic incident into all three report
// formats plus the expected assessed-zone JSON. It uses the actual domain
// generator and decision engine under a seeded random source and a frozen
// clock, so fixtures are reproducible and match real pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock -out data/mock -zones 3 -seed 42
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/rascal-ingest-service/internal/domain"
	"github.com/couchcryptid/rascal-ingest-service/internal/report"
	"github.com/jonboulle/clockwork"
)

// fixtureTime anchors generated timestamps and AssessedAt stamps.
var fixtureTime = time.Date(2024, time.June, 12, 8, 30, 0, 0, time.UTC)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outDir := flag.String("out", "", "output directory for fixture files")
	zoneCount := flag.Int("zones", domain.DefaultZoneCount, "number of zones to generate")
	seed := flag.Uint64("seed", 42, "random seed")
	flag.Parse()

	if *outDir == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	domain.SetClock(clockwork.NewFakeClockAt(fixtureTime))
	defer domain.SetClock(nil)

	rng := rand.New(rand.NewPCG(*seed, *seed))
	zones := domain.GenerateIncident(*zoneCount, rng)
	assessed := domain.RecommendActions(zones)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	txt := report.EncodeTXT(zones)
	if err := writeFile(*outDir, "incident.txt", txt); err != nil {
		return err
	}

	csvData, err := report.EncodeCSV(zones)
	if err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	if err := writeFile(*outDir, "incident.csv", csvData); err != nil {
		return err
	}

	xmlData, err := report.EncodeXML(zones)
	if err != nil {
		return fmt.Errorf("encode xml: %w", err)
	}
	if err := writeFile(*outDir, "incident.xml", xmlData); err != nil {
		return err
	}

	assessedJSON, err := json.MarshalIndent(assessed, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal assessed zones: %w", err)
	}
	if err := writeFile(*outDir, "assessed.json", append(assessedJSON, '\n')); err != nil {
		return err
	}

	summary := domain.Summarize(zones)
	log.Printf("incident %q: %d zones, max dose %.2f mSv", summary.Incident, summary.Zones, summary.MaxDoseMSv)
	for i := range assessed {
		log.Printf("  %s: %.2f mSv -> %s (%s)", assessed[i].Zone, assessed[i].DoseMSv, assessed[i].Action, assessed[i].Color)
	}
	return nil
}

func writeFile(dir, name string, data []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Printf("wrote %s", path)
	return nil
}
