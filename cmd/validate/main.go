// Command validate performs cross-format integrity checks over a fixture
// directory produced by genmock. It verifies that the TXT, CSV, and XML
// renditions of one incident decode to identical canonical record sets,
// re-runs the protective-action assessment and diffs it against the
// assessed JSON fixture, and checks every record against the canonical
// schema constraints.
//
// Usage:
//
//	go run ./cmd/validate -dir data/mock
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/rascal-ingest-service/internal/domain"
	"github.com/couchcryptid/rascal-ingest-service/internal/report"
	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
)

// fixtureTime must match the frozen clock genmock uses, so re-running the
// assessment reproduces the AssessedAt stamps in the fixture.
var fixtureTime = time.Date(2024, time.June, 12, 8, 30, 0, 0, time.UTC)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dir := flag.String("dir", "", "directory containing genmock fixture files")
	flag.Parse()

	if *dir == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*dir); code != 0 {
		os.Exit(code)
	}
}

func run(dir string) int {
	domain.SetClock(clockwork.NewFakeClockAt(fixtureTime))
	defer domain.SetClock(nil)

	fmt.Println("=== RASCAL Fixture Integrity Validation ===")
	fmt.Println()

	results, err := decodeAll(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	assessed, err := loadAssessed(filepath.Join(dir, "assessed.json"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load assessed JSON: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateFormatParity(results),
		validateAssessment(results[report.FormatTXT], assessed),
		validateSchema(assessed),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-40s %s\n", p.name, status)
	}

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// decodeAll parses the three fixture renditions of the incident.
func decodeAll(dir string) (map[report.Format]report.Result, error) {
	files := map[report.Format]string{
		report.FormatTXT: "incident.txt",
		report.FormatCSV: "incident.csv",
		report.FormatXML: "incident.xml",
	}

	results := make(map[report.Format]report.Result, len(files))
	for format, name := range files {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		res, err := report.Parse(format, data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		results[format] = res
	}
	return results, nil
}

func loadAssessed(path string) ([]domain.ZoneReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var zones []domain.ZoneReport
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

// Phase 1: the three renditions of one incident must decode to identical
// canonical record sets with no skips.

func validateFormatParity(results map[report.Format]report.Result) *phase {
	p := &phase{name: "Phase 1: Format Parity (TXT/CSV/XML)"}

	base := results[report.FormatTXT]
	for _, format := range []report.Format{report.FormatCSV, report.FormatXML} {
		res := results[format]
		if len(res.Skipped) > 0 {
			p.errorf("%s: %d unexpected skipped records", format, len(res.Skipped))
		}
		if diff := cmp.Diff(base.Zones, res.Zones); diff != "" {
			p.errorf("%s records differ from txt (-txt +%s):\n%s", format, format, diff)
		}
		if res.Incident != base.Incident {
			p.errorf("%s incident %q != txt incident %q", format, res.Incident, base.Incident)
		}
		if res.Timestamp != base.Timestamp {
			p.errorf("%s timestamp %q != txt timestamp %q", format, res.Timestamp, base.Timestamp)
		}
	}
	if len(base.Skipped) > 0 {
		p.errorf("txt: %d unexpected skipped records", len(base.Skipped))
	}
	return p
}

// Phase 2: re-running the decision engine over the decoded records must
// reproduce the assessed JSON fixture exactly.

func validateAssessment(decoded report.Result, assessed []domain.ZoneReport) *phase {
	p := &phase{name: "Phase 2: Assessment (decision engine)"}

	expected := domain.RecommendActions(decoded.Zones)
	if diff := cmp.Diff(expected, assessed); diff != "" {
		p.errorf("assessed fixture differs from re-run (-expected +fixture):\n%s", diff)
	}
	return p
}

// Phase 3: every assessed record must satisfy the canonical constraints.

var actionColors = map[domain.Action]domain.Color{
	domain.ActionEvacuate: domain.ColorRed,
	domain.ActionShelter:  domain.ColorOrange,
	domain.ActionMonitor:  domain.ColorYellow,
	domain.ActionNone:     domain.ColorGreen,
}

func validateSchema(assessed []domain.ZoneReport) *phase {
	p := &phase{name: "Phase 3: Schema (canonical constraints)"}

	seen := map[string]bool{}
	for i := range assessed {
		z := &assessed[i]
		pf := func(format string, args ...any) {
			p.errorf("record %d (%s): "+format, append([]any{i, z.Zone}, args...)...)
		}

		if z.Zone == "" {
			pf("zone name is empty")
		} else if seen[z.Zone] {
			pf("duplicate zone name")
		}
		seen[z.Zone] = true

		if z.DoseMSv < 0 {
			pf("negative dose %g", z.DoseMSv)
		}
		if z.RadiusKm <= 0 {
			pf("radius %g is not positive", z.RadiusKm)
		}
		if z.Latitude < -90 || z.Latitude > 90 {
			pf("latitude %g out of range", z.Latitude)
		}
		if z.Longitude < -180 || z.Longitude > 180 {
			pf("longitude %g out of range", z.Longitude)
		}
		if i > 0 {
			if z.Incident != assessed[0].Incident {
				pf("incident %q differs from first record's %q", z.Incident, assessed[0].Incident)
			}
			if z.Timestamp != assessed[0].Timestamp {
				pf("timestamp %q differs from first record's %q", z.Timestamp, assessed[0].Timestamp)
			}
		}

		wantColor, ok := actionColors[z.Action]
		if !ok {
			pf("action %q not in enum", z.Action)
		} else if z.Color != wantColor {
			pf("color %q does not match action %q (want %q)", z.Color, z.Action, wantColor)
		}
		if z.Action != domain.RecommendAction(z.DoseMSv) {
			pf("action %q inconsistent with dose %g mSv", z.Action, z.DoseMSv)
		}
		if z.AssessedAt.IsZero() {
			pf("assessed_at is zero")
		}
	}
	return p
}
