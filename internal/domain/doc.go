// Package domain models RASCAL radiological-incident report data.
//
// # Data Source
//
// Reports are produced by the NRC RASCAL consequence-assessment code and
// dropped by the emergency control centre as plain-text, CSV, or XML files.
// The upstream collector publishes each dropped file as one Kafka message,
// tagging the encoding in a "format" header. All three encodings carry the
// same per-zone payload and normalize to [ZoneReport].
//
// # Report Conventions
//
// One report describes one incident: a set of monitored zones, each with a
// projected dose, the dominant radionuclide, and the affected-area geometry
// (radius plus a WGS-84 centre coordinate). Every zone in a report shares
// the incident name and timestamp from the report header.
//
// Dose is total effective dose in millisievert (mSv). Values are reported,
// not range-checked; RASCAL output is trusted on magnitude.
//
// Missing incident metadata defaults differ by encoding and are preserved
// as-is from the legacy ingest behavior: TXT reports default to the empty
// string, XML reports default to the literal "N/A".
//
// # Protective Action Ladder
//
// The recommended protective action is a pure function of dose, using the
// standard early-phase PAG simplification. Thresholds are inclusive lower
// bounds, first match wins:
//
//	dose >= 10.0 mSv  Evacuate             red
//	dose >=  5.0 mSv  Shelter-in-Place     orange
//	dose >=  1.0 mSv  Monitor & Advise     yellow
//	otherwise         No Immediate Action  green
//
// The display color is 1:1 with the action and is consumed by the GIS
// presentation layer downstream. See [RecommendActions].
//
// # Synthetic Incidents
//
// [GenerateIncident] fabricates a spatially clustered incident around the
// Koeberg reference site for demos and fixtures. The random source is
// injected so tests and the genmock tool can reproduce exact incidents.
package domain
