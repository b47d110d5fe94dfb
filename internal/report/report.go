// Package report decodes RASCAL incident reports from their three textual
// encodings (TXT, CSV, XML) into the canonical domain record set.
//
// Each decoder is a one-shot, stateless transform: bytes in, Result out.
// Malformation is handled at two levels. A structurally unreadable input
// (broken XML syntax, unreadable CSV, missing CSV columns) fails the whole
// parse and the caller discards the report. A malformed individual zone
// (wrong field count, non-numeric value, missing attribute) is dropped and
// recorded in Result.Skipped while the rest of the report parses normally.
// All three decoders funnel through one coercion step so the skip surface
// is uniform across formats.
package report

import (
	"fmt"

	"github.com/couchcryptid/rascal-ingest-service/internal/domain"
)

// Format identifies a report encoding. It matches the file extension the
// control centre drops and the "format" Kafka message header.
type Format string

const (
	FormatTXT Format = "txt"
	FormatCSV Format = "csv"
	FormatXML Format = "xml"
)

// ParseFormat maps a format tag (case-sensitive, as published by the
// collector) to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTXT, FormatCSV, FormatXML:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported report format %q", s)
}

// Skip records one zone dropped during decoding.
type Skip struct {
	Reason string `json:"reason"`
	Source string `json:"source"` // offending line or element
}

// Result is a decoded report: the surviving canonical records in input
// order plus every dropped zone. Incident and Timestamp are carried even
// when Zones is empty so callers see the report header regardless.
type Result struct {
	Incident  string
	Timestamp string
	Zones     []domain.ZoneReport
	Skipped   []Skip
}

// Parse decodes data according to format.
func Parse(format Format, data []byte) (Result, error) {
	switch format {
	case FormatTXT:
		return ParseTXT(data), nil
	case FormatCSV:
		return ParseCSV(data)
	case FormatXML:
		return ParseXML(data)
	}
	return Result{}, fmt.Errorf("unsupported report format %q", format)
}
