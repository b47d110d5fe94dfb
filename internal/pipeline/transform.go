package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/rascal-ingest-service/internal/domain"
	"github.com/couchcryptid/rascal-ingest-service/internal/observability"
	"github.com/couchcryptid/rascal-ingest-service/internal/report"
)

// ReportTransformer implements Transformer: it decodes a raw report file
// according to its format header and runs the protective-action assessment
// over the surviving records.
type ReportTransformer struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewTransformer creates a ReportTransformer.
func NewTransformer(logger *slog.Logger, metrics *observability.Metrics) *ReportTransformer {
	return &ReportTransformer{logger: logger, metrics: metrics}
}

// Transform decodes and assesses one report. Per-zone malformations are
// logged and counted but never fail the report; a structural parse failure
// (or a missing/unknown format header) returns an error and the caller
// discards the message.
func (t *ReportTransformer) Transform(_ context.Context, raw domain.RawReport) ([]domain.ZoneReport, error) {
	format, err := report.ParseFormat(raw.Format)
	if err != nil {
		return nil, fmt.Errorf("report format header: %w", err)
	}

	res, err := report.Parse(format, raw.Value)
	if err != nil {
		return nil, err
	}

	for _, s := range res.Skipped {
		t.logger.Warn("skipping malformed zone record",
			"reason", s.Reason,
			"source", s.Source,
			"format", format,
			"incident", res.Incident,
		)
		t.metrics.ZonesSkipped.Inc()
	}

	assessed := domain.RecommendActions(res.Zones)
	for i := range assessed {
		t.metrics.ActionsRecommended.WithLabelValues(string(assessed[i].Action)).Inc()
		t.metrics.ZoneDoseMSv.Observe(assessed[i].DoseMSv)
	}
	return assessed, nil
}
