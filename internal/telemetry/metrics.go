package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// FixturesMeterName is the instrumentation scope of the fixture metrics
const FixturesMeterName = "github.com/stacklok/model-registry-bff/fixtures"

// Fixture kinds reported by FixtureMetrics
const (
	KindRegisteredModel = "registered_model"
	KindModelVersion    = "model_version"
	KindModelArtifact   = "model_artifact"
)

// FixtureMetrics reports the size of the fixture set being served
type FixtureMetrics struct {
	entities metric.Int64Gauge
	reloads  metric.Int64Counter
}

// NewFixtureMetrics creates the fixture instruments. A nil provider yields
// nil metrics, whose methods do nothing.
func NewFixtureMetrics(provider metric.MeterProvider) (*FixtureMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(FixturesMeterName)

	entities, err := meter.Int64Gauge(
		"mrbff_fixture_entities",
		metric.WithDescription("Number of fixture entities served, by kind"),
		metric.WithUnit("{entity}"),
	)
	if err != nil {
		return nil, err
	}

	reloads, err := meter.Int64Counter(
		"mrbff_fixture_reloads_total",
		metric.WithDescription("Number of fixture reloads"),
		metric.WithUnit("{reload}"),
	)
	if err != nil {
		return nil, err
	}

	return &FixtureMetrics{entities: entities, reloads: reloads}, nil
}

// RecordEntities records the current number of entities of one kind
func (m *FixtureMetrics) RecordEntities(ctx context.Context, kind string, count int) {
	if m == nil {
		return
	}
	m.entities.Record(ctx, int64(count), metric.WithAttributes(attribute.String("kind", kind)))
}

// RecordReload counts a fixture reload
func (m *FixtureMetrics) RecordReload(ctx context.Context, success bool) {
	if m == nil {
		return
	}
	m.reloads.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", success)))
}
