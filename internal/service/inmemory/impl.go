// Package inmemory provides a ModelRegistryService backed by a fixture set
package inmemory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/stacklok/model-registry-bff/internal/mocks"
	"github.com/stacklok/model-registry-bff/internal/models"
	"github.com/stacklok/model-registry-bff/internal/service"
	"github.com/stacklok/model-registry-bff/internal/telemetry"
)

// ServiceTracerName is the instrumentation scope of the service spans
const ServiceTracerName = "github.com/stacklok/model-registry-bff/service/inmemory"

// Option configures the in-memory service
type Option func(*Service)

// WithTracerProvider traces every service operation
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		if tp != nil {
			s.tracer = tp.Tracer(ServiceTracerName)
		}
	}
}

// WithFixtureMetrics reports the size of the served fixture set
func WithFixtureMetrics(m *telemetry.FixtureMetrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// Service implements ModelRegistryService. Every registry serves the same
// fixture set, which can be swapped while the server runs.
type Service struct {
	registries []models.ModelRegistry
	tracer     trace.Tracer
	metrics    *telemetry.FixtureMetrics

	mu       sync.RWMutex
	fixtures *mocks.FixtureSet
}

var _ service.ModelRegistryService = (*Service)(nil)

// New creates a fixture backed service. At least one registry is required.
func New(registries []models.ModelRegistry, fixtures *mocks.FixtureSet, opts ...Option) (*Service, error) {
	if len(registries) == 0 {
		return nil, fmt.Errorf("at least one model registry is required")
	}
	if fixtures == nil {
		return nil, fmt.Errorf("fixture set is required")
	}

	s := &Service{
		registries: registries,
		tracer:     noop.NewTracerProvider().Tracer(ServiceTracerName),
		fixtures:   fixtures,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.recordFixtures(context.Background(), fixtures)

	slog.Debug("Created in-memory model registry service",
		"registries", len(registries),
		"registered_models", len(fixtures.RegisteredModels),
		"model_versions", len(fixtures.ModelVersions),
		"model_artifacts", len(fixtures.ModelArtifacts))

	return s, nil
}

// SetFixtures replaces the served fixture set. Requests in flight keep the
// set they started with.
func (s *Service) SetFixtures(ctx context.Context, fixtures *mocks.FixtureSet) error {
	if fixtures == nil {
		s.metrics.RecordReload(ctx, false)
		return fmt.Errorf("fixture set is required")
	}

	s.mu.Lock()
	s.fixtures = fixtures
	s.mu.Unlock()

	s.metrics.RecordReload(ctx, true)
	s.recordFixtures(ctx, fixtures)
	slog.InfoContext(ctx, "Fixture set replaced",
		"registered_models", len(fixtures.RegisteredModels),
		"model_versions", len(fixtures.ModelVersions),
		"model_artifacts", len(fixtures.ModelArtifacts))
	return nil
}

func (s *Service) recordFixtures(ctx context.Context, fixtures *mocks.FixtureSet) {
	s.metrics.RecordEntities(ctx, telemetry.KindRegisteredModel, len(fixtures.RegisteredModels))
	s.metrics.RecordEntities(ctx, telemetry.KindModelVersion, len(fixtures.ModelVersions))
	s.metrics.RecordEntities(ctx, telemetry.KindModelArtifact, len(fixtures.ModelArtifacts))
}

func (s *Service) current() *mocks.FixtureSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fixtures
}

// CheckReadiness implements ModelRegistryService.CheckReadiness
func (*Service) CheckReadiness(_ context.Context) error {
	return nil
}

// ListModelRegistries implements ModelRegistryService.ListModelRegistries
func (s *Service) ListModelRegistries(ctx context.Context) ([]models.ModelRegistry, error) {
	_, span := telemetry.StartSpan(ctx, s.tracer, "Service.ListModelRegistries")
	defer span.End()

	out := make([]models.ModelRegistry, len(s.registries))
	copy(out, s.registries)
	span.SetAttributes(telemetry.AttrResultCount.Int(len(out)))
	return out, nil
}

// ListRegisteredModels implements ModelRegistryService.ListRegisteredModels
func (s *Service) ListRegisteredModels(ctx context.Context, registryName string) ([]models.RegisteredModel, error) {
	_, span := telemetry.StartSpan(ctx, s.tracer, "Service.ListRegisteredModels",
		trace.WithAttributes(telemetry.AttrRegistryName.String(registryName)))
	defer span.End()

	if err := s.checkRegistry(registryName); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	fixtures := s.current()
	out := make([]models.RegisteredModel, len(fixtures.RegisteredModels))
	for i, m := range fixtures.RegisteredModels {
		out[i] = m.Clone()
	}
	span.SetAttributes(telemetry.AttrResultCount.Int(len(out)))
	return out, nil
}

// GetRegisteredModel implements ModelRegistryService.GetRegisteredModel
func (s *Service) GetRegisteredModel(ctx context.Context, registryName, id string) (*models.RegisteredModel, error) {
	_, span := telemetry.StartSpan(ctx, s.tracer, "Service.GetRegisteredModel",
		trace.WithAttributes(lookupAttrs(registryName, id)...))
	defer span.End()

	if err := s.checkRegistry(registryName); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	model, ok := s.current().RegisteredModel(id)
	if !ok {
		err := fmt.Errorf("%w: %s", service.ErrRegisteredModelNotFound, id)
		telemetry.RecordError(span, err)
		return nil, err
	}
	return &model, nil
}

// ListModelVersions implements ModelRegistryService.ListModelVersions
func (s *Service) ListModelVersions(
	ctx context.Context, registryName, registeredModelID string,
) ([]models.ModelVersion, error) {
	_, span := telemetry.StartSpan(ctx, s.tracer, "Service.ListModelVersions",
		trace.WithAttributes(lookupAttrs(registryName, registeredModelID)...))
	defer span.End()

	if err := s.checkRegistry(registryName); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	fixtures := s.current()
	if _, ok := fixtures.RegisteredModel(registeredModelID); !ok {
		err := fmt.Errorf("%w: %s", service.ErrRegisteredModelNotFound, registeredModelID)
		telemetry.RecordError(span, err)
		return nil, err
	}
	versions := fixtures.VersionsOf(registeredModelID)
	span.SetAttributes(telemetry.AttrResultCount.Int(len(versions)))
	return versions, nil
}

// GetModelVersion implements ModelRegistryService.GetModelVersion
func (s *Service) GetModelVersion(ctx context.Context, registryName, id string) (*models.ModelVersion, error) {
	_, span := telemetry.StartSpan(ctx, s.tracer, "Service.GetModelVersion",
		trace.WithAttributes(lookupAttrs(registryName, id)...))
	defer span.End()

	if err := s.checkRegistry(registryName); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	version, ok := s.current().ModelVersion(id)
	if !ok {
		err := fmt.Errorf("%w: %s", service.ErrModelVersionNotFound, id)
		telemetry.RecordError(span, err)
		return nil, err
	}
	return &version, nil
}

// ListModelArtifacts implements ModelRegistryService.ListModelArtifacts
func (s *Service) ListModelArtifacts(
	ctx context.Context, registryName, modelVersionID string,
) ([]models.ModelArtifact, error) {
	_, span := telemetry.StartSpan(ctx, s.tracer, "Service.ListModelArtifacts",
		trace.WithAttributes(lookupAttrs(registryName, modelVersionID)...))
	defer span.End()

	if err := s.checkRegistry(registryName); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	fixtures := s.current()
	if _, ok := fixtures.ModelVersion(modelVersionID); !ok {
		err := fmt.Errorf("%w: %s", service.ErrModelVersionNotFound, modelVersionID)
		telemetry.RecordError(span, err)
		return nil, err
	}
	artifacts := fixtures.ArtifactsOf(modelVersionID)
	span.SetAttributes(telemetry.AttrResultCount.Int(len(artifacts)))
	return artifacts, nil
}

func (s *Service) checkRegistry(name string) error {
	for _, r := range s.registries {
		if r.Name == name {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", service.ErrRegistryNotFound, name)
}

func lookupAttrs(registryName, id string) []attribute.KeyValue {
	return []attribute.KeyValue{
		telemetry.AttrRegistryName.String(registryName),
		telemetry.AttrEntityID.String(id),
	}
}
