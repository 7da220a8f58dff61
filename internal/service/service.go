// Package service provides the business logic behind the model registry BFF routes
package service

import (
	"context"
	"errors"

	"github.com/stacklok/model-registry-bff/internal/models"
)

var (
	// ErrRegistryNotFound is returned when a model registry is not found
	ErrRegistryNotFound = errors.New("model registry not found")
	// ErrRegisteredModelNotFound is returned when a registered model is not found
	ErrRegisteredModelNotFound = errors.New("registered model not found")
	// ErrModelVersionNotFound is returned when a model version is not found
	ErrModelVersionNotFound = errors.New("model version not found")
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks -source=service.go ModelRegistryService

// ModelRegistryService defines the interface for model registry read operations
type ModelRegistryService interface {
	// CheckReadiness checks if the service is ready to serve requests
	CheckReadiness(ctx context.Context) error

	// ListModelRegistries returns the registries known to the BFF
	ListModelRegistries(ctx context.Context) ([]models.ModelRegistry, error)

	// ListRegisteredModels returns all registered models of a registry
	ListRegisteredModels(ctx context.Context, registryName string) ([]models.RegisteredModel, error)

	// GetRegisteredModel returns a registered model by id
	GetRegisteredModel(ctx context.Context, registryName, id string) (*models.RegisteredModel, error)

	// ListModelVersions returns the versions of a registered model
	ListModelVersions(ctx context.Context, registryName, registeredModelID string) ([]models.ModelVersion, error)

	// GetModelVersion returns a model version by id
	GetModelVersion(ctx context.Context, registryName, id string) (*models.ModelVersion, error)

	// ListModelArtifacts returns the artifacts of a model version
	ListModelArtifacts(ctx context.Context, registryName, modelVersionID string) ([]models.ModelArtifact, error)
}
