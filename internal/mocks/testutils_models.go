package mocks

import (
	"github.com/google/uuid"

	"github.com/stacklok/model-registry-bff/internal/models"
)

const (
	// DefaultCreateTimeSinceEpoch is the creation time given to test entities, in epoch milliseconds
	DefaultCreateTimeSinceEpoch = "1710404288975"
	// DefaultLastUpdateTimeSinceEpoch is the last update time given to test entities, in epoch milliseconds
	DefaultLastUpdateTimeSinceEpoch = "1710404288975"
)

// RegisteredModelOption is a function that configures a RegisteredModel for testing
type RegisteredModelOption func(*models.RegisteredModel)

// ModelVersionOption is a function that configures a ModelVersion for testing
type ModelVersionOption func(*models.ModelVersion)

// ModelArtifactOption is a function that configures a ModelArtifact for testing
type ModelArtifactOption func(*models.ModelArtifact)

// NewTestRegisteredModel creates a LIVE RegisteredModel with a random id
// and applies any provided options
func NewTestRegisteredModel(name string, opts ...RegisteredModelOption) models.RegisteredModel {
	model := models.RegisteredModel{
		ID:                       uuid.NewString(),
		Name:                     name,
		CustomProperties:         models.CustomProperties{},
		State:                    models.RegisteredModelStateLive,
		CreateTimeSinceEpoch:     DefaultCreateTimeSinceEpoch,
		LastUpdateTimeSinceEpoch: DefaultLastUpdateTimeSinceEpoch,
	}
	for _, opt := range opts {
		opt(&model)
	}
	return model
}

// WithModelID sets the registered model id
func WithModelID(id string) RegisteredModelOption {
	return func(m *models.RegisteredModel) {
		m.ID = id
	}
}

// WithModelDescription sets the registered model description
func WithModelDescription(description string) RegisteredModelOption {
	return func(m *models.RegisteredModel) {
		m.Description = description
	}
}

// WithOwner sets the registered model owner
func WithOwner(owner string) RegisteredModelOption {
	return func(m *models.RegisteredModel) {
		m.Owner = owner
	}
}

// WithModelState sets the registered model state
func WithModelState(state models.RegisteredModelState) RegisteredModelOption {
	return func(m *models.RegisteredModel) {
		m.State = state
	}
}

// WithModelLabels adds labels to the registered model custom properties
func WithModelLabels(labels ...string) RegisteredModelOption {
	return func(m *models.RegisteredModel) {
		m.CustomProperties = mergeProperties(m.CustomProperties, CreateModelRegistryLabelsObject(labels))
	}
}

// WithModelCustomProperty sets a single custom property on the registered model
func WithModelCustomProperty(name string, value models.MetadataValue) RegisteredModelOption {
	return func(m *models.RegisteredModel) {
		m.CustomProperties = mergeProperties(m.CustomProperties, models.CustomProperties{name: value})
	}
}

// NewTestModelVersion creates a LIVE ModelVersion with a random id
// and applies any provided options
func NewTestModelVersion(name string, opts ...ModelVersionOption) models.ModelVersion {
	version := models.ModelVersion{
		ID:                       uuid.NewString(),
		Name:                     name,
		CustomProperties:         models.CustomProperties{},
		State:                    models.ModelVersionStateLive,
		CreateTimeSinceEpoch:     DefaultCreateTimeSinceEpoch,
		LastUpdateTimeSinceEpoch: DefaultLastUpdateTimeSinceEpoch,
	}
	for _, opt := range opts {
		opt(&version)
	}
	return version
}

// WithVersionID sets the model version id
func WithVersionID(id string) ModelVersionOption {
	return func(v *models.ModelVersion) {
		v.ID = id
	}
}

// WithVersionDescription sets the model version description
func WithVersionDescription(description string) ModelVersionOption {
	return func(v *models.ModelVersion) {
		v.Description = description
	}
}

// WithAuthor sets the model version author
func WithAuthor(author string) ModelVersionOption {
	return func(v *models.ModelVersion) {
		v.Author = author
	}
}

// WithRegisteredModelID links the model version to a registered model
func WithRegisteredModelID(id string) ModelVersionOption {
	return func(v *models.ModelVersion) {
		v.RegisteredModelID = id
	}
}

// WithVersionState sets the model version state
func WithVersionState(state models.ModelVersionState) ModelVersionOption {
	return func(v *models.ModelVersion) {
		v.State = state
	}
}

// WithVersionLabels adds labels to the model version custom properties
func WithVersionLabels(labels ...string) ModelVersionOption {
	return func(v *models.ModelVersion) {
		v.CustomProperties = mergeProperties(v.CustomProperties, CreateModelRegistryLabelsObject(labels))
	}
}

// WithVersionCustomProperty sets a single custom property on the model version
func WithVersionCustomProperty(name string, value models.MetadataValue) ModelVersionOption {
	return func(v *models.ModelVersion) {
		v.CustomProperties = mergeProperties(v.CustomProperties, models.CustomProperties{name: value})
	}
}

// NewTestModelArtifact creates a LIVE ModelArtifact with a random id
// and applies any provided options
func NewTestModelArtifact(name string, opts ...ModelArtifactOption) models.ModelArtifact {
	artifact := models.ModelArtifact{
		ID:                       uuid.NewString(),
		Name:                     name,
		ArtifactType:             models.ModelArtifactType,
		CustomProperties:         models.CustomProperties{},
		State:                    models.ArtifactStateLive,
		CreateTimeSinceEpoch:     DefaultCreateTimeSinceEpoch,
		LastUpdateTimeSinceEpoch: DefaultLastUpdateTimeSinceEpoch,
	}
	for _, opt := range opts {
		opt(&artifact)
	}
	return artifact
}

// WithArtifactID sets the artifact id
func WithArtifactID(id string) ModelArtifactOption {
	return func(a *models.ModelArtifact) {
		a.ID = id
	}
}

// WithModelVersionID links the artifact to a model version
func WithModelVersionID(id string) ModelArtifactOption {
	return func(a *models.ModelArtifact) {
		a.ModelVersionID = id
	}
}

// WithURI sets the storage location of the artifact
func WithURI(uri string) ModelArtifactOption {
	return func(a *models.ModelArtifact) {
		a.URI = uri
	}
}

// WithModelFormat sets the model format name and version
func WithModelFormat(name, version string) ModelArtifactOption {
	return func(a *models.ModelArtifact) {
		a.ModelFormatName = name
		a.ModelFormatVersion = version
	}
}

// WithArtifactState sets the artifact state
func WithArtifactState(state models.ArtifactState) ModelArtifactOption {
	return func(a *models.ModelArtifact) {
		a.State = state
	}
}

// MockList returns a single page holding all items
func MockList[T any](items ...T) models.List[T] {
	if items == nil {
		items = []T{}
	}
	return models.List[T]{
		Items:    items,
		Size:     len(items),
		PageSize: len(items),
	}
}

// mergeProperties copies src into dst, allocating dst when needed
func mergeProperties(dst, src models.CustomProperties) models.CustomProperties {
	if dst == nil {
		dst = make(models.CustomProperties, len(src))
	}
	for name, value := range src {
		dst[name] = value
	}
	return dst
}
