package models

import "maps"

// RegisteredModelState is the lifecycle state of a registered model
type RegisteredModelState string

// ModelVersionState is the lifecycle state of a model version
type ModelVersionState string

// ArtifactState is the lifecycle state of an artifact
type ArtifactState string

const (
	RegisteredModelStateLive     RegisteredModelState = "LIVE"
	RegisteredModelStateArchived RegisteredModelState = "ARCHIVED"

	ModelVersionStateLive     ModelVersionState = "LIVE"
	ModelVersionStateArchived ModelVersionState = "ARCHIVED"

	ArtifactStateUnknown           ArtifactState = "UNKNOWN"
	ArtifactStatePending           ArtifactState = "PENDING"
	ArtifactStateLive              ArtifactState = "LIVE"
	ArtifactStateMarkedForDeletion ArtifactState = "MARKED_FOR_DELETION"
	ArtifactStateDeleted           ArtifactState = "DELETED"
	ArtifactStateAbandoned         ArtifactState = "ABANDONED"
	ArtifactStateReference         ArtifactState = "REFERENCE"
)

// ModelArtifactType is the artifactType discriminator of model artifacts
const ModelArtifactType = "model-artifact"

// RegisteredModel is a named model in the registry
type RegisteredModel struct {
	ID                       string               `json:"id" yaml:"id"`
	Name                     string               `json:"name" yaml:"name"`
	Description              string               `json:"description,omitempty" yaml:"description,omitempty"`
	ExternalID               string               `json:"externalId,omitempty" yaml:"externalId,omitempty"`
	Owner                    string               `json:"owner,omitempty" yaml:"owner,omitempty"`
	CustomProperties         CustomProperties     `json:"customProperties" yaml:"-"`
	State                    RegisteredModelState `json:"state" yaml:"state,omitempty"`
	CreateTimeSinceEpoch     string               `json:"createTimeSinceEpoch" yaml:"createTimeSinceEpoch,omitempty"`
	LastUpdateTimeSinceEpoch string               `json:"lastUpdateTimeSinceEpoch" yaml:"lastUpdateTimeSinceEpoch,omitempty"`
}

// ModelVersion is a version of a RegisteredModel
type ModelVersion struct {
	ID                       string            `json:"id" yaml:"id"`
	Name                     string            `json:"name" yaml:"name"`
	Description              string            `json:"description,omitempty" yaml:"description,omitempty"`
	ExternalID               string            `json:"externalId,omitempty" yaml:"externalId,omitempty"`
	Author                   string            `json:"author,omitempty" yaml:"author,omitempty"`
	RegisteredModelID        string            `json:"registeredModelId" yaml:"registeredModelId"`
	CustomProperties         CustomProperties  `json:"customProperties" yaml:"-"`
	State                    ModelVersionState `json:"state" yaml:"state,omitempty"`
	CreateTimeSinceEpoch     string            `json:"createTimeSinceEpoch" yaml:"createTimeSinceEpoch,omitempty"`
	LastUpdateTimeSinceEpoch string            `json:"lastUpdateTimeSinceEpoch" yaml:"lastUpdateTimeSinceEpoch,omitempty"`
}

// ModelArtifact is the stored model of a ModelVersion
type ModelArtifact struct {
	ID                       string           `json:"id" yaml:"id"`
	Name                     string           `json:"name" yaml:"name"`
	Description              string           `json:"description,omitempty" yaml:"description,omitempty"`
	ExternalID               string           `json:"externalId,omitempty" yaml:"externalId,omitempty"`
	ArtifactType             string           `json:"artifactType" yaml:"artifactType,omitempty"`
	ModelVersionID           string           `json:"-" yaml:"modelVersionId"`
	URI                      string           `json:"uri,omitempty" yaml:"uri,omitempty"`
	ModelFormatName          string           `json:"modelFormatName,omitempty" yaml:"modelFormatName,omitempty"`
	ModelFormatVersion       string           `json:"modelFormatVersion,omitempty" yaml:"modelFormatVersion,omitempty"`
	CustomProperties         CustomProperties `json:"customProperties" yaml:"-"`
	State                    ArtifactState    `json:"state" yaml:"state,omitempty"`
	CreateTimeSinceEpoch     string           `json:"createTimeSinceEpoch" yaml:"createTimeSinceEpoch,omitempty"`
	LastUpdateTimeSinceEpoch string           `json:"lastUpdateTimeSinceEpoch" yaml:"lastUpdateTimeSinceEpoch,omitempty"`
}

// Clone returns a copy that shares no custom properties with m
func (m RegisteredModel) Clone() RegisteredModel {
	m.CustomProperties = maps.Clone(m.CustomProperties)
	return m
}

// Clone returns a copy that shares no custom properties with v
func (v ModelVersion) Clone() ModelVersion {
	v.CustomProperties = maps.Clone(v.CustomProperties)
	return v
}

// Clone returns a copy that shares no custom properties with a
func (a ModelArtifact) Clone() ModelArtifact {
	a.CustomProperties = maps.Clone(a.CustomProperties)
	return a
}

// ModelRegistry is a model registry instance reachable through the BFF
type ModelRegistry struct {
	Name        string `json:"name" yaml:"name"`
	DisplayName string `json:"displayName" yaml:"displayName,omitempty"`
	Description string `json:"description" yaml:"description,omitempty"`
}
