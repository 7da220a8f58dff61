package mocks

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stacklok/model-registry-bff/internal/models"
)

// FixtureSet is the registry content served by the mock BFF server
type FixtureSet struct {
	RegisteredModels []models.RegisteredModel
	ModelVersions    []models.ModelVersion
	ModelArtifacts   []models.ModelArtifact
}

// fixtureFile is the YAML layout of a fixture file. Custom properties are
// written as a list of labels and a map of string properties.
type fixtureFile struct {
	RegisteredModels []registeredModelFixture `yaml:"registeredModels"`
	ModelVersions    []modelVersionFixture    `yaml:"modelVersions"`
	ModelArtifacts   []modelArtifactFixture   `yaml:"modelArtifacts"`
}

type propertiesFixture struct {
	Labels     []string          `yaml:"labels,omitempty"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

func (p propertiesFixture) customProperties() models.CustomProperties {
	props := CreateModelRegistryLabelsObject(p.Labels)
	for name, value := range p.Properties {
		props[name] = models.NewStringValue(value)
	}
	return props
}

type registeredModelFixture struct {
	models.RegisteredModel `yaml:",inline"`
	propertiesFixture      `yaml:",inline"`
}

type modelVersionFixture struct {
	models.ModelVersion `yaml:",inline"`
	propertiesFixture   `yaml:",inline"`
}

type modelArtifactFixture struct {
	models.ModelArtifact `yaml:",inline"`
	propertiesFixture    `yaml:",inline"`
}

// LoadFixtures reads and validates a YAML fixture file
func LoadFixtures(path string) (*FixtureSet, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from the server configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}
	return ParseFixtures(data)
}

// ParseFixtures decodes and validates YAML fixture data
func ParseFixtures(data []byte) (*FixtureSet, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse fixture file: %w", err)
	}

	set := &FixtureSet{
		RegisteredModels: make([]models.RegisteredModel, 0, len(file.RegisteredModels)),
		ModelVersions:    make([]models.ModelVersion, 0, len(file.ModelVersions)),
		ModelArtifacts:   make([]models.ModelArtifact, 0, len(file.ModelArtifacts)),
	}
	for _, f := range file.RegisteredModels {
		m := NewTestRegisteredModel(f.Name, WithModelID(f.ID))
		m.Description = f.Description
		m.ExternalID = f.ExternalID
		m.Owner = f.Owner
		m.CustomProperties = f.customProperties()
		if f.State != "" {
			m.State = f.State
		}
		applyTimes(&m.CreateTimeSinceEpoch, &m.LastUpdateTimeSinceEpoch,
			f.CreateTimeSinceEpoch, f.LastUpdateTimeSinceEpoch)
		set.RegisteredModels = append(set.RegisteredModels, m)
	}
	for _, f := range file.ModelVersions {
		v := NewTestModelVersion(f.Name,
			WithVersionID(f.ID),
			WithRegisteredModelID(f.RegisteredModelID),
			WithAuthor(f.Author),
			WithVersionDescription(f.Description),
		)
		v.ExternalID = f.ExternalID
		v.CustomProperties = f.customProperties()
		if f.State != "" {
			v.State = f.State
		}
		applyTimes(&v.CreateTimeSinceEpoch, &v.LastUpdateTimeSinceEpoch,
			f.CreateTimeSinceEpoch, f.LastUpdateTimeSinceEpoch)
		set.ModelVersions = append(set.ModelVersions, v)
	}
	for _, f := range file.ModelArtifacts {
		a := NewTestModelArtifact(f.Name,
			WithArtifactID(f.ID),
			WithModelVersionID(f.ModelVersionID),
			WithURI(f.URI),
			WithModelFormat(f.ModelFormatName, f.ModelFormatVersion),
		)
		a.Description = f.Description
		a.ExternalID = f.ExternalID
		a.CustomProperties = f.customProperties()
		if f.ArtifactType != "" {
			a.ArtifactType = f.ArtifactType
		}
		if f.State != "" {
			a.State = f.State
		}
		applyTimes(&a.CreateTimeSinceEpoch, &a.LastUpdateTimeSinceEpoch,
			f.CreateTimeSinceEpoch, f.LastUpdateTimeSinceEpoch)
		set.ModelArtifacts = append(set.ModelArtifacts, a)
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

func applyTimes(create, update *string, fileCreate, fileUpdate string) {
	if fileCreate != "" {
		*create = fileCreate
	}
	if fileUpdate != "" {
		*update = fileUpdate
	}
}

// Validate checks that ids and names are present, that ids are unique and
// that every version and artifact points at an existing parent.
func (s *FixtureSet) Validate() error {
	modelIDs := make(map[string]bool, len(s.RegisteredModels))
	for i, m := range s.RegisteredModels {
		if m.ID == "" {
			return fmt.Errorf("registeredModels[%d]: id is required", i)
		}
		if m.Name == "" {
			return fmt.Errorf("registeredModels[%d]: name is required", i)
		}
		if modelIDs[m.ID] {
			return fmt.Errorf("registeredModels[%d]: duplicate id '%s'", i, m.ID)
		}
		modelIDs[m.ID] = true
	}

	versionIDs := make(map[string]bool, len(s.ModelVersions))
	for i, v := range s.ModelVersions {
		if v.ID == "" {
			return fmt.Errorf("modelVersions[%d]: id is required", i)
		}
		if v.Name == "" {
			return fmt.Errorf("modelVersions[%d]: name is required", i)
		}
		if versionIDs[v.ID] {
			return fmt.Errorf("modelVersions[%d]: duplicate id '%s'", i, v.ID)
		}
		if !modelIDs[v.RegisteredModelID] {
			return fmt.Errorf("modelVersions[%d]: unknown registeredModelId '%s'", i, v.RegisteredModelID)
		}
		versionIDs[v.ID] = true
	}

	artifactIDs := make(map[string]bool, len(s.ModelArtifacts))
	for i, a := range s.ModelArtifacts {
		if a.ID == "" {
			return fmt.Errorf("modelArtifacts[%d]: id is required", i)
		}
		if a.Name == "" {
			return fmt.Errorf("modelArtifacts[%d]: name is required", i)
		}
		if artifactIDs[a.ID] {
			return fmt.Errorf("modelArtifacts[%d]: duplicate id '%s'", i, a.ID)
		}
		if !versionIDs[a.ModelVersionID] {
			return fmt.Errorf("modelArtifacts[%d]: unknown modelVersionId '%s'", i, a.ModelVersionID)
		}
		artifactIDs[a.ID] = true
	}

	return nil
}

// DefaultFixtureSet returns the built-in registry content of the mock server
func DefaultFixtureSet() *FixtureSet {
	return &FixtureSet{
		RegisteredModels: []models.RegisteredModel{
			NewTestRegisteredModel("Fraud detection model",
				WithModelID("1"),
				WithModelDescription("A machine learning model for fraud detection"),
				WithOwner("Alice"),
				WithModelLabels("Financial data", "Fraud detection", "Test label"),
			),
			NewTestRegisteredModel("Credit card scoring",
				WithModelID("2"),
				WithModelDescription("A machine learning model for credit card scoring"),
				WithOwner("Bob"),
				WithModelLabels("Credit", "Scoring"),
			),
			NewTestRegisteredModel("Legacy churn model",
				WithModelID("3"),
				WithOwner("Alice"),
				WithModelState(models.RegisteredModelStateArchived),
			),
		},
		ModelVersions: []models.ModelVersion{
			NewTestModelVersion("Version one",
				WithVersionID("1"),
				WithRegisteredModelID("1"),
				WithAuthor("Alice"),
				WithVersionLabels("Financial data", "Fraud detection"),
			),
			NewTestModelVersion("Version two",
				WithVersionID("2"),
				WithRegisteredModelID("1"),
				WithAuthor("Bob"),
			),
			NewTestModelVersion("Version one",
				WithVersionID("3"),
				WithRegisteredModelID("2"),
				WithAuthor("Bob"),
				WithVersionCustomProperty("accuracy", models.NewDoubleValue(0.87)),
			),
		},
		ModelArtifacts: []models.ModelArtifact{
			NewTestModelArtifact("fraud-model",
				WithArtifactID("1"),
				WithModelVersionID("1"),
				WithURI("s3://models/fraud/v1"),
				WithModelFormat("onnx", "1"),
			),
			NewTestModelArtifact("fraud-model",
				WithArtifactID("2"),
				WithModelVersionID("2"),
				WithURI("s3://models/fraud/v2"),
				WithModelFormat("onnx", "1"),
			),
			NewTestModelArtifact("scoring-model",
				WithArtifactID("3"),
				WithModelVersionID("3"),
				WithURI("oci://quay.io/models/scoring:1"),
				WithModelFormat("sklearn", "1.3"),
			),
		},
	}
}

// RegisteredModel returns a copy of the registered model with the given id
func (s *FixtureSet) RegisteredModel(id string) (models.RegisteredModel, bool) {
	for _, m := range s.RegisteredModels {
		if m.ID == id {
			return m.Clone(), true
		}
	}
	return models.RegisteredModel{}, false
}

// ModelVersion returns a copy of the model version with the given id
func (s *FixtureSet) ModelVersion(id string) (models.ModelVersion, bool) {
	for _, v := range s.ModelVersions {
		if v.ID == id {
			return v.Clone(), true
		}
	}
	return models.ModelVersion{}, false
}

// VersionsOf returns copies of the versions of a registered model, in fixture order
func (s *FixtureSet) VersionsOf(registeredModelID string) []models.ModelVersion {
	versions := []models.ModelVersion{}
	for _, v := range s.ModelVersions {
		if v.RegisteredModelID == registeredModelID {
			versions = append(versions, v.Clone())
		}
	}
	return versions
}

// ArtifactsOf returns copies of the artifacts of a model version, in fixture order
func (s *FixtureSet) ArtifactsOf(modelVersionID string) []models.ModelArtifact {
	artifacts := []models.ModelArtifact{}
	for _, a := range s.ModelArtifacts {
		if a.ModelVersionID == modelVersionID {
			artifacts = append(artifacts, a.Clone())
		}
	}
	return artifacts
}
