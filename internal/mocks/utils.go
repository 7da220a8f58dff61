package mocks

import "github.com/stacklok/model-registry-bff/internal/models"

// CreateModelRegistryLabelsObject returns custom properties holding one empty
// string property per label. Duplicate labels collapse into a single entry.
func CreateModelRegistryLabelsObject(labels []string) models.StringCustomProperties {
	props := make(models.StringCustomProperties, len(labels))
	for _, label := range labels {
		props[label] = models.MetadataValue{
			MetadataType: models.MetadataTypeString,
			StringValue:  "",
		}
	}
	return props
}

// MockBFFResponse wraps data in the envelope returned by the BFF.
func MockBFFResponse[T any](data T) models.ModelRegistryBody[T] {
	return models.ModelRegistryBody[T]{Data: data}
}
