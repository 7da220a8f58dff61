package mocks

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/model-registry-bff/internal/models"
)

func TestCreateModelRegistryLabelsObject(t *testing.T) {
	t.Parallel()

	label := models.MetadataValue{MetadataType: models.MetadataTypeString, StringValue: ""}

	tests := []struct {
		name     string
		labels   []string
		expected models.StringCustomProperties
	}{
		{
			name:     "nil labels",
			labels:   nil,
			expected: models.StringCustomProperties{},
		},
		{
			name:     "empty labels",
			labels:   []string{},
			expected: models.StringCustomProperties{},
		},
		{
			name:   "distinct labels",
			labels: []string{"owner", "team"},
			expected: models.StringCustomProperties{
				"owner": label,
				"team":  label,
			},
		},
		{
			name:     "duplicate labels collapse",
			labels:   []string{"dup", "dup"},
			expected: models.StringCustomProperties{"dup": label},
		},
		{
			name:   "labels are not normalized",
			labels: []string{"Team", "team", " team ", ""},
			expected: models.StringCustomProperties{
				"Team":   label,
				"team":   label,
				" team ": label,
				"":       label,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			props := CreateModelRegistryLabelsObject(tt.labels)

			require.NotNil(t, props)
			assert.Equal(t, tt.expected, props)
			for name, value := range props {
				assert.True(t, value.IsLabel(), "property %q should be a label", name)
			}
		})
	}
}

func TestCreateModelRegistryLabelsObject_SizeMatchesDistinctLabels(t *testing.T) {
	t.Parallel()

	labels := []string{"a", "b", "a", "c", "b", "a"}
	props := CreateModelRegistryLabelsObject(labels)

	distinct := map[string]struct{}{}
	for _, l := range labels {
		distinct[l] = struct{}{}
	}
	assert.Len(t, props, len(distinct))
	for l := range distinct {
		assert.Contains(t, props, l)
	}
}

func TestCreateModelRegistryLabelsObject_FreshResult(t *testing.T) {
	t.Parallel()

	first := CreateModelRegistryLabelsObject([]string{"owner"})
	second := CreateModelRegistryLabelsObject([]string{"owner"})
	assert.Equal(t, first, second)

	first["extra"] = models.NewStringValue("x")
	assert.NotContains(t, second, "extra")
}

func TestCreateModelRegistryLabelsObject_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(CreateModelRegistryLabelsObject([]string{"owner", "team"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"owner": {"metadataType": "MetadataStringValue", "string_value": ""},
		"team": {"metadataType": "MetadataStringValue", "string_value": ""}
	}`, string(data))
}

type testModel struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestMockBFFResponse(t *testing.T) {
	t.Parallel()

	t.Run("struct payload", func(t *testing.T) {
		t.Parallel()

		body := MockBFFResponse(testModel{ID: 1, Name: "model-a"})
		assert.Equal(t, testModel{ID: 1, Name: "model-a"}, body.Data)

		data, err := json.Marshal(body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":{"id":1,"name":"model-a"}}`, string(data))
	})

	t.Run("empty slice payload", func(t *testing.T) {
		t.Parallel()

		body := MockBFFResponse([]string{})
		assert.NotNil(t, body.Data)
		assert.Empty(t, body.Data)

		data, err := json.Marshal(body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":[]}`, string(data))
	})

	t.Run("pointer payload keeps identity", func(t *testing.T) {
		t.Parallel()

		model := &testModel{ID: 2}
		body := MockBFFResponse(model)
		assert.Same(t, model, body.Data)
	})

	t.Run("map payload is shared", func(t *testing.T) {
		t.Parallel()

		payload := map[string]int{"a": 1}
		body := MockBFFResponse(payload)
		payload["b"] = 2
		assert.Equal(t, 2, body.Data["b"])
	})

	t.Run("nil payload", func(t *testing.T) {
		t.Parallel()

		body := MockBFFResponse[*testModel](nil)
		assert.Nil(t, body.Data)

		data, err := json.Marshal(body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":null}`, string(data))
	})

	t.Run("primitive payload", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 7, MockBFFResponse(7).Data)
		assert.Equal(t, "", MockBFFResponse("").Data)
	})

	t.Run("repeated calls are equal", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, MockBFFResponse([]int{1, 2}), MockBFFResponse([]int{1, 2}))
	})
}
