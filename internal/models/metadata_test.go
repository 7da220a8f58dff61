package models

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataValue_MarshalJSON(t *testing.T) {
	t.Parallel()

	structValue, err := NewStructValue(map[string]any{"k": "v"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		value    MetadataValue
		expected string
	}{
		{
			name:     "empty string value",
			value:    NewStringValue(""),
			expected: `{"metadataType":"MetadataStringValue","string_value":""}`,
		},
		{
			name:     "string value",
			value:    NewStringValue("team-a"),
			expected: `{"metadataType":"MetadataStringValue","string_value":"team-a"}`,
		},
		{
			name:     "int value",
			value:    NewIntValue(42),
			expected: `{"metadataType":"MetadataIntValue","int_value":"42"}`,
		},
		{
			name:     "double value",
			value:    NewDoubleValue(0.5),
			expected: `{"metadataType":"MetadataDoubleValue","double_value":0.5}`,
		},
		{
			name:     "false bool value is kept",
			value:    NewBoolValue(false),
			expected: `{"metadataType":"MetadataBoolValue","bool_value":false}`,
		},
		{
			name:     "struct value",
			value:    structValue,
			expected: `{"metadataType":"MetadataStructValue","struct_value":"eyJrIjoidiJ9"}`,
		},
		{
			name:     "proto value",
			value:    MetadataValue{MetadataType: MetadataTypeProto, ProtoType: "t", ProtoValue: "p"},
			expected: `{"metadataType":"MetadataProtoValue","type":"t","proto_value":"p"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))

			var decoded MetadataValue
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.value, decoded)
		})
	}
}

func TestMetadataValue_MarshalJSON_UnknownType(t *testing.T) {
	t.Parallel()

	_, err := json.Marshal(MetadataValue{MetadataType: "MetadataFooValue"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownMetadataType)
}

func TestMetadataValue_UnmarshalJSON_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "missing discriminator", input: `{"string_value":"x"}`},
		{name: "unknown discriminator", input: `{"metadataType":"MetadataFooValue"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var v MetadataValue
			err := json.Unmarshal([]byte(tt.input), &v)
			assert.ErrorIs(t, err, ErrUnknownMetadataType)
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()

		var v MetadataValue
		err := json.Unmarshal([]byte(`{"metadataType":`), &v)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnknownMetadataType)
	})
}

func TestNewStructValue(t *testing.T) {
	t.Parallel()

	v, err := NewStructValue([]int{1, 2})
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(v.StructValue)
	require.NoError(t, err)
	assert.Equal(t, "[1,2]", string(raw))

	_, err = NewStructValue(func() {})
	assert.Error(t, err)
}

func TestCustomProperties_LabelsAndProperties(t *testing.T) {
	t.Parallel()

	props := CustomProperties{
		"team":     NewStringValue(""),
		"owner":    NewStringValue(""),
		"accuracy": NewDoubleValue(0.91),
		"stage":    NewStringValue("prod"),
	}

	assert.Equal(t, []string{"owner", "team"}, props.Labels())
	assert.Equal(t, CustomProperties{
		"accuracy": NewDoubleValue(0.91),
		"stage":    NewStringValue("prod"),
	}, props.Properties())

	assert.Empty(t, CustomProperties{}.Labels())
	assert.Empty(t, CustomProperties(nil).Properties())
}

func TestModelRegistryBody_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(ModelRegistryBody[[]string]{Data: []string{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(data))

	data, err = json.Marshal(ErrorEnvelope{Error: HTTPError{Code: "404", Message: "not found"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"code":"404","message":"not found"}}`, string(data))
}

func TestEntityClone(t *testing.T) {
	t.Parallel()

	props := CustomProperties{"owner": NewStringValue("")}

	model := RegisteredModel{ID: "1", CustomProperties: props}.Clone()
	model.CustomProperties["a"] = NewStringValue("x")

	version := ModelVersion{ID: "1", CustomProperties: props}.Clone()
	version.CustomProperties["b"] = NewStringValue("x")

	artifact := ModelArtifact{ID: "1", CustomProperties: props}.Clone()
	artifact.CustomProperties["c"] = NewStringValue("x")

	assert.Equal(t, CustomProperties{"owner": NewStringValue("")}, props)
	assert.Nil(t, RegisteredModel{}.Clone().CustomProperties)
}
