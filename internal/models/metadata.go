// Package models contains the model registry domain types shared by the BFF
// handlers, the mock server and the fixture helpers.
package models

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// MetadataType is the discriminator of a MetadataValue.
type MetadataType string

const (
	// MetadataTypeString marks a string custom property
	MetadataTypeString MetadataType = "MetadataStringValue"
	// MetadataTypeInt marks an integer custom property. The value travels as a decimal string.
	MetadataTypeInt MetadataType = "MetadataIntValue"
	// MetadataTypeDouble marks a floating point custom property
	MetadataTypeDouble MetadataType = "MetadataDoubleValue"
	// MetadataTypeBool marks a boolean custom property
	MetadataTypeBool MetadataType = "MetadataBoolValue"
	// MetadataTypeStruct marks a struct custom property. The value is base64 encoded JSON.
	MetadataTypeStruct MetadataType = "MetadataStructValue"
	// MetadataTypeProto marks a protobuf custom property
	MetadataTypeProto MetadataType = "MetadataProtoValue"
)

// ErrUnknownMetadataType is returned when decoding a MetadataValue with a
// missing or unsupported discriminator.
var ErrUnknownMetadataType = errors.New("unknown metadata type")

// Valid reports whether t is one of the known discriminators.
func (t MetadataType) Valid() bool {
	switch t {
	case MetadataTypeString, MetadataTypeInt, MetadataTypeDouble,
		MetadataTypeBool, MetadataTypeStruct, MetadataTypeProto:
		return true
	default:
		return false
	}
}

// MetadataValue is a custom property value. Only the field matching
// MetadataType is meaningful.
type MetadataValue struct {
	MetadataType MetadataType

	StringValue string
	IntValue    string
	DoubleValue float64
	BoolValue   bool
	StructValue string
	ProtoType   string
	ProtoValue  string
}

// NewStringValue returns a string custom property value
func NewStringValue(v string) MetadataValue {
	return MetadataValue{MetadataType: MetadataTypeString, StringValue: v}
}

// NewIntValue returns an integer custom property value
func NewIntValue(v int64) MetadataValue {
	return MetadataValue{MetadataType: MetadataTypeInt, IntValue: strconv.FormatInt(v, 10)}
}

// NewDoubleValue returns a double custom property value
func NewDoubleValue(v float64) MetadataValue {
	return MetadataValue{MetadataType: MetadataTypeDouble, DoubleValue: v}
}

// NewBoolValue returns a boolean custom property value
func NewBoolValue(v bool) MetadataValue {
	return MetadataValue{MetadataType: MetadataTypeBool, BoolValue: v}
}

// NewStructValue marshals v to JSON and returns it as a base64 encoded struct value.
func NewStructValue(v any) (MetadataValue, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return MetadataValue{}, fmt.Errorf("failed to marshal struct value: %w", err)
	}
	return MetadataValue{
		MetadataType: MetadataTypeStruct,
		StructValue:  base64.StdEncoding.EncodeToString(raw),
	}, nil
}

// IsLabel reports whether the value follows the label convention: a string
// property with an empty value.
func (v MetadataValue) IsLabel() bool {
	return v.MetadataType == MetadataTypeString && v.StringValue == ""
}

// wireMetadataValue is the JSON shape of every variant. Pointers keep the
// fields of other variants out of the output.
type wireMetadataValue struct {
	MetadataType MetadataType `json:"metadataType"`
	StringValue  *string      `json:"string_value,omitempty"`
	IntValue     *string      `json:"int_value,omitempty"`
	DoubleValue  *float64     `json:"double_value,omitempty"`
	BoolValue    *bool        `json:"bool_value,omitempty"`
	StructValue  *string      `json:"struct_value,omitempty"`
	ProtoType    *string      `json:"type,omitempty"`
	ProtoValue   *string      `json:"proto_value,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (v MetadataValue) MarshalJSON() ([]byte, error) {
	w := wireMetadataValue{MetadataType: v.MetadataType}
	switch v.MetadataType {
	case MetadataTypeString:
		w.StringValue = &v.StringValue
	case MetadataTypeInt:
		w.IntValue = &v.IntValue
	case MetadataTypeDouble:
		w.DoubleValue = &v.DoubleValue
	case MetadataTypeBool:
		w.BoolValue = &v.BoolValue
	case MetadataTypeStruct:
		w.StructValue = &v.StructValue
	case MetadataTypeProto:
		w.ProtoType = &v.ProtoType
		w.ProtoValue = &v.ProtoValue
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetadataType, v.MetadataType)
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler
func (v *MetadataValue) UnmarshalJSON(data []byte) error {
	var w wireMetadataValue
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if !w.MetadataType.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMetadataType, w.MetadataType)
	}

	out := MetadataValue{MetadataType: w.MetadataType}
	out.StringValue = deref(w.StringValue)
	out.IntValue = deref(w.IntValue)
	out.DoubleValue = deref(w.DoubleValue)
	out.BoolValue = deref(w.BoolValue)
	out.StructValue = deref(w.StructValue)
	out.ProtoType = deref(w.ProtoType)
	out.ProtoValue = deref(w.ProtoValue)
	*v = out
	return nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// CustomProperties maps a property name to its typed value
type CustomProperties map[string]MetadataValue

// StringCustomProperties is a CustomProperties map whose values are all of
// the string variant.
type StringCustomProperties = CustomProperties

// Labels returns the sorted names of all properties that are labels.
func (c CustomProperties) Labels() []string {
	labels := make([]string, 0, len(c))
	for name, value := range c {
		if value.IsLabel() {
			labels = append(labels, name)
		}
	}
	sort.Strings(labels)
	return labels
}

// Properties returns the properties that are not labels.
func (c CustomProperties) Properties() CustomProperties {
	props := CustomProperties{}
	for name, value := range c {
		if !value.IsLabel() {
			props[name] = value
		}
	}
	return props
}
