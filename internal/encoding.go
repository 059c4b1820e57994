package internal

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes v as a JSON array of numbers. NaN and infinite
// components cannot be represented and produce an error.
func (v Vector) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(v.Components())
	if err != nil {
		return nil, fmt.Errorf("marshal vector: %w", err)
	}
	return data, nil
}

func (v *Vector) UnmarshalJSON(data []byte) error {
	var cs []float64
	if err := json.Unmarshal(data, &cs); err != nil {
		return fmt.Errorf("unmarshal vector: %w", err)
	}
	*v = newVector(nonNil(cs))
	return nil
}

// MarshalYAML encodes v as a flow sequence, e.g. [1, 2.5, 3].
func (v Vector) MarshalYAML() (any, error) {
	var node yaml.Node
	if err := node.Encode(v.Components()); err != nil {
		return nil, fmt.Errorf("marshal vector: %w", err)
	}
	node.Style = yaml.FlowStyle
	return &node, nil
}

func (v *Vector) UnmarshalYAML(value *yaml.Node) error {
	var cs []float64
	if err := value.Decode(&cs); err != nil {
		return fmt.Errorf("unmarshal vector: %w", err)
	}
	*v = newVector(nonNil(cs))
	return nil
}

func nonNil(cs []float64) []float64 {
	if cs == nil {
		return []float64{}
	}
	return cs
}
