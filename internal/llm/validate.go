package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// NormalizeConfidence rescales percentage-style confidence values into [0,1]
// and clamps the result. Some models emit 87 where we want 0.87.
func NormalizeConfidence(raw []byte) ([]byte, float32, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, 0, fmt.Errorf("unmarshal content: %w", err)
	}
	v, ok := m["confidence_score"].(float64)
	if !ok {
		return raw, 0, fmt.Errorf("confidence_score missing or not a number")
	}
	if v > 1 {
		v = v / 100
	}
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	m["confidence_score"] = v
	out, err := json.Marshal(m)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal content: %w", err)
	}
	return out, float32(v), nil
}
