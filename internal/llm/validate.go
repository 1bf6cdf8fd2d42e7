package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidateObject validates a decoded object against one of the per-task
// schema maps. Callers treat a failure as advisory (log and continue):
// the coercion layer already degrades wrong-typed fields to defaults, so
// validation exists to make shape drift visible, not to reject runs.
func ValidateObject(schemaMap map[string]any, obj map[string]any) error {
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
	// Round-trip so typed values (e.g. json.Number) normalize the same
	// way the validator expects.
	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("marshal object: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal object: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("object does not match task schema: %w", err)
	}
	return nil
}
