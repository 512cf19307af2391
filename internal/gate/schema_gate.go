package gate

import (
	"encoding/json"
	"fmt"
)

// FieldKind is the JSON value kind a schema expects for one field.
type FieldKind string

const (
	KindString FieldKind = "string"
	KindNumber FieldKind = "number"
	KindBool   FieldKind = "bool"
	KindArray  FieldKind = "array"
	KindObject FieldKind = "object"
)

// Schema is a pinned shape: the exact set of top-level fields an artifact
// must carry, and each field's kind. There is no JSON Schema validator in
// the example pack's dependency set (SPEC_FULL.md §2b); this hand-rolled
// structural check is the documented substitute (see DESIGN.md).
type Schema map[string]FieldKind

// SchemaShapeCheck verifies that decoding data as a JSON object yields
// exactly the fields schema names, each holding a value of the expected
// kind (spec.md §4.H: "schema shape matches the pinned schema exactly").
func SchemaShapeCheck(name string, data []byte, schema Schema) Checker {
	return func() CheckResult {
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return CheckResult{Name: name, Pass: false, Reason: fmt.Sprintf("invalid JSON: %v", err)}
		}

		for field, kind := range schema {
			value, present := doc[field]
			if !present {
				return CheckResult{Name: name, Pass: false, Reason: fmt.Sprintf("missing field %q", field)}
			}
			if !kindMatches(value, kind) {
				return CheckResult{Name: name, Pass: false, Reason: fmt.Sprintf("field %q is not a %s", field, kind)}
			}
		}
		for field := range doc {
			if _, known := schema[field]; !known {
				return CheckResult{Name: name, Pass: false, Reason: fmt.Sprintf("unexpected field %q", field)}
			}
		}

		return CheckResult{Name: name, Pass: true}
	}
}

func kindMatches(value any, kind FieldKind) bool {
	if value == nil {
		return false
	}
	switch kind {
	case KindString:
		_, ok := value.(string)
		return ok
	case KindNumber:
		_, ok := value.(float64)
		return ok
	case KindBool:
		_, ok := value.(bool)
		return ok
	case KindArray:
		_, ok := value.([]any)
		return ok
	case KindObject:
		_, ok := value.(map[string]any)
		return ok
	default:
		return false
	}
}
