package weft

import (
	"encoding/json"
	"fmt"
	"math"
)

// Validate checks that a JSON payload conforms to the given schema:
// every required field is present and every present field has the declared
// type. It returns a *ValidationError on the first failure found.
//
// Validation is structural only — the core performs it once at the
// completion-capability boundary and never coerces values.
func Validate(schema ResponseSchema, payload json.RawMessage) error {
	var node schemaNode
	if err := json.Unmarshal(schema.Schema, &node); err != nil {
		return &ValidationError{Schema: schema.Name, Message: fmt.Sprintf("invalid schema document: %v", err)}
	}

	var value any
	if err := json.Unmarshal(payload, &value); err != nil {
		return &ValidationError{Schema: schema.Name, Message: fmt.Sprintf("payload is not valid JSON: %v", err)}
	}

	return validateValue(schema.Name, "", &node, value)
}

func validateValue(schemaName, field string, node *schemaNode, value any) error {
	fail := func(msg string) error {
		return &ValidationError{Schema: schemaName, Field: field, Message: msg}
	}

	switch node.Type {
	case "object":
		obj, ok := value.(map[string]any)
		if !ok {
			return fail(fmt.Sprintf("expected object, got %s", jsonTypeName(value)))
		}
		for _, req := range node.Required {
			if _, present := obj[req]; !present {
				return &ValidationError{
					Schema:  schemaName,
					Field:   joinField(field, req),
					Message: "required field is missing",
				}
			}
		}
		for name, prop := range node.Properties {
			v, present := obj[name]
			if !present || v == nil {
				continue
			}
			if err := validateValue(schemaName, joinField(field, name), prop, v); err != nil {
				return err
			}
		}
		return nil

	case "array":
		arr, ok := value.([]any)
		if !ok {
			return fail(fmt.Sprintf("expected array, got %s", jsonTypeName(value)))
		}
		if node.Items != nil {
			for i, item := range arr {
				if err := validateValue(schemaName, fmt.Sprintf("%s[%d]", field, i), node.Items, item); err != nil {
					return err
				}
			}
		}
		return nil

	case "string":
		if _, ok := value.(string); !ok {
			return fail(fmt.Sprintf("expected string, got %s", jsonTypeName(value)))
		}
		return nil

	case "integer":
		n, ok := value.(float64)
		if !ok {
			return fail(fmt.Sprintf("expected integer, got %s", jsonTypeName(value)))
		}
		if n != math.Trunc(n) {
			return fail(fmt.Sprintf("expected integer, got non-integral number %v", n))
		}
		return nil

	case "number":
		if _, ok := value.(float64); !ok {
			return fail(fmt.Sprintf("expected number, got %s", jsonTypeName(value)))
		}
		return nil

	case "boolean":
		if _, ok := value.(bool); !ok {
			return fail(fmt.Sprintf("expected boolean, got %s", jsonTypeName(value)))
		}
		return nil

	default:
		// Unconstrained node; accept anything.
		return nil
	}
}

func joinField(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func jsonTypeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
