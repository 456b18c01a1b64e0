package weft

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// ResponseSchema describes the declared shape of a request or response
// payload: a named JSON Schema document listing fields, their types, and
// which of them are required.
type ResponseSchema struct {
	// Name identifies the schema (used by providers that name response
	// formats, and in validation error messages).
	Name string
	// Description explains the payload to the model.
	Description string
	// Schema is the JSON Schema document.
	Schema json.RawMessage
}

// SchemaFor generates a ResponseSchema from a struct type T by reflection.
//
// Field names are taken from json tags. Use desc tags for field
// descriptions and `required:"true"` to mark mandatory fields:
//
//	type Answer struct {
//	    Text  string   `json:"text" desc:"The answer" required:"true"`
//	    Notes []string `json:"notes" desc:"Optional clarifications"`
//	}
//
// The schema name is derived from the type name using snake_case conversion.
func SchemaFor[T any]() (ResponseSchema, error) {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return ResponseSchema{}, fmt.Errorf("weft: cannot derive schema from nil type")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ResponseSchema{}, fmt.Errorf("weft: cannot derive schema from non-struct type %s", t)
	}

	node, err := schemaForStruct(t)
	if err != nil {
		return ResponseSchema{}, err
	}
	raw, err := json.Marshal(node)
	if err != nil {
		return ResponseSchema{}, err
	}

	name := toSnakeCase(t.Name())
	if name == "" {
		name = "response"
	}
	return ResponseSchema{Name: name, Schema: raw}, nil
}

// MustSchemaFor is like SchemaFor but panics on error.
func MustSchemaFor[T any]() ResponseSchema {
	s, err := SchemaFor[T]()
	if err != nil {
		panic(err)
	}
	return s
}

// schemaNode is the internal JSON Schema representation.
type schemaNode struct {
	Type        string                 `json:"type"`
	Description string                 `json:"description,omitempty"`
	Properties  map[string]*schemaNode `json:"properties,omitempty"`
	Required    []string               `json:"required,omitempty"`
	Items       *schemaNode            `json:"items,omitempty"`
}

func schemaForStruct(t reflect.Type) (*schemaNode, error) {
	node := &schemaNode{
		Type:       "object",
		Properties: make(map[string]*schemaNode),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		name := strings.Split(jsonTag, ",")[0]
		if name == "" {
			name = field.Name
		}

		prop, err := schemaForType(field.Type)
		if err != nil {
			return nil, fmt.Errorf("weft: field %s: %w", field.Name, err)
		}
		if desc := field.Tag.Get("desc"); desc != "" {
			prop.Description = desc
		}
		node.Properties[name] = prop

		if field.Tag.Get("required") == "true" {
			node.Required = append(node.Required, name)
		}
	}

	return node, nil
}

func schemaForType(t reflect.Type) (*schemaNode, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return &schemaNode{Type: "string"}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &schemaNode{Type: "integer"}, nil

	case reflect.Float32, reflect.Float64:
		return &schemaNode{Type: "number"}, nil

	case reflect.Bool:
		return &schemaNode{Type: "boolean"}, nil

	case reflect.Slice, reflect.Array:
		items, err := schemaForType(t.Elem())
		if err != nil {
			return nil, err
		}
		return &schemaNode{Type: "array", Items: items}, nil

	case reflect.Struct:
		return schemaForStruct(t)

	case reflect.Map:
		// Maps become objects with no declared properties.
		return &schemaNode{Type: "object"}, nil

	default:
		return nil, fmt.Errorf("unsupported kind %s", t.Kind())
	}
}

// toSnakeCase converts a CamelCase string to snake_case.
func toSnakeCase(s string) string {
	if s == "" {
		return ""
	}
	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
