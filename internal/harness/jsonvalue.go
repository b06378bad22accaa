// internal/harness/jsonvalue.go
package harness

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSONKind identifies the concrete type stored in a JSONValue.
type JSONKind int

const (
	JSONNull JSONKind = iota
	JSONString
	JSONNumber
	JSONBool
	JSONObject
	JSONArray
)

// JSONValue represents an arbitrary JSON value without using empty interfaces.
// Grading rules in the JSON and argument suites pattern-match on Kind.
type JSONValue struct {
	Kind   JSONKind
	String string
	Number float64
	Bool   bool
	Object map[string]JSONValue
	Array  []JSONValue
}

// ParseJSONValue decodes arbitrary JSON text into the typed representation.
func ParseJSONValue(data []byte) (JSONValue, error) {
	var v JSONValue
	if err := json.Unmarshal(bytes.TrimSpace(data), &v); err != nil {
		return JSONValue{}, err
	}
	return v, nil
}

// UnmarshalJSON decodes a JSON value into the typed JSONValue representation.
func (v *JSONValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty json value")
	}
	switch trimmed[0] {
	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		v.Kind = JSONObject
		v.Object = make(map[string]JSONValue, len(raw))
		for key, value := range raw {
			var child JSONValue
			if err := json.Unmarshal(value, &child); err != nil {
				return err
			}
			v.Object[key] = child
		}
		return nil
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		v.Kind = JSONArray
		v.Array = make([]JSONValue, 0, len(raw))
		for _, value := range raw {
			var child JSONValue
			if err := json.Unmarshal(value, &child); err != nil {
				return err
			}
			v.Array = append(v.Array, child)
		}
		return nil
	case '"':
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		v.Kind = JSONString
		v.String = value
		return nil
	case 't', 'f':
		var value bool
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		v.Kind = JSONBool
		v.Bool = value
		return nil
	case 'n':
		if string(trimmed) != "null" {
			return fmt.Errorf("invalid json literal %q", trimmed)
		}
		v.Kind = JSONNull
		return nil
	default:
		var value float64
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		v.Kind = JSONNumber
		v.Number = value
		return nil
	}
}

// Field returns the named object member and whether it exists.
func (v JSONValue) Field(name string) (JSONValue, bool) {
	if v.Kind != JSONObject {
		return JSONValue{}, false
	}
	child, ok := v.Object[name]
	return child, ok
}

// IsInteger reports whether the value is a number with no fractional part.
func (v JSONValue) IsInteger() bool {
	return v.Kind == JSONNumber && v.Number == float64(int64(v.Number))
}
