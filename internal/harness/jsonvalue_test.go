// internal/harness/jsonvalue_test.go
package harness

import "testing"

func TestParseJSONValueKinds(t *testing.T) {
	cases := []struct {
		in   string
		kind JSONKind
	}{
		{`null`, JSONNull},
		{`"hi"`, JSONString},
		{`3.14`, JSONNumber},
		{`true`, JSONBool},
		{`{"a": 1}`, JSONObject},
		{`[1, 2]`, JSONArray},
	}
	for _, c := range cases {
		v, err := ParseJSONValue([]byte(c.in))
		if err != nil {
			t.Errorf("ParseJSONValue(%q) error: %v", c.in, err)
			continue
		}
		if v.Kind != c.kind {
			t.Errorf("ParseJSONValue(%q) kind = %d, want %d", c.in, v.Kind, c.kind)
		}
	}
}

func TestParseJSONValueNested(t *testing.T) {
	v, err := ParseJSONValue([]byte(`{"user": {"name": "ada", "age": 36}, "tags": ["a", "b"]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	user, ok := v.Field("user")
	if !ok || user.Kind != JSONObject {
		t.Fatalf("user field missing or wrong kind")
	}
	name, ok := user.Field("name")
	if !ok || name.String != "ada" {
		t.Fatalf("name = %+v", name)
	}
	age, ok := user.Field("age")
	if !ok || !age.IsInteger() || age.Number != 36 {
		t.Fatalf("age = %+v", age)
	}

	tags, ok := v.Field("tags")
	if !ok || tags.Kind != JSONArray || len(tags.Array) != 2 {
		t.Fatalf("tags = %+v", tags)
	}
}

func TestParseJSONValueInvalid(t *testing.T) {
	for _, in := range []string{``, `{`, `nope`, `{"a": }`} {
		if _, err := ParseJSONValue([]byte(in)); err == nil {
			t.Errorf("ParseJSONValue(%q) should fail", in)
		}
	}
}

func TestIsInteger(t *testing.T) {
	intVal, _ := ParseJSONValue([]byte(`5`))
	if !intVal.IsInteger() {
		t.Error("5 should be integral")
	}
	floatVal, _ := ParseJSONValue([]byte(`5.5`))
	if floatVal.IsInteger() {
		t.Error("5.5 should not be integral")
	}
	strVal, _ := ParseJSONValue([]byte(`"5"`))
	if strVal.IsInteger() {
		t.Error("string should not be integral")
	}
}

func TestFieldOnNonObject(t *testing.T) {
	v, _ := ParseJSONValue([]byte(`[1]`))
	if _, ok := v.Field("a"); ok {
		t.Error("Field on array should report absent")
	}
}
