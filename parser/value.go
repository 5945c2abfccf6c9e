package parser

import (
	"encoding/json"
	"strconv"
)

// Helpers for probing decoded JSON (map[string]interface{}, []interface{},
// string, float64, bool, nil) without assuming its shape. Every helper
// returns the zero value when the shape does not match.

// field returns v[key] when v is an object.
func field(v interface{}, key string) interface{} {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	return m[key]
}

// path walks nested objects one key at a time.
func path(v interface{}, keys ...string) interface{} {
	for _, k := range keys {
		v = field(v, k)
		if v == nil {
			return nil
		}
	}
	return v
}

func firstNonNil(vals ...interface{}) interface{} {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asNumber(v interface{}) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

// stringPtr returns a pointer to v when it is a non-empty string.
func stringPtr(v interface{}) *string {
	s, ok := asString(v)
	if !ok || s == "" {
		return nil
	}
	return &s
}

// stringify renders any decoded JSON value as text.
func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return "null"
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
