// Package payload gives fail-soft access to loosely shaped upstream JSON.
//
// Upstream documents are decoded into plain maps with numbers kept as
// json.Number, so a value renders exactly as the upstream wrote it.
package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Object is a decoded JSON object.
type Object map[string]any

// Decode reads a single JSON object from r.
func Decode(r io.Reader) (Object, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var obj Object
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.New("document is null")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON document")
	}

	return obj, nil
}

// AsObject reports whether v is a JSON object.
func AsObject(v any) (Object, bool) {
	switch o := v.(type) {
	case Object:
		return o, true
	case map[string]any:
		return Object(o), true
	}
	return nil, false
}

// Has reports whether key is present, even when its value is null.
func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Object returns the nested object stored under key.
func (o Object) Object(key string) (Object, bool) {
	return AsObject(o[key])
}

// Array returns the array stored under key.
func (o Object) Array(key string) ([]any, bool) {
	arr, ok := o[key].([]any)
	return arr, ok
}

// String returns the value under key when it is a non-null JSON string.
func (o Object) String(key string) (string, bool) {
	s, ok := o[key].(string)
	return s, ok
}

// Text renders the value under key, or fallback when it is missing or null.
func (o Object) Text(key, fallback string) string {
	v, ok := o[key]
	if !ok {
		return fallback
	}
	return Render(v, fallback)
}

// Render turns a scalar JSON value into text. Null renders as fallback.
func Render(v any, fallback string) string {
	switch t := v.(type) {
	case nil:
		return fallback
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
