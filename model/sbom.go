// Package model holds the request-scoped view of an uploaded SPDX document.
//
// The document is kept untyped on purpose: field presence is tested by key
// membership, so absent keys, explicit nulls and unknown casings behave
// exactly as they appear in the uploaded JSON. A field under a different
// casing or synonym key is silently dropped, never flagged.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidJSON marks input that failed to parse as JSON at all.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrNotObject marks valid JSON whose root is not an object.
	ErrNotObject = errors.New("document root is not a JSON object")
)

// Document is an untyped SPDX document or one of its nested objects.
type Document map[string]any

// Parse decodes an uploaded JSON document. Parse failures wrap
// ErrInvalidJSON; a valid non-object root returns ErrNotObject.
func Parse(data []byte) (Document, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return Document(obj), nil
}

// Has reports whether the key is present, even with a null value.
func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Value returns the raw value for key, nil when absent.
func (d Document) Value(key string) any {
	return d[key]
}

// StringOr returns the value for key rendered as a string, or fallback
// when the key is absent or null.
func (d Document) StringOr(key, fallback string) string {
	v, ok := d[key]
	if !ok || v == nil {
		return fallback
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", s)
	}
}

// Object returns the nested object under key and whether the key is
// present. A present key holding a non-object reports presence with an
// error so callers fail closed instead of skipping it.
func (d Document) Object(key string) (Document, bool, error) {
	v, ok := d[key]
	if !ok {
		return nil, false, nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, true, fmt.Errorf("field %q: expected an object, got %T", key, v)
	}
	return Document(obj), true, nil
}

// Objects returns the list of objects under key. An absent key, a null
// value or an empty list yields a nil slice; a present non-list value, or
// a list entry that is not an object, is an error.
func (d Document) Objects(key string) ([]Document, error) {
	v, ok := d[key]
	if !ok || v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q: expected a list, got %T", key, v)
	}
	out := make([]Document, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q: entry %d is not an object", key, i)
		}
		out = append(out, Document(obj))
	}
	return out, nil
}
