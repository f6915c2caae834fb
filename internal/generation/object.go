package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Object is a decoded JSON object as returned by the model.
type Object = map[string]any

// Defaults maps top-level field names to constructors for their default
// values. Constructors run per use so that callers never share slices or
// nested maps between responses.
type Defaults map[string]func() any

// Text is a default constructor returning a constant string.
func Text(s string) func() any { return func() any { return s } }

// EmptyList is a default constructor returning an empty JSON array.
func EmptyList() any { return []any{} }

// ExtractObject trims model output down to the outermost brace pair. Models
// often wrap JSON in prose or code fences; everything before the first '{'
// and after the last '}' is discarded. Content without a brace pair is
// returned trimmed but otherwise untouched.
func ExtractObject(content string) string {
	content = strings.TrimSpace(content)
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end < start {
		return content
	}
	return content[start : end+1]
}

// ParseObject extracts and decodes a JSON object from model output.
func ParseObject(content string) (Object, error) {
	var obj Object
	if err := json.Unmarshal([]byte(ExtractObject(content)), &obj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidResponse)
	}
	return obj, nil
}

// Backfill inserts a default for every field in defaults that is absent from
// obj, or present but null. Existing values are never replaced. obj is
// modified in place and returned for convenience.
func Backfill(obj Object, defaults Defaults) Object {
	if obj == nil {
		obj = Object{}
	}
	for field, build := range defaults {
		if v, ok := obj[field]; !ok || v == nil {
			obj[field] = build()
		}
	}
	return obj
}

// GenerateObject runs one completion and returns the parsed, back-filled
// object. Completion errors and parse errors are returned unchanged so the
// caller can choose between propagating and falling back.
func GenerateObject(ctx context.Context, c Completer, req Request, defaults Defaults) (Object, error) {
	resp, err := c.Complete(ctx, req)
	if err != nil {
		return nil, err
	}
	obj, err := ParseObject(resp.Content)
	if err != nil {
		return nil, err
	}
	return Backfill(obj, defaults), nil
}

// Decode re-encodes obj into a typed value.
func Decode(obj Object, v any) error {
	raw, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return nil
}
