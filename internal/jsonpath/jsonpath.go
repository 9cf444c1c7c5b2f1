// Package jsonpath evaluates JSONPath expressions against API responses,
// backing the `raw --query` flag.
package jsonpath

import (
	"encoding/json"
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// Validate checks a JSONPath expression without evaluating it, so flag
// errors surface before any request is made.
func Validate(path string) error {
	if _, err := jp.ParseString(path); err != nil {
		return fmt.Errorf("invalid JSONPath expression %q: %w", path, err)
	}
	return nil
}

// Extract applies a JSONPath expression to a raw JSON document and returns
// every matching value, in document order.
func Extract(raw []byte, path string) ([]any, error) {
	expr, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath expression %q: %w", path, err)
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("response is not JSON: %w", err)
	}
	return expr.Get(data), nil
}

// Render formats extraction results for the terminal: a single string
// prints bare, everything else prints as indented JSON. An empty result
// set renders as an empty string.
func Render(results []any) string {
	switch len(results) {
	case 0:
		return ""
	case 1:
		if s, ok := results[0].(string); ok {
			return s
		}
		return oj.JSON(results[0], 2)
	default:
		return oj.JSON(results, 2)
	}
}
