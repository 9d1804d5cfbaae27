// Package jsonutil provides the JSON codec used at the HTTP boundary along
// with small helpers for loosely typed payloads such as error envelopes.
package jsonutil

import (
	"bytes"
	"fmt"

	"github.com/bytedance/sonic"
)

// api is configured for encoding/json compatibility so that custom
// UnmarshalJSON methods and struct tags behave as the stdlib would.
var api = sonic.ConfigStd

// Marshal encodes v.
func Marshal(v interface{}) ([]byte, error) {
	return api.Marshal(v)
}

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%s: empty body", context)
	}
	if err := api.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// UnmarshalMap decodes a JSON object into a generic map. Returns false when
// data is not an object.
func UnmarshalMap(data []byte) (map[string]interface{}, bool) {
	var m map[string]interface{}
	if err := api.Unmarshal(data, &m); err != nil || m == nil {
		return nil, false
	}
	return m, true
}

// GetString safely extracts a string value from a map[string]interface{}.
// Returns the value if it's a string, otherwise returns empty string.
func GetString(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}
