package jsonutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalWithContext(t *testing.T) {
	type TestStruct struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`{"name":"test"}`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
		{
			name:    "empty body",
			data:    []byte("  "),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v TestStruct
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "test context")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "test", v.Name)
		})
	}
}

func TestMarshal(t *testing.T) {
	b, err := Marshal(map[string]string{"search": "title"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"search":"title"}`, string(b))
}

func TestUnmarshalMap(t *testing.T) {
	m, ok := UnmarshalMap([]byte(`{"success":false,"error":404,"message":"resource not found"}`))
	require.True(t, ok)
	assert.Equal(t, "resource not found", GetString(m, "message"))
	assert.Equal(t, float64(404), m["error"])

	_, ok = UnmarshalMap([]byte(`<html>oops</html>`))
	assert.False(t, ok)
	_, ok = UnmarshalMap([]byte(`null`))
	assert.False(t, ok)
}

func TestGetString(t *testing.T) {
	m := map[string]interface{}{
		"str":  "value",
		"num":  42.0,
		"bool": true,
		"nil":  nil,
	}

	tests := []struct {
		key  string
		want string
	}{
		{"str", "value"},
		{"num", ""},
		{"bool", ""},
		{"nil", ""},
		{"missing", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GetString(m, tt.key), "key=%s", tt.key)
	}
}
