package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"age": {"type": "integer", "minimum": 0},
		"tags": {"type": "array", "items": {"type": "string"}}
	},
	"required": ["name"],
	"additionalProperties": false
}`

func TestSchema_ValidateJSON(t *testing.T) {
	s, err := Compile("person.json", []byte(personSchema))
	require.NoError(t, err)

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid data", data: `{"name": "Ana", "age": 30}`},
		{name: "valid without optional field", data: `{"name": "Luis"}`},
		{name: "missing required field", data: `{"age": 25}`, wantError: true, errorMsg: "required"},
		{name: "wrong type", data: `{"name": "Ana", "age": "thirty"}`, wantError: true, errorMsg: "/age"},
		{name: "negative age", data: `{"name": "Ana", "age": -1}`, wantError: true, errorMsg: "minimum"},
		{name: "unknown field", data: `{"name": "Ana", "nick": "a"}`, wantError: true, errorMsg: "additionalProperties"},
		{name: "invalid JSON", data: `{"name": `, wantError: true, errorMsg: "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ValidateJSON([]byte(tt.data))
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchema_ValidateYAML(t *testing.T) {
	s := MustCompile("person.json", []byte(personSchema))

	assert.NoError(t, s.ValidateYAML([]byte("name: Ana\nage: 30\ntags: [a, b]\n")))

	err := s.ValidateYAML([]byte("name: Ana\ntags: [1, {x: y}]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/tags/1")

	err = s.ValidateYAML([]byte("name: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YAML")

	// An empty document is an empty object and misses the required name
	assert.Error(t, s.ValidateYAML(nil))
}

func TestCompile_InvalidSchema(t *testing.T) {
	_, err := Compile("broken.json", []byte(`{"type": 5}`))
	assert.Error(t, err)

	_, err = Compile("unparsable.json", []byte(`{`))
	assert.Error(t, err)

	assert.Panics(t, func() { MustCompile("broken.json", []byte(`{"type": 5}`)) })
}
