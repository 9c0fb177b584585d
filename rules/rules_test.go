package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conformd/conform"
)

func TestNonEmpty(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{name: "plain string", value: "x"},
		{name: "empty string", value: "", wantErr: true},
		{name: "whitespace only", value: "   \t", wantErr: true},
		{name: "not a string", value: 42, wantErr: true},
		{name: "nil", value: nil, wantErr: true},
	}

	v := NonEmpty()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := v(tt.value, conform.RootPath())
			if tt.wantErr {
				assert.NotNil(t, f)
			} else {
				assert.Nil(t, f)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	v := Match(`^v[0-9]+$`)

	assert.Nil(t, v("v12", conform.RootPath()))
	assert.NotNil(t, v("12", conform.RootPath()))
	assert.NotNil(t, v(12, conform.RootPath()))
}

func TestMatchInvalidPattern(t *testing.T) {
	// A bad pattern must not panic; it fails every value with the
	// compile error instead.
	v := Match(`[`)

	f := v("anything", conform.RootPath())
	require.NotNil(t, f)
	assert.Contains(t, f.Message, "invalid pattern")
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{name: "plain address", value: "dev@example.com"},
		{name: "subdomain", value: "a.b@mail.example.org"},
		{name: "missing at", value: "example.com", wantErr: true},
		{name: "missing domain dot", value: "dev@example", wantErr: true},
		{name: "embedded space", value: "d ev@example.com", wantErr: true},
		{name: "not a string", value: 7, wantErr: true},
	}

	v := Email()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := v(tt.value, conform.RootPath())
			if tt.wantErr {
				assert.NotNil(t, f)
			} else {
				assert.Nil(t, f)
			}
		})
	}
}

func TestUUID(t *testing.T) {
	v := UUID()

	assert.Nil(t, v("6ba7b810-9dad-11d1-80b4-00c04fd430c8", conform.RootPath()))
	assert.NotNil(t, v("not-a-uuid", conform.RootPath()))
	assert.NotNil(t, v(42, conform.RootPath()))
}

func TestPositive(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{name: "int", value: 1},
		{name: "float", value: 0.5},
		{name: "uint", value: uint(3)},
		{name: "zero", value: 0, wantErr: true},
		{name: "negative", value: -2, wantErr: true},
		{name: "not a number", value: "1", wantErr: true},
		{name: "nil", value: nil, wantErr: true},
	}

	v := Positive()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := v(tt.value, conform.RootPath())
			if tt.wantErr {
				assert.NotNil(t, f)
			} else {
				assert.Nil(t, f)
			}
		})
	}
}

func TestRulesComposeIntoShapes(t *testing.T) {
	spec := map[string]any{
		"id":    UUID(),
		"email": Email(),
		"count": Positive(),
	}

	valid := map[string]any{
		"id":    "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"email": "dev@example.com",
		"count": 3,
	}
	require.NoError(t, conform.Check(valid, spec))

	err := conform.Check(map[string]any{
		"id":    "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"email": "nope",
		"count": 3,
	}, spec)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "email |> "))
}
