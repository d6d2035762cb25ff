package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patch struct {
	Body Value[string] `json:"body"`
}

func TestValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantSet bool
		want    *string
	}{
		{name: "absent", input: `{}`, wantSet: false, want: nil},
		{name: "null", input: `{"body": null}`, wantSet: true, want: nil},
		{name: "empty string", input: `{"body": ""}`, wantSet: true, want: ptr("")},
		{name: "value", input: `{"body": "edited"}`, wantSet: true, want: ptr("edited")},
		{name: "other keys ignored", input: `{"username": "ann"}`, wantSet: false, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p patch
			require.NoError(t, json.Unmarshal([]byte(tt.input), &p))
			assert.Equal(t, tt.wantSet, p.Body.Set)
			assert.Equal(t, tt.want, p.Body.Value)
		})
	}
}

func TestValue_UnmarshalJSON_WrongType(t *testing.T) {
	var p patch
	err := json.Unmarshal([]byte(`{"body": 42}`), &p)
	require.Error(t, err)
}

func TestValue_Or(t *testing.T) {
	current := ptr("original")

	assert.Equal(t, current, Value[string]{}.Or(current))
	assert.Nil(t, Null[string]().Or(current))
	assert.Equal(t, "edited", *Of("edited").Or(current))
}

func TestValue_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(patch{Body: Of("hi")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"body": "hi"}`, string(out))

	out, err = json.Marshal(patch{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"body": null}`, string(out))
}

func ptr(s string) *string { return &s }
