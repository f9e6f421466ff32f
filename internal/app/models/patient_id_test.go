package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientIDUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected PatientID
	}{
		{name: "Number", input: `{"id":1}`, expected: "1"},
		{name: "Large number", input: `{"id":9007199254740993}`, expected: "9007199254740993"},
		{name: "String", input: `{"id":"abc-1"}`, expected: "abc-1"},
		{name: "Null", input: `{"id":null}`, expected: ""},
		{name: "Missing", input: `{}`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patient Patient
			require.NoError(t, json.Unmarshal([]byte(tt.input), &patient))
			assert.Equal(t, tt.expected, patient.ID)
		})
	}

	t.Run("Rejects other JSON types", func(t *testing.T) {
		var patient Patient
		assert.Error(t, json.Unmarshal([]byte(`{"id":true}`), &patient))
	})
}

func TestPatientIDMarshal(t *testing.T) {
	t.Run("Numeric id is written as a number", func(t *testing.T) {
		data, err := json.Marshal(PatientID("42"))
		require.NoError(t, err)
		assert.Equal(t, `42`, string(data))
	})

	t.Run("Other ids are written as strings", func(t *testing.T) {
		data, err := json.Marshal(PatientID("abc-1"))
		require.NoError(t, err)
		assert.Equal(t, `"abc-1"`, string(data))
	})

	t.Run("Round trip keeps a numeric id", func(t *testing.T) {
		data, err := json.Marshal(Patient{ID: "7", FirstName: "Grace"})
		require.NoError(t, err)

		var decoded Patient
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, PatientID("7"), decoded.ID)
	})
}
