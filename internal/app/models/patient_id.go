package models

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// PatientID is assigned by the patient API, which sends it as a JSON number.
// It is kept as a string so routes and templates can carry it unchanged.
type PatientID string

func (id PatientID) String() string {
	return string(id)
}

// UnmarshalJSON accepts a JSON number, a JSON string or null.
func (id *PatientID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var value string
		err := json.Unmarshal(data, &value)
		if err != nil {
			return err
		}
		*id = PatientID(value)
		return nil
	}

	if len(data) == 0 || (data[0] != '-' && (data[0] < '0' || data[0] > '9')) {
		return fmt.Errorf("patient id must be a number or a string, got %s", data)
	}
	var number json.Number
	err := json.Unmarshal(data, &number)
	if err != nil {
		return fmt.Errorf("patient id must be a number or a string: %w", err)
	}
	*id = PatientID(number.String())
	return nil
}

// MarshalJSON writes numeric ids back as numbers so the patient API can bind
// them to its numeric id field.
func (id PatientID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}
