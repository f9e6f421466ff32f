package utils

import (
	"clinic-portal/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLoginUserRequest(t *testing.T) {
	t.Run("Username Trimmed", func(t *testing.T) {
		request := &requests.LoginUser{Username: "  user  ", Password: " secret "}

		SanitizeLoginUserRequest(request)

		assert.Equal(t, "user", request.Username, "username should be trimmed")
		assert.Equal(t, " secret ", request.Password, "password must be kept as typed")
	})

	t.Run("Return URL Trimmed", func(t *testing.T) {
		request := &requests.LoginUser{ReturnURL: " /patient/12 "}

		SanitizeLoginUserRequest(request)

		assert.Equal(t, "/patient/12", request.ReturnURL)
	})
}

func TestSanitizePatientFormRequest(t *testing.T) {
	t.Run("Fields Trimmed", func(t *testing.T) {
		request := &requests.PatientForm{
			FirstName:   "  Test ",
			LastName:    " TestNone",
			BirthDate:   " 1966-12-31 ",
			Gender:      " F ",
			PhoneNumber: " 100-222-3333 ",
		}

		SanitizePatientFormRequest(request)

		assert.Equal(t, "Test", request.FirstName)
		assert.Equal(t, "TestNone", request.LastName)
		assert.Equal(t, "1966-12-31", request.BirthDate)
		assert.Equal(t, "F", request.Gender)
		assert.Equal(t, "100-222-3333", request.PhoneNumber)
	})

	t.Run("Address Whitespace Collapsed", func(t *testing.T) {
		request := &requests.PatientForm{Address: "  1 Brookside \n St  "}

		SanitizePatientFormRequest(request)

		assert.Equal(t, "1 Brookside St", request.Address)
	})

	t.Run("Empty Fields", func(t *testing.T) {
		request := &requests.PatientForm{}

		SanitizePatientFormRequest(request)

		assert.Equal(t, requests.PatientForm{}, *request)
	})
}
