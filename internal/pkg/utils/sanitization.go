package utils

import (
	"clinic-portal/internal/pkg/dto/requests"
	"strings"
)

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Username = strings.TrimSpace(input.Username)
	input.ReturnURL = strings.TrimSpace(input.ReturnURL)
}

func SanitizePatientFormRequest(input *requests.PatientForm) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.BirthDate = strings.TrimSpace(input.BirthDate)
	input.Gender = strings.TrimSpace(input.Gender)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.Address = strings.Join(strings.Fields(input.Address), " ")
}
