package requests

type PatientForm struct {
	FirstName   string `form:"firstName" validate:"required,max=100"`
	LastName    string `form:"lastName" validate:"required,max=100"`
	BirthDate   string `form:"birthDate" validate:"required,datetime=2006-01-02"`
	Gender      string `form:"gender" validate:"required,max=10"`
	PhoneNumber string `form:"phoneNumber" validate:"omitempty,phone,max=30"`
	Address     string `form:"address" validate:"omitempty,max=255"`
}
