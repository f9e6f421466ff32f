package models

type Patient struct {
	ID          PatientID `json:"id,omitempty"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	BirthDate   string    `json:"birthDate"`
	Gender      string    `json:"gender"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
}

// IsNew reports whether the patient has not been persisted yet.
func (p Patient) IsNew() bool {
	return p.ID == ""
}

func (p Patient) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
