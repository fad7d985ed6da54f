package domain

// Gender as reported by the donor identity provider
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Donor is the authenticated donor identity
type Donor struct {
	ID     int64
	Name   string
	Gender Gender
	Email  string
}
