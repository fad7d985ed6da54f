package domain

import "github.com/m04kA/SMC-DonationService/pkg/ptr"

// Facility is a hospital or blood bank accepting donations
type Facility struct {
	ID             int64
	Name           string
	Address        string
	OperatingHours *string // e.g. "Mon-Fri 09:00 - 17:00"; nil = open every day
}

// HasOperatingHours returns true if the facility publishes an operating-hours description
func (f *Facility) HasOperatingHours() bool {
	return ptr.Deref(f.OperatingHours, "") != ""
}
