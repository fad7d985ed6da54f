package donorservice

import (
	"fmt"

	"github.com/m04kA/SMC-DonationService/internal/domain"
)

// Donor модель донора из DonorService
type Donor struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Gender string `json:"gender"` // Male, Female, Other
	Email  string `json:"email"`
}

func (d *Donor) toDomain() (*domain.Donor, error) {
	gender := domain.Gender(d.Gender)
	switch gender {
	case domain.GenderMale, domain.GenderFemale, domain.GenderOther:
	default:
		return nil, fmt.Errorf("%w: unknown gender %q", ErrInvalidResponse, d.Gender)
	}

	return &domain.Donor{
		ID:     d.ID,
		Name:   d.Name,
		Gender: gender,
		Email:  d.Email,
	}, nil
}
