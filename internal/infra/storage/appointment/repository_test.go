package appointment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/infra/storage/appointment"
)

func TestEncodeAnswers(t *testing.T) {
	items := []domain.AnsweredItem{
		{SectionID: "prior_donation", ItemID: "donated_before", Answer: domain.AnswerNo},
		{SectionID: "recent_risk", ItemID: "tattoo_piercing", Answer: domain.AnswerYes},
	}

	encoded := appointment.EncodeAnswers(items)
	assert.Equal(t, []string{"prior_donation/donated_before=No", "recent_risk/tattoo_piercing=Yes"}, encoded)

	decoded, err := appointment.DecodeAnswers(encoded)
	require.NoError(t, err)
	assert.Equal(t, items, decoded)
}

func TestDecodeAnswers_Invalid(t *testing.T) {
	for _, raw := range []string{"no-equals", "=Yes", "section=Yes", "a/b=Maybe", "a/b="} {
		_, err := appointment.DecodeAnswers([]string{raw})
		assert.ErrorIs(t, err, appointment.ErrInvalidAnswer, raw)
	}
}
