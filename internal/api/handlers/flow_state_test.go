package handlers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DonationService/internal/api/handlers"
	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/workflow"
)

func TestParseAnswers(t *testing.T) {
	answers, err := handlers.ParseAnswers([]handlers.AnswerRequest{
		{Section: "recent_risk", ItemID: "tattoo", Value: "yes"},
		{Section: "recent_risk", ItemID: "surgery", Value: "No"},
		{Section: "recent_risk", ItemID: "travel", Value: ""},
	})
	require.NoError(t, err)
	assert.Equal(t, []workflow.AnswerInput{
		{SectionID: "recent_risk", ItemID: "tattoo", Value: domain.AnswerYes},
		{SectionID: "recent_risk", ItemID: "surgery", Value: domain.AnswerNo},
		{SectionID: "recent_risk", ItemID: "travel", Value: domain.AnswerUnanswered},
	}, answers)

	_, err = handlers.ParseAnswers([]handlers.AnswerRequest{
		{Section: "recent_risk", ItemID: "tattoo", Value: "No"},
		{Section: "recent_risk", ItemID: "surgery", Value: "maybe"},
	})
	var verr *workflow.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.FieldErrors, "answers[1]")
}

func TestFlowStateRequest_ParseDate(t *testing.T) {
	s := handlers.FlowStateRequest{}
	date, err := s.ParseDate()
	require.NoError(t, err)
	assert.True(t, date.IsZero())

	s.Date = "2024-04-18"
	date, err = s.ParseDate()
	require.NoError(t, err)
	assert.Equal(t, 18, date.Day())

	s.Date = "18.04.2024"
	_, err = s.ParseDate()
	assert.ErrorIs(t, err, workflow.ErrValidation)
}
