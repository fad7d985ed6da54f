package create_appointment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	handler "github.com/m04kA/SMC-DonationService/internal/api/handlers/create_appointment"
	"github.com/m04kA/SMC-DonationService/internal/api/middleware"
	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/service/drafts/models"
	submitAppointment "github.com/m04kA/SMC-DonationService/internal/usecase/submit_appointment"
	"github.com/m04kA/SMC-DonationService/internal/workflow"
	"github.com/m04kA/SMC-DonationService/pkg/logger"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *submitAppointment.Request) (*submitAppointment.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*submitAppointment.Response)
	return resp, args.Error(1)
}

func post(h *handler.Handler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	r = r.WithContext(middleware.WithIdentity(r.Context(), 3, "sess-3"))
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

const validBody = `{
	"facilityId": 1,
	"date": "2024-04-18",
	"time": "9:00 AM",
	"answers": [{"section": "prior_donation", "itemId": "donated_before", "value": "No"}]
}`

func TestHandle_Created(t *testing.T) {
	draftID := uuid.New()
	draft := &domain.AppointmentDraft{
		ID:             draftID,
		DonorID:        3,
		DonorName:      "Ana",
		FacilityID:     1,
		FacilityName:   "Central",
		Date:           time.Date(2024, 4, 18, 0, 0, 0, 0, time.UTC),
		StartTime:      "09:00",
		Answers:        []domain.AnsweredItem{{SectionID: "prior_donation", ItemID: "donated_before", Answer: domain.AnswerNo}},
		RuleSetVersion: "2024.1",
		CreatedAt:      time.Date(2024, 4, 17, 8, 0, 0, 0, time.UTC),
	}

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *submitAppointment.Request) bool {
		return req.DonorID == 3 && req.SessionID == "sess-3" && req.FacilityID == 1 &&
			req.Time == "9:00 AM" && len(req.Answers) == 1 && req.Answers[0].Value == domain.AnswerNo
	})).Return(&submitAppointment.Response{Draft: draft}, nil)

	rec := post(handler.NewHandler(uc, logger.Nop()), validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body models.DraftResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, draftID.String(), body.ID)
	assert.Equal(t, "2024-04-18", body.Date)
	assert.Equal(t, "09:00", body.StartTime)
	assert.Equal(t, "9:00 AM", body.TimeLabel)
	assert.Equal(t, "2024-04-17T08:00:00Z", body.CreatedAt)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{name: "bad json", body: `[]`, wantStatus: http.StatusBadRequest},
		{name: "bad date", body: `{"facilityId":1,"date":"04/18/2024","time":"9:00 AM"}`, wantStatus: http.StatusBadRequest},
		{name: "missing selection", body: `{"facilityId":1}`, ucErr: submitAppointment.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "facility not found", body: validBody, ucErr: submitAppointment.ErrFacilityNotFound, wantStatus: http.StatusNotFound},
		{name: "locked", body: validBody, ucErr: &workflow.StepLockedError{RedirectTo: domain.StepSchedule}, wantStatus: http.StatusConflict},
		{name: "already submitted", body: validBody, ucErr: workflow.ErrAlreadySubmitted, wantStatus: http.StatusConflict},
		{name: "not eligible", body: validBody, ucErr: &workflow.NotEligibleError{Reasons: []string{"r"}}, wantStatus: http.StatusUnprocessableEntity},
		{name: "saver failure", body: validBody, ucErr: workflow.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := post(handler.NewHandler(uc, logger.Nop()), tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			uc.AssertExpectations(t)
		})
	}
}
