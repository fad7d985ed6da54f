package evaluate_eligibility_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	handler "github.com/m04kA/SMC-DonationService/internal/api/handlers/evaluate_eligibility"
	"github.com/m04kA/SMC-DonationService/internal/api/middleware"
	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/eligibility"
	evaluateEligibility "github.com/m04kA/SMC-DonationService/internal/usecase/evaluate_eligibility"
	"github.com/m04kA/SMC-DonationService/internal/workflow"
	"github.com/m04kA/SMC-DonationService/pkg/logger"
	"github.com/m04kA/SMC-DonationService/pkg/ptr"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *evaluateEligibility.Request) (*evaluateEligibility.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*evaluateEligibility.Response)
	return resp, args.Error(1)
}

func post(h *handler.Handler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/eligibility/evaluate", strings.NewReader(body))
	r = r.WithContext(middleware.WithIdentity(r.Context(), 8, "sess-8"))
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

func TestHandle_NotEligibleIsOK(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *evaluateEligibility.Request) bool {
		return req.DonorID == 8 && req.Step == nil && len(req.Answers) == 1 &&
			req.Answers[0].SectionID == eligibility.SectionRecentRisk && req.Answers[0].Value == domain.AnswerYes
	})).Return(&evaluateEligibility.Response{
		Verdict: domain.Verdict{
			Eligible: ptr.Ptr(false),
			Reasons:  []string{"Tattoo, piercing or acupuncture within the last 12 months"},
		},
		Outcome: eligibility.OutcomeNotEligible,
	}, nil)

	rec := post(handler.NewHandler(uc, logger.Nop()), `{"answers":[{"section":"recent_risk","itemId":"tattoo","value":"Yes"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body handler.VerdictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, eligibility.OutcomeNotEligible, body.Outcome)
	require.NotNil(t, body.Eligible)
	assert.False(t, *body.Eligible)
	assert.Len(t, body.Reasons, 1)
}

func TestHandle_Incomplete(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *evaluateEligibility.Request) bool {
		return req.Step != nil && *req.Step == domain.StepDonationHistory
	})).Return(&evaluateEligibility.Response{
		Verdict: domain.Verdict{FieldErrors: map[string]string{"lastDonationDate": "required"}},
		Outcome: eligibility.OutcomeIncomplete,
	}, nil)

	rec := post(handler.NewHandler(uc, logger.Nop()), `{"answers":[],"step":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body handler.VerdictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body.Eligible)
	assert.Empty(t, body.Reasons)
	assert.Equal(t, "required", body.FieldErrors["lastDonationDate"])
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{name: "bad json", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "bad value", body: `{"answers":[{"section":"a","itemId":"b","value":"y"}]}`, wantStatus: http.StatusBadRequest},
		{name: "bad step", body: `{"answers":[],"step":4}`, ucErr: evaluateEligibility.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "unknown item", body: `{"answers":[]}`, ucErr: &workflow.ValidationError{FieldErrors: map[string]string{"answers[0]": "unknown"}}, wantStatus: http.StatusBadRequest},
		{name: "identity down", body: `{"answers":[]}`, ucErr: workflow.ErrDonorUnavailable, wantStatus: http.StatusBadGateway},
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
