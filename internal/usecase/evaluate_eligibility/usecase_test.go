package evaluate_eligibility_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/eligibility"
	"github.com/m04kA/SMC-DonationService/internal/stepgate"
	uc "github.com/m04kA/SMC-DonationService/internal/usecase/evaluate_eligibility"
	"github.com/m04kA/SMC-DonationService/internal/workflow"
)

type clock struct{}

func (clock) Now() time.Time { return time.Date(2024, 4, 14, 10, 0, 0, 0, time.UTC) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type verdicts map[string]int

func (v verdicts) IncVerdict(outcome string) { v[outcome]++ }
func (v verdicts) IncSlotFallback()          {}
func (v verdicts) IncDraftSubmitted()        {}
func (v verdicts) IncStepAdvance(string)     {}

type donors struct{ err error }

func (d donors) FindDonor(_ context.Context, id int64) (*domain.Donor, error) {
	if d.err != nil {
		return nil, d.err
	}
	return &domain.Donor{ID: id, Gender: domain.GenderFemale}, nil
}

type history struct{ calls int }

func (h *history) GetAppointmentsWithGracefulDegradation(context.Context, int64) ([]domain.Appointment, bool) {
	h.calls++
	return nil, false
}

func newUseCase(d donors, metrics verdicts) *uc.UseCase {
	return newUseCaseWithHistory(d, metrics, &history{})
}

func newUseCaseWithHistory(d donors, metrics verdicts, h *history) *uc.UseCase {
	factory := workflow.NewFactory(workflow.Deps{
		Donors:  d,
		History: h,
		Gate:    stepgate.NewGate(stepgate.NewMemoryStore(), metrics, nopLogger{}),
		Clock:   clock{},
		Metrics: metrics,
		Logger:  nopLogger{},
	})
	return uc.NewUseCase(factory, metrics, nopLogger{})
}

func answers(sectionIDs ...string) []workflow.AnswerInput {
	wanted := map[string]bool{}
	for _, id := range sectionIDs {
		wanted[id] = true
	}
	var out []workflow.AnswerInput
	for _, s := range eligibility.DefaultRuleSet().Sections {
		if len(sectionIDs) > 0 && !wanted[s.ID] {
			continue
		}
		for _, it := range s.Items {
			out = append(out, workflow.AnswerInput{SectionID: s.ID, ItemID: it.ID, Value: domain.AnswerNo})
		}
	}
	return out
}

func TestExecute(t *testing.T) {
	metrics := verdicts{}
	useCase := newUseCase(donors{}, metrics)
	ctx := context.Background()

	// женский раздел обязателен для донора-женщины
	resp, err := useCase.Execute(ctx, &uc.Request{
		DonorID: 1,
		Answers: answers(eligibility.SectionPriorDonation, eligibility.SectionRecentRisk, eligibility.SectionGeneralHealth),
	})
	require.NoError(t, err)
	assert.Equal(t, eligibility.OutcomeIncomplete, resp.Outcome)
	assert.Nil(t, resp.Verdict.Eligible)
	assert.Empty(t, resp.Verdict.Reasons)

	all := answers()
	all = append(all, workflow.AnswerInput{SectionID: eligibility.SectionFemaleOnly, ItemID: "pregnant", Value: domain.AnswerYes})
	resp, err = useCase.Execute(ctx, &uc.Request{DonorID: 1, Answers: all})
	require.NoError(t, err)
	assert.Equal(t, eligibility.OutcomeNotEligible, resp.Outcome)
	assert.Len(t, resp.Verdict.Reasons, 1)

	step := domain.StepDonationHistory
	resp, err = useCase.Execute(ctx, &uc.Request{DonorID: 1, Answers: answers(eligibility.SectionPriorDonation), Step: &step})
	require.NoError(t, err)
	assert.Equal(t, eligibility.OutcomeEligible, resp.Outcome)

	assert.Equal(t, 1, metrics[eligibility.OutcomeIncomplete])
	assert.Equal(t, 1, metrics[eligibility.OutcomeNotEligible])
	assert.Equal(t, 1, metrics[eligibility.OutcomeEligible])
}

func TestExecute_SkipsHistoryFetch(t *testing.T) {
	h := &history{}
	useCase := newUseCaseWithHistory(donors{}, verdicts{}, h)

	_, err := useCase.Execute(context.Background(), &uc.Request{DonorID: 1, Answers: answers()})
	require.NoError(t, err)
	assert.Zero(t, h.calls)
}

func TestExecute_Errors(t *testing.T) {
	ctx := context.Background()

	bad := domain.StepReview
	_, err := newUseCase(donors{}, verdicts{}).Execute(ctx, &uc.Request{DonorID: 1, Step: &bad})
	assert.ErrorIs(t, err, uc.ErrInvalidInput)

	_, err = newUseCase(donors{}, verdicts{}).Execute(ctx, &uc.Request{
		DonorID: 1,
		Answers: []workflow.AnswerInput{{SectionID: "x", ItemID: "y", Value: domain.AnswerNo}},
	})
	assert.ErrorIs(t, err, workflow.ErrValidation)

	_, err = newUseCase(donors{err: errors.New("timeout")}, verdicts{}).Execute(ctx, &uc.Request{DonorID: 1})
	assert.ErrorIs(t, err, workflow.ErrDonorUnavailable)
}
