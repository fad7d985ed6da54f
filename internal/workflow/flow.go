// Package workflow drives a single donor session through the appointment flow:
// slot selection, donation history, health screening, review, confirmation and submit.
//
// A Flow is owned by one request at a time. The only shared state is the step gate.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/eligibility"
	"github.com/m04kA/SMC-DonationService/internal/stepgate"
	"github.com/m04kA/SMC-DonationService/internal/timeslot"
	"github.com/m04kA/SMC-DonationService/internal/waitingperiod"
)

// DefaultHistoryTimeout bounds the history fetch when Deps.HistoryTimeout is zero
const DefaultHistoryTimeout = 3 * time.Second

// Deps collaborators of a flow
type Deps struct {
	Donors         DonorProvider
	History        HistoryProvider
	Drafts         DraftSaver
	Gate           StepGate
	RuleSet        *domain.RuleSet
	Clock          TimeProvider
	Metrics        Metrics
	Logger         Logger
	HistoryTimeout time.Duration
}

// Selection facility, date and slot chosen on the schedule step
type Selection struct {
	Facility *domain.Facility
	Date     time.Time
	Slot     timeslot.Slot
}

// Flow state of one donor session
type Flow struct {
	deps      Deps
	sessionID string
	gateKey   string

	donor           *domain.Donor
	history         []*domain.Appointment
	historyDegraded bool

	answers   *domain.AnswerSet
	selection *Selection
}

// New loads the donor profile and appointment history. A history failure degrades
// to "no prior appointment"; a missing donor profile is an error.
func New(ctx context.Context, deps Deps, donorID int64, sessionID string) (*Flow, error) {
	return open(ctx, deps, donorID, sessionID, true)
}

// NewScreening loads only the donor profile. The flow can record answers and
// compute verdicts; its waiting period reports no prior appointment.
func NewScreening(ctx context.Context, deps Deps, donorID int64, sessionID string) (*Flow, error) {
	return open(ctx, deps, donorID, sessionID, false)
}

func open(ctx context.Context, deps Deps, donorID int64, sessionID string, withHistory bool) (*Flow, error) {
	if deps.RuleSet == nil {
		deps.RuleSet = eligibility.DefaultRuleSet()
	}
	if deps.Clock == nil {
		deps.Clock = &RealTimeProvider{}
	}
	if deps.HistoryTimeout <= 0 {
		deps.HistoryTimeout = DefaultHistoryTimeout
	}

	// 1. Получаем профиль донора
	donor, err := deps.Donors.FindDonor(ctx, donorID)
	if err != nil {
		deps.Logger.Error("Workflow: failed to get donor id=%d: %v", donorID, err)
		return nil, fmt.Errorf("%w: donor_id=%d: %v", ErrDonorUnavailable, donorID, err)
	}
	if donor == nil {
		return nil, ErrDonorNotFound
	}

	// 2. Получаем историю записей с ограничением по времени
	var (
		history  []*domain.Appointment
		degraded bool
	)
	if withHistory {
		history, degraded = fetchHistory(ctx, deps, donorID)
	}

	return &Flow{
		deps:            deps,
		sessionID:       sessionID,
		gateKey:         stepgate.SessionKey(donorID, sessionID),
		donor:           donor,
		history:         history,
		historyDegraded: degraded,
		answers:         domain.NewAnswerSet(),
	}, nil
}

func fetchHistory(ctx context.Context, deps Deps, donorID int64) ([]*domain.Appointment, bool) {
	historyCtx, cancel := context.WithTimeout(ctx, deps.HistoryTimeout)
	defer cancel()

	appointments, degraded := deps.History.GetAppointmentsWithGracefulDegradation(historyCtx, donorID)
	if degraded {
		deps.Logger.Warn("Workflow: history unavailable for donor_id=%d, assuming no prior appointment", donorID)
	}

	history := make([]*domain.Appointment, 0, len(appointments))
	for i := range appointments {
		history = append(history, &appointments[i])
	}
	return history, degraded
}

// Donor returns the donor the flow was opened for
func (f *Flow) Donor() *domain.Donor {
	return f.donor
}

// HistoryDegraded returns true if the history could not be fetched
func (f *Flow) HistoryDegraded() bool {
	return f.historyDegraded
}

// Selection returns the chosen slot or nil
func (f *Flow) Selection() *Selection {
	return f.selection
}

// RuleSet returns the rule table the flow evaluates against
func (f *Flow) RuleSet() *domain.RuleSet {
	return f.deps.RuleSet
}

// RecordAnswer stores a Yes/No answer; an unanswered value clears the item
func (f *Flow) RecordAnswer(sectionID, itemID string, value domain.Answer) error {
	idx := f.deps.RuleSet.SectionIndex(sectionID)
	if idx < 0 {
		return validationErr("answers", fmt.Sprintf("unknown section %q", sectionID))
	}
	if !hasItem(&f.deps.RuleSet.Sections[idx], itemID) {
		return validationErr("answers", fmt.Sprintf("unknown item %q in section %q", itemID, sectionID))
	}

	f.answers.Set(idx, itemID, value)
	return nil
}

// AnswerInput a single answer as received from a client
type AnswerInput struct {
	SectionID string
	ItemID    string
	Value     domain.Answer
}

// RecordAnswers applies answers in order and stores the last donation date.
// Every invalid item is reported in one ValidationError.
func (f *Flow) RecordAnswers(answers []AnswerInput, lastDonationDate string) error {
	fieldErrors := make(map[string]string)
	for i, a := range answers {
		if err := f.RecordAnswer(a.SectionID, a.ItemID, a.Value); err != nil {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				return err
			}
			for _, msg := range verr.FieldErrors {
				fieldErrors[answerField(i)] = msg
			}
		}
	}

	f.SetLastDonationDate(lastDonationDate)

	if len(fieldErrors) > 0 {
		return &ValidationError{FieldErrors: fieldErrors}
	}
	return nil
}

func answerField(i int) string {
	return fmt.Sprintf("answers[%d]", i)
}

// SetLastDonationDate stores the self-declared last donation date (YYYY-MM-DD)
func (f *Flow) SetLastDonationDate(value string) {
	f.answers.LastDonationDate = value
}

// CurrentVerdict evaluates every section of the rule table
func (f *Flow) CurrentVerdict() domain.Verdict {
	return eligibility.EvaluateSections(f.deps.RuleSet, f.answers, f.donor.Gender, f.today())
}

// SectionVerdict evaluates the sections shown on the given step.
// Steps after health screening see the whole rule table.
func (f *Flow) SectionVerdict(step domain.Step) domain.Verdict {
	switch step {
	case domain.StepDonationHistory:
		return eligibility.EvaluateSections(f.deps.RuleSet, f.answers, f.donor.Gender, f.today(), eligibility.SectionPriorDonation)
	case domain.StepHealthScreening:
		ids := make([]string, 0, len(f.deps.RuleSet.Sections))
		for _, s := range f.deps.RuleSet.Sections {
			if s.ID != eligibility.SectionPriorDonation {
				ids = append(ids, s.ID)
			}
		}
		if len(ids) == 0 {
			return eligibility.Evaluate(nil, f.answers, f.donor.Gender, f.today())
		}
		return eligibility.EvaluateSections(f.deps.RuleSet, f.answers, f.donor.Gender, f.today(), ids...)
	default:
		return f.CurrentVerdict()
	}
}

// CanStartBooking returns false while the waiting period after the latest
// scheduled or completed appointment is still running
func (f *Flow) CanStartBooking() bool {
	return waitingperiod.Check(f.history, f.today()).Elapsed
}

// NextEligibleDate returns the first bookable date, or nil if there is no restriction
func (f *Flow) NextEligibleDate() *time.Time {
	return waitingperiod.Check(f.history, f.today()).NextEligibleDate
}

// WaitingPeriod returns the full pre-scheduling check
func (f *Flow) WaitingPeriod() waitingperiod.Restriction {
	return waitingperiod.Check(f.history, f.today())
}

// AvailableSlots lists the slots for the facility on date. operatingDay is false
// when the facility is closed that day and no slots are offered.
func (f *Flow) AvailableSlots(facility *domain.Facility, date time.Time) (timeslot.Result, bool) {
	if !timeslot.IsOperatingDay(facility, date) {
		return timeslot.Result{Slots: []timeslot.Slot{}}, false
	}

	res := timeslot.Generate(facility, date)
	if res.Fallback {
		f.deps.Metrics.IncSlotFallback()
		if res.ParseErr != nil {
			f.deps.Logger.Warn("Workflow: facility id=%d has malformed operating hours, using fallback slots: %v",
				facility.ID, res.ParseErr)
		}
	}
	return res, true
}

// SelectSlot validates and stores the schedule-step choice. value is a slot label or HH:MM.
func (f *Flow) SelectSlot(facility *domain.Facility, date time.Time, value string) error {
	if facility == nil {
		return validationErr("facilityId", domain.FieldErrRequired)
	}

	sel, err := f.resolveSelection(facility, date, value)
	if err != nil {
		return err
	}

	f.selection = sel
	return nil
}

func (f *Flow) resolveSelection(facility *domain.Facility, date time.Time, value string) (*Selection, error) {
	if date.IsZero() {
		return nil, validationErr("date", domain.FieldErrRequired)
	}
	if isDateInPast(date, f.today()) {
		return nil, validationErr("date", "must not be in the past")
	}

	if !timeslot.IsOperatingDay(facility, date) {
		return nil, validationErr("date", "facility is closed on this day")
	}

	slot, ok := timeslot.FindSlot(timeslot.ListSlots(facility, date), value)
	if !ok {
		return nil, validationErr("time", "unknown slot")
	}

	return &Selection{Facility: facility, Date: dateOnly(date), Slot: slot}, nil
}

// CanAdvanceTo reports whether AdvanceStep(step) would succeed right now
func (f *Flow) CanAdvanceTo(ctx context.Context, step domain.Step) (bool, error) {
	_, err := f.checkAdvance(ctx, step)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrValidation), errors.Is(err, ErrNotEligible), errors.Is(err, ErrStepLocked):
		return false, nil
	default:
		return false, err
	}
}

// AdvanceStep unlocks step once every requirement up to it holds.
// Steps are unlocked one at a time; a step already unlocked is a no-op.
// StepComplete is only reachable through Submit.
func (f *Flow) AdvanceStep(ctx context.Context, step domain.Step) (domain.Step, error) {
	current, err := f.checkAdvance(ctx, step)
	if err != nil {
		f.deps.Logger.Warn("Workflow: session=%s cannot advance to step=%s: %v", f.sessionID, step, err)
		return current, err
	}
	if step <= current {
		return current, nil
	}

	stored, err := f.deps.Gate.Advance(ctx, f.gateKey, step)
	if err != nil {
		return current, fmt.Errorf("%w: advance gate: %v", ErrInternal, err)
	}

	f.deps.Logger.Info("Workflow: session=%s advanced to step=%s", f.sessionID, stored)
	return stored, nil
}

func (f *Flow) checkAdvance(ctx context.Context, step domain.Step) (domain.Step, error) {
	if !step.IsValid() || step == domain.StepNone {
		return domain.StepNone, validationErr("step", fmt.Sprintf("invalid step %d", step))
	}

	current, err := f.deps.Gate.Current(ctx, f.gateKey)
	if err != nil {
		return domain.StepNone, fmt.Errorf("%w: read gate: %v", ErrInternal, err)
	}

	if step <= current {
		return current, nil
	}
	if step == domain.StepComplete || step > current+1 {
		return current, &StepLockedError{Requested: step, Unlocked: current, RedirectTo: domain.StepSchedule}
	}

	return current, f.requirementsUpTo(step)
}

// requirementsUpTo checks every step requirement from 1 through step
func (f *Flow) requirementsUpTo(step domain.Step) error {
	for k := domain.StepDonationHistory; k <= step; k++ {
		if err := f.requirement(k); err != nil {
			return err
		}
	}
	return nil
}

func (f *Flow) requirement(step domain.Step) error {
	switch step {
	case domain.StepDonationHistory:
		// 1. Выбран слот, донор может начать запись
		if f.selection == nil {
			return validationErr("slot", domain.FieldErrRequired)
		}
		if _, err := f.resolveSelection(f.selection.Facility, f.selection.Date, f.selection.Slot.StartTime.String()); err != nil {
			return err
		}
		return f.waitingPeriodErr()
	case domain.StepHealthScreening:
		// 2. Раздел истории донаций заполнен без отводов
		return verdictErr(f.SectionVerdict(domain.StepDonationHistory))
	case domain.StepReview:
		// 3. Вся анкета заполнена без отводов
		return verdictErr(f.CurrentVerdict())
	case domain.StepConfirmation:
		// 4. Повторная проверка интервала между донациями
		if err := f.waitingPeriodErr(); err != nil {
			return err
		}
		if next := f.NextEligibleDate(); next != nil && f.selection.Date.Before(*next) {
			return &NotEligibleError{Reasons: []string{eligibility.MustWaitReason(*next)}}
		}
		return nil
	default:
		return nil
	}
}

func (f *Flow) waitingPeriodErr() error {
	restriction := f.WaitingPeriod()
	if restriction.Elapsed {
		return nil
	}
	return &NotEligibleError{
		Reasons:     []string{eligibility.MustWaitReason(*restriction.NextEligibleDate)},
		FieldErrors: map[string]string{domain.FieldLastDonationDate: domain.FieldErrMustWait},
	}
}

func verdictErr(v domain.Verdict) error {
	if !v.IsComplete() {
		fieldErrors := make(map[string]string, len(v.FieldErrors)+1)
		for k, msg := range v.FieldErrors {
			fieldErrors[k] = msg
		}
		if len(fieldErrors) == 0 {
			fieldErrors["answers"] = domain.FieldErrRequired
		}
		return &ValidationError{FieldErrors: fieldErrors}
	}
	if !v.IsEligible() {
		return &NotEligibleError{Reasons: v.Reasons, FieldErrors: v.FieldErrors}
	}
	return nil
}

// Submit re-checks every step, hands the draft to the saver and completes the flow.
// It is not retried on failure. Once the draft is saved it is returned even if the
// gate cannot be moved to StepComplete.
func (f *Flow) Submit(ctx context.Context) (*domain.AppointmentDraft, error) {
	f.deps.Logger.Info("Workflow: submit session=%s donor_id=%d", f.sessionID, f.donor.ID)

	// 1. Проверяем, что шаг подтверждения разблокирован
	current, err := f.deps.Gate.Current(ctx, f.gateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: read gate: %v", ErrInternal, err)
	}
	if current == domain.StepComplete {
		return nil, ErrAlreadySubmitted
	}
	if current < domain.StepConfirmation {
		return nil, &StepLockedError{Requested: domain.StepComplete, Unlocked: current, RedirectTo: domain.StepSchedule}
	}

	// 2. Повторно проверяем все требования
	if err := f.requirementsUpTo(domain.StepConfirmation); err != nil {
		f.deps.Logger.Warn("Workflow: submit rejected for session=%s: %v", f.sessionID, err)
		return nil, err
	}

	// 3. Формируем черновик и передаём его на сохранение
	draft := f.composeDraft()
	if err := f.deps.Drafts.Create(ctx, draft); err != nil {
		f.deps.Logger.Error("Workflow: failed to save draft id=%s: %v", draft.ID, err)
		return nil, fmt.Errorf("%w: save draft: %v", ErrInternal, err)
	}

	// 4. Завершаем флоу; черновик уже сохранён, поэтому ошибка гейта не отменяет результат
	if _, err := f.deps.Gate.Advance(ctx, f.gateKey, domain.StepComplete); err != nil {
		f.deps.Logger.Error("Workflow: draft id=%s saved but gate not advanced: %v", draft.ID, err)
	}

	f.deps.Metrics.IncDraftSubmitted()
	f.deps.Logger.Info("Workflow: draft id=%s submitted for donor_id=%d", draft.ID, f.donor.ID)
	return draft, nil
}

// Restart clears answers and selection and resets the gate to the entry point
func (f *Flow) Restart(ctx context.Context) error {
	f.answers.Clear()
	f.selection = nil

	if err := f.deps.Gate.Reset(ctx, f.gateKey); err != nil {
		return fmt.Errorf("%w: reset gate: %v", ErrInternal, err)
	}
	return nil
}

func (f *Flow) composeDraft() *domain.AppointmentDraft {
	sel := f.selection
	return &domain.AppointmentDraft{
		ID:              uuid.New(),
		DonorID:         f.donor.ID,
		DonorName:       f.donor.Name,
		FacilityID:      sel.Facility.ID,
		FacilityName:    sel.Facility.Name,
		FacilityAddress: sel.Facility.Address,
		Date:            sel.Date,
		StartTime:       sel.Slot.StartTime,
		Answers:         f.answeredItems(),
		RuleSetVersion:  f.deps.RuleSet.Version,
		CreatedAt:       f.deps.Clock.Now().UTC(),
	}
}

// answeredItems flattens the answers of applicable sections in table order
func (f *Flow) answeredItems() []domain.AnsweredItem {
	items := make([]domain.AnsweredItem, 0, len(f.answers.Answers))
	for idx := range f.deps.RuleSet.Sections {
		section := &f.deps.RuleSet.Sections[idx]
		if !section.AppliesTo(f.donor.Gender) {
			continue
		}
		for _, it := range section.Items {
			answer := f.answers.Get(idx, it.ID)
			if !answer.IsAnswered() {
				continue
			}
			items = append(items, domain.AnsweredItem{SectionID: section.ID, ItemID: it.ID, Answer: answer})
		}
	}
	return items
}

func (f *Flow) today() time.Time {
	return f.deps.Clock.Now()
}

func hasItem(section *domain.RuleSection, itemID string) bool {
	for _, it := range section.Items {
		if it.ID == itemID {
			return true
		}
	}
	return false
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	return dateOnly(date).Before(dateOnly(now))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Snapshot is the client-held state of a flow replayed on every request
type Snapshot struct {
	Facility         *domain.Facility // nil = no slot chosen yet
	Date             time.Time
	Time             string // slot label or HH:MM
	Answers          []AnswerInput
	LastDonationDate string
}

// Restore replays a snapshot onto the flow. Slot and answer problems are merged
// into one ValidationError.
func (f *Flow) Restore(s Snapshot) error {
	fieldErrors := make(map[string]string)

	collect := func(err error) error {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		for k, msg := range verr.FieldErrors {
			fieldErrors[k] = msg
		}
		return nil
	}

	if s.Facility != nil {
		if err := f.SelectSlot(s.Facility, s.Date, s.Time); err != nil {
			if err := collect(err); err != nil {
				return err
			}
		}
	}

	if err := f.RecordAnswers(s.Answers, s.LastDonationDate); err != nil {
		if err := collect(err); err != nil {
			return err
		}
	}

	if len(fieldErrors) > 0 {
		return &ValidationError{FieldErrors: fieldErrors}
	}
	return nil
}
