// Package eligibility evaluates a donor's questionnaire answers against the rule table.
// Evaluation is pure: no I/O, the caller passes everything including today's date.
package eligibility

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/waitingperiod"
)

// Verdict outcomes used in logs and metrics
const (
	OutcomeEligible    = "eligible"
	OutcomeNotEligible = "not_eligible"
	OutcomeIncomplete  = "incomplete"
)

type indexedSection struct {
	index   int
	section *domain.RuleSection
}

// Evaluate applies every section to the answer set. Answers are addressed by the
// section's position in sections.
func Evaluate(sections []domain.RuleSection, answers *domain.AnswerSet, gender domain.Gender, today time.Time) domain.Verdict {
	indexed := make([]indexedSection, 0, len(sections))
	for i := range sections {
		indexed = append(indexed, indexedSection{index: i, section: &sections[i]})
	}
	return evaluate(indexed, answers, gender, today)
}

// EvaluateSections evaluates only the named sections of the rule set, keeping their
// original positions as answer indexes. No IDs means the whole rule set.
func EvaluateSections(rs *domain.RuleSet, answers *domain.AnswerSet, gender domain.Gender, today time.Time, sectionIDs ...string) domain.Verdict {
	if len(sectionIDs) == 0 {
		return Evaluate(rs.Sections, answers, gender, today)
	}

	wanted := make(map[string]struct{}, len(sectionIDs))
	for _, id := range sectionIDs {
		wanted[id] = struct{}{}
	}

	indexed := make([]indexedSection, 0, len(sectionIDs))
	for i := range rs.Sections {
		if _, ok := wanted[rs.Sections[i].ID]; ok {
			indexed = append(indexed, indexedSection{index: i, section: &rs.Sections[i]})
		}
	}
	return evaluate(indexed, answers, gender, today)
}

func evaluate(sections []indexedSection, answers *domain.AnswerSet, gender domain.Gender, today time.Time) domain.Verdict {
	reasons := make([]string, 0)
	fieldErrors := make(map[string]string)
	incomplete := false

	for _, s := range sections {
		if !s.section.AppliesTo(gender) {
			continue
		}

		for _, it := range s.section.Items {
			answer := answers.Get(s.index, it.ID)
			if !answer.IsAnswered() {
				incomplete = true
				continue
			}

			if s.section.ID == SectionPriorDonation && it.ID == ItemDonatedBefore {
				if answer != domain.AnswerYes {
					continue
				}
				check := checkLastDonation(answers.LastDonationDate, today)
				if check.fieldError != "" {
					fieldErrors[domain.FieldLastDonationDate] = check.fieldError
				}
				if check.unanswered {
					incomplete = true
					continue
				}
				if check.reason != "" {
					reasons = append(reasons, check.reason)
				}
				continue
			}

			if it.MustBeNo && answer == domain.AnswerYes {
				reasons = append(reasons, reasonFor(it))
			}
		}
	}

	if len(fieldErrors) == 0 {
		fieldErrors = nil
	}

	// незаполненная анкета не показывает причин отказа
	if incomplete {
		return domain.Verdict{Reasons: []string{}, FieldErrors: fieldErrors}
	}

	eligible := len(reasons) == 0
	return domain.Verdict{Eligible: &eligible, Reasons: reasons, FieldErrors: fieldErrors}
}

// Outcome maps a verdict to one of the Outcome* constants
func Outcome(v domain.Verdict) string {
	switch {
	case !v.IsComplete():
		return OutcomeIncomplete
	case v.IsEligible():
		return OutcomeEligible
	default:
		return OutcomeNotEligible
	}
}

// MustWaitReason is the disqualification text for a waiting period that has not elapsed
func MustWaitReason(next time.Time) string {
	return fmt.Sprintf("You must wait until %s before donating again", next.Format(domain.DateFormat))
}

// reasonFor falls back to the prompt when a mustBeNo item has no explicit reason
func reasonFor(it domain.RuleItem) string {
	if it.DisqualifyReason != nil && *it.DisqualifyReason != "" {
		return *it.DisqualifyReason
	}
	return it.Prompt
}

type lastDonationCheck struct {
	unanswered bool
	fieldError string
	reason     string
}

func checkLastDonation(value string, today time.Time) lastDonationCheck {
	value = strings.TrimSpace(value)
	if value == "" {
		return lastDonationCheck{unanswered: true, fieldError: domain.FieldErrRequired}
	}

	last, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return lastDonationCheck{unanswered: true, fieldError: domain.FieldErrInvalidDate}
	}

	y, m, d := today.Date()
	if last.After(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)) {
		return lastDonationCheck{unanswered: true, fieldError: domain.FieldErrInvalidDate}
	}

	if !waitingperiod.HasWaitingPeriodElapsed(last, today) {
		return lastDonationCheck{
			fieldError: domain.FieldErrMustWait,
			reason:     MustWaitReason(waitingperiod.NextEligibleDate(last)),
		}
	}

	return lastDonationCheck{}
}
