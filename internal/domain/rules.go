package domain

import "strings"

// GenderRestriction limits a rule section to a subset of donors
type GenderRestriction string

const (
	RestrictionNone       GenderRestriction = "none"
	RestrictionFemaleOnly GenderRestriction = "female_only"
)

// Answer is a donor's reply to a yes/no rule item. The empty value means unanswered.
type Answer string

const (
	AnswerUnanswered Answer = ""
	AnswerYes        Answer = "Yes"
	AnswerNo         Answer = "No"
)

// IsAnswered returns true for Yes and No
func (a Answer) IsAnswered() bool {
	return a == AnswerYes || a == AnswerNo
}

// ParseAnswer accepts "Yes"/"No" in any letter case; anything else is unanswered
func ParseAnswer(s string) (Answer, bool) {
	switch {
	case strings.EqualFold(s, string(AnswerYes)):
		return AnswerYes, true
	case strings.EqualFold(s, string(AnswerNo)):
		return AnswerNo, true
	case s == "":
		return AnswerUnanswered, true
	default:
		return AnswerUnanswered, false
	}
}

// RuleItem is a single yes/no medical-history question
type RuleItem struct {
	ID               string
	Prompt           string
	PromptLocalized  *string
	MustBeNo         bool    // answering Yes disqualifies the donor
	DisqualifyReason *string // attached to the verdict when MustBeNo is violated
}

// RuleSection groups rule items under a title
type RuleSection struct {
	ID                string
	Title             string
	GenderRestriction GenderRestriction
	Items             []RuleItem
}

// AppliesTo returns true if the section is shown to a donor of the given gender
func (s *RuleSection) AppliesTo(gender Gender) bool {
	if s.GenderRestriction == RestrictionFemaleOnly {
		return gender == GenderFemale
	}
	return true
}

// RuleSet is a versioned, read-only rule table
type RuleSet struct {
	Version  string
	Sections []RuleSection
}

// SectionIndex returns the position of the section with the given ID, or -1
func (rs *RuleSet) SectionIndex(id string) int {
	for i := range rs.Sections {
		if rs.Sections[i].ID == id {
			return i
		}
	}
	return -1
}

// AnswerKey addresses an answer by section index and item ID
type AnswerKey struct {
	Section int
	ItemID  string
}

// AnswerSet holds the donor's answers for one flow
type AnswerSet struct {
	Answers          map[AnswerKey]Answer
	LastDonationDate string // YYYY-MM-DD, only consulted when a prior donation is declared
}

// NewAnswerSet creates an empty answer set
func NewAnswerSet() *AnswerSet {
	return &AnswerSet{Answers: make(map[AnswerKey]Answer)}
}

// Get returns the answer for the item; missing entries are unanswered
func (a *AnswerSet) Get(section int, itemID string) Answer {
	if a == nil || a.Answers == nil {
		return AnswerUnanswered
	}
	return a.Answers[AnswerKey{Section: section, ItemID: itemID}]
}

// Set records an answer; an unanswered value removes the entry
func (a *AnswerSet) Set(section int, itemID string, answer Answer) {
	if a.Answers == nil {
		a.Answers = make(map[AnswerKey]Answer)
	}
	key := AnswerKey{Section: section, ItemID: itemID}
	if !answer.IsAnswered() {
		delete(a.Answers, key)
		return
	}
	a.Answers[key] = answer
}

// Clear drops every answer and the last donation date
func (a *AnswerSet) Clear() {
	a.Answers = make(map[AnswerKey]Answer)
	a.LastDonationDate = ""
}

// Verdict is the derived eligibility outcome of an answer set
type Verdict struct {
	Eligible    *bool             // nil while the form is incomplete
	Reasons     []string          // disqualification reasons in section-then-item order
	FieldErrors map[string]string // field-level validation messages
}

// IsComplete returns true once every applicable item is answered
func (v Verdict) IsComplete() bool {
	return v.Eligible != nil
}

// IsEligible returns true only for a complete, non-disqualified verdict
func (v Verdict) IsEligible() bool {
	return v.Eligible != nil && *v.Eligible
}

// AnsweredItem is a flattened answer stored with an appointment draft
type AnsweredItem struct {
	SectionID string `json:"sectionId"`
	ItemID    string `json:"itemId"`
	Answer    Answer `json:"answer"`
}
