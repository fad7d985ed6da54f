package eligibility

import (
	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/pkg/ptr"
)

// RuleSetVersion identifies the questionnaire stored with every appointment draft
const RuleSetVersion = "2024.1"

// Section IDs
const (
	SectionPriorDonation = "prior_donation"
	SectionRecentRisk    = "recent_risk"
	SectionGeneralHealth = "general_health"
	SectionFemaleOnly    = "female_only"
)

// ItemDonatedBefore is the prior-donation question that requires a last-donation date
const ItemDonatedBefore = "donated_before"

func item(id, prompt, localized string, mustBeNo bool, reason string) domain.RuleItem {
	it := domain.RuleItem{
		ID:       id,
		Prompt:   prompt,
		MustBeNo: mustBeNo,
	}
	if localized != "" {
		it.PromptLocalized = ptr.Ptr(localized)
	}
	if reason != "" {
		it.DisqualifyReason = ptr.Ptr(reason)
	}
	return it
}

// DefaultRuleSet returns a fresh copy of the current questionnaire
func DefaultRuleSet() *domain.RuleSet {
	return &domain.RuleSet{
		Version: RuleSetVersion,
		Sections: []domain.RuleSection{
			{
				ID:                SectionPriorDonation,
				Title:             "Prior donation history",
				GenderRestriction: domain.RestrictionNone,
				Items: []domain.RuleItem{
					item(ItemDonatedBefore,
						"Have you donated blood before?",
						"¿Ha donado sangre anteriormente?",
						false, ""),
					item("deferred_before",
						"Have you ever been told not to donate blood?",
						"¿Alguna vez le han dicho que no done sangre?",
						true, "You were previously deferred from donating blood"),
					item("reaction_before",
						"Have you had a serious reaction after a previous donation?",
						"¿Ha tenido una reacción grave después de una donación anterior?",
						true, "Serious reaction after a previous donation"),
				},
			},
			{
				ID:                SectionRecentRisk,
				Title:             "In the last 12 months",
				GenderRestriction: domain.RestrictionNone,
				Items: []domain.RuleItem{
					item("tattoo_piercing",
						"Have you had a tattoo, piercing or acupuncture?",
						"¿Se ha hecho un tatuaje, perforación o acupuntura?",
						true, "Tattoo, piercing or acupuncture within the last 12 months"),
					item("surgery",
						"Have you had surgery or a major dental procedure?",
						"¿Ha tenido una cirugía o un procedimiento dental mayor?",
						true, "Surgery or major dental procedure within the last 12 months"),
					item("transfusion",
						"Have you received a blood transfusion?",
						"¿Ha recibido una transfusión de sangre?",
						true, "Blood transfusion within the last 12 months"),
					item("hepatitis_contact",
						"Have you lived with or had close contact with someone with hepatitis?",
						"¿Ha convivido o tenido contacto cercano con alguien con hepatitis?",
						true, "Close contact with hepatitis within the last 12 months"),
					item("needle_injury",
						"Have you had an accidental needle-stick injury?",
						"¿Ha sufrido un pinchazo accidental con una aguja?",
						true, "Needle-stick injury within the last 12 months"),
					item("detention",
						"Have you been detained in a prison or jail for more than 72 hours?",
						"¿Ha estado detenido en una cárcel por más de 72 horas?",
						true, "Detention for more than 72 hours within the last 12 months"),
					item("sexual_risk",
						"Have you had sexual contact with a new partner or anyone at risk of HIV or hepatitis?",
						"¿Ha tenido contacto sexual con una pareja nueva o con alguien en riesgo de VIH o hepatitis?",
						true, "Sexual risk exposure within the last 12 months"),
				},
			},
			{
				ID:                SectionGeneralHealth,
				Title:             "General health, medication and travel",
				GenderRestriction: domain.RestrictionNone,
				Items: []domain.RuleItem{
					item("unwell_today",
						"Are you feeling unwell today?",
						"¿Se siente mal hoy?",
						true, "Not feeling well on the day of donation"),
					item("antibiotics",
						"Are you currently taking antibiotics?",
						"¿Está tomando antibióticos actualmente?",
						true, "Currently taking antibiotics"),
					item("aspirin",
						"Have you taken aspirin or anti-inflammatory medicine in the last 3 days?",
						"¿Ha tomado aspirina o antiinflamatorios en los últimos 3 días?",
						true, "Aspirin or anti-inflammatory medicine within the last 3 days"),
					item("chronic_condition",
						"Do you have a heart, lung, kidney or bleeding condition?",
						"¿Tiene alguna enfermedad cardíaca, pulmonar, renal o de la coagulación?",
						true, "Heart, lung, kidney or bleeding condition"),
					item("malaria_travel",
						"Have you travelled to a malaria-risk area in the last 12 months?",
						"¿Ha viajado a una zona de riesgo de malaria en los últimos 12 meses?",
						true, "Travel to a malaria-risk area within the last 12 months"),
					item("weight_loss",
						"Have you had unexplained weight loss or night sweats?",
						"¿Ha tenido pérdida de peso inexplicable o sudores nocturnos?",
						true, "Unexplained weight loss or night sweats"),
					item("fly_within_24h",
						"Do you intend to fly within 24 hours after donating?",
						"¿Tiene previsto volar dentro de las 24 horas posteriores a la donación?",
						false, ""),
					item("hazardous_work",
						"Will you operate heavy machinery or work at heights today?",
						"¿Manejará maquinaria pesada o trabajará en altura hoy?",
						false, ""),
				},
			},
			{
				ID:                SectionFemaleOnly,
				Title:             "For female donors",
				GenderRestriction: domain.RestrictionFemaleOnly,
				Items: []domain.RuleItem{
					item("pregnant",
						"Are you pregnant or could you be pregnant?",
						"¿Está embarazada o podría estarlo?",
						true, "Current or possible pregnancy"),
					item("recent_birth",
						"Have you given birth or had a miscarriage in the last 6 months?",
						"¿Ha dado a luz o tenido un aborto espontáneo en los últimos 6 meses?",
						true, "Childbirth or miscarriage within the last 6 months"),
					item("breastfeeding",
						"Are you currently breastfeeding?",
						"¿Está amamantando actualmente?",
						true, "Currently breastfeeding"),
					item("menstruating",
						"Are you currently menstruating?",
						"¿Está menstruando actualmente?",
						false, ""),
				},
			},
		},
	}
}
