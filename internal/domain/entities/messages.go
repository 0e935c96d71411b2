package entities

// MessageKey identifies a string every language catalog must define.
type MessageKey string

const (
	KeySiteTitle       MessageKey = "siteTitle"
	KeyHeroTitle       MessageKey = "heroTitle"
	KeyHeroSubtitle    MessageKey = "heroSubtitle"
	KeyHeroCTA         MessageKey = "heroCta"
	KeyNavHome         MessageKey = "nav.home"
	KeyNavBenefits     MessageKey = "nav.benefits"
	KeyNavContact      MessageKey = "nav.contact"
	KeyProblemTitle    MessageKey = "problem.title"
	KeyProblemTime     MessageKey = "problem.items.time"
	KeyProblemCost     MessageKey = "problem.items.cost"
	KeyProblemQuality  MessageKey = "problem.items.quality"
	KeyBenefitsTitle   MessageKey = "benefits.title"
	KeyBenefitSpeed    MessageKey = "benefits.speed.heading"
	KeyBenefitSpeedTxt MessageKey = "benefits.speed.body"
	KeyBenefitPrice    MessageKey = "benefits.price.heading"
	KeyBenefitPriceTxt MessageKey = "benefits.price.body"
	KeyBenefitTrust    MessageKey = "benefits.trust.heading"
	KeyBenefitTrustTxt MessageKey = "benefits.trust.body"
	KeyToggleLanguage  MessageKey = "toggles.language"
	KeyToggleTheme     MessageKey = "toggles.theme"
	KeyFooterCopyright MessageKey = "footer.copyright"
)

// MessageKeys lists every MessageKey.
func MessageKeys() []MessageKey {
	return []MessageKey{
		KeySiteTitle,
		KeyHeroTitle,
		KeyHeroSubtitle,
		KeyHeroCTA,
		KeyNavHome,
		KeyNavBenefits,
		KeyNavContact,
		KeyProblemTitle,
		KeyProblemTime,
		KeyProblemCost,
		KeyProblemQuality,
		KeyBenefitsTitle,
		KeyBenefitSpeed,
		KeyBenefitSpeedTxt,
		KeyBenefitPrice,
		KeyBenefitPriceTxt,
		KeyBenefitTrust,
		KeyBenefitTrustTxt,
		KeyToggleLanguage,
		KeyToggleTheme,
		KeyFooterCopyright,
	}
}
