package gateway

import "fmt"

// Messages shown in place of gateway diagnostics.
const (
	msgContactUs = "The transaction could not be processed, please contact us for more information."
	msgRetryHint = "The transaction was not approved. Please verify your credit card number and expiration date."
)

// Known gateway decision descriptions, mapped per locale. Anything not in
// the catalog passes through verbatim: transparency over polish.
var messageCatalog = map[string]map[string]string{
	"fr": {
		"Your request has been declined by the issuing bank.":       "Votre demande a été refusée par la banque émettrice.",
		"The card has been declined due to insufficient funds.":     "La carte a été refusée en raison de fonds insuffisants.",
		"Your request has failed the CVD check.":                    "Votre demande a échoué la vérification du code de sécurité.",
		"The card number or email address associated with this transaction is in our negative database.": "Le numéro de carte ou l'adresse courriel de cette transaction figure dans notre liste négative.",
		"The card expiry date is invalid.":                          "La date d'expiration de la carte est invalide.",
		msgContactUs: "La transaction n'a pas pu être traitée, veuillez nous contacter pour plus d'informations.",
		msgRetryHint: "La transaction n'a pas été approuvée. Veuillez vérifier votre numéro de carte de crédit et sa date d'expiration.",
	},
}

// Translator maps gateway error texts to a localized equivalent, falling
// back to the original text when no mapping exists.
type Translator struct {
	locale string
}

func NewTranslator(locale string) *Translator {
	return &Translator{locale: locale}
}

// Translate returns the localized form of a known gateway message, or the
// message itself when it is unknown or the locale has no catalog.
func (t *Translator) Translate(text string) string {
	catalog, ok := messageCatalog[t.locale]
	if !ok {
		return text
	}
	if translated, ok := catalog[text]; ok {
		return translated
	}
	return text
}

// InternalFailure renders the user-facing message for an adapter-generated
// failure code. The code stays visible for log correlation but the
// diagnostic text does not.
func (t *Translator) InternalFailure(code int) string {
	return fmt.Sprintf("%s (code: %d) %s", t.Translate(msgContactUs), code, t.Translate(msgRetryHint))
}

// OutcomeMessage returns the user-facing text for a non-accepted outcome.
func (t *Translator) OutcomeMessage(outcome *Outcome) string {
	if outcome == nil || outcome.RawErrorMessage == "" {
		return t.Translate(msgContactUs)
	}
	return t.Translate(outcome.RawErrorMessage)
}
