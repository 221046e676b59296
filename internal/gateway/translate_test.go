package gateway_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nodisys/netbanx-gateway/internal/gateway"
)

func TestTranslateKnownMessage(t *testing.T) {
	fr := gateway.NewTranslator("fr")

	got := fr.Translate("Your request has been declined by the issuing bank.")
	assert.Equal(t, "Votre demande a été refusée par la banque émettrice.", got)
}

func TestTranslateUnknownMessagePassesThrough(t *testing.T) {
	fr := gateway.NewTranslator("fr")

	diagnostic := "TXN-4911: issuer route unreachable"
	assert.Equal(t, diagnostic, fr.Translate(diagnostic))
}

func TestTranslateUnknownLocale(t *testing.T) {
	en := gateway.NewTranslator("en")

	msg := "Your request has been declined by the issuing bank."
	assert.Equal(t, msg, en.Translate(msg))
}

func TestInternalFailureMessage(t *testing.T) {
	en := gateway.NewTranslator("en")

	got := en.InternalFailure(gateway.CodeEmptyResponse)
	assert.Contains(t, got, "(code: 9010)")
	assert.Contains(t, got, "please contact us")
	// The retry hint stays attached so the user knows what to check.
	assert.Contains(t, got, "verify your credit card number")
}

func TestOutcomeMessage(t *testing.T) {
	en := gateway.NewTranslator("en")

	outcome := &gateway.Outcome{
		Status:          gateway.StatusDeclined,
		RawErrorMessage: "Your request has been declined by the issuing bank.",
	}
	assert.Equal(t, outcome.RawErrorMessage, en.OutcomeMessage(outcome))

	// No raw message falls back to the generic text, never empty.
	assert.Contains(t, en.OutcomeMessage(&gateway.Outcome{Status: gateway.StatusError}), "contact us")
	assert.Contains(t, en.OutcomeMessage(nil), "contact us")
}
