package gateway_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodisys/netbanx-gateway/internal/gateway"
)

var testCreds = gateway.Credentials{
	AccountNumber: "89983472",
	StoreID:       "teststore",
	StorePassword: "secret",
	APIKey:        "apikey",
	APISecret:     "apisecret",
}

func validRequest() *gateway.TransactionRequest {
	return &gateway.TransactionRequest{
		Amount:      decimal.NewFromFloat(25.00),
		Currency:    "CAD",
		CardNumber:  "4511111111111111",
		CardType:    "Visa",
		ExpiryMonth: 11,
		ExpiryYear:  2028,
		CVV:         "123",
		FirstName:   "Marie",
		LastName:    "Tremblay",
		Billing: gateway.Address{
			Street:     "100 rue Principale",
			City:       "Montreal",
			Region:     "QC",
			Country:    "CA",
			PostalCode: "H2X 1X8",
			Email:      "marie@example.org",
		},
		ClientIP:    "192.0.2.10",
		MerchantRef: "INV-1001",
	}
}

func TestBuildLegacyPayload(t *testing.T) {
	n := gateway.NewNormalizer(testCreds, "CAD")

	payload, err := n.Build(validRequest(), gateway.ProtocolLegacy, "")
	require.NoError(t, err)
	require.NotNil(t, payload.Legacy)
	assert.Nil(t, payload.Rest)
	assert.Equal(t, gateway.ProtocolLegacy, payload.Protocol)

	legacy := payload.Legacy
	assert.Equal(t, "25.00", legacy.Amount)
	assert.Equal(t, "89983472", legacy.MerchantAccount.AccountNum)
	assert.Equal(t, "teststore", legacy.MerchantAccount.StoreID)
	assert.Equal(t, "INV-1001", legacy.MerchantRefNum)
	assert.Equal(t, "4511111111111111", legacy.Card.CardNum)
	assert.Equal(t, 11, legacy.Card.CardExpiry.Month)
	assert.Equal(t, 2028, legacy.Card.CardExpiry.Year)
	assert.Equal(t, 1, legacy.Card.CVDIndicator)
	assert.True(t, legacy.Card.CVDIndicatorSpecified)
	assert.Equal(t, "123", legacy.Card.CVD)
	assert.True(t, legacy.BillingDetails.CountrySpecified)
}

func TestBuildLegacyPayloadWithoutCVV(t *testing.T) {
	n := gateway.NewNormalizer(testCreds, "CAD")
	req := validRequest()
	req.CVV = ""

	payload, err := n.Build(req, gateway.ProtocolLegacy, "")
	require.NoError(t, err)

	assert.Zero(t, payload.Legacy.Card.CVDIndicator)
	assert.False(t, payload.Legacy.Card.CVDIndicatorSpecified)
	assert.Empty(t, payload.Legacy.Card.CVD)
}

func TestBuildRestPayload(t *testing.T) {
	n := gateway.NewNormalizer(testCreds, "CAD")

	payload, err := n.Build(validRequest(), gateway.ProtocolRest, "")
	require.NoError(t, err)
	require.NotNil(t, payload.Rest)
	assert.Nil(t, payload.Legacy)

	rest := payload.Rest
	assert.Equal(t, int64(2500), rest.Amount)
	assert.True(t, rest.SettleWithAuth)
	assert.Equal(t, "123", rest.Card.CVV)
	assert.Equal(t, "4511111111111111", rest.Card.CardNum)
	assert.Empty(t, rest.Card.PaymentToken)
	require.NotNil(t, rest.Profile)
	assert.Equal(t, "marie@example.org", rest.Profile.Email)
	assert.Equal(t, "192.0.2.10", rest.CustomerIP)
}

func TestStateAndRegionByCountry(t *testing.T) {
	n := gateway.NewNormalizer(testCreds, "CAD")

	req := validRequest()
	payload, err := n.Build(req, gateway.ProtocolLegacy, "")
	require.NoError(t, err)
	assert.Equal(t, "QC", payload.Legacy.BillingDetails.State)
	assert.Empty(t, payload.Legacy.BillingDetails.Region)

	req = validRequest()
	req.Billing.Country = "FR"
	req.Billing.Region = "Occitanie"
	payload, err = n.Build(req, gateway.ProtocolLegacy, "")
	require.NoError(t, err)
	assert.Empty(t, payload.Legacy.BillingDetails.State)
	assert.Equal(t, "Occitanie", payload.Legacy.BillingDetails.Region)

	// The REST generation drops the region entirely outside US/CA.
	payload, err = n.Build(req, gateway.ProtocolRest, "")
	require.NoError(t, err)
	assert.Empty(t, payload.Rest.BillingDetails.State)
}

func TestBuildRestWithVaultToken(t *testing.T) {
	n := gateway.NewNormalizer(testCreds, "CAD")
	req := validRequest()
	req.CardNumber = ""
	req.CVV = ""

	payload, err := n.Build(req, gateway.ProtocolRest, "tok-abc123")
	require.NoError(t, err)

	assert.Equal(t, "tok-abc123", payload.Rest.Card.PaymentToken)
	assert.Empty(t, payload.Rest.Card.CardNum)
	assert.Empty(t, payload.Rest.Card.CVV)
	assert.Nil(t, payload.Rest.Card.CardExpiry)
}

func TestBuildRecurringSchedule(t *testing.T) {
	n := gateway.NewNormalizer(testCreds, "CAD")
	req := validRequest()
	req.Recurring = true
	req.Schedule = &gateway.RecurringSchedule{Frequency: "MONTHLY", Installments: 12}

	payload, err := n.Build(req, gateway.ProtocolRest, "")
	require.NoError(t, err)
	require.NotNil(t, payload.Rest.Recurring)
	assert.Equal(t, "MONTHLY", payload.Rest.Recurring.Frequency)
	assert.Equal(t, 12, payload.Rest.Recurring.Installments)
}

func TestBuildValidation(t *testing.T) {
	n := gateway.NewNormalizer(testCreds, "CAD")

	tests := []struct {
		name   string
		mutate func(*gateway.TransactionRequest)
		proto  gateway.Protocol
		field  string
	}{
		{"zero amount", func(r *gateway.TransactionRequest) { r.Amount = decimal.Zero }, gateway.ProtocolLegacy, "amount"},
		{"wrong currency", func(r *gateway.TransactionRequest) { r.Currency = "USD" }, gateway.ProtocolLegacy, "currency"},
		{"missing merchant ref", func(r *gateway.TransactionRequest) { r.MerchantRef = "" }, gateway.ProtocolLegacy, "merchant_ref"},
		{"missing card number", func(r *gateway.TransactionRequest) { r.CardNumber = "" }, gateway.ProtocolLegacy, "card_number"},
		{"short card number", func(r *gateway.TransactionRequest) { r.CardNumber = "45111" }, gateway.ProtocolLegacy, "card_number"},
		{"bad expiry month", func(r *gateway.TransactionRequest) { r.ExpiryMonth = 13 }, gateway.ProtocolLegacy, "expiry_month"},
		{"legacy missing name", func(r *gateway.TransactionRequest) { r.FirstName = "" }, gateway.ProtocolLegacy, "cardholder_name"},
		{"legacy missing country", func(r *gateway.TransactionRequest) { r.Billing.Country = "" }, gateway.ProtocolLegacy, "billing.country"},
		{"rest missing email", func(r *gateway.TransactionRequest) { r.Billing.Email = "" }, gateway.ProtocolRest, "billing.email"},
		{"rest missing postal code", func(r *gateway.TransactionRequest) { r.Billing.PostalCode = "" }, gateway.ProtocolRest, "billing.postal_code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := n.Build(req, tt.proto, "")
			vErr, ok := gateway.IsValidationError(err)
			require.True(t, ok, "expected ValidationError, got %v", err)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestMerchantRefLength(t *testing.T) {
	n := gateway.NewNormalizer(testCreds, "CAD")
	req := validRequest()
	for len(req.MerchantRef) <= 255 {
		req.MerchantRef += "0123456789"
	}

	_, err := n.Build(req, gateway.ProtocolLegacy, "")
	vErr, ok := gateway.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "merchant_ref", vErr.Field)
}

func TestAmountConversions(t *testing.T) {
	assert.Equal(t, "25.00", gateway.LegacyAmount(decimal.NewFromInt(25)))
	assert.Equal(t, "10.50", gateway.LegacyAmount(decimal.NewFromFloat(10.5)))
	assert.Equal(t, int64(2500), gateway.RestAmount(decimal.NewFromInt(25)))
	assert.Equal(t, int64(2550), gateway.RestAmount(decimal.NewFromFloat(25.50)))
	// Sub-cent fractions truncate rather than round.
	assert.Equal(t, int64(1055), gateway.RestAmount(decimal.NewFromFloat(10.559)))
}
