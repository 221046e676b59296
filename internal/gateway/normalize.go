package gateway

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Countries for which the gateway expects a state code instead of a
// free-form region.
var stateCountries = map[string]bool{"US": true, "CA": true}

var minorUnitFactor = decimal.NewFromInt(100)

// Normalizer builds protocol-specific payloads from generic transaction
// requests. It is a pure transform: it performs the one and only amount
// unit conversion and never mutates the request.
type Normalizer struct {
	creds    Credentials
	currency string
}

func NewNormalizer(creds Credentials, currency string) *Normalizer {
	return &Normalizer{creds: creds, currency: currency}
}

// Build produces the payload for the selected protocol, or a
// ValidationError when a field required by that protocol is missing.
// vaultToken, when non-empty, replaces raw card data in REST payloads.
func (n *Normalizer) Build(req *TransactionRequest, protocol Protocol, vaultToken string) (*Payload, error) {
	if err := n.validate(req, protocol, vaultToken); err != nil {
		return nil, err
	}

	switch protocol {
	case ProtocolLegacy:
		return &Payload{Protocol: ProtocolLegacy, Legacy: n.buildLegacy(req)}, nil
	case ProtocolRest:
		return &Payload{Protocol: ProtocolRest, Rest: n.buildRest(req, vaultToken)}, nil
	}
	return nil, NewConfigurationError("protocol", string(protocol))
}

func (n *Normalizer) validate(req *TransactionRequest, protocol Protocol, vaultToken string) error {
	if !req.Amount.IsPositive() {
		return NewValidationError("amount", "must be positive")
	}
	if req.Currency != n.currency {
		return NewValidationError("currency", "must be "+n.currency)
	}
	if req.MerchantRef == "" {
		return NewValidationError("merchant_ref", "is required")
	}
	if len(req.MerchantRef) > 255 {
		return NewValidationError("merchant_ref", "must be at most 255 characters")
	}
	if vaultToken == "" {
		if req.CardNumber == "" {
			return NewValidationError("card_number", "is required")
		}
		if !isCardNumber(req.CardNumber) {
			return NewValidationError("card_number", "must be 13 to 19 digits")
		}
		if req.ExpiryMonth < 1 || req.ExpiryMonth > 12 {
			return NewValidationError("expiry_month", "must be between 1 and 12")
		}
		if req.ExpiryYear < 2000 {
			return NewValidationError("expiry_year", "must be a four-digit year")
		}
	}

	switch protocol {
	case ProtocolLegacy:
		if req.FirstName == "" || req.LastName == "" {
			return NewValidationError("cardholder_name", "first and last name are required")
		}
		if req.Billing.Country == "" {
			return NewValidationError("billing.country", "is required")
		}
	case ProtocolRest:
		if req.Billing.Email == "" {
			return NewValidationError("billing.email", "is required")
		}
		if req.Billing.Country == "" {
			return NewValidationError("billing.country", "is required")
		}
		if req.Billing.PostalCode == "" {
			return NewValidationError("billing.postal_code", "is required")
		}
	}
	return nil
}

func (n *Normalizer) buildLegacy(req *TransactionRequest) *LegacyPayload {
	card := LegacyCard{
		CardNum: req.CardNumber,
		CardExpiry: CardExpiry{
			Month: req.ExpiryMonth,
			Year:  req.ExpiryYear,
		},
	}
	if req.CVV != "" {
		card.CVDIndicator = 1
		card.CVDIndicatorSpecified = true
		card.CVD = req.CVV
	}

	billing := LegacyBillingDetails{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Street:           req.Billing.Street,
		City:             req.Billing.City,
		Country:          req.Billing.Country,
		CountrySpecified: true,
		Zip:              req.Billing.PostalCode,
		Email:            req.Billing.Email,
	}
	if stateCountries[req.Billing.Country] {
		billing.State = req.Billing.Region
	} else {
		billing.Region = req.Billing.Region
	}

	return &LegacyPayload{
		MerchantAccount: LegacyMerchantAccount{
			AccountNum: n.creds.AccountNumber,
			StoreID:    n.creds.StoreID,
			StorePwd:   n.creds.StorePassword,
		},
		MerchantRefNum: req.MerchantRef,
		Amount:         LegacyAmount(req.Amount),
		Card:           card,
		CustomerIP:     req.ClientIP,
		BillingDetails: billing,
	}
}

func (n *Normalizer) buildRest(req *TransactionRequest, vaultToken string) *RestPayload {
	var card RestCard
	if vaultToken != "" {
		card.PaymentToken = vaultToken
	} else {
		card.CardNum = req.CardNumber
		card.CardExpiry = &CardExpiry{
			Month: req.ExpiryMonth,
			Year:  req.ExpiryYear,
		}
		card.CVV = req.CVV
	}

	billing := &RestBillingAddr{
		Street:  req.Billing.Street,
		City:    req.Billing.City,
		Country: req.Billing.Country,
		Zip:     req.Billing.PostalCode,
	}
	// The REST generation drops the region entirely outside US/CA rather
	// than renaming it. Preserved as-is.
	if stateCountries[req.Billing.Country] {
		billing.State = req.Billing.Region
	}

	p := &RestPayload{
		MerchantRefNum: req.MerchantRef,
		Amount:         RestAmount(req.Amount),
		SettleWithAuth: true,
		CustomerIP:     req.ClientIP,
		Card:           card,
		Profile: &RestProfile{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Billing.Email,
		},
		BillingDetails: billing,
	}
	if req.Recurring && req.Schedule != nil {
		p.Recurring = &RestRecurringInfo{
			Frequency:    req.Schedule.Frequency,
			Installments: req.Schedule.Installments,
		}
	}
	return p
}

// LegacyAmount renders an amount as a decimal string with exactly two
// fraction digits, e.g. "25.00".
func LegacyAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// RestAmount converts an amount to integer minor currency units, e.g.
// 25.50 -> 2550. Fractions beyond two digits are truncated.
func RestAmount(amount decimal.Decimal) int64 {
	return amount.Mul(minorUnitFactor).IntPart()
}

func isCardNumber(s string) bool {
	if len(s) < 13 || len(s) > 19 {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) == -1
}
