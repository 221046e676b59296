package gateway

import (
	"github.com/shopspring/decimal"
)

// Protocol selects the gateway wire generation for a charge.
type Protocol string

const (
	ProtocolLegacy Protocol = "legacy"
	ProtocolRest   Protocol = "rest"
)

// Environment selects the gateway deployment a charge is sent to.
type Environment string

const (
	EnvironmentTest Environment = "test"
	EnvironmentLive Environment = "live"
)

// Credentials is the merchant identity issued by the gateway. Loaded once
// per adapter instance and safe to share across concurrent charges.
type Credentials struct {
	AccountNumber string
	StoreID       string
	StorePassword string
	APIKey        string
	APISecret     string
}

// Address is the cardholder billing address supplied by the host.
type Address struct {
	Street     string
	City       string
	Region     string
	Country    string
	PostalCode string
	Email      string
}

// RecurringSchedule describes the billing cadence for a tokenized card.
type RecurringSchedule struct {
	Frequency    string
	Installments int
}

// TransactionRequest is the generic charge request handed over by the host.
// CardNumber and CVV are transient: they live in memory for the duration of
// one call and must never reach a log entry or receipt unmasked.
type TransactionRequest struct {
	Amount      decimal.Decimal
	Currency    string
	CardNumber  string
	CardType    string
	ExpiryMonth int
	ExpiryYear  int
	CVV         string
	FirstName   string
	LastName    string
	Billing     Address
	ClientIP    string
	MerchantRef string
	Recurring   bool
	Schedule    *RecurringSchedule
}

// HolderName is the cardholder name as printed on receipts.
func (r *TransactionRequest) HolderName() string {
	if r.FirstName == "" {
		return r.LastName
	}
	return r.FirstName + " " + r.LastName
}
