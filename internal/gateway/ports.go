package gateway

import (
	"context"
	"time"
)

// Dispatcher is the port for the gateway transport. Purchase performs
// exactly one network call and returns the interpreted outcome or a
// TransportError. Retries are a caller policy, never performed here.
type Dispatcher interface {
	Purchase(ctx context.Context, payload *Payload) (*Outcome, error)
}

// VaultClient is the port for the gateway's customer vault. Each call maps
// to one network call; identifiers thread from one step to the next.
type VaultClient interface {
	CreateProfile(ctx context.Context, req VaultProfileRequest) (*VaultProfile, error)
	CreateAddress(ctx context.Context, profileID string, req VaultAddressRequest) (*VaultAddress, error)
	CreateCard(ctx context.Context, profileID, addressID string, req VaultCardRequest) (*VaultCard, error)
}

// VaultProfileRequest creates a customer profile on the vault.
type VaultProfileRequest struct {
	MerchantCustomerID string
	Locale             string
	FirstName          string
	LastName           string
	Email              string
}

// VaultAddressRequest attaches a billing address to a profile.
type VaultAddressRequest struct {
	NickName string
	Street   string
	City     string
	State    string
	Country  string
	Zip      string
}

// VaultCardRequest tokenizes a card under a profile, referencing the
// billing address created before it.
type VaultCardRequest struct {
	CardNum     string
	ExpiryMonth int
	ExpiryYear  int
	NickName    string
}

// LogEntry is one redacted request/response audit record. Payload has
// already passed through the redactor.
type LogEntry struct {
	TransactionRef string
	Timestamp      time.Time
	Category       string
	Payload        map[string]any
	Failed         bool
	ClientIP       string
}

// ReceiptRecord is the rendered receipt persisted for later display.
// MaskedCard is the display form only; raw card numbers never reach a
// store.
type ReceiptRecord struct {
	TransactionRef string
	Receipt        string
	FirstName      string
	LastName       string
	CardType       string
	MaskedCard     string
	Timestamp      time.Time
	ClientIP       string
}

// LogStore is the append-only audit log collaborator.
type LogStore interface {
	Append(ctx context.Context, entry LogEntry) error
}

// ReceiptStore persists rendered receipts keyed by transaction ref.
type ReceiptStore interface {
	Save(ctx context.Context, rec ReceiptRecord) error
	FindByRef(ctx context.Context, transactionRef string) (string, error)
}
