package gateway

import "time"

// Status is the normalized verdict on a charge attempt.
type Status string

const (
	StatusAccepted Status = "ACCEPTED"
	StatusDeclined Status = "DECLINED"
	StatusError    Status = "ERROR"
	StatusUnknown  Status = "UNKNOWN"
)

// Outcome normalizes both wire generations into one shape. It is built
// exclusively by the response interpreters and is immutable after that.
// Status ACCEPTED implies TransactionID and AuthCode are both present.
type Outcome struct {
	Status          Status
	TransactionID   string
	AuthCode        string
	Confirmation    string
	CVVResult       string
	AVSResult       string
	RawErrorCode    string
	RawErrorMessage string
	VendorDetail    map[string]string
	TxnTime         time.Time
}

// Accepted reports whether the gateway approved the charge.
func (o *Outcome) Accepted() bool {
	return o != nil && o.Status == StatusAccepted
}

// ResultCode is the composite confirmation-auth-cvd-avs code the host
// records as trxn_result_code.
func (o *Outcome) ResultCode() string {
	return o.Confirmation + "-" + o.AuthCode + "-" + o.CVVResult + "-" + o.AVSResult
}

// VaultProfile is the customer profile created on the gateway vault.
type VaultProfile struct {
	ID     string
	Status string
}

// VaultAddress is a billing address attached to a vault profile.
type VaultAddress struct {
	ID string
}

// VaultCard is a tokenized card. The PaymentToken replaces raw card data in
// recurring charge payloads. It is only valid when its parent profile and
// address were created in the same provisioning run.
type VaultCard struct {
	ID           string
	PaymentToken string
}
