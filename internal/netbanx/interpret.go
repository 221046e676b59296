package netbanx

import (
	"time"

	"github.com/nodisys/netbanx-gateway/internal/gateway"
)

// Legacy decision values.
const (
	decisionAccepted = "ACCEPTED"
	decisionDeclined = "DECLINED"
	decisionError    = "ERROR"
)

// REST status values. COMPLETED is the only success.
const (
	restStatusCompleted = "COMPLETED"
	restStatusFailed    = "FAILED"
)

// Timestamp layouts seen in gateway replies. An unparseable time is
// dropped, never an error.
var txnTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// interpretLegacy normalizes a legacy transaction verdict. A nil response
// is an Error outcome with no transaction id. Vendor-specific tag/value
// detail pairs are flattened into VendorDetail; on duplicate tags the
// later pair wins.
func interpretLegacy(resp *legacyTxnResponse) *gateway.Outcome {
	if resp == nil {
		return &gateway.Outcome{Status: gateway.StatusError}
	}

	outcome := &gateway.Outcome{
		TransactionID:   resp.ConfirmationNumber,
		AuthCode:        resp.AuthCode,
		Confirmation:    resp.ConfirmationNumber,
		CVVResult:       resp.CVDResponse,
		AVSResult:       resp.AVSResponse,
		RawErrorCode:    resp.Code,
		RawErrorMessage: resp.Description,
		TxnTime:         parseTxnTime(resp.TxnTime),
	}

	switch resp.Decision {
	case decisionAccepted:
		outcome.Status = gateway.StatusAccepted
	case decisionDeclined:
		outcome.Status = gateway.StatusDeclined
	case decisionError:
		outcome.Status = gateway.StatusError
	case "":
		outcome.Status = gateway.StatusError
	default:
		outcome.Status = gateway.StatusUnknown
	}

	if resp.Addendum != nil && len(resp.Addendum.Detail) > 0 {
		outcome.VendorDetail = make(map[string]string, len(resp.Addendum.Detail))
		for _, d := range resp.Addendum.Detail {
			outcome.VendorDetail[d.Tag] = d.Value
		}
	}

	return outcome
}

// interpretRest normalizes a REST auth verdict. A nil response is an Error
// outcome with no transaction id.
func interpretRest(resp *restAuthResponse) *gateway.Outcome {
	if resp == nil {
		return &gateway.Outcome{Status: gateway.StatusError}
	}

	outcome := &gateway.Outcome{
		TransactionID: resp.ID,
		AuthCode:      resp.AuthCode,
		Confirmation:  resp.ID,
		CVVResult:     resp.CVVVerification,
		AVSResult:     resp.AVSResponse,
		TxnTime:       parseTxnTime(resp.TxnTime),
	}
	if resp.Error != nil {
		outcome.RawErrorCode = resp.Error.Code
		outcome.RawErrorMessage = resp.Error.Message
	}

	switch resp.Status {
	case restStatusCompleted:
		outcome.Status = gateway.StatusAccepted
	case restStatusFailed:
		outcome.Status = gateway.StatusDeclined
	default:
		outcome.Status = gateway.StatusError
	}

	return outcome
}

func parseTxnTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range txnTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
