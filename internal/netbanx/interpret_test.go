package netbanx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nodisys/netbanx-gateway/internal/gateway"
)

func TestInterpretLegacyAccepted(t *testing.T) {
	outcome := interpretLegacy(&legacyTxnResponse{
		ConfirmationNumber: "123456",
		Decision:           "ACCEPTED",
		AuthCode:           "654321",
		TxnTime:            "2026-03-14T09:30:00",
		CVDResponse:        "M",
		AVSResponse:        "X",
	})

	assert.Equal(t, gateway.StatusAccepted, outcome.Status)
	assert.True(t, outcome.Accepted())
	assert.Equal(t, "123456", outcome.TransactionID)
	assert.Equal(t, "654321", outcome.AuthCode)
	assert.Equal(t, "123456-654321-M-X", outcome.ResultCode())
	assert.Equal(t, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), outcome.TxnTime)
}

func TestInterpretLegacyDecisions(t *testing.T) {
	cases := []struct {
		decision string
		want     gateway.Status
	}{
		{"ACCEPTED", gateway.StatusAccepted},
		{"DECLINED", gateway.StatusDeclined},
		{"ERROR", gateway.StatusError},
		{"", gateway.StatusError},
		{"PENDING", gateway.StatusUnknown},
	}
	for _, tc := range cases {
		outcome := interpretLegacy(&legacyTxnResponse{Decision: tc.decision})
		assert.Equal(t, tc.want, outcome.Status, "decision %q", tc.decision)
	}
}

func TestInterpretLegacyNil(t *testing.T) {
	outcome := interpretLegacy(nil)

	assert.Equal(t, gateway.StatusError, outcome.Status)
	assert.Empty(t, outcome.TransactionID)
	assert.False(t, outcome.Accepted())
}

func TestInterpretLegacyDeclineCarriesDiagnostics(t *testing.T) {
	outcome := interpretLegacy(&legacyTxnResponse{
		Decision:    "DECLINED",
		Code:        "3009",
		Description: "Your request has been declined by the issuing bank.",
	})

	assert.Equal(t, "3009", outcome.RawErrorCode)
	assert.Equal(t, "Your request has been declined by the issuing bank.", outcome.RawErrorMessage)
}

func TestInterpretLegacyAddendumFlattening(t *testing.T) {
	outcome := interpretLegacy(&legacyTxnResponse{
		Decision: "ACCEPTED",
		Addendum: &legacyAddendum{Detail: []legacyDetail{
			{Tag: "BATCH_NUMBER", Value: "12"},
			{Tag: "SEQ_NUMBER", Value: "33"},
			{Tag: "BATCH_NUMBER", Value: "14"},
		}},
	})

	// Duplicate tags: the later pair wins.
	assert.Equal(t, map[string]string{
		"BATCH_NUMBER": "14",
		"SEQ_NUMBER":   "33",
	}, outcome.VendorDetail)
}

func TestInterpretLegacyNoAddendum(t *testing.T) {
	outcome := interpretLegacy(&legacyTxnResponse{Decision: "ACCEPTED"})
	assert.Nil(t, outcome.VendorDetail)
}

func TestInterpretRestStatuses(t *testing.T) {
	cases := []struct {
		status string
		want   gateway.Status
	}{
		{"COMPLETED", gateway.StatusAccepted},
		{"FAILED", gateway.StatusDeclined},
		{"PENDING", gateway.StatusError},
		{"", gateway.StatusError},
	}
	for _, tc := range cases {
		outcome := interpretRest(&restAuthResponse{Status: tc.status})
		assert.Equal(t, tc.want, outcome.Status, "status %q", tc.status)
	}
}

func TestInterpretRestCompleted(t *testing.T) {
	outcome := interpretRest(&restAuthResponse{
		ID:              "a3c81cbd",
		Status:          "COMPLETED",
		AuthCode:        "110987",
		TxnTime:         "2026-03-14T09:30:00Z",
		CVVVerification: "MATCH",
		AVSResponse:     "MATCH",
	})

	assert.True(t, outcome.Accepted())
	assert.Equal(t, "a3c81cbd", outcome.TransactionID)
	assert.Equal(t, "a3c81cbd", outcome.Confirmation)
	assert.Equal(t, "110987", outcome.AuthCode)
	assert.False(t, outcome.TxnTime.IsZero())
}

func TestInterpretRestFailedWithError(t *testing.T) {
	outcome := interpretRest(&restAuthResponse{
		Status: "FAILED",
		Error:  &restError{Code: "3022", Message: "The card has been declined due to insufficient funds."},
	})

	assert.Equal(t, gateway.StatusDeclined, outcome.Status)
	assert.Equal(t, "3022", outcome.RawErrorCode)
	assert.Equal(t, "The card has been declined due to insufficient funds.", outcome.RawErrorMessage)
}

func TestInterpretRestNil(t *testing.T) {
	outcome := interpretRest(nil)
	assert.Equal(t, gateway.StatusError, outcome.Status)
}

func TestParseTxnTime(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-14T09:30:00Z", time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)},
		{"2026-03-14T09:30:00", time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)},
		{"2026-03-14 09:30:00", time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)},
		{"not-a-time", time.Time{}},
		{"", time.Time{}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseTxnTime(tc.in), "input %q", tc.in)
	}
}
