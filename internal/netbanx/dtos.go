package netbanx

import (
	"encoding/xml"

	"github.com/nodisys/netbanx-gateway/internal/gateway"
)

// legacyEnvelope is the SOAP 1.1 request wrapper for the single fixed
// ccPurchase operation. The codec is hand-built on purpose: this adapter
// speaks one operation of one service, not general SOAP.
type legacyEnvelope struct {
	XMLName     xml.Name   `xml:"soapenv:Envelope"`
	NSSoapEnv   string     `xml:"xmlns:soapenv,attr"`
	NSCCService string     `xml:"xmlns:cc,attr"`
	Body        legacyBody `xml:"soapenv:Body"`
}

type legacyBody struct {
	Purchase legacyPurchase `xml:"cc:ccPurchase"`
}

type legacyPurchase struct {
	Request *gateway.LegacyPayload `xml:"ccAuthRequestV1"`
}

func newLegacyEnvelope(payload *gateway.LegacyPayload) *legacyEnvelope {
	return &legacyEnvelope{
		NSSoapEnv:   "http://schemas.xmlsoap.org/soap/envelope/",
		NSCCService: "http://www.optimalpayments.com/creditcard/xmlschema/v1",
		Body: legacyBody{
			Purchase: legacyPurchase{Request: payload},
		},
	}
}

// legacyResponseEnvelope parses the SOAP response. Element matching is by
// local name, so namespace prefixes in the reply do not matter.
type legacyResponseEnvelope struct {
	XMLName xml.Name           `xml:"Envelope"`
	Body    legacyResponseBody `xml:"Body"`
}

type legacyResponseBody struct {
	PurchaseResponse struct {
		TxnResponse legacyTxnResponse `xml:"ccTxnResponseV1"`
	} `xml:"ccPurchaseResponse"`
}

// legacyTxnResponse is the raw legacy transaction verdict. All fields are
// optional at the wire level; absence is handled by the interpreter, never
// a parse failure.
type legacyTxnResponse struct {
	ConfirmationNumber string          `xml:"confirmationNumber"`
	Decision           string          `xml:"decision"`
	Code               string          `xml:"code"`
	Description        string          `xml:"description"`
	AuthCode           string          `xml:"authCode"`
	TxnTime            string          `xml:"txnTime"`
	CVDResponse        string          `xml:"cvdResponse"`
	AVSResponse        string          `xml:"avsResponse"`
	Addendum           *legacyAddendum `xml:"addendumResponse"`
}

type legacyAddendum struct {
	Detail []legacyDetail `xml:"detail"`
}

// legacyDetail is one vendor-specific tag/value pair, e.g. BATCH_NUMBER.
type legacyDetail struct {
	Tag   string `xml:"tag"`
	Value string `xml:"value"`
}

// restAuthResponse is the raw JSON verdict of the REST generation.
type restAuthResponse struct {
	ID              string     `json:"id"`
	MerchantRefNum  string     `json:"merchantRefNum"`
	Status          string     `json:"status"`
	AuthCode        string     `json:"authCode"`
	TxnTime         string     `json:"txnTime"`
	CVVVerification string     `json:"cvvVerification"`
	AVSResponse     string     `json:"avsResponse"`
	Error           *restError `json:"error"`
}

type restError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Vault wire shapes. Each step returns the identifier the next step needs.
type vaultProfileRequest struct {
	MerchantCustomerID string `json:"merchantCustomerId"`
	Locale             string `json:"locale"`
	FirstName          string `json:"firstName,omitempty"`
	LastName           string `json:"lastName,omitempty"`
	Email              string `json:"email,omitempty"`
}

type vaultProfileResponse struct {
	ID     string     `json:"id"`
	Status string     `json:"status"`
	Error  *restError `json:"error"`
}

type vaultAddressRequest struct {
	NickName string `json:"nickName,omitempty"`
	Street   string `json:"street,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country"`
	Zip      string `json:"zip"`
}

type vaultAddressResponse struct {
	ID     string     `json:"id"`
	Status string     `json:"status"`
	Error  *restError `json:"error"`
}

type vaultCardRequest struct {
	CardNum          string          `json:"cardNum"`
	CardExpiry       vaultCardExpiry `json:"cardExpiry"`
	NickName         string          `json:"nickName,omitempty"`
	BillingAddressID string          `json:"billingAddressId,omitempty"`
}

type vaultCardExpiry struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

type vaultCardResponse struct {
	ID           string     `json:"id"`
	PaymentToken string     `json:"paymentToken"`
	Status       string     `json:"status"`
	Error        *restError `json:"error"`
}
