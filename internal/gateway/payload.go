package gateway

// Payload is the tagged protocol-specific request shape produced by the
// normalizer. Exactly one of Legacy or Rest is set, matching Protocol.
// Payloads are built fresh per charge and never reused.
type Payload struct {
	Protocol Protocol
	Legacy   *LegacyPayload
	Rest     *RestPayload
}

// MerchantRef returns the caller-assigned reference regardless of protocol.
func (p *Payload) MerchantRef() string {
	switch {
	case p.Legacy != nil:
		return p.Legacy.MerchantRefNum
	case p.Rest != nil:
		return p.Rest.MerchantRefNum
	}
	return ""
}

// LegacyPayload is the ccAuthRequestV1 body of the legacy protocol.
// Amount is a decimal string with exactly two fraction digits. The json
// tags mirror the wire names so redacted log entries keep them.
type LegacyPayload struct {
	MerchantAccount LegacyMerchantAccount `xml:"merchantAccount" json:"merchantAccount"`
	MerchantRefNum  string                `xml:"merchantRefNum" json:"merchantRefNum"`
	Amount          string                `xml:"amount" json:"amount"`
	Card            LegacyCard            `xml:"card" json:"card"`
	CustomerIP      string                `xml:"customerIP,omitempty" json:"customerIP,omitempty"`
	BillingDetails  LegacyBillingDetails  `xml:"billingDetails" json:"billingDetails"`
}

type LegacyMerchantAccount struct {
	AccountNum string `xml:"accountNum" json:"accountNum"`
	StoreID    string `xml:"storeID" json:"storeID"`
	StorePwd   string `xml:"storePwd" json:"storePwd"`
}

type LegacyCard struct {
	CardNum    string     `xml:"cardNum" json:"cardNum"`
	CardExpiry CardExpiry `xml:"cardExpiry" json:"cardExpiry"`
	// The security-code indicator pair is only sent when a CVV is present.
	CVDIndicator          int    `xml:"cvdIndicator,omitempty" json:"cvdIndicator,omitempty"`
	CVDIndicatorSpecified bool   `xml:"cvdIndicatorSpecified,omitempty" json:"cvdIndicatorSpecified,omitempty"`
	CVD                   string `xml:"cvd,omitempty" json:"cvd,omitempty"`
}

type CardExpiry struct {
	Month int `xml:"month" json:"month"`
	Year  int `xml:"year" json:"year"`
}

type LegacyBillingDetails struct {
	FirstName        string `xml:"firstName" json:"firstName"`
	LastName         string `xml:"lastName" json:"lastName"`
	Street           string `xml:"street" json:"street"`
	City             string `xml:"city" json:"city"`
	State            string `xml:"state,omitempty" json:"state,omitempty"`
	Region           string `xml:"region,omitempty" json:"region,omitempty"`
	Country          string `xml:"country" json:"country"`
	CountrySpecified bool   `xml:"countrySpecified" json:"countrySpecified"`
	Zip              string `xml:"zip" json:"zip"`
	Email            string `xml:"email,omitempty" json:"email,omitempty"`
}

// RestPayload is the JSON auths body of the REST protocol. Amount is in
// integer minor currency units. When a vault token is present the card
// block carries only the token.
type RestPayload struct {
	MerchantRefNum string             `json:"merchantRefNum"`
	Amount         int64              `json:"amount"`
	SettleWithAuth bool               `json:"settleWithAuth"`
	CustomerIP     string             `json:"customerIp,omitempty"`
	Card           RestCard           `json:"card"`
	Profile        *RestProfile       `json:"profile,omitempty"`
	BillingDetails *RestBillingAddr   `json:"billingDetails,omitempty"`
	Recurring      *RestRecurringInfo `json:"recurring,omitempty"`
}

type RestCard struct {
	PaymentToken string      `json:"paymentToken,omitempty"`
	CardNum      string      `json:"cardNum,omitempty"`
	CardExpiry   *CardExpiry `json:"cardExpiry,omitempty"`
	CVV          string      `json:"cvv,omitempty"`
}

type RestProfile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type RestBillingAddr struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
}

type RestRecurringInfo struct {
	Frequency    string `json:"frequency"`
	Installments int    `json:"installments,omitempty"`
}
