package gateway

import "encoding/json"

// Placeholder written in place of a CVV in anything logged. The real value
// must never be persisted, even masked.
const redactedCVV = "XXX"

var cardNumberKeys = map[string]bool{
	"cardNum":            true,
	"credit_card_number": true,
	"card_number":        true,
}

var securityCodeKeys = map[string]bool{
	"cvd":  true,
	"cvv":  true,
	"cvv2": true,
}

var secretKeys = map[string]bool{
	"storePwd":       true,
	"store_password": true,
}

// MaskCardNumber renders a card number for display, keeping only the last
// four digits: 4511111111111111 -> **** **** **** 1111.
func MaskCardNumber(cardNumber string) string {
	if len(cardNumber) < 4 {
		return "****"
	}
	return "**** **** **** " + cardNumber[len(cardNumber)-4:]
}

// Redact returns a deep copy of value with card numbers masked, security
// codes replaced by a placeholder, and store passwords blanked. It
// recognizes both wire generations' field names and never mutates the
// input.
func Redact(value map[string]any) map[string]any {
	if value == nil {
		return nil
	}
	out := make(map[string]any, len(value))
	for k, v := range value {
		out[k] = redactValue(k, v)
	}
	return out
}

func redactValue(key string, v any) any {
	switch {
	case cardNumberKeys[key]:
		if s, ok := v.(string); ok {
			return MaskCardNumber(s)
		}
	case securityCodeKeys[key]:
		if _, ok := v.(string); ok {
			return redactedCVV
		}
	case secretKeys[key]:
		if _, ok := v.(string); ok {
			return "********"
		}
	}

	switch vv := v.(type) {
	case map[string]any:
		return Redact(vv)
	case []any:
		out := make([]any, len(vv))
		for i, item := range vv {
			out[i] = redactValue("", item)
		}
		return out
	}
	return v
}

// AsMap converts any JSON-serializable value into a generic map so it can
// be redacted and logged. Returns nil when the value cannot be represented.
func AsMap(value any) map[string]any {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}
