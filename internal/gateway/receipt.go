package gateway

import (
	"fmt"
	"strings"
)

const receiptWrapWidth = 75

// OrgIdentity is the organization block printed at the top of receipts,
// supplied by the host. The card brands require the business name and
// address of the merchant on every transaction record.
type OrgIdentity struct {
	Name    string
	Street  string
	City    string
	Region  string
	TOSURL  string
	TOSText string
}

// ReceiptGenerator renders human-readable transaction records. It degrades
// gracefully: missing optional outcome fields are omitted, never an error.
type ReceiptGenerator struct {
	org        OrgIdentity
	currency   string
	translator *Translator
}

func NewReceiptGenerator(org OrgIdentity, currency string, translator *Translator) *ReceiptGenerator {
	return &ReceiptGenerator{org: org, currency: currency, translator: translator}
}

// Generate renders the receipt for one charge attempt. The card number is
// only ever included masked.
func (g *ReceiptGenerator) Generate(req *TransactionRequest, outcome *Outcome) string {
	var b strings.Builder

	b.WriteString(g.nameAndAddress())
	b.WriteString("\n\n")

	b.WriteString("CREDIT CARD TRANSACTION RECORD\n\n")

	if outcome != nil && !outcome.TxnTime.IsZero() {
		fmt.Fprintf(&b, "Date: %s\n", outcome.TxnTime.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(&b, "Transaction: %s\n", req.MerchantRef)
	b.WriteString("Type: purchase\n")
	if outcome != nil && outcome.AuthCode != "" {
		fmt.Fprintf(&b, "Authorization: %s\n", outcome.AuthCode)
	}
	if outcome != nil && outcome.TransactionID != "" {
		fmt.Fprintf(&b, "Confirmation: %s\n", outcome.TransactionID)
	}
	b.WriteString("\n")

	if req.CardType != "" {
		fmt.Fprintf(&b, "Credit card type: %s\n", req.CardType)
	}
	fmt.Fprintf(&b, "Credit card holder name: %s\n", req.HolderName())
	fmt.Fprintf(&b, "Credit card number: %s\n\n", MaskCardNumber(req.CardNumber))

	fmt.Fprintf(&b, "Transaction amount: $%s\n\n", LegacyAmount(req.Amount))

	b.WriteString(g.statusLine(outcome))
	b.WriteString("\n\n")

	if g.org.TOSURL != "" {
		b.WriteString("Terms and conditions:\n")
		b.WriteString(g.org.TOSURL)
		b.WriteString("\n\n")
	}
	if g.org.TOSText != "" {
		b.WriteString(wordwrap(g.org.TOSText, receiptWrapWidth))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(g.currencyNote())
	b.WriteString("\n")
	b.WriteString("This transaction is non-taxable.")

	return b.String()
}

func (g *ReceiptGenerator) statusLine(outcome *Outcome) string {
	if outcome == nil {
		return "TRANSACTION CANCELLED - " + g.translator.Translate(msgContactUs)
	}

	switch outcome.Status {
	case StatusAccepted:
		return "TRANSACTION APPROVED - THANK YOU"
	case StatusError:
		return wordwrap("TRANSACTION CANCELLED - "+g.translator.OutcomeMessage(outcome), receiptWrapWidth)
	case StatusDeclined:
		return wordwrap("TRANSACTION DECLINED - "+g.translator.OutcomeMessage(outcome), receiptWrapWidth)
	}
	return string(outcome.Status) + " - " + g.translator.OutcomeMessage(outcome)
}

func (g *ReceiptGenerator) nameAndAddress() string {
	lines := []string{g.org.Name}
	if g.org.Street != "" {
		lines = append(lines, g.org.Street)
	}
	if g.org.City != "" {
		city := g.org.City
		if g.org.Region != "" {
			city += ", " + g.org.Region
		}
		lines = append(lines, city)
	}
	return strings.Join(lines, "\n")
}

func (g *ReceiptGenerator) currencyNote() string {
	switch g.currency {
	case "CAD":
		return "Prices are in canadian dollars ($ CAD)."
	case "USD":
		return "Prices are in US dollars ($ USD)."
	}
	return fmt.Sprintf("Prices are in %s.", g.currency)
}

func wordwrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
