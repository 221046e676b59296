package gateway

import (
	"context"
	"log/slog"
	"time"
)

// Log entry categories, one per exchange with the gateway.
const (
	logCategoryRequest  = "charge request"
	logCategoryPayload  = "gateway request"
	logCategoryResponse = "gateway response"
	logCategoryVault    = "vault provisioning"
)

// ChargeResult is what the host records for an approved charge.
type ChargeResult struct {
	TransactionID string
	GrossAmount   string
	Receipt       string
	ResultCode    string
}

// Adapter is the single entry point for the host: it normalizes a charge
// request, provisions a vault token for recurring charges, dispatches over
// the configured protocol, interprets the response and renders the
// receipt. One Adapter per processor configuration; all per-request state
// is call-scoped, so an Adapter is safe for concurrent use.
type Adapter struct {
	protocol     Protocol
	normalizer   *Normalizer
	dispatcher   Dispatcher
	vault        *VaultOrchestrator
	translator   *Translator
	receipts     *ReceiptGenerator
	logStore     LogStore
	receiptStore ReceiptStore
	logger       *slog.Logger
}

func NewAdapter(
	protocol Protocol,
	normalizer *Normalizer,
	dispatcher Dispatcher,
	vault *VaultOrchestrator,
	translator *Translator,
	receipts *ReceiptGenerator,
	logStore LogStore,
	receiptStore ReceiptStore,
	logger *slog.Logger,
) (*Adapter, error) {
	if protocol != ProtocolLegacy && protocol != ProtocolRest {
		return nil, NewConfigurationError("protocol", string(protocol))
	}
	return &Adapter{
		protocol:     protocol,
		normalizer:   normalizer,
		dispatcher:   dispatcher,
		vault:        vault,
		translator:   translator,
		receipts:     receipts,
		logStore:     logStore,
		receiptStore: receiptStore,
		logger:       logger,
	}, nil
}

// Charge submits one charge to the gateway. Every request/response pair is
// written to the audit log in redacted form before Charge returns,
// including on failure.
func (a *Adapter) Charge(ctx context.Context, req *TransactionRequest) (*ChargeResult, error) {
	a.appendLog(ctx, req, logCategoryRequest, requestLogView(req), false)

	var vaultToken string
	if req.Recurring {
		if a.vault == nil {
			return nil, NewConfigurationError("vault", "no vault client configured for recurring charges")
		}
		token, err := a.vault.Provision(ctx, req)
		if err != nil {
			a.appendLog(ctx, req, logCategoryVault, map[string]any{"error": err.Error()}, true)
			return nil, err
		}
		vaultToken = token
	}

	// Vault tokens only exist in the REST generation, so recurring
	// charges always go over REST.
	protocol := a.protocol
	if vaultToken != "" {
		protocol = ProtocolRest
	}

	payload, err := a.normalizer.Build(req, protocol, vaultToken)
	if err != nil {
		a.appendLog(ctx, req, logCategoryRequest, map[string]any{"error": err.Error()}, true)
		return nil, err
	}

	a.appendLog(ctx, req, logCategoryPayload, payloadLogView(payload), false)

	outcome, err := a.dispatcher.Purchase(ctx, payload)
	if err != nil {
		a.appendLog(ctx, req, logCategoryResponse, map[string]any{"error": err.Error()}, true)
		return nil, err
	}

	if outcome == nil {
		a.appendLog(ctx, req, logCategoryResponse, map[string]any{"error": "empty gateway response"}, true)
		return nil, &GatewayError{
			Code:    CodeEmptyResponse,
			Message: a.translator.InternalFailure(CodeEmptyResponse),
		}
	}

	a.appendLog(ctx, req, logCategoryResponse, AsMap(outcome), !outcome.Accepted())

	if !outcome.Accepted() {
		return nil, a.failure(req, outcome)
	}

	receipt := a.receipts.Generate(req, outcome)
	a.saveReceipt(ctx, req, outcome, receipt)

	return &ChargeResult{
		TransactionID: outcome.TransactionID,
		GrossAmount:   LegacyAmount(req.Amount),
		Receipt:       receipt,
		ResultCode:    outcome.ResultCode(),
	}, nil
}

// failure renders the decline/error receipt and wraps the outcome in the
// matching typed error with a translated user-facing message.
func (a *Adapter) failure(req *TransactionRequest, outcome *Outcome) error {
	receipt := a.receipts.Generate(req, outcome)
	message := a.translator.OutcomeMessage(outcome)

	if outcome.Status == StatusDeclined {
		return &DeclinedError{Outcome: outcome, Message: message, Receipt: receipt}
	}
	return &GatewayError{
		Code:    CodeUnknownError,
		Outcome: outcome,
		Message: message,
		Receipt: receipt,
	}
}

// appendLog writes one redacted audit record. The write is synchronous so
// it completes before Charge returns; a failing log store is reported to
// the operator log but does not abort the charge.
func (a *Adapter) appendLog(ctx context.Context, req *TransactionRequest, category string, payload map[string]any, failed bool) {
	entry := LogEntry{
		TransactionRef: req.MerchantRef,
		Timestamp:      time.Now().UTC(),
		Category:       category,
		Payload:        Redact(payload),
		Failed:         failed,
		ClientIP:       req.ClientIP,
	}
	if err := a.logStore.Append(ctx, entry); err != nil {
		a.logger.Error("audit log append failed",
			"merchant_ref", req.MerchantRef,
			"category", category,
			"error", err,
		)
	}
}

func (a *Adapter) saveReceipt(ctx context.Context, req *TransactionRequest, outcome *Outcome, receipt string) {
	ts := outcome.TxnTime
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	rec := ReceiptRecord{
		TransactionRef: outcome.TransactionID,
		Receipt:        receipt,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		CardType:       req.CardType,
		MaskedCard:     MaskCardNumber(req.CardNumber),
		Timestamp:      ts,
		ClientIP:       req.ClientIP,
	}
	if err := a.receiptStore.Save(ctx, rec); err != nil {
		// The charge already went through; losing the stored copy must
		// not turn an approval into a reported failure.
		a.logger.Error("receipt save failed",
			"transaction_id", outcome.TransactionID,
			"error", err,
		)
	}
}

// requestLogView flattens the host request into the audit log shape. Card
// data passes through the redactor before being written.
func requestLogView(req *TransactionRequest) map[string]any {
	return map[string]any{
		"invoiceID":          req.MerchantRef,
		"amount":             req.Amount.String(),
		"currencyID":         req.Currency,
		"credit_card_number": req.CardNumber,
		"cvv2":               req.CVV,
		"credit_card_type":   req.CardType,
		"first_name":         req.FirstName,
		"last_name":          req.LastName,
		"street_address":     req.Billing.Street,
		"city":               req.Billing.City,
		"state_province":     req.Billing.Region,
		"country":            req.Billing.Country,
		"postal_code":        req.Billing.PostalCode,
		"email":              req.Billing.Email,
		"ip_address":         req.ClientIP,
		"is_recur":           req.Recurring,
	}
}

func payloadLogView(payload *Payload) map[string]any {
	switch {
	case payload.Legacy != nil:
		return AsMap(payload.Legacy)
	case payload.Rest != nil:
		return AsMap(payload.Rest)
	}
	return nil
}
