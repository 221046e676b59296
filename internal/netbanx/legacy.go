package netbanx

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"

	"github.com/nodisys/netbanx-gateway/internal/gateway"
)

// legacyPurchase issues the single fixed ccPurchase remote call and
// interprets the reply.
func (c *Client) legacyPurchase(ctx context.Context, payload *gateway.LegacyPayload) (*gateway.Outcome, error) {
	envelope := newLegacyEnvelope(payload)

	body, err := xml.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("error marshalling envelope: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.legacyURL,
		bytes.NewReader(append([]byte(xml.Header), body...)))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "text/xml; charset=utf-8")
	httpReq.Header.Set("SOAPAction", "ccPurchase")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &gateway.TransportError{Protocol: gateway.ProtocolLegacy, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &gateway.TransportError{
			Protocol:   gateway.ProtocolLegacy,
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	// An empty 2xx body is a gateway fault, not a transport fault: the
	// interpreter turns it into an Error outcome.
	if len(bytes.TrimSpace(raw)) == 0 {
		return interpretLegacy(nil), nil
	}

	var decoded legacyResponseEnvelope
	if err := xml.Unmarshal(raw, &decoded); err != nil {
		return nil, &gateway.TransportError{
			Protocol:   gateway.ProtocolLegacy,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unparseable response body: %w", err),
		}
	}

	c.logger.Debug("legacy purchase completed",
		"merchant_ref", payload.MerchantRefNum,
		"decision", decoded.Body.PurchaseResponse.TxnResponse.Decision,
	)

	return interpretLegacy(&decoded.Body.PurchaseResponse.TxnResponse), nil
}
