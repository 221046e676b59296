package netbanx

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nodisys/netbanx-gateway/internal/gateway"
)

func (c *Client) authsURL() string {
	return fmt.Sprintf("%s/cardpayments/v1/accounts/%s/auths", c.restURL, c.creds.AccountNumber)
}

// restPurchase posts the JSON auth request. A decoded body is always
// handed to the interpreter, whatever the HTTP status: a declined charge
// comes back as a 4xx with a regular response body.
func (c *Client) restPurchase(ctx context.Context, payload *gateway.RestPayload) (*gateway.Outcome, error) {
	decoded, status, err := sendJSON[gateway.RestPayload, restAuthResponse](c, ctx, http.MethodPost, c.authsURL(), payload)
	if err != nil {
		return nil, err
	}

	if decoded != nil {
		c.logger.Debug("rest purchase completed",
			"merchant_ref", payload.MerchantRefNum,
			"status", decoded.Status,
			"http_status", status,
		)
	}

	return interpretRest(decoded), nil
}
