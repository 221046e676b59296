package netbanx

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/nodisys/netbanx-gateway/internal/gateway"
)

// Client speaks both gateway generations. It implements
// gateway.Dispatcher and gateway.VaultClient. Exactly one network call is
// made per operation; retrying is left to the caller.
type Client struct {
	creds      gateway.Credentials
	legacyURL  string
	restURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option adjusts a Client. Outside of tests the fixed per-environment
// endpoints are the only ones that exist.
type Option func(*Client)

// WithBaseURLs points the client at alternate endpoints.
func WithBaseURLs(legacyURL, restURL string) Option {
	return func(c *Client) {
		c.legacyURL = legacyURL
		c.restURL = restURL
	}
}

func NewClient(
	creds gateway.Credentials,
	environment gateway.Environment,
	protocol gateway.Protocol,
	timeout time.Duration,
	logger *slog.Logger,
	opts ...Option,
) (*Client, error) {
	legacyURL, restURL, err := endpoints(environment)
	if err != nil {
		return nil, err
	}

	if creds.AccountNumber == "" {
		return nil, gateway.NewConfigurationError("merchant.account_number", "")
	}
	switch protocol {
	case gateway.ProtocolLegacy:
		if creds.StoreID == "" || creds.StorePassword == "" {
			return nil, gateway.NewConfigurationError("merchant.store_id/store_password", "")
		}
	case gateway.ProtocolRest:
		if creds.APIKey == "" || creds.APISecret == "" {
			return nil, gateway.NewConfigurationError("merchant.api_key/api_secret", "")
		}
	default:
		return nil, gateway.NewConfigurationError("protocol", string(protocol))
	}

	c := &Client{
		creds:     creds,
		legacyURL: legacyURL,
		restURL:   restURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Purchase dispatches a built payload over the protocol it was built for
// and returns the interpreted outcome.
func (c *Client) Purchase(ctx context.Context, payload *gateway.Payload) (*gateway.Outcome, error) {
	switch payload.Protocol {
	case gateway.ProtocolLegacy:
		if payload.Legacy == nil {
			return nil, gateway.NewConfigurationError("payload", "legacy payload missing")
		}
		return c.legacyPurchase(ctx, payload.Legacy)
	case gateway.ProtocolRest:
		if payload.Rest == nil {
			return nil, gateway.NewConfigurationError("payload", "rest payload missing")
		}
		return c.restPurchase(ctx, payload.Rest)
	}
	return nil, gateway.NewConfigurationError("protocol", string(payload.Protocol))
}

func (c *Client) basicAuth() string {
	token := base64.StdEncoding.EncodeToString([]byte(c.creds.APIKey + ":" + c.creds.APISecret))
	return "Basic " + token
}

// sendJSON performs one REST call. A connectivity failure, timeout, or
// non-2xx status with an unparseable body is a TransportError; a parseable
// error body is returned to the caller as the decoded response so the
// interpreter can classify it.
func sendJSON[Req any, Resp any](c *Client, ctx context.Context, method, url string, reqBody *Req) (*Resp, int, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, 0, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, 0, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", c.basicAuth())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, 0, &gateway.TransportError{Protocol: gateway.ProtocolRest, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &gateway.TransportError{
			Protocol:   gateway.ProtocolRest,
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, resp.StatusCode, nil
	}

	var decoded Resp
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, resp.StatusCode, &gateway.TransportError{
			Protocol:   gateway.ProtocolRest,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unparseable response body: %w", err),
		}
	}

	return &decoded, resp.StatusCode, nil
}
