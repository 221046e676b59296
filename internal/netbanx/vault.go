package netbanx

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nodisys/netbanx-gateway/internal/gateway"
)

// The customer vault only exists in the REST generation.
func (c *Client) vaultURL(parts string) string {
	return c.restURL + "/customervault/v1/profiles" + parts
}

func (c *Client) checkVaultCredentials() error {
	if c.creds.APIKey == "" || c.creds.APISecret == "" {
		return gateway.NewConfigurationError("merchant.api_key/api_secret", "")
	}
	return nil
}

// CreateProfile creates a fresh customer profile on the vault.
func (c *Client) CreateProfile(ctx context.Context, req gateway.VaultProfileRequest) (*gateway.VaultProfile, error) {
	if err := c.checkVaultCredentials(); err != nil {
		return nil, err
	}

	body := vaultProfileRequest{
		MerchantCustomerID: req.MerchantCustomerID,
		Locale:             req.Locale,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
	}
	decoded, status, err := sendJSON[vaultProfileRequest, vaultProfileResponse](c, ctx, http.MethodPost, c.vaultURL(""), &body)
	if err != nil {
		return nil, err
	}
	if decoded == nil {
		return nil, emptyVaultResponse(status)
	}
	if err := vaultStepError(status, decoded.Error); err != nil {
		return nil, err
	}
	if decoded.ID == "" {
		return nil, fmt.Errorf("vault profile response missing id")
	}

	return &gateway.VaultProfile{ID: decoded.ID, Status: decoded.Status}, nil
}

// CreateAddress attaches a billing address to an existing profile.
func (c *Client) CreateAddress(ctx context.Context, profileID string, req gateway.VaultAddressRequest) (*gateway.VaultAddress, error) {
	if err := c.checkVaultCredentials(); err != nil {
		return nil, err
	}

	body := vaultAddressRequest{
		NickName: req.NickName,
		Street:   req.Street,
		City:     req.City,
		State:    req.State,
		Country:  req.Country,
		Zip:      req.Zip,
	}
	url := c.vaultURL("/" + profileID + "/addresses")
	decoded, status, err := sendJSON[vaultAddressRequest, vaultAddressResponse](c, ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	if decoded == nil {
		return nil, emptyVaultResponse(status)
	}
	if err := vaultStepError(status, decoded.Error); err != nil {
		return nil, err
	}
	if decoded.ID == "" {
		return nil, fmt.Errorf("vault address response missing id")
	}

	return &gateway.VaultAddress{ID: decoded.ID}, nil
}

// CreateCard tokenizes a card under a profile, referencing the billing
// address created in the preceding step.
func (c *Client) CreateCard(ctx context.Context, profileID, addressID string, req gateway.VaultCardRequest) (*gateway.VaultCard, error) {
	if err := c.checkVaultCredentials(); err != nil {
		return nil, err
	}

	body := vaultCardRequest{
		CardNum: req.CardNum,
		CardExpiry: vaultCardExpiry{
			Month: req.ExpiryMonth,
			Year:  req.ExpiryYear,
		},
		NickName:         req.NickName,
		BillingAddressID: addressID,
	}
	url := c.vaultURL("/" + profileID + "/cards")
	decoded, status, err := sendJSON[vaultCardRequest, vaultCardResponse](c, ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	if decoded == nil {
		return nil, emptyVaultResponse(status)
	}
	if err := vaultStepError(status, decoded.Error); err != nil {
		return nil, err
	}
	if decoded.PaymentToken == "" {
		return nil, fmt.Errorf("vault card response missing payment token")
	}

	return &gateway.VaultCard{ID: decoded.ID, PaymentToken: decoded.PaymentToken}, nil
}

// vaultStepError classifies one vault call: a decoded error body (or a
// non-2xx status) becomes a typed APIError for the orchestrator to wrap.
func vaultStepError(status int, errBody *restError) error {
	if errBody != nil {
		return &APIError{Code: errBody.Code, Message: errBody.Message, StatusCode: status}
	}
	if status < 200 || status > 299 {
		return &APIError{
			Code:       fmt.Sprintf("HTTP_%d", status),
			Message:    "unexpected vault response status",
			StatusCode: status,
		}
	}
	return nil
}

func emptyVaultResponse(status int) error {
	return &APIError{Code: "EMPTY_RESPONSE", Message: "empty vault response", StatusCode: status}
}
