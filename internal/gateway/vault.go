package gateway

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Vault provisioning steps, reported on failure.
const (
	VaultStepProfile = "profile"
	VaultStepAddress = "address"
	VaultStepCard    = "card"
)

// VaultOrchestrator runs the three-step token provisioning sequence for
// recurring charges: profile, then billing address, then card. Each step
// depends on the previous step's identifier. Every attempt provisions a
// fresh profile; partially created profiles are reported but not rolled
// back.
type VaultOrchestrator struct {
	client VaultClient
	logger *slog.Logger
}

func NewVaultOrchestrator(client VaultClient, logger *slog.Logger) *VaultOrchestrator {
	return &VaultOrchestrator{client: client, logger: logger}
}

// Provision creates the profile, address and card on the vault and returns
// the reusable payment token. On failure the returned
// VaultProvisioningError names the step and the identifiers created so
// far; the charge must not be dispatched.
func (v *VaultOrchestrator) Provision(ctx context.Context, req *TransactionRequest) (string, error) {
	profile, err := v.client.CreateProfile(ctx, VaultProfileRequest{
		MerchantCustomerID: uuid.New().String(),
		Locale:             "en_US",
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Billing.Email,
	})
	if err != nil {
		return "", &VaultProvisioningError{Step: VaultStepProfile, Err: err}
	}

	v.logger.Debug("vault profile created",
		"merchant_ref", req.MerchantRef,
		"profile_id", profile.ID,
	)

	addrReq := VaultAddressRequest{
		NickName: "billing",
		Street:   req.Billing.Street,
		City:     req.Billing.City,
		Country:  req.Billing.Country,
		Zip:      req.Billing.PostalCode,
	}
	if stateCountries[req.Billing.Country] {
		addrReq.State = req.Billing.Region
	}

	address, err := v.client.CreateAddress(ctx, profile.ID, addrReq)
	if err != nil {
		return "", &VaultProvisioningError{Step: VaultStepAddress, ProfileID: profile.ID, Err: err}
	}

	v.logger.Debug("vault address created",
		"merchant_ref", req.MerchantRef,
		"profile_id", profile.ID,
		"address_id", address.ID,
	)

	card, err := v.client.CreateCard(ctx, profile.ID, address.ID, VaultCardRequest{
		CardNum:     req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		NickName:    "recurring",
	})
	if err != nil {
		return "", &VaultProvisioningError{
			Step:      VaultStepCard,
			ProfileID: profile.ID,
			AddressID: address.ID,
			Err:       err,
		}
	}

	v.logger.Info("vault card provisioned",
		"merchant_ref", req.MerchantRef,
		"profile_id", profile.ID,
	)

	return card.PaymentToken, nil
}
