package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/nodisys/netbanx-gateway/internal/config"
	"github.com/nodisys/netbanx-gateway/internal/gateway"
)

// chargeRequest is the JSON shape accepted from the host on disk.
type chargeRequest struct {
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	CardNumber   string `json:"card_number"`
	CardType     string `json:"card_type"`
	ExpiryMonth  int    `json:"expiry_month"`
	ExpiryYear   int    `json:"expiry_year"`
	CVV          string `json:"cvv"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Street       string `json:"street"`
	City         string `json:"city"`
	Region       string `json:"region"`
	Country      string `json:"country"`
	PostalCode   string `json:"postal_code"`
	Email        string `json:"email"`
	ClientIP     string `json:"client_ip"`
	MerchantRef  string `json:"merchant_ref"`
	Recurring    bool   `json:"recurring"`
	Frequency    string `json:"frequency"`
	Installments int    `json:"installments"`
}

func loadRequest(path string) (*gateway.TransactionRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}

	var req chargeRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request file: %w", err)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", req.Amount, err)
	}

	txn := &gateway.TransactionRequest{
		Amount:      amount,
		Currency:    req.Currency,
		CardNumber:  req.CardNumber,
		CardType:    req.CardType,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		CVV:         req.CVV,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Billing: gateway.Address{
			Street:     req.Street,
			City:       req.City,
			Region:     req.Region,
			Country:    req.Country,
			PostalCode: req.PostalCode,
			Email:      req.Email,
		},
		ClientIP:    req.ClientIP,
		MerchantRef: req.MerchantRef,
		Recurring:   req.Recurring,
	}
	if req.Recurring && req.Frequency != "" {
		txn.Schedule = &gateway.RecurringSchedule{
			Frequency:    req.Frequency,
			Installments: req.Installments,
		}
	}
	return txn, nil
}

func newChargeCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	var requestFile string

	cmd := &cobra.Command{
		Use:   "charge",
		Short: "Submit a charge request to the gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			req, err := loadRequest(requestFile)
			if err != nil {
				return err
			}

			a, err := buildApp(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.adapter.Charge(ctx, req)
			if err != nil {
				return reportChargeFailure(cmd, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "transaction id: %s\n", result.TransactionID)
			fmt.Fprintf(cmd.OutOrStdout(), "result code:    %s\n", result.ResultCode)
			fmt.Fprintf(cmd.OutOrStdout(), "gross amount:   %s\n\n", result.GrossAmount)
			fmt.Fprintln(cmd.OutOrStdout(), result.Receipt)
			return nil
		},
	}

	cmd.Flags().StringVarP(&requestFile, "file", "f", "", "path to the charge request JSON file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// reportChargeFailure prints the user-facing message for an unsuccessful
// charge; system faults come back as plain errors.
func reportChargeFailure(cmd *cobra.Command, err error) error {
	if dErr, ok := gateway.IsDeclinedError(err); ok {
		fmt.Fprintln(cmd.OutOrStdout(), dErr.Message)
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), dErr.Receipt)
		return errors.New("transaction declined")
	}
	if gErr, ok := gateway.IsGatewayError(err); ok {
		fmt.Fprintln(cmd.OutOrStdout(), gErr.Message)
		if gErr.Receipt != "" {
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), gErr.Receipt)
		}
		return errors.New("transaction failed")
	}
	return err
}
