package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nodisys/netbanx-gateway/internal/config"
	"github.com/nodisys/netbanx-gateway/internal/gateway"
)

func newVaultProvisionCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	var requestFile string

	cmd := &cobra.Command{
		Use:   "vault-provision",
		Short: "Provision a vault profile and payment token without charging",
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

			if a.vault == nil {
				return gateway.NewConfigurationError("merchant.api_key/api_secret", "")
			}

			token, err := a.vault.Provision(ctx, req)
			if err != nil {
				if vErr, ok := gateway.IsVaultProvisioningError(err); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "provisioning failed at step %q\n", vErr.Step)
					if vErr.ProfileID != "" {
						fmt.Fprintf(cmd.OutOrStdout(), "orphaned profile: %s\n", vErr.ProfileID)
					}
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "payment token: %s\n", token)
			return nil
		},
	}

	cmd.Flags().StringVarP(&requestFile, "file", "f", "", "path to the request JSON file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
