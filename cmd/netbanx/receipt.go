package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nodisys/netbanx-gateway/internal/config"
)

func newReceiptCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "receipt <transaction-id>",
		Short: "Print the stored receipt for a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := buildApp(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			receipt, err := a.receiptStore.FindByRef(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), receipt)
			return nil
		},
	}
}
