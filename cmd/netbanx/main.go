package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nodisys/netbanx-gateway/internal/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:               "netbanx",
		Short:             "Netbanx payment gateway adapter",
		Long:              "Submits charge requests to the Netbanx gateway over the legacy or REST protocol and prints the transaction receipt.",
		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}

	rootCmd.AddCommand(newChargeCmd(cfg, logger))
	rootCmd.AddCommand(newVaultProvisionCmd(cfg, logger))
	rootCmd.AddCommand(newReceiptCmd(cfg, logger))

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
