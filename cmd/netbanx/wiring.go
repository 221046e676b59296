package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/nodisys/netbanx-gateway/internal/config"
	"github.com/nodisys/netbanx-gateway/internal/gateway"
	"github.com/nodisys/netbanx-gateway/internal/netbanx"
	"github.com/nodisys/netbanx-gateway/internal/persistence/postgres"
	"github.com/nodisys/netbanx-gateway/internal/persistence/redisstore"
)

// app bundles everything one CLI invocation needs. Close must be called
// when done.
type app struct {
	adapter      *gateway.Adapter
	vault        *gateway.VaultOrchestrator
	receiptStore gateway.ReceiptStore
	closers      []func()
}

func (a *app) Close() {
	for _, c := range a.closers {
		c()
	}
}

func buildApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	creds := gateway.Credentials{
		AccountNumber: cfg.Merchant.AccountNumber,
		StoreID:       cfg.Merchant.StoreID,
		StorePassword: cfg.Merchant.StorePassword,
		APIKey:        cfg.Merchant.APIKey,
		APISecret:     cfg.Merchant.APISecret,
	}
	protocol := gateway.Protocol(cfg.Gateway.Protocol)

	client, err := netbanx.NewClient(
		creds,
		gateway.Environment(cfg.Gateway.Environment),
		protocol,
		cfg.Gateway.ConnTimeout,
		logger,
	)
	if err != nil {
		return nil, err
	}

	a := &app{}

	pool, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, pool.Close)

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		a.Close()
		return nil, err
	}

	var logStore gateway.LogStore
	switch cfg.Store.LogBackend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		logStore = redisstore.NewLogStore(rdb)
	case "postgres":
		logStore = postgres.NewLogStore(pool)
	default:
		a.Close()
		return nil, fmt.Errorf("unknown log backend %q", cfg.Store.LogBackend)
	}

	receiptStore := postgres.NewReceiptStore(pool)
	a.receiptStore = receiptStore

	translator := gateway.NewTranslator(cfg.Org.Locale)
	receipts := gateway.NewReceiptGenerator(gateway.OrgIdentity{
		Name:    cfg.Org.Name,
		Street:  cfg.Org.Street,
		City:    cfg.Org.City,
		Region:  cfg.Org.Region,
		TOSURL:  cfg.Org.TOSURL,
		TOSText: cfg.Org.TOSText,
	}, cfg.Gateway.Currency, translator)

	normalizer := gateway.NewNormalizer(creds, cfg.Gateway.Currency)

	// Vault provisioning needs the REST key pair; without it recurring
	// charges are rejected up front by the adapter.
	if creds.APIKey != "" && creds.APISecret != "" {
		a.vault = gateway.NewVaultOrchestrator(client, logger)
	}

	adapter, err := gateway.NewAdapter(
		protocol,
		normalizer,
		client,
		a.vault,
		translator,
		receipts,
		logStore,
		receiptStore,
		logger,
	)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.adapter = adapter

	return a, nil
}
