package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Merchant MerchantConfig `koanf:"merchant"`
	Gateway  GatewayConfig  `koanf:"gateway"`
	Org      OrgConfig      `koanf:"org"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	Store    StoreConfig    `koanf:"store"`
	Logger   LoggerConfig   `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// MerchantConfig holds the credentials issued by the gateway. The legacy
// protocol authenticates with account/store/password, the REST protocol
// with an API key pair.
type MerchantConfig struct {
	AccountNumber string `koanf:"account_number" validate:"required"`
	StoreID       string `koanf:"store_id" validate:"required"`
	StorePassword string `koanf:"store_password"`
	APIKey        string `koanf:"api_key"`
	APISecret     string `koanf:"api_secret"`
}

// GatewayConfig selects the gateway environment and wire protocol as two
// independent axes. The original processor derived both from a single
// "mode" flag; they are decoupled here so test/rest is a default pairing,
// not a rule.
type GatewayConfig struct {
	Environment string        `koanf:"environment" validate:"required,oneof=test live"`
	Protocol    string        `koanf:"protocol" validate:"required,oneof=legacy rest"`
	Currency    string        `koanf:"currency" validate:"required,len=3"`
	ConnTimeout time.Duration `koanf:"conn_timeout" validate:"required"`
}

// OrgConfig is the organization identity printed on receipts. The gateway
// operator requires the exact business name of the org, which is not always
// the host's display name.
type OrgConfig struct {
	Name    string `koanf:"name" validate:"required"`
	Locale  string `koanf:"locale"`
	Street  string `koanf:"street"`
	City    string `koanf:"city"`
	Region  string `koanf:"region"`
	TOSURL  string `koanf:"tos_url"`
	TOSText string `koanf:"tos_text"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name"`
	SSLMode         string        `koanf:"ssl_mode"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
}

type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// StoreConfig selects the audit log backend: "postgres" or "redis".
// Receipts are always kept in postgres so they can be read back by ref.
type StoreConfig struct {
	LogBackend string `koanf:"log_backend" validate:"required,oneof=postgres redis"`
}

type LoggerConfig struct {
	Level string `koanf:"level"`
}

func (l LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(l.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	err := k.Load(env.Provider("NETBANX_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "NETBANX_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
