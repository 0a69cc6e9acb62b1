// Package config loads gateway settings from the environment, an optional
// .env file and AWS Secrets Manager.
package config

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cyphera/eth-gas-gateway/internal/constants"
	"github.com/cyphera/eth-gas-gateway/internal/helpers"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment variable names
const (
	EnvStage                  = "STAGE"
	EnvPort                   = "PORT"
	EnvRPCURL                 = "RPC_URL"
	EnvRPCURLArn              = "RPC_URL_ARN"
	EnvRPCTimeout             = "RPC_TIMEOUT"
	EnvPriceBaseURL           = "PRICE_API_BASE_URL"
	EnvPriceAssetID           = "PRICE_ASSET_ID"
	EnvCoinGeckoAPIKey        = "COINGECKO_API_KEY"
	EnvPriceTimeout           = "PRICE_TIMEOUT"
	EnvPriceMaxRetries        = "PRICE_MAX_RETRIES"
	EnvBalanceOfDecimals      = "BALANCE_OF_DECIMALS"
	EnvSecretsManagerEndpoint = "SECRETS_MANAGER_ENDPOINT"
	EnvCORSAllowedOrigins     = "CORS_ALLOWED_ORIGINS"
	EnvCORSAllowedMethods     = "CORS_ALLOWED_METHODS"
	EnvCORSAllowedHeaders     = "CORS_ALLOWED_HEADERS"
	EnvCORSExposedHeaders     = "CORS_EXPOSED_HEADERS"
	EnvCORSAllowCredentials   = "CORS_ALLOW_CREDENTIALS"
)

const (
	defaultPort       = "3000"
	defaultRPCTimeout = 30 * time.Second
	defaultPriceWait  = 10 * time.Second
)

// SecretSource resolves a secret from an ARN variable with a plain variable fallback
type SecretSource interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
}

// Config is the full set of runtime settings
type Config struct {
	Stage string
	Port  string

	RPCURL     string
	RPCTimeout time.Duration

	PriceBaseURL    string
	PriceAssetID    string
	PriceAPIKey     string
	PriceTimeout    time.Duration
	PriceMaxRetries int

	BalanceOfDecimals int

	CORS CORSConfig
}

// CORSConfig lists the cross-origin settings. Empty slices mean the server default.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
}

// LoadDotEnv loads a .env file from the working directory if one exists
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to load .env file")
	}
	return nil
}

// ResolveStage returns STAGE, defaulting to local
func ResolveStage() (string, error) {
	stage := os.Getenv(EnvStage)
	if stage == "" {
		stage = helpers.StageLocal
	}
	if !helpers.IsValidStage(stage) {
		return "", errors.Errorf("invalid %s '%s': must be one of %s, %s, %s",
			EnvStage, stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}
	return stage, nil
}

// Load reads every setting. The RPC URL is required.
func Load(ctx context.Context, secrets SecretSource) (*Config, error) {
	stage, err := ResolveStage()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Stage:        stage,
		Port:         getEnv(EnvPort, defaultPort),
		PriceBaseURL: getEnv(EnvPriceBaseURL, constants.DefaultPriceBaseURL),
		PriceAssetID: getEnv(EnvPriceAssetID, constants.DefaultPriceAssetID),
		PriceAPIKey:  os.Getenv(EnvCoinGeckoAPIKey),
		CORS: CORSConfig{
			AllowedOrigins:   splitList(os.Getenv(EnvCORSAllowedOrigins)),
			AllowedMethods:   splitList(os.Getenv(EnvCORSAllowedMethods)),
			AllowedHeaders:   splitList(os.Getenv(EnvCORSAllowedHeaders)),
			ExposedHeaders:   splitList(os.Getenv(EnvCORSExposedHeaders)),
			AllowCredentials: os.Getenv(EnvCORSAllowCredentials) == "true",
		},
	}

	if secrets != nil {
		cfg.RPCURL, err = secrets.GetSecretString(ctx, EnvRPCURLArn, EnvRPCURL)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve RPC URL")
		}
	} else {
		cfg.RPCURL = os.Getenv(EnvRPCURL)
	}
	if cfg.RPCURL == "" {
		return nil, errors.Errorf("%s is required", EnvRPCURL)
	}

	if cfg.RPCTimeout, err = getDuration(EnvRPCTimeout, defaultRPCTimeout); err != nil {
		return nil, err
	}
	if cfg.PriceTimeout, err = getDuration(EnvPriceTimeout, defaultPriceWait); err != nil {
		return nil, err
	}
	if cfg.PriceMaxRetries, err = getInt(EnvPriceMaxRetries, 0); err != nil {
		return nil, err
	}
	if cfg.BalanceOfDecimals, err = getInt(EnvBalanceOfDecimals, constants.DefaultBalanceOfDecimals); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	if d <= 0 {
		return 0, errors.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}

// getInt accepts non-negative integers only
func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	if n < 0 {
		return 0, errors.Errorf("invalid %s: must not be negative", key)
	}
	return n, nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
