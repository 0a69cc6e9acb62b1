// Package coingecko implements the price reader on the CoinGecko public API.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cyphera/eth-gas-gateway/internal/apierrors"
	httpClient "github.com/cyphera/eth-gas-gateway/internal/client/http"
	"github.com/cyphera/eth-gas-gateway/internal/constants"
	"github.com/cyphera/eth-gas-gateway/internal/logger"
	"go.uber.org/zap"
)

const (
	simplePricePath = "/api/v3/simple/price"
	defaultTimeout  = 10 * time.Second
)

// Config holds the settings for the CoinGecko client
type Config struct {
	BaseURL    string
	APIKey     string
	Currency   string
	Timeout    time.Duration
	MaxRetries int
	Metrics    httpClient.MetricsCollector
}

// Client reads spot prices from the CoinGecko simple price endpoint.
type Client struct {
	httpClient *httpClient.Client
	currency   string
}

// simplePriceResponse is keyed by asset id, then by currency
type simplePriceResponse map[string]map[string]json.Number

// NewClient creates a new CoinGecko client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = constants.DefaultPriceBaseURL
	}
	if cfg.Currency == "" {
		cfg.Currency = constants.USDCurrency
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	options := []httpClient.ClientOption{
		httpClient.WithBaseURL(cfg.BaseURL),
		httpClient.WithTimeout(cfg.Timeout),
		httpClient.WithMaxRetries(cfg.MaxRetries),
		httpClient.WithMetricsCollector(cfg.Metrics),
	}
	if cfg.APIKey != "" {
		options = append(options, httpClient.WithDefaultHeader(constants.CoinGeckoAPIKeyHeader, cfg.APIKey))
	}

	return &Client{
		httpClient: httpClient.NewClient(options...),
		currency:   cfg.Currency,
	}
}

// SpotPriceUSD returns the price of asset in the configured currency exactly
// as the API rendered it.
func (c *Client) SpotPriceUSD(ctx context.Context, asset string) (string, error) {
	var body simplePriceResponse
	err := c.httpClient.GetJSON(ctx, simplePricePath, &body,
		httpClient.WithQueryParam("ids", asset),
		httpClient.WithQueryParam("vs_currencies", c.currency),
	)
	if err != nil {
		return "", apierrors.Wrap(apierrors.KindPriceServiceError, err, err.Error())
	}

	price, ok := body[asset][c.currency]
	if !ok || price == "" {
		err := fmt.Errorf("no %s price for %q in response", c.currency, asset)
		logger.Warn("Price missing from CoinGecko response", zap.String("asset", asset), zap.String("currency", c.currency))
		return "", apierrors.Wrap(apierrors.KindPriceServiceError, err, err.Error())
	}

	return price.String(), nil
}
