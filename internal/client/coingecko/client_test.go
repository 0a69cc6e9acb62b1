package coingecko_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cyphera/eth-gas-gateway/internal/apierrors"
	"github.com/cyphera/eth-gas-gateway/internal/client/coingecko"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SpotPriceUSD(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		status     int
		body       string
		wantPrice  string
		wantErr    bool
		wantErrMsg string
	}{
		{
			name:      "returns price verbatim",
			status:    http.StatusOK,
			body:      `{"ethereum":{"usd":3456.78}}`,
			wantPrice: "3456.78",
		},
		{
			name:      "keeps integer rendering",
			apiKey:    "demo-key",
			status:    http.StatusOK,
			body:      `{"ethereum":{"usd":3000}}`,
			wantPrice: "3000",
		},
		{
			name:       "asset missing from response",
			status:     http.StatusOK,
			body:       `{}`,
			wantErr:    true,
			wantErrMsg: `no usd price for "ethereum" in response`,
		},
		{
			name:       "rate limited",
			status:     http.StatusTooManyRequests,
			body:       `{"status":{"error_code":429}}`,
			wantErr:    true,
			wantErrMsg: "failed with status 429",
		},
		{
			name:       "malformed body",
			status:     http.StatusOK,
			body:       `<html>`,
			wantErr:    true,
			wantErrMsg: "failed to decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v3/simple/price", r.URL.Path)
				assert.Equal(t, "ethereum", r.URL.Query().Get("ids"))
				assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
				assert.Equal(t, tt.apiKey, r.Header.Get("x-cg-demo-api-key"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := coingecko.NewClient(coingecko.Config{BaseURL: server.URL, APIKey: tt.apiKey})
			price, err := client.SpotPriceUSD(context.Background(), "ethereum")

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apierrors.IsKind(err, apierrors.KindPriceServiceError))
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				assert.Empty(t, price)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, price)
		})
	}
}

func TestClient_SpotPriceUSD_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := coingecko.NewClient(coingecko.Config{BaseURL: url})
	_, err := client.SpotPriceUSD(context.Background(), "ethereum")

	require.Error(t, err)
	assert.True(t, apierrors.IsKind(err, apierrors.KindPriceServiceError))
}
