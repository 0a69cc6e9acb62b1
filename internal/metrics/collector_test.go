package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cyphera/eth-gas-gateway/internal/apierrors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordChainCall(t *testing.T) {
	c := NewCollector()

	c.RecordChainCall("eth_blockNumber", 10*time.Millisecond, nil)
	c.RecordChainCall("eth_blockNumber", 10*time.Millisecond, nil)
	c.RecordChainCall("eth_estimateGas", time.Millisecond, apierrors.New(apierrors.KindWouldRevert, "reverted"))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.chainCalls.WithLabelValues("eth_blockNumber", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.chainCalls.WithLabelValues("eth_estimateGas", "WouldRevert")))
}

func TestCollector_RecordDispatch(t *testing.T) {
	c := NewCollector()

	c.RecordDispatch("read-call", nil)
	c.RecordDispatch("spot-price", errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.dispatches.WithLabelValues("read-call", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.dispatches.WithLabelValues("spot-price", "error")))
}

func TestCollector_HTTPClientHooks(t *testing.T) {
	c := NewCollector()

	c.RecordRequestCount("GET", "/api/v3/simple/price", 200)
	c.RecordRequestDuration("GET", "/api/v3/simple/price", 200, 50*time.Millisecond)
	c.RecordRequestError("GET", "/api/v3/simple/price")

	assert.Equal(t, 1.0, testutil.ToFloat64(c.httpRequests.WithLabelValues("GET", "/api/v3/simple/price", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.httpErrors.WithLabelValues("GET", "/api/v3/simple/price")))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector()
	c.RecordDispatch("network-fee", nil)

	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `gas_gateway_dispatch_total{mode="network-fee",outcome="success"} 1`))
}
