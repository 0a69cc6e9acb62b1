package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cyphera/eth-gas-gateway/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCorrelationIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		header      string
		expectNewID bool
	}{
		{name: "generates an ID when none is sent", expectNewID: true},
		{name: "keeps the caller's ID", header: "req-7f3a"},
		{name: "replaces an oversized ID", header: strings.Repeat("x", 200), expectNewID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CorrelationIDMiddleware())

			var fromGin, fromCtx string
			router.GET("/test", func(c *gin.Context) {
				fromGin = GetCorrelationID(c)
				fromCtx = CorrelationIDFromContext(c.Request.Context())
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set(CorrelationIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			got := w.Header().Get(CorrelationIDHeader)
			if tt.expectNewID {
				assert.Len(t, got, 36)
			} else {
				assert.Equal(t, tt.header, got)
			}
			assert.Equal(t, got, fromGin)
			assert.Equal(t, got, fromCtx)
		})
	}
}

func TestRequestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.DebugLevel)
	previous := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = previous })

	router := gin.New()
	router.Use(CorrelationIDMiddleware(), RequestLoggingMiddleware(true))
	router.POST("/api/gas/estimate", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters for contract interaction."})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/gas/estimate", strings.NewReader(`{"functionName":"transfer"}`))
	req.Header.Set(CorrelationIDHeader, "corr-1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("Request completed").All()
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, zap.WarnLevel, entry.Level)
	fields := entry.ContextMap()
	assert.Equal(t, "corr-1", fields["correlation_id"])
	assert.Equal(t, int64(http.StatusBadRequest), fields["status"])
	assert.Equal(t, `{"functionName":"transfer"}`, fields["request_body"])
}

func TestBodyLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		body          string
		unknownLength bool
		wantStatus    int
	}{
		{name: "within limit", body: `{"a":1}`, wantStatus: http.StatusOK},
		{name: "declared length over limit", body: strings.Repeat("x", 64), wantStatus: http.StatusRequestEntityTooLarge},
		{name: "undeclared length over limit", body: strings.Repeat("x", 64), unknownLength: true, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(BodyLimitMiddleware(32))
			router.POST("/api/gas/estimate", func(c *gin.Context) {
				if _, err := io.ReadAll(c.Request.Body); err != nil {
					c.Status(http.StatusBadRequest)
					return
				}
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/gas/estimate", strings.NewReader(tt.body))
			if tt.unknownLength {
				req.ContentLength = -1
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
