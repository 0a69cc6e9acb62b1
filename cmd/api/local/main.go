//go:build !lambda
// +build !lambda

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cyphera/eth-gas-gateway/internal/logger"
	"github.com/cyphera/eth-gas-gateway/internal/server"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Ethereum Gas Gateway API
// @version         1.0
// @description     Gas estimates, chain reads and ETH pricing for Ethereum contract calls

// @host      localhost:3000
// @BasePath  /

const shutdownTimeout = 10 * time.Second

func main() {
	if err := server.InitializeHandlers(context.Background()); err != nil {
		log.Fatalf("Error initializing handlers: %v", err)
	}
	defer server.Shutdown()

	r := gin.New()
	r.Use(gin.Recovery())
	server.InitializeRoutes(r)

	srv := &http.Server{
		Addr:    ":" + server.Port(),
		Handler: r,
	}

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Server starting", zap.String("addr", srv.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-stopChan
	logger.Info("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("Server exited gracefully")
}
