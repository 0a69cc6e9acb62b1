package server

import (
	"context"
	"net/http"
	"os"

	_ "github.com/cyphera/eth-gas-gateway/docs" // Swagger document
	awsclient "github.com/cyphera/eth-gas-gateway/internal/client/aws"
	"github.com/cyphera/eth-gas-gateway/internal/client/coingecko"
	"github.com/cyphera/eth-gas-gateway/internal/config"
	"github.com/cyphera/eth-gas-gateway/internal/ethereum"
	"github.com/cyphera/eth-gas-gateway/internal/handlers"
	"github.com/cyphera/eth-gas-gateway/internal/helpers"
	"github.com/cyphera/eth-gas-gateway/internal/logger"
	"github.com/cyphera/eth-gas-gateway/internal/metrics"
	"github.com/cyphera/eth-gas-gateway/internal/middleware"
	"github.com/cyphera/eth-gas-gateway/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	gasHandler    *handlers.GasHandler
	healthHandler *handlers.HealthHandler

	// Infrastructure
	appConfig   *config.Config
	collector   *metrics.Collector
	chainReader *ethereum.Reader
)

var (
	defaultAllowedOrigins = []string{"http://localhost:3000"}
	defaultAllowedMethods = []string{"GET", "POST", "OPTIONS"}
	defaultAllowedHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.CorrelationIDHeader}
	defaultExposedHeaders = []string{"Content-Length", middleware.CorrelationIDHeader}
)

// InitializeHandlers loads configuration and builds every dependency of the
// HTTP surface: the chain reader, the price client and the gas estimate service.
func InitializeHandlers(ctx context.Context) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	stage, err := config.ResolveStage()
	if err != nil {
		return err
	}
	logger.InitLogger(stage)

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx, os.Getenv(config.EnvSecretsManagerEndpoint))
	if err != nil {
		return errors.Wrap(err, "failed to create secrets manager client")
	}

	cfg, err := config.Load(ctx, secretsClient)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	metricsCollector := metrics.NewCollector()

	reader, err := ethereum.NewReader(ctx, ethereum.Config{
		RPCURL:  cfg.RPCURL,
		Timeout: cfg.RPCTimeout,
	}, metricsCollector)
	if err != nil {
		return errors.Wrap(err, "failed to connect to ethereum node")
	}

	priceClient := coingecko.NewClient(coingecko.Config{
		BaseURL:    cfg.PriceBaseURL,
		APIKey:     cfg.PriceAPIKey,
		Timeout:    cfg.PriceTimeout,
		MaxRetries: cfg.PriceMaxRetries,
		Metrics:    metricsCollector,
	})

	estimator := services.NewGasEstimateService(reader, priceClient,
		services.WithPriceAsset(cfg.PriceAssetID),
		services.WithBalanceOfDecimals(cfg.BalanceOfDecimals),
		services.WithMetricsRecorder(metricsCollector),
	)

	appConfig = cfg
	collector = metricsCollector
	chainReader = reader
	gasHandler = handlers.NewGasHandler(estimator)
	healthHandler = handlers.NewHealthHandler()

	logger.Info("Handlers initialized",
		zap.String("stage", cfg.Stage),
		zap.String("price_asset", cfg.PriceAssetID),
		zap.Duration("rpc_timeout", cfg.RPCTimeout),
	)

	return nil
}

// InitializeRoutes registers middleware and routes on the router.
// InitializeHandlers must have run first.
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS(appConfig.CORS))

	router.Use(middleware.CorrelationIDMiddleware())

	router.Use(middleware.BodyLimitMiddleware(middleware.DefaultMaxBodySize))

	// Bodies are only logged for local development
	router.Use(middleware.RequestLoggingMiddleware(appConfig.Stage == helpers.StageLocal))

	// Health for raw lambda url check
	router.GET("/:stage/health", healthHandler.Health)
	router.GET("/health", healthHandler.Health)

	router.GET("/metrics", gin.WrapH(collector.Handler()))

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.POST("/gas/estimate", gasHandler.EstimateGas)

		v1 := api.Group("/v1")
		{
			v1.POST("/gas/estimate", gasHandler.EstimateGas)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "Not found"})
	})
}

// Shutdown releases the connection to the ethereum node
func Shutdown() {
	if chainReader != nil {
		chainReader.Close()
	}
	_ = logger.Sync()
}

// Port returns the configured listen port
func Port() string {
	if appConfig == nil {
		return ""
	}
	return appConfig.Port
}

func configureCORS(cfg config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = defaultAllowedOrigins
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}

	corsConfig.AllowMethods = defaultAllowedMethods
	if len(cfg.AllowedMethods) > 0 {
		corsConfig.AllowMethods = cfg.AllowedMethods
	}

	corsConfig.AllowHeaders = defaultAllowedHeaders
	if len(cfg.AllowedHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.AllowedHeaders
	}

	corsConfig.ExposeHeaders = defaultExposedHeaders
	if len(cfg.ExposedHeaders) > 0 {
		corsConfig.ExposeHeaders = cfg.ExposedHeaders
	}

	corsConfig.AllowCredentials = cfg.AllowCredentials

	return cors.New(corsConfig)
}
