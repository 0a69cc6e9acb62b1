//go:build lambda
// +build lambda

package main

import (
	"context"
	"log"

	"github.com/cyphera/eth-gas-gateway/internal/logger"
	"github.com/cyphera/eth-gas-gateway/internal/server"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Ethereum Gas Gateway API
// @version         1.0
// @description     Gas estimates, chain reads and ETH pricing for Ethereum contract calls

// @host      localhost:3000
// @BasePath  /

var ginLambda *ginadapter.GinLambda

func init() {
	if err := server.InitializeHandlers(context.Background()); err != nil {
		log.Fatalf("Error initializing handlers: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	server.InitializeRoutes(r)

	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer server.Shutdown()
	lambda.Start(Handler)
}
