package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"storefront-backend/internal/app"
	"storefront-backend/internal/config"
	"storefront-backend/internal/gateway"
	"storefront-backend/internal/logger"
)

// Each deployed function serves the single endpoint named by FUNCTION.
func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.New("production")
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg.Environment).With().Str("function", cfg.Function).Logger()

	a, err := app.New(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application")
	}

	ep, ok := a.Handler.Endpoint(cfg.Function)
	if !ok {
		log.Fatal().Msg("FUNCTION does not name a known endpoint")
	}

	lambda.Start(gateway.LambdaHandler(ep, log))
}
