package gateway

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"
)

// LambdaHandler adapts an endpoint to an API Gateway proxy integration.
// Unhandled faults are returned to the runtime, which reports them as a
// platform error.
func LambdaHandler(ep *Endpoint, logger zerolog.Logger) func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, in events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		body := []byte(in.Body)
		if in.IsBase64Encoded {
			decoded, err := base64.StdEncoding.DecodeString(in.Body)
			if err != nil {
				return toProxy(ErrorEnvelope(ep.Methods, BadRequest("Invalid JSON body"))), nil
			}
			body = decoded
		}

		req := &Request{
			Method:  in.HTTPMethod,
			Path:    in.Path,
			Headers: in.Headers,
			Query:   in.QueryStringParameters,
			Body:    body,
		}

		env, err := ep.Serve(ctx, req)
		if err != nil {
			logger.Error().
				Err(err).
				Str("endpoint", ep.Name).
				Str("method", req.Method).
				Msg("unhandled endpoint failure")
			return events.APIGatewayProxyResponse{}, fmt.Errorf("%s: %w", ep.Name, err)
		}

		return toProxy(env), nil
	}
}

func toProxy(env Envelope) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: env.StatusCode,
		Headers:    env.Headers,
		Body:       env.Body,
	}
}
