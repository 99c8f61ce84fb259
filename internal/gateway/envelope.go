package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const corsMaxAge = "86400"

// Envelope is what every endpoint returns, on success and on error.
type Envelope struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

func corsHeaders(methods []string) map[string]string {
	allowed := append(append([]string{}, methods...), http.MethodOptions)
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": strings.Join(allowed, ", "),
		"Access-Control-Allow-Headers": "Content-Type",
		"Access-Control-Max-Age":       corsMaxAge,
	}
}

// Preflight is the empty 200 answered to OPTIONS.
func Preflight(methods []string) Envelope {
	return Envelope{
		StatusCode: http.StatusOK,
		Headers:    corsHeaders(methods),
	}
}

// JSON encodes body into an envelope carrying the CORS header set.
func JSON(status int, methods []string, body any) (Envelope, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to encode response: %w", err)
	}

	headers := corsHeaders(methods)
	headers["Content-Type"] = "application/json"

	return Envelope{
		StatusCode: status,
		Headers:    headers,
		Body:       string(raw),
	}, nil
}

// ErrorEnvelope renders a gateway error. Error bodies only hold strings and
// flags, so encoding cannot fail.
func ErrorEnvelope(methods []string, e *Error) Envelope {
	env, _ := JSON(e.Status, methods, e.Body)
	return env
}

// Fault is the generic 500 a host answers with when a handler fails with an
// error the gateway does not recognise.
func Fault(methods []string) Envelope {
	return ErrorEnvelope(methods, Internal(http.StatusText(http.StatusInternalServerError)))
}
