package gateway

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"storefront-backend/internal/metrics"
)

// Response is the outcome of a successful handler call.
type Response struct {
	Status int
	Body   any
}

func OK(body any) Response {
	return Response{Status: http.StatusOK, Body: body}
}

type HandlerFunc func(ctx context.Context, req *Request) (Response, error)

// Endpoint is one externally reachable function.
type Endpoint struct {
	Name    string
	Methods []string
	Handle  HandlerFunc
}

func NewEndpoint(name string, handle HandlerFunc, methods ...string) *Endpoint {
	return &Endpoint{Name: name, Methods: methods, Handle: handle}
}

// Serve runs the preflight and method guards before the handler and wraps the
// outcome in an envelope. A non-nil error means the handler failed in a way
// the gateway does not translate; the host decides how to surface it.
func (e *Endpoint) Serve(ctx context.Context, req *Request) (Envelope, error) {
	if req.Method == http.MethodOptions {
		return Preflight(e.Methods), nil
	}

	if !slices.Contains(e.Methods, req.Method) {
		return e.respond(ErrorEnvelope(e.Methods, MethodNotAllowed())), nil
	}

	resp, err := e.Handle(ctx, req)
	if err != nil {
		var gerr *Error
		if errors.As(err, &gerr) {
			return e.respond(ErrorEnvelope(e.Methods, gerr)), nil
		}
		metrics.ObserveRequest(e.Name, http.StatusInternalServerError)
		return Envelope{}, err
	}

	env, err := JSON(resp.Status, e.Methods, resp.Body)
	if err != nil {
		metrics.ObserveRequest(e.Name, http.StatusInternalServerError)
		return Envelope{}, err
	}
	return e.respond(env), nil
}

func (e *Endpoint) respond(env Envelope) Envelope {
	metrics.ObserveRequest(e.Name, env.StatusCode)
	return env
}
