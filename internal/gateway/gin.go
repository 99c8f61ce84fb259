package gateway

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// GinHandler mounts an endpoint on a gin router. Unhandled faults are logged
// and answered with a generic 500 envelope.
func GinHandler(ep *Endpoint, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := fromGin(c)
		if err != nil {
			write(c, ErrorEnvelope(ep.Methods, BadRequest("Invalid JSON body")))
			return
		}

		env, err := ep.Serve(c.Request.Context(), req)
		if err != nil {
			logger.Error().
				Err(err).
				Str("endpoint", ep.Name).
				Str("method", req.Method).
				Msg("unhandled endpoint failure")
			write(c, Fault(ep.Methods))
			return
		}

		write(c, env)
	}
}

func fromGin(c *gin.Context) (*Request, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(c.Request.Header)+1)
	for k := range c.Request.Header {
		headers[k] = c.Request.Header.Get(k)
	}
	headers["Host"] = c.Request.Host

	query := make(map[string]string)
	for k, v := range c.Request.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}

	return &Request{
		Method:  c.Request.Method,
		Path:    c.Request.URL.Path,
		Headers: headers,
		Query:   query,
		Body:    body,
	}, nil
}

func write(c *gin.Context, env Envelope) {
	for k, v := range env.Headers {
		c.Header(k, v)
	}
	if env.Body == "" {
		c.Status(env.StatusCode)
		return
	}
	c.Data(env.StatusCode, env.Headers["Content-Type"], []byte(env.Body))
}
