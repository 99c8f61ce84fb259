// Package gateway is the dispatch layer shared by every storefront endpoint:
// preflight and method guards, action routing, request validation, and the
// uniform response envelope. Hosts (the gin server, the lambda runtime)
// translate their native requests into a Request and write back the Envelope.
package gateway

import "strings"

// Request is the transport-neutral form of an inbound call.
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Query   map[string]string
	Body    []byte
}

// Header looks up a header case-insensitively.
func (r *Request) Header(name string) string {
	if v, ok := r.Headers[name]; ok {
		return v
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
