package client

import (
	"net/http"

	"github.com/dmitrijs2005/creditscore/internal/common"
	"github.com/google/uuid"
)

// requestIDTransport tags each outbound request with a fresh request ID
// unless the caller already set one.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(common.RequestIDHeaderName) != "" {
		return t.base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	return t.base.RoundTrip(r)
}
