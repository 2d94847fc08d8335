package clients

import (
	"net/http"
	"time"
)

// The processor is expected to answer well inside this; anything slower is
// treated as an outage and retried by the caller.
const timeout = 15 * time.Second

// HTTPClientI is the transport seam the payment gateway talks through.
// Tests substitute their own implementation.
type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
}

type HTTPClient struct {
	client *http.Client
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}
