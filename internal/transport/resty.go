// Package transport provides the HTTP GET capability on top of resty.
package transport

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/kingsmao/bittrex-connector/pkg/interfaces"
	"github.com/kingsmao/bittrex-connector/pkg/schema"
)

const defaultTimeout = 10 * time.Second

// Resty implements interfaces.Transport.
type Resty struct {
	http *resty.Client
}

// NewResty returns a transport with the given timeout; zero means 10s.
func NewResty(timeout time.Duration) *Resty {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := resty.New().SetTimeout(timeout)
	return &Resty{http: c}
}

// Get sends rawURL unchanged. Failures to get a response and non-2xx statuses are
// returned as *schema.TransportError.
func (t *Resty) Get(ctx context.Context, rawURL string, headers map[string]string) (interfaces.Response, error) {
	r, err := t.http.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetHeader("Accept", "application/json").
		Get(rawURL)
	if err != nil {
		return interfaces.Response{}, &schema.TransportError{Err: err}
	}
	resp := interfaces.Response{StatusCode: r.StatusCode(), Body: r.Body()}
	if !r.IsSuccess() {
		return resp, schema.NewHTTPStatusError(r.StatusCode(), r.Status())
	}
	return resp, nil
}
