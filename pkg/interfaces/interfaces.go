package interfaces

import (
	"context"

	"github.com/kingsmao/bittrex-connector/pkg/schema"
)

// Response is what a Transport hands back for a GET.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport performs an HTTP GET of an already fully-formed URL.
// Implementations must send rawURL byte for byte; the query string is signed.
type Transport interface {
	Get(ctx context.Context, rawURL string, headers map[string]string) (Response, error)
}

// NonceSource yields the nonce for the next private request.
type NonceSource interface {
	Next() string
}

// Caller executes one logical operation with ordered parameters.
type Caller interface {
	Call(ctx context.Context, operation string, params []schema.Param) (schema.Result, error)
}
