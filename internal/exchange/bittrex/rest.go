// Package bittrex orchestrates one request per call: resolve the endpoint, build the
// query, sign private requests, GET, and normalize the envelope.
package bittrex

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/kingsmao/bittrex-connector/internal/endpoint"
	"github.com/kingsmao/bittrex-connector/internal/envelope"
	"github.com/kingsmao/bittrex-connector/internal/query"
	"github.com/kingsmao/bittrex-connector/internal/signer"
	"github.com/kingsmao/bittrex-connector/pkg/interfaces"
	"github.com/kingsmao/bittrex-connector/pkg/logger"
	"github.com/kingsmao/bittrex-connector/pkg/schema"
)

// DefaultBaseURL is the API root both versions hang off.
const DefaultBaseURL = "https://bittrex.com/api"

// REST implements interfaces.Caller.
type REST struct {
	cfg       schema.ClientConfig
	baseURL   string
	transport interfaces.Transport
	nonces    interfaces.NonceSource
	signer    *signer.Signer // nil for public-only configs
}

// NewREST wires a caller. The signer and nonce source are only used when cfg carries
// credentials.
func NewREST(cfg schema.ClientConfig, baseURL string, transport interfaces.Transport, nonces interfaces.NonceSource) *REST {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	r := &REST{
		cfg:       cfg,
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: transport,
		nonces:    nonces,
	}
	if cfg.HasCredentials() {
		r.signer = signer.New(cfg.APISecret())
	}
	return r
}

// Config returns the immutable client config.
func (r *REST) Config() schema.ClientConfig { return r.cfg }

// Close wipes the held secret. Private calls fail with ErrCredentialsRequired
// afterwards. Close must not run concurrently with Call.
func (r *REST) Close() {
	if r.signer != nil {
		r.signer.Wipe()
		r.signer = nil
	}
}

// Call runs operation with args given by logical name ("market", "currency", ...).
func (r *REST) Call(ctx context.Context, operation string, args []schema.Param) (schema.Result, error) {
	op, ok := operations[operation]
	if !ok {
		return schema.Result{}, fmt.Errorf("%w: %q", schema.ErrUnknownOperation, operation)
	}
	if op.private && r.signer == nil {
		return schema.Result{}, fmt.Errorf("%s: %w", operation, schema.ErrCredentialsRequired)
	}

	ep, err := endpoint.Resolve(operation, r.cfg.Version())
	if err != nil {
		return schema.Result{}, err
	}
	params, err := orderParams(operation, op, ep.MarketParam, args)
	if err != nil {
		return schema.Result{}, err
	}

	var (
		fullURL string
		headers map[string]string
	)
	if op.private {
		fullURL, headers = r.signedURL(r.baseURL+ep.Path, params)
	} else {
		fullURL = query.Build(r.baseURL+ep.Path, params)
	}
	logger.Debug("Bittrex %s 请求: %s", operation, r.maskKey(fullURL))

	resp, err := r.transport.Get(ctx, fullURL, headers)
	if err != nil {
		var te *schema.TransportError
		if !errors.As(err, &te) {
			err = &schema.TransportError{StatusCode: resp.StatusCode, Err: err}
		}
		return schema.Result{}, fmt.Errorf("%s: %w", operation, err)
	}
	if resp.StatusCode != 0 && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return schema.Result{}, fmt.Errorf("%s: %w", operation, &schema.TransportError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		})
	}
	logger.Debug("Bittrex %s 原始响应长度: %d bytes", operation, len(resp.Body))

	result, err := envelope.Normalize(resp.Body)
	if err != nil {
		var remote *schema.RemoteAPIError
		if errors.As(err, &remote) {
			logger.Warn("Bittrex %s 失败: %s", operation, remote.Message)
			return schema.Result{}, err
		}
		return schema.Result{}, fmt.Errorf("%s: %w", operation, err)
	}
	return result, nil
}

// signedURL prepends apikey and nonce, builds the final URL and signs exactly that string.
func (r *REST) signedURL(endpointURL string, params []schema.Param) (string, map[string]string) {
	signed := make([]schema.Param, 0, len(params)+2)
	signed = append(signed,
		schema.Param{Name: "apikey", Value: r.cfg.APIKey()},
		schema.Param{Name: "nonce", Value: r.nonces.Next()},
	)
	signed = append(signed, params...)

	fullURL := query.Build(endpointURL, signed)
	return fullURL, map[string]string{signer.HeaderName: r.signer.Sign(fullURL)}
}

func (r *REST) maskKey(u string) string {
	if key := r.cfg.APIKey(); key != "" {
		return strings.Replace(u, "apikey="+url.QueryEscape(key), "apikey=***", 1)
	}
	return u
}

// orderParams arranges args in table order, renames the market argument and drops
// empty optional arguments.
func orderParams(name string, op operation, marketParam string, args []schema.Param) ([]schema.Param, error) {
	given := make(map[string]any, len(args))
	for _, a := range args {
		given[a.Name] = a.Value
	}
	for argName := range given {
		if !acceptsArg(op, argName) {
			return nil, fmt.Errorf("%w: %s does not take %q", schema.ErrInvalidArgument, name, argName)
		}
	}

	out := make([]schema.Param, 0, len(op.params))
	for _, p := range op.params {
		v, ok := given[p.name]
		if !ok || query.Stringify(v) == "" {
			if p.optional {
				continue
			}
			return nil, fmt.Errorf("%w: %s requires %q", schema.ErrInvalidArgument, name, p.name)
		}
		paramName := p.name
		if p.market {
			paramName = marketParam
		}
		out = append(out, schema.Param{Name: paramName, Value: v})
	}
	return out, nil
}

func acceptsArg(op operation, argName string) bool {
	for _, p := range op.params {
		if p.name == argName {
			return true
		}
	}
	return false
}
