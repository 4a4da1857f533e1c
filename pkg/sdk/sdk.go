package sdk

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kingsmao/bittrex-connector/internal/exchange/bittrex"
	"github.com/kingsmao/bittrex-connector/internal/nonce"
	"github.com/kingsmao/bittrex-connector/internal/transport"
	"github.com/kingsmao/bittrex-connector/pkg/interfaces"
	"github.com/kingsmao/bittrex-connector/pkg/schema"
)

type options struct {
	baseURL   string
	timeout   time.Duration
	transport interfaces.Transport
	nonces    interfaces.NonceSource
}

// Option customizes a Client.
type Option func(*options)

// WithBaseURL overrides the API root (default https://bittrex.com/api).
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithTimeout sets the timeout of the default transport. Ignored with WithTransport.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithTransport replaces the resty transport.
func WithTransport(t interfaces.Transport) Option {
	return func(o *options) { o.transport = t }
}

// WithNonceSource replaces the millisecond nonce generator.
func WithNonceSource(n interfaces.NonceSource) Option {
	return func(o *options) { o.nonces = n }
}

// Client exposes one method per exchange operation. It holds no mutable state and is
// safe for concurrent use.
type Client struct {
	caller *bittrex.REST
}

// New creates a client from an existing config.
func New(cfg schema.ClientConfig, opts ...Option) *Client {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.transport == nil {
		o.transport = transport.NewResty(o.timeout)
	}
	if o.nonces == nil {
		o.nonces = nonce.NewMillis()
	}
	return &Client{caller: bittrex.NewREST(cfg, o.baseURL, o.transport, o.nonces)}
}

// NewPublic creates a client for public operations only. An empty version means v1.1.
func NewPublic(version schema.APIVersion, opts ...Option) *Client {
	return New(schema.NewPublicConfig(version), opts...)
}

// NewAuthenticated creates a v1.1 client able to call private operations.
func NewAuthenticated(apiKey, apiSecret string, opts ...Option) *Client {
	return New(schema.NewAuthConfig(apiKey, apiSecret), opts...)
}

// Config returns the client's immutable config.
func (c *Client) Config() schema.ClientConfig {
	return c.caller.Config()
}

// Close wipes the API secret held by the client. Private operations fail with
// schema.ErrCredentialsRequired afterwards.
func (c *Client) Close() {
	c.caller.Close()
}

// Call runs any operation by name. Arguments use logical names: market, currency,
// quantity, rate, uuid, type, tickInterval, address, paymentid.
func (c *Client) Call(ctx context.Context, operation string, args ...schema.Param) (schema.Result, error) {
	return c.caller.Call(ctx, strings.ToLower(operation), args)
}

// Operations lists all operation names accepted by Call, sorted.
func Operations() []string {
	ops := bittrex.Operations()
	sort.Strings(ops)
	return ops
}

// ArgNames lists the logical argument names of operation in send order.
func ArgNames(operation string) []string {
	return bittrex.ArgNames(strings.ToLower(operation))
}

// IsPrivate reports whether operation needs an authenticated client.
func IsPrivate(operation string) bool {
	return bittrex.IsPrivate(strings.ToLower(operation))
}

// Public

// GetMarkets lists all markets.
func (c *Client) GetMarkets(ctx context.Context) (schema.Result, error) {
	return c.caller.Call(ctx, "getmarkets", nil)
}

// GetCurrencies lists all currencies.
func (c *Client) GetCurrencies(ctx context.Context) (schema.Result, error) {
	return c.caller.Call(ctx, "getcurrencies", nil)
}

// GetTicker returns the current ticker (v1.1) or latest tick (v2.0) of market.
// market may be BTC-LTC or LTC/BTC.
func (c *Client) GetTicker(ctx context.Context, market string) (schema.Result, error) {
	return c.marketCall(ctx, "getticker", market)
}

// GetMarketSummaries returns 24h summaries of all markets.
func (c *Client) GetMarketSummaries(ctx context.Context) (schema.Result, error) {
	return c.caller.Call(ctx, "getmarketsummaries", nil)
}

// GetMarketSummary returns the 24h summary of market.
func (c *Client) GetMarketSummary(ctx context.Context, market string) (schema.Result, error) {
	return c.marketCall(ctx, "getmarketsummary", market)
}

// GetOrderBook returns one or both sides of the book. An empty bookType means both.
func (c *Client) GetOrderBook(ctx context.Context, market string, bookType schema.OrderBookType) (schema.Result, error) {
	m, err := marketArg(market)
	if err != nil {
		return schema.Result{}, err
	}
	switch bookType {
	case "":
		bookType = schema.OrderBookBoth
	case schema.OrderBookBuy, schema.OrderBookSell, schema.OrderBookBoth:
	default:
		return schema.Result{}, fmt.Errorf("%w: order book type %q", schema.ErrInvalidArgument, bookType)
	}
	return c.caller.Call(ctx, "getorderbook", []schema.Param{
		{Name: "market", Value: m},
		{Name: "type", Value: string(bookType)},
	})
}

// GetMarketHistory returns the latest trades of market.
func (c *Client) GetMarketHistory(ctx context.Context, market string) (schema.Result, error) {
	return c.marketCall(ctx, "getmarkethistory", market)
}

// GetTicksHistory returns candles of market. It always uses the v2.0 endpoint.
func (c *Client) GetTicksHistory(ctx context.Context, market string, interval schema.TickInterval) (schema.Result, error) {
	m, err := marketArg(market)
	if err != nil {
		return schema.Result{}, err
	}
	if interval == "" {
		return schema.Result{}, fmt.Errorf("%w: tick interval required", schema.ErrInvalidArgument)
	}
	return c.caller.Call(ctx, "gettickshistory", []schema.Param{
		{Name: "market", Value: m},
		{Name: "tickInterval", Value: string(interval)},
	})
}

// Market (private)

// BuyLimit places a limit buy order.
func (c *Client) BuyLimit(ctx context.Context, market string, quantity, rate decimal.Decimal) (schema.Result, error) {
	return c.limitOrder(ctx, "buylimit", market, quantity, rate)
}

// SellLimit places a limit sell order.
func (c *Client) SellLimit(ctx context.Context, market string, quantity, rate decimal.Decimal) (schema.Result, error) {
	return c.limitOrder(ctx, "selllimit", market, quantity, rate)
}

// Cancel cancels an open order.
func (c *Client) Cancel(ctx context.Context, orderUUID string) (schema.Result, error) {
	return c.uuidCall(ctx, "cancel", orderUUID)
}

// GetOpenOrders lists open orders, of all markets when market is empty.
func (c *Client) GetOpenOrders(ctx context.Context, market string) (schema.Result, error) {
	return c.optionalMarketCall(ctx, "getopenorders", market)
}

// Account (private)

// GetBalances returns balances of all currencies.
func (c *Client) GetBalances(ctx context.Context) (schema.Result, error) {
	return c.caller.Call(ctx, "getbalances", nil)
}

// GetBalance returns the balance of one currency.
func (c *Client) GetBalance(ctx context.Context, currency string) (schema.Result, error) {
	return c.currencyCall(ctx, "getbalance", currency, false)
}

// GetDepositAddress returns (or triggers generation of) the deposit address of currency.
func (c *Client) GetDepositAddress(ctx context.Context, currency string) (schema.Result, error) {
	return c.currencyCall(ctx, "getdepositaddress", currency, false)
}

// Withdraw sends quantity of currency to address. paymentID is optional.
func (c *Client) Withdraw(ctx context.Context, currency string, quantity decimal.Decimal, address, paymentID string) (schema.Result, error) {
	if !quantity.IsPositive() {
		return schema.Result{}, fmt.Errorf("%w: quantity must be positive, got %s", schema.ErrInvalidArgument, quantity)
	}
	return c.caller.Call(ctx, "withdraw", []schema.Param{
		{Name: "currency", Value: strings.ToUpper(strings.TrimSpace(currency))},
		{Name: "quantity", Value: quantity},
		{Name: "address", Value: address},
		{Name: "paymentid", Value: paymentID},
	})
}

// GetOrder returns one order by UUID.
func (c *Client) GetOrder(ctx context.Context, orderUUID string) (schema.Result, error) {
	return c.uuidCall(ctx, "getorder", orderUUID)
}

// GetOrderHistory returns closed orders, of all markets when market is empty.
func (c *Client) GetOrderHistory(ctx context.Context, market string) (schema.Result, error) {
	return c.optionalMarketCall(ctx, "getorderhistory", market)
}

// GetWithdrawalHistory returns withdrawals, of all currencies when currency is empty.
func (c *Client) GetWithdrawalHistory(ctx context.Context, currency string) (schema.Result, error) {
	return c.currencyCall(ctx, "getwithdrawalhistory", currency, true)
}

// GetDepositHistory returns deposits, of all currencies when currency is empty.
func (c *Client) GetDepositHistory(ctx context.Context, currency string) (schema.Result, error) {
	return c.currencyCall(ctx, "getdeposithistory", currency, true)
}

func (c *Client) marketCall(ctx context.Context, operation, market string) (schema.Result, error) {
	m, err := marketArg(market)
	if err != nil {
		return schema.Result{}, err
	}
	return c.caller.Call(ctx, operation, []schema.Param{{Name: "market", Value: m}})
}

func (c *Client) optionalMarketCall(ctx context.Context, operation, market string) (schema.Result, error) {
	if strings.TrimSpace(market) == "" {
		return c.caller.Call(ctx, operation, nil)
	}
	return c.marketCall(ctx, operation, market)
}

func (c *Client) currencyCall(ctx context.Context, operation, currency string, optional bool) (schema.Result, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		if optional {
			return c.caller.Call(ctx, operation, nil)
		}
		return schema.Result{}, fmt.Errorf("%w: currency required", schema.ErrInvalidArgument)
	}
	return c.caller.Call(ctx, operation, []schema.Param{{Name: "currency", Value: currency}})
}

func (c *Client) uuidCall(ctx context.Context, operation, orderUUID string) (schema.Result, error) {
	id, err := uuid.Parse(strings.TrimSpace(orderUUID))
	if err != nil {
		return schema.Result{}, fmt.Errorf("%w: order uuid %q: %v", schema.ErrInvalidArgument, orderUUID, err)
	}
	return c.caller.Call(ctx, operation, []schema.Param{{Name: "uuid", Value: id.String()}})
}

func (c *Client) limitOrder(ctx context.Context, operation, market string, quantity, rate decimal.Decimal) (schema.Result, error) {
	m, err := marketArg(market)
	if err != nil {
		return schema.Result{}, err
	}
	if !quantity.IsPositive() || !rate.IsPositive() {
		return schema.Result{}, fmt.Errorf("%w: quantity and rate must be positive, got %s @ %s",
			schema.ErrInvalidArgument, quantity, rate)
	}
	return c.caller.Call(ctx, operation, []schema.Param{
		{Name: "market", Value: m},
		{Name: "quantity", Value: quantity},
		{Name: "rate", Value: rate},
	})
}

func marketArg(market string) (string, error) {
	m, err := schema.MarketName(market)
	if err != nil {
		return "", fmt.Errorf("%w: %v", schema.ErrInvalidArgument, err)
	}
	return m, nil
}
