package schema

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// APIVersion selects one of the two exchange API generations.
type APIVersion string

const (
	V1_1 APIVersion = "v1.1"
	V2_0 APIVersion = "v2.0"
)

// ParseAPIVersion accepts "v1.1", "1.1", "v2.0", "2.0" (case-insensitive).
func ParseAPIVersion(s string) (APIVersion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v1.1", "1.1":
		return V1_1, nil
	case "v2.0", "2.0", "v2", "2":
		return V2_0, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedVersion, s)
	}
}

// Valid reports whether v is one of the supported versions.
func (v APIVersion) Valid() bool {
	return v == V1_1 || v == V2_0
}

// ClientConfig holds credentials and the API version. It is never mutated after construction.
type ClientConfig struct {
	apiKey    string
	apiSecret string
	version   APIVersion
}

// NewPublicConfig creates a config without credentials. An empty version defaults to V1_1.
func NewPublicConfig(version APIVersion) ClientConfig {
	if version == "" {
		version = V1_1
	}
	return ClientConfig{version: version}
}

// NewAuthConfig creates an authenticated config. Signing is only defined for v1.1, so the
// version is always V1_1.
func NewAuthConfig(apiKey, apiSecret string) ClientConfig {
	return ClientConfig{
		apiKey:    apiKey,
		apiSecret: apiSecret,
		version:   V1_1,
	}
}

func (c ClientConfig) APIKey() string      { return c.apiKey }
func (c ClientConfig) APISecret() string   { return c.apiSecret }
func (c ClientConfig) Version() APIVersion { return c.version }

// HasCredentials reports whether both key and secret are set.
func (c ClientConfig) HasCredentials() bool {
	return c.apiKey != "" && c.apiSecret != ""
}

// Param is one query parameter. Order of a []Param is significant: it is the order
// the parameters are encoded and signed in.
type Param struct {
	Name  string
	Value any
}

// OrderBookType selects which side(s) of the book getorderbook returns.
type OrderBookType string

const (
	OrderBookBuy  OrderBookType = "buy"
	OrderBookSell OrderBookType = "sell"
	OrderBookBoth OrderBookType = "both"
)

// TickInterval is the candle width accepted by gettickshistory.
type TickInterval string

const (
	TickOneMin    TickInterval = "oneMin"
	TickFiveMin   TickInterval = "fiveMin"
	TickThirtyMin TickInterval = "thirtyMin"
	TickHour      TickInterval = "hour"
	TickDay       TickInterval = "day"
)

// Market describes a trading market (getmarkets).
type Market struct {
	MarketCurrency     string          `json:"MarketCurrency"`
	BaseCurrency       string          `json:"BaseCurrency"`
	MarketCurrencyLong string          `json:"MarketCurrencyLong"`
	BaseCurrencyLong   string          `json:"BaseCurrencyLong"`
	MinTradeSize       decimal.Decimal `json:"MinTradeSize"`
	MarketName         string          `json:"MarketName"`
	IsActive           bool            `json:"IsActive"`
	Created            string          `json:"Created"`
}

// Currency describes a listed currency (getcurrencies).
type Currency struct {
	Currency        string          `json:"Currency"`
	CurrencyLong    string          `json:"CurrencyLong"`
	MinConfirmation int             `json:"MinConfirmation"`
	TxFee           decimal.Decimal `json:"TxFee"`
	IsActive        bool            `json:"IsActive"`
	CoinType        string          `json:"CoinType"`
	BaseAddress     string          `json:"BaseAddress"`
}

// Ticker is the v1.1 getticker payload.
type Ticker struct {
	Bid  decimal.Decimal `json:"Bid"`
	Ask  decimal.Decimal `json:"Ask"`
	Last decimal.Decimal `json:"Last"`
}

// MarketSummary is a 24h summary of one market.
type MarketSummary struct {
	MarketName     string          `json:"MarketName"`
	High           decimal.Decimal `json:"High"`
	Low            decimal.Decimal `json:"Low"`
	Volume         decimal.Decimal `json:"Volume"`
	Last           decimal.Decimal `json:"Last"`
	BaseVolume     decimal.Decimal `json:"BaseVolume"`
	TimeStamp      string          `json:"TimeStamp"`
	Bid            decimal.Decimal `json:"Bid"`
	Ask            decimal.Decimal `json:"Ask"`
	OpenBuyOrders  int             `json:"OpenBuyOrders"`
	OpenSellOrders int             `json:"OpenSellOrders"`
	PrevDay        decimal.Decimal `json:"PrevDay"`
	Created        string          `json:"Created"`
}

// OrderBookEntry is one price level.
type OrderBookEntry struct {
	Quantity decimal.Decimal `json:"Quantity"`
	Rate     decimal.Decimal `json:"Rate"`
}

// OrderBook is the getorderbook payload for type=both.
type OrderBook struct {
	Buy  []OrderBookEntry `json:"buy"`
	Sell []OrderBookEntry `json:"sell"`
}

// MarketTrade is one entry of getmarkethistory.
type MarketTrade struct {
	ID        int64           `json:"Id"`
	TimeStamp string          `json:"TimeStamp"`
	Quantity  decimal.Decimal `json:"Quantity"`
	Price     decimal.Decimal `json:"Price"`
	Total     decimal.Decimal `json:"Total"`
	FillType  string          `json:"FillType"`
	OrderType string          `json:"OrderType"`
}

// Tick is one v2.0 candle (getlatesttick / getticks).
type Tick struct {
	Open       decimal.Decimal `json:"O"`
	High       decimal.Decimal `json:"H"`
	Low        decimal.Decimal `json:"L"`
	Close      decimal.Decimal `json:"C"`
	Volume     decimal.Decimal `json:"V"`
	BaseVolume decimal.Decimal `json:"BV"`
	Time       string          `json:"T"`
}

// Balance is the balance of one currency.
type Balance struct {
	Currency      string          `json:"Currency"`
	Balance       decimal.Decimal `json:"Balance"`
	Available     decimal.Decimal `json:"Available"`
	Pending       decimal.Decimal `json:"Pending"`
	CryptoAddress string          `json:"CryptoAddress"`
}

// DepositAddress is the getdepositaddress payload.
type DepositAddress struct {
	Currency string `json:"Currency"`
	Address  string `json:"Address"`
}

// OrderUUID is returned by buylimit, selllimit and withdraw.
type OrderUUID struct {
	UUID string `json:"uuid"`
}

// Order covers getopenorders, getorder and getorderhistory entries.
type Order struct {
	OrderUUID         string          `json:"OrderUuid"`
	Exchange          string          `json:"Exchange"`
	OrderType         string          `json:"OrderType"`
	Type              string          `json:"Type"`
	Quantity          decimal.Decimal `json:"Quantity"`
	QuantityRemaining decimal.Decimal `json:"QuantityRemaining"`
	Limit             decimal.Decimal `json:"Limit"`
	Commission        decimal.Decimal `json:"Commission"`
	CommissionPaid    decimal.Decimal `json:"CommissionPaid"`
	Price             decimal.Decimal `json:"Price"`
	PricePerUnit      decimal.Decimal `json:"PricePerUnit"`
	Opened            string          `json:"Opened"`
	Closed            string          `json:"Closed"`
	TimeStamp         string          `json:"TimeStamp"`
	IsOpen            bool            `json:"IsOpen"`
	CancelInitiated   bool            `json:"CancelInitiated"`
	ImmediateOrCancel bool            `json:"ImmediateOrCancel"`
}

// TransferRecord is one entry of getwithdrawalhistory or getdeposithistory.
type TransferRecord struct {
	PaymentUUID    string          `json:"PaymentUuid"`
	ID             int64           `json:"Id"`
	Currency       string          `json:"Currency"`
	Amount         decimal.Decimal `json:"Amount"`
	Address        string          `json:"Address"`
	Opened         string          `json:"Opened"`
	LastUpdated    string          `json:"LastUpdated"`
	Authorized     bool            `json:"Authorized"`
	PendingPayment bool            `json:"PendingPayment"`
	TxCost         decimal.Decimal `json:"TxCost"`
	TxID           string          `json:"TxId"`
	Confirmations  int             `json:"Confirmations"`
	Canceled       bool            `json:"Canceled"`
	InvalidAddress bool            `json:"InvalidAddress"`
}
