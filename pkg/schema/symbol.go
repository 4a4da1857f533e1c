package schema

import (
	"fmt"
	"strings"
)

// Symbol 表示一个币对，Base 为交易币种，Quote 为计价币种
type Symbol struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
}

// String 返回 [base]/[quote] 形式
func (s Symbol) String() string {
	return fmt.Sprintf("%s/%s", s.Base, s.Quote)
}

// MarketName returns the exchange market name, quote first: LTC/BTC -> BTC-LTC.
func (s Symbol) MarketName() string {
	return s.Quote + "-" + s.Base
}

// ParseSymbol 解析 [base]/[quote] 格式，例如 LTC/BTC
func ParseSymbol(symbolStr string) (Symbol, error) {
	symbolStr = strings.TrimSpace(symbolStr)

	parts := strings.Split(symbolStr, "/")
	if len(parts) != 2 {
		return Symbol{}, fmt.Errorf("invalid format: must be [base]/[quote], got: %s", symbolStr)
	}

	base := strings.ToUpper(strings.TrimSpace(parts[0]))
	quote := strings.ToUpper(strings.TrimSpace(parts[1]))
	if base == "" || quote == "" {
		return Symbol{}, fmt.Errorf("invalid format: base and quote cannot be empty, got: %s", symbolStr)
	}
	return Symbol{Base: base, Quote: quote}, nil
}

// ParseMarketName 解析交易所的市场名，例如 BTC-LTC -> LTC/BTC
func ParseMarketName(market string) (Symbol, error) {
	market = strings.TrimSpace(market)

	parts := strings.Split(market, "-")
	if len(parts) != 2 {
		return Symbol{}, fmt.Errorf("invalid market name: must be [quote]-[base], got: %s", market)
	}

	quote := strings.ToUpper(strings.TrimSpace(parts[0]))
	base := strings.ToUpper(strings.TrimSpace(parts[1]))
	if base == "" || quote == "" {
		return Symbol{}, fmt.Errorf("invalid market name: base and quote cannot be empty, got: %s", market)
	}
	return Symbol{Base: base, Quote: quote}, nil
}

// MarketName accepts either LTC/BTC or BTC-LTC and returns the exchange form BTC-LTC.
func MarketName(s string) (string, error) {
	if strings.Contains(s, "/") {
		sym, err := ParseSymbol(s)
		if err != nil {
			return "", err
		}
		return sym.MarketName(), nil
	}
	sym, err := ParseMarketName(s)
	if err != nil {
		return "", err
	}
	return sym.MarketName(), nil
}
