package query

import (
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kingsmao/bittrex-connector/pkg/schema"
)

func TestBuildEmpty(t *testing.T) {
	const ep = "https://bittrex.com/api/v1.1/public/getmarkets"
	if got := Build(ep, nil); got != ep {
		t.Errorf("expected endpoint unchanged, got %s", got)
	}
}

func TestBuildKeepsOrder(t *testing.T) {
	got := Build("/v1.1/account/getbalance", []schema.Param{
		{Name: "apikey", Value: "K"},
		{Name: "nonce", Value: "1000"},
		{Name: "currency", Value: "BTC"},
	})
	want := "/v1.1/account/getbalance?apikey=K&nonce=1000&currency=BTC"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestBuildEncodesReserved(t *testing.T) {
	got := Build("/x", []schema.Param{
		{Name: "a b", Value: "x&y=z"},
		{Name: "paymentid", Value: "memo/1?#"},
	})
	want := "/x?a+b=x%26y%3Dz&paymentid=memo%2F1%3F%23"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

type rate float64

type amount float32

type count int32

type units uint16

func TestStringify(t *testing.T) {
	d := decimal.RequireFromString("0.00012300")
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "BTC-LTC", "BTC-LTC"},
		{"small float", 0.00000001, "0.00000001"},
		{"large float", 1e21, "1000000000000000000000"},
		{"float32", float32(0.5), "0.5"},
		{"decimal", d, "0.000123"},
		{"decimal ptr", &d, "0.000123"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"uint64", uint64(18446744073709551615), "18446744073709551615"},
		{"bool", true, "true"},
		{"tick interval", schema.TickHour, "hour"},
		{"named small float", rate(0.00000001), "0.00000001"},
		{"named large float", rate(1e21), "1000000000000000000000"},
		{"named float32", amount(0.25), "0.25"},
		{"named int", count(-12), "-12"},
		{"named uint", units(65535), "65535"},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Stringify(tt.in)
			if got != tt.want {
				t.Errorf("Stringify(%v) = %q, want %q", tt.in, got, tt.want)
			}
			if again := Stringify(tt.in); again != got {
				t.Errorf("Stringify not stable: %q then %q", got, again)
			}
		})
	}
}

func TestBuildRoundTrip(t *testing.T) {
	params := []schema.Param{
		{Name: "market", Value: "BTC-LTC"},
		{Name: "quantity", Value: 1.25},
		{Name: "rate", Value: decimal.RequireFromString("0.00000123")},
		{Name: "address", Value: "1A1z P1&eP=5Q"},
		{Name: "count", Value: 3},
	}
	built := Build("/e", params)

	_, rawQuery, found := strings.Cut(built, "?")
	if !found {
		t.Fatalf("no query string in %s", built)
	}
	pairs := strings.Split(rawQuery, "&")
	if len(pairs) != len(params) {
		t.Fatalf("expected %d pairs, got %d", len(params), len(pairs))
	}
	for i, pair := range pairs {
		rawName, rawValue, _ := strings.Cut(pair, "=")
		name, err := url.QueryUnescape(rawName)
		if err != nil {
			t.Fatalf("unescape name: %v", err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			t.Fatalf("unescape value: %v", err)
		}
		if name != params[i].Name || value != Stringify(params[i].Value) {
			t.Errorf("pair %d: got %s=%s, want %s=%s", i, name, value, params[i].Name, Stringify(params[i].Value))
		}
	}
}
