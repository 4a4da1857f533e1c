package signer

import (
	"strings"
	"testing"
)

func TestSignKnownVector(t *testing.T) {
	// RFC 4231 test case 2
	key := "Jefe"
	data := "what do ya want for nothing?"
	expected := "164b7a7bfcf819e2e395fbe73b56e0a387bd64222e831fd610270cd7ea250554" +
		"9758bf75c05a994a6d034f65f8f0e6fdcaeab1a34d4a6b4b636e070a38bce737"

	if got := Sign(key, data); got != expected {
		t.Errorf("HMAC mismatch.\nexpected %s\ngot      %s", expected, got)
	}
}

func TestSignDeterministic(t *testing.T) {
	const u = "https://bittrex.com/api/v1.1/account/getbalance?apikey=K&nonce=1000&currency=BTC"
	first := Sign("S", u)
	second := Sign("S", u)
	if first != second {
		t.Errorf("signature not deterministic: %s vs %s", first, second)
	}
	if len(first) != 128 || strings.ToLower(first) != first {
		t.Errorf("expected 128 lowercase hex chars, got %q", first)
	}
}

func TestSignCoversEveryParameter(t *testing.T) {
	base := "https://bittrex.com/api/v1.1/market/buylimit?apikey=K&nonce=1000&market=BTC-LTC&quantity=1&rate=0.01"
	variants := []string{
		strings.Replace(base, "apikey=K", "apikey=J", 1),
		strings.Replace(base, "nonce=1000", "nonce=1001", 1),
		strings.Replace(base, "market=BTC-LTC", "market=BTC-ETH", 1),
		strings.Replace(base, "quantity=1", "quantity=2", 1),
		strings.Replace(base, "rate=0.01", "rate=0.02", 1),
	}
	want := Sign("S", base)
	for _, v := range variants {
		if Sign("S", v) == want {
			t.Errorf("changing a parameter did not change the signature: %s", v)
		}
	}
	if Sign("T", base) == want {
		t.Error("changing the secret did not change the signature")
	}
}

func TestSignerMatchesSign(t *testing.T) {
	s := New("S")
	const u = "https://bittrex.com/api/v1.1/account/getbalances?apikey=K&nonce=1"
	if s.Sign(u) != Sign("S", u) {
		t.Error("Signer.Sign disagrees with Sign")
	}
	s.Wipe()
	if s.Sign(u) == Sign("S", u) {
		t.Error("wiped signer should no longer produce the original signature")
	}
}
