package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kingsmao/bittrex-connector/pkg/schema"
)

func TestRestyGetSendsURLVerbatim(t *testing.T) {
	var gotQuery, gotSign string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotSign = r.Header.Get("apisign")
		_, _ = w.Write([]byte(`{"success":true,"result":[]}`))
	}))
	defer srv.Close()

	tr := NewResty(time.Second)
	const q = "apikey=K&nonce=1000&currency=BTC&address=a%2Fb"
	resp, err := tr.Get(context.Background(), srv.URL+"/v1.1/account/getbalance?"+q, map[string]string{"apisign": "abc"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if resp.StatusCode != http.StatusOK || string(resp.Body) != `{"success":true,"result":[]}` {
		t.Errorf("unexpected response: %d %s", resp.StatusCode, resp.Body)
	}
	if gotQuery != q {
		t.Errorf("query rewritten: sent %s, server saw %s", q, gotQuery)
	}
	if gotSign != "abc" {
		t.Errorf("apisign header missing, got %q", gotSign)
	}
}

func TestRestyNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewResty(time.Second).Get(context.Background(), srv.URL, nil)
	var te *schema.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if te.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", te.StatusCode)
	}
}

func TestRestyConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewResty(time.Second).Get(context.Background(), url, nil)
	var te *schema.TransportError
	if !errors.As(err, &te) || te.StatusCode != 0 {
		t.Fatalf("expected TransportError without status, got %v", err)
	}
}
