// Package signer computes the apisign value for private requests.
package signer

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// HeaderName is the request header carrying the signature.
const HeaderName = "apisign"

// Sign returns the lowercase hex HMAC-SHA512 of fullURL keyed with secret.
// fullURL must be exactly the URL that is sent, query string included.
func Sign(secret, fullURL string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(fullURL))
	return hex.EncodeToString(mac.Sum(nil))
}

// Signer holds an account secret as bytes so it can be wiped.
type Signer struct {
	secret []byte
}

func New(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign signs fullURL with the held secret.
func (s *Signer) Sign(fullURL string) string {
	mac := hmac.New(sha512.New, s.secret)
	mac.Write([]byte(fullURL))
	return hex.EncodeToString(mac.Sum(nil))
}

// Wipe zeroes the secret. The signer is unusable afterwards.
func (s *Signer) Wipe() {
	if s == nil {
		return
	}
	for i := range s.secret {
		s.secret[i] = 0
	}
}
