// Package nonce generates millisecond nonces for signed requests.
package nonce

import (
	"strconv"
	"sync/atomic"
	"time"
)

// Millis yields strictly increasing millisecond timestamps. When two calls land in the
// same millisecond, or the wall clock steps back, the previous value plus one is used.
// Safe for concurrent use.
type Millis struct {
	last atomic.Int64
	now  func() time.Time
}

func NewMillis() *Millis {
	return &Millis{now: time.Now}
}

// Next returns the next nonce as a decimal string.
func (m *Millis) Next() string {
	return strconv.FormatInt(m.NextInt(), 10)
}

func (m *Millis) NextInt() int64 {
	now := m.now().UnixMilli()
	for {
		last := m.last.Load()
		next := now
		if next <= last {
			next = last + 1
		}
		if m.last.CompareAndSwap(last, next) {
			return next
		}
	}
}

// Fixed always returns the same value. Used to build reproducible signed requests.
type Fixed string

func (f Fixed) Next() string { return string(f) }
