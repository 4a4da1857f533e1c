package nonce

import (
	"strconv"
	"sync"
	"testing"
	"time"
)

func TestMillisIncreasing(t *testing.T) {
	m := NewMillis()
	prev := m.NextInt()
	for i := 0; i < 1000; i++ {
		n := m.NextInt()
		if n <= prev {
			t.Fatalf("nonce did not increase: %d then %d", prev, n)
		}
		prev = n
	}
}

func TestMillisClockStepBack(t *testing.T) {
	clock := time.UnixMilli(5000)
	m := &Millis{now: func() time.Time { return clock }}

	if got := m.NextInt(); got != 5000 {
		t.Fatalf("expected 5000, got %d", got)
	}
	clock = time.UnixMilli(4000)
	if got := m.NextInt(); got != 5001 {
		t.Errorf("expected 5001 after clock step back, got %d", got)
	}
	clock = time.UnixMilli(9000)
	if got := m.Next(); got != "9000" {
		t.Errorf("expected 9000, got %s", got)
	}
}

func TestMillisConcurrentUnique(t *testing.T) {
	m := NewMillis()
	const workers, per = 8, 500

	var mu sync.Mutex
	seen := make(map[string]struct{}, workers*per)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, per)
			for i := 0; i < per; i++ {
				local = append(local, m.Next())
			}
			mu.Lock()
			for _, n := range local {
				seen[n] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != workers*per {
		t.Errorf("expected %d unique nonces, got %d", workers*per, len(seen))
	}
}

func TestMillisLooksLikeMillis(t *testing.T) {
	n, err := strconv.ParseInt(NewMillis().Next(), 10, 64)
	if err != nil {
		t.Fatalf("nonce not an integer: %v", err)
	}
	if d := time.Since(time.UnixMilli(n)); d < 0 || d > time.Minute {
		t.Errorf("nonce %d far from now", n)
	}
}

func TestFixed(t *testing.T) {
	if Fixed("1000").Next() != "1000" {
		t.Error("Fixed should return its value")
	}
}
