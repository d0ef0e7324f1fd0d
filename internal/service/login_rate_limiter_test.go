package service

import (
	"testing"
	"time"
)

func TestLoginRateLimiterAllow(t *testing.T) {
	l := NewLoginRateLimiter(time.Minute, 2)

	if !l.Allow("user@example.com") {
		t.Fatalf("first attempt should be allowed")
	}
	if !l.Allow("user@example.com") {
		t.Fatalf("second attempt should be allowed")
	}
	if l.Allow("user@example.com") {
		t.Fatalf("third attempt within window should be denied")
	}
	if !l.Allow("other@example.com") {
		t.Fatalf("different key should not be affected")
	}
}

func TestLoginRateLimiterWindowExpiry(t *testing.T) {
	impl := &loginRateLimiter{
		window: time.Minute,
		max:    1,
		hits:   make(map[string][]time.Time),
	}
	impl.hits["user@example.com"] = []time.Time{time.Now().UTC().Add(-2 * time.Minute)}

	if !impl.Allow("user@example.com") {
		t.Fatalf("attempt outside window should be allowed")
	}
}

func TestLoginRateLimiterDefaults(t *testing.T) {
	l := NewLoginRateLimiter(0, 0)
	if !l.Allow("user@example.com") {
		t.Fatalf("first attempt should be allowed with defaults")
	}
	if l.Allow("user@example.com") {
		t.Fatalf("max should default to 1")
	}
}
