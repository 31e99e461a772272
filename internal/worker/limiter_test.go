package worker

import (
	"context"
	"testing"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 5 {
		t.Errorf("expected default burst 5 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "openai"); err != nil {
		t.Errorf("wait failed: %v", err)
	}

	// Different endpoint has its own bucket
	if err := limiter.Wait(ctx, "ollama"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_RateLimit(t *testing.T) {
	limiter := NewLimiter(1, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "openai"); err != nil {
		t.Errorf("first wait failed: %v", err)
	}

	// Burst of 1 is consumed
	if limiter.Allow("openai") {
		t.Errorf("expected allow to fail (exhausted tokens)")
	}

	// Other endpoints are unaffected
	if !limiter.Allow("ollama") {
		t.Errorf("expected allow for other endpoint")
	}
}

func TestLimiter_SetEndpointRate(t *testing.T) {
	limiter := NewLimiter(10, 10)

	limiter.SetEndpointRate("openai", 0.1, 1)

	if !limiter.Allow("openai") {
		t.Errorf("first request should pass")
	}
	if limiter.Allow("openai") {
		t.Errorf("second request should fail")
	}

	if !limiter.Allow("ollama") {
		t.Errorf("other endpoint should pass")
	}
}
