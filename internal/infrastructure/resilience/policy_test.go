package resilience

import (
	"testing"
	"time"
)

func TestExtractionConfigIsNormalizeStable(t *testing.T) {
	cfg := ExtractionConfig()
	if got := cfg.normalize(); got != cfg {
		t.Fatalf("normalize changed the preset: %+v vs %+v", got, cfg)
	}
}

func TestExtractionConfigSlowerThanDefault(t *testing.T) {
	cfg := ExtractionConfig()
	def := DefaultConfig()
	if cfg.RetryInitialBackoff <= def.RetryInitialBackoff || cfg.RetryMaxBackoff <= def.RetryMaxBackoff {
		t.Fatalf("conversion retries must back off longer than the defaults: %+v", cfg)
	}
	if cfg.BreakerOpenTimeout < time.Minute {
		t.Fatalf("breaker must hold open for at least a minute, got %v", cfg.BreakerOpenTimeout)
	}
}

func TestNormalizeBackstopsZeroValues(t *testing.T) {
	got := Config{}.normalize()
	def := DefaultConfig()
	if got.RetryMaxAttempts != def.RetryMaxAttempts || got.RetryInitialBackoff != def.RetryInitialBackoff {
		t.Fatalf("zero retry settings must fall back to defaults: %+v", got)
	}
	if got.BreakerMinRequests != def.BreakerMinRequests || got.BreakerOpenTimeout != def.BreakerOpenTimeout {
		t.Fatalf("zero breaker settings must fall back to defaults: %+v", got)
	}
}

func TestNormalizeRaisesMaxBackoffToInitial(t *testing.T) {
	got := Config{
		RetryInitialBackoff: 3 * time.Second,
		RetryMaxBackoff:     time.Second,
	}.normalize()
	if got.RetryMaxBackoff != 3*time.Second {
		t.Fatalf("max backoff below initial must be raised, got %v", got.RetryMaxBackoff)
	}
}
