package resilience

import "time"

// CircuitBreakerConfig is the env-facing shape of a breaker.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// Normalize fills zero or negative values with defaults. Enabled is left as is.
func (c CircuitBreakerConfig) Normalize() CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if c.FailureThreshold < 1 {
		c.FailureThreshold = defaults.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaults.OpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	return c
}

// Build returns nil when the breaker is disabled; a nil *CircuitBreaker lets every call through.
func (c CircuitBreakerConfig) Build() *CircuitBreaker {
	if !c.Enabled {
		return nil
	}
	n := c.Normalize()
	return NewCircuitBreaker(n.FailureThreshold, n.OpenTimeout, n.HalfOpenMaxReq)
}
