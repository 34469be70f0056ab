package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{},
		Blacklist:     map[string]bool{},
		EndpointConfigs: []EndpointConfig{
			{Path: "/evaluate", Method: "POST", Limit: 5, Window: time.Minute, Burst: 2},
		},
	}
}

func TestLimiter_AllowWithinBurst(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	allowed, info := limiter.Allow("1.2.3.4", "/evaluate", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 5, info.Limit)
}

func TestLimiter_BlocksBeyondBurst(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	// Burst of 2: the third immediate request is rejected.
	first, _ := limiter.Allow("1.2.3.4", "/evaluate", "POST")
	second, _ := limiter.Allow("1.2.3.4", "/evaluate", "POST")
	third, info := limiter.Allow("1.2.3.4", "/evaluate", "POST")

	assert.True(t, first)
	assert.True(t, second)
	assert.False(t, third)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsIndependent(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	limiter.Allow("1.2.3.4", "/evaluate", "POST")
	limiter.Allow("1.2.3.4", "/evaluate", "POST")

	allowed, _ := limiter.Allow("5.6.7.8", "/evaluate", "POST")
	assert.True(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/evaluate", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["9.9.9.9"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("9.9.9.9", "/evaluate", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Blacklist["6.6.6.6"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("6.6.6.6", "/evaluate", "POST")
	assert.False(t, allowed)
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	config := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	assert.NotNil(t, config)
	assert.Equal(t, 0, config.Limit)
}

func TestMatchEndpoint_ExactAndPrefix(t *testing.T) {
	configs := DefaultEndpointConfigs()

	exact := MatchEndpoint("/evaluate", "POST", configs)
	assert.NotNil(t, exact)
	assert.Equal(t, "/evaluate", exact.Path)

	prefix := MatchEndpoint("/users/abc/activities", "POST", configs)
	assert.NotNil(t, prefix)
	assert.Equal(t, "/users/", prefix.Path)

	assert.Nil(t, MatchEndpoint("/nope", "DELETE", configs))
}
