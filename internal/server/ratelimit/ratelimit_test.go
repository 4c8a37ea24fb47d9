package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucket_BurstThenDeny(t *testing.T) {
	bucket := newTokenBucket(10, 1.0) // 10 tokens, 1 token per second

	for i := 0; i < 10; i++ {
		assert.True(t, bucket.allow(), "request %d within burst should pass", i+1)
	}
	assert.False(t, bucket.allow(), "request beyond burst should be denied")
}

func TestTokenBucket_Refill(t *testing.T) {
	bucket := newTokenBucket(5, 100.0) // fast refill keeps the test quick

	for i := 0; i < 5; i++ {
		bucket.allow()
	}
	require.False(t, bucket.allow())

	time.Sleep(30 * time.Millisecond)
	assert.True(t, bucket.allow(), "tokens should refill over time")
}

func TestTokenBucket_GetStatus(t *testing.T) {
	bucket := newTokenBucket(10, 1.0)

	for i := 0; i < 5; i++ {
		bucket.allow()
	}

	remaining, resetTime := bucket.getStatus()
	assert.Equal(t, 5, remaining)
	assert.True(t, resetTime.After(time.Now()), "reset time should be in the future")
}

func TestLimiter_DefaultLimit(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  3,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/assessment/likert", "GET")
		require.True(t, allowed, "request %d should pass", i+1)
		assert.Equal(t, 3, info.Limit)
	}

	allowed, info := limiter.Allow("127.0.0.1", "/assessment/likert", "GET")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))

	// A different client has its own bucket.
	allowed, _ = limiter.Allow("10.0.0.2", "/assessment/likert", "GET")
	assert.True(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/report/generate", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_WhitelistAndBlacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"10.0.0.1": true},
		Blacklist:     map[string]bool{"10.0.0.9": true},
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/consent", "POST")
		require.True(t, allowed, "whitelisted client is never limited")
	}

	allowed, _ := limiter.Allow("10.0.0.9", "/consent", "POST")
	assert.False(t, allowed, "blacklisted client is always denied")
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	t.Run("health is unlimited", func(t *testing.T) {
		match := MatchEndpoint("/health", "GET", configs)
		require.NotNil(t, match)
		assert.Equal(t, 0, match.Limit)
	})

	t.Run("exact match", func(t *testing.T) {
		match := MatchEndpoint("/report/generate", "POST", configs)
		require.NotNil(t, match)
		assert.Equal(t, 10, match.Limit)
		assert.Equal(t, time.Hour, match.Window)
	})

	t.Run("prefix match for assessment saves", func(t *testing.T) {
		match := MatchEndpoint("/assessment/ikigai", "POST", configs)
		require.NotNil(t, match)
		assert.Equal(t, 120, match.Limit)
	})

	t.Run("method must match", func(t *testing.T) {
		match := MatchEndpoint("/assessment/ikigai", "GET", configs)
		assert.Nil(t, match, "GET falls through to the default limit")
	})
}
