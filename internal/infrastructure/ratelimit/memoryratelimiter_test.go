package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimiter_Allow(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	config := RateLimitConfig{Requests: 3, Window: time.Minute}

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow("client-a", config)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should pass", i+1)
	}

	allowed, err := limiter.Allow("client-a", config)
	require.NoError(t, err)
	assert.False(t, allowed, "fourth request should be rejected")
}

func TestMemoryRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	config := RateLimitConfig{Requests: 1, Window: time.Minute}

	allowed, err := limiter.Allow("client-a", config)
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow("client-a", config)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow("client-b", config)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryRateLimiter_Reset(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	config := RateLimitConfig{Requests: 1, Window: time.Minute}

	_, err := limiter.Allow("client-a", config)
	require.NoError(t, err)

	require.NoError(t, limiter.Reset("client-a"))

	allowed, err := limiter.Allow("client-a", config)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryRateLimiter_ZeroLimitMeansUnlimited(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	config := RateLimitConfig{Requests: 0, Window: time.Minute}

	for i := 0; i < 10; i++ {
		allowed, err := limiter.Allow("client-a", config)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
