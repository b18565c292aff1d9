package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d should be allowed", i)
	}
	assert.False(t, rl.Allow("10.0.0.1"), "request over the limit should be rejected")

	// Other IPs are tracked independently.
	assert.True(t, rl.Allow("10.0.0.2"))
}

func TestGetClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.1:51234"
	assert.Equal(t, "192.0.2.1", getClientIP(r))

	r.Header.Set("X-Real-IP", "203.0.113.7")
	assert.Equal(t, "203.0.113.7", getClientIP(r))

	r.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.1")
	assert.Equal(t, "198.51.100.4", getClientIP(r))
}
