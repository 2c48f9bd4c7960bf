package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xri        string
		want       string
	}{
		{name: "ipv4 with port", remoteAddr: "203.0.113.7:52114", want: "203.0.113.7"},
		{name: "ipv6 with port", remoteAddr: "[2001:db8::1]:52114", want: "2001:db8::1"},
		{name: "bare ipv6 kept whole", remoteAddr: "2001:db8::1", want: "2001:db8::1"},
		{name: "forwarded-for wins", remoteAddr: "10.0.0.1:80", xff: "198.51.100.9, 10.0.0.1", want: "198.51.100.9"},
		{name: "real-ip beats remote addr", remoteAddr: "10.0.0.1:80", xri: "198.51.100.9", want: "198.51.100.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/auth", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}

			assert.Equal(t, tt.want, getClientIP(r))
		})
	}
}

func TestRateLimiterAllow(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)

	require.True(t, limiter.Allow("203.0.113.7"))
	require.True(t, limiter.Allow("203.0.113.7"))
	assert.False(t, limiter.Allow("203.0.113.7"))

	// Other clients are counted separately
	assert.True(t, limiter.Allow("2001:db8::1"))
}
