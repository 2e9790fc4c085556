package http

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrustedProxies_ClientIP(t *testing.T) {
	trusted := TrustedProxies{
		netip.MustParsePrefix("192.168.1.0/24"),
		netip.MustParsePrefix("2001:db8::/32"),
	}

	tests := []struct {
		name       string
		proxies    TrustedProxies
		remoteAddr string
		xff        string
		xri        string
		wantIP     string
	}{
		{name: "no proxies ignores X-Forwarded-For", remoteAddr: "192.168.1.1:12345", xff: "203.0.113.195", wantIP: "192.168.1.1"},
		{name: "no proxies ignores X-Real-IP", remoteAddr: "192.168.1.1:12345", xri: "203.0.113.195", wantIP: "192.168.1.1"},
		{name: "untrusted peer ignores headers", proxies: trusted, remoteAddr: "198.51.100.9:12345", xff: "203.0.113.195", xri: "203.0.113.196", wantIP: "198.51.100.9"},
		{name: "trusted X-Forwarded-For single IP", proxies: trusted, remoteAddr: "192.168.1.1:12345", xff: "203.0.113.195", wantIP: "203.0.113.195"},
		{name: "trusted X-Forwarded-For multiple IPs", proxies: trusted, remoteAddr: "192.168.1.1:12345", xff: "203.0.113.195, 70.41.3.18, 150.172.238.178", wantIP: "203.0.113.195"},
		{name: "trusted X-Real-IP", proxies: trusted, remoteAddr: "192.168.1.1:12345", xri: "203.0.113.195", wantIP: "203.0.113.195"},
		{name: "X-Forwarded-For takes precedence over X-Real-IP", proxies: trusted, remoteAddr: "192.168.1.1:12345", xff: "203.0.113.195", xri: "198.51.100.178", wantIP: "203.0.113.195"},
		{name: "malformed X-Forwarded-For falls through", proxies: trusted, remoteAddr: "192.168.1.1:12345", xff: "not-an-ip", xri: "198.51.100.178", wantIP: "198.51.100.178"},
		{name: "trusted proxy without headers", proxies: trusted, remoteAddr: "192.168.1.1:12345", wantIP: "192.168.1.1"},
		{name: "trusted IPv6 proxy", proxies: trusted, remoteAddr: "[2001:db8::1]:8080", xff: "203.0.113.5", wantIP: "203.0.113.5"},
		{name: "IPv6 peer", remoteAddr: "[2001:db8::1]:12345", wantIP: "2001:db8::1"},
		{name: "RemoteAddr without port", remoteAddr: "192.168.1.1", wantIP: "192.168.1.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}

			assert.Equal(t, tt.wantIP, tt.proxies.ClientIP(req))
		})
	}
}

func TestTrustedProxies_Contains(t *testing.T) {
	proxies := TrustedProxies{netip.MustParsePrefix("10.0.0.0/8")}

	assert.True(t, proxies.Contains("10.1.2.3:80"))
	assert.True(t, proxies.Contains("10.1.2.3"))
	assert.True(t, proxies.Contains("[::ffff:10.1.2.3]:80"))
	assert.False(t, proxies.Contains("11.0.0.1:80"))
	assert.False(t, proxies.Contains("garbage"))
	assert.False(t, TrustedProxies(nil).Contains("10.1.2.3:80"))
}

func TestParseFirstIP(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "203.0.113.195", want: "203.0.113.195"},
		{input: "203.0.113.195, 70.41.3.18", want: "203.0.113.195"},
		{input: " 203.0.113.195 ", want: "203.0.113.195"},
		{input: "invalid, 70.41.3.18", want: ""},
		{input: "", want: ""},
		{input: "2001:db8::1", want: "2001:db8::1"},
		{input: "2001:db8::1, 2001:db8::2", want: "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseFirstIP(tt.input); got != tt.want {
				t.Errorf("parseFirstIP(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
