package packager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostAllowed(t *testing.T) {
	lock := []string{"Example.com", " promo.shop.io. "}

	tests := []struct {
		host string
		want bool
	}{
		{"example.com", true},
		{"EXAMPLE.COM", true},
		{"www.example.com", true},
		{"a.b.example.com", true},
		{"example.com.", true},
		{"example.com:8443", true},
		{"promo.shop.io", true},
		{"x.promo.shop.io", true},
		{"shop.io", false},
		{"notexample.com", false},
		{"example.com.evil.net", false},
		{"evil.com", false},
		{"", false},
		{"localhost", true},
		{"localhost:3000", true},
		{"127.0.0.1", true},
		{"::1", true},
		{"[::1]", true},
		{"[::1]:8080", true},
		{"0.0.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			assert.Equal(t, tt.want, HostAllowed(tt.host, lock))
		})
	}
}

func TestHostAllowed_NoLock(t *testing.T) {
	assert.True(t, HostAllowed("anything.example", nil))
	assert.True(t, HostAllowed("anything.example", []string{"", "  ", "."}))
}

func TestNormaliseDomains(t *testing.T) {
	got, err := NormaliseDomains([]string{"Example.COM", "*.shop.io", "", "example.com.", "  promo.net  "})
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com", "shop.io", "promo.net"}, got)
}

func TestNormaliseDomains_Invalid(t *testing.T) {
	for _, bad := range []string{"https://example.com", "example.com/path", "user@example.com", "exa mple.com", "example.com:80", "a.*.com"} {
		t.Run(bad, func(t *testing.T) {
			_, err := NormaliseDomains([]string{bad})
			assert.ErrorIs(t, err, ErrInvalidDomain)
		})
	}
}
