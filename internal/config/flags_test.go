// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:         "empty host",
			input:        ":8080",
			expectedAddr: NetAddress{Host: "", Port: 8080},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
		},
		{
			name:        "non-numeric port",
			input:       "localhost:http",
			expectError: true,
		},
		{
			name:        "negative port",
			input:       "localhost:-1",
			expectError: true,
		},
		{
			name:        "bogus host",
			input:       "not-an-ip:8080",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

// ─────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────

func TestValidate_MissingTokenSignKey(t *testing.T) {
	cfg := defaults()

	err := cfg.validate()
	require.ErrorIs(t, err, ErrMissingTokenSignKey, "defaults alone must not pass validation")
}

func TestValidate_FuzzyThresholdRange(t *testing.T) {
	cfg := defaults()
	cfg.App.TokenSignKey = "secret"

	cfg.App.FuzzyThreshold = 1.5
	require.ErrorIs(t, cfg.validate(), ErrInvalidFuzzyThreshold)

	cfg.App.FuzzyThreshold = -0.1
	require.ErrorIs(t, cfg.validate(), ErrInvalidFuzzyThreshold)

	cfg.App.FuzzyThreshold = 0.3
	require.NoError(t, cfg.validate())
}

func TestDefaults(t *testing.T) {
	cfg := defaults()

	assert.Equal(t, "soundshelf", cfg.App.TokenIssuer)
	assert.Equal(t, 10, cfg.App.BcryptCost)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "https://ws.audioscrobbler.com/2.0/", cfg.Lastfm.BaseURL)
	assert.Empty(t, cfg.App.TokenSignKey, "no secret material may ship as a default")
}
