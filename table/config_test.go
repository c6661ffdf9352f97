package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "too few seats",
			mutate:  func(c *Config) { c.Seats = 1 },
			wantMsg: "seats",
		},
		{
			name:    "zero pickup timeout",
			mutate:  func(c *Config) { c.PickupTimeout = 0 },
			wantMsg: "pickup timeout",
		},
		{
			name:    "negative think min",
			mutate:  func(c *Config) { c.ThinkDelay.Min = -time.Second },
			wantMsg: "think",
		},
		{
			name:    "think max below min",
			mutate:  func(c *Config) { c.ThinkDelay = DelayRange{Min: 2 * time.Second, Max: time.Second} },
			wantMsg: "think",
		},
		{
			name:    "dine max below min",
			mutate:  func(c *Config) { c.DineDelay = DelayRange{Min: 2 * time.Second, Max: time.Second} },
			wantMsg: "dine",
		},
		{
			name:    "zero journal capacity",
			mutate:  func(c *Config) { c.JournalCapacity = 0 },
			wantMsg: "journal capacity",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seats = 0
	_, err := New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table config")
}
