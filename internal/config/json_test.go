package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_FullFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"mode": "sandbox", "demo": true, "version": "0.9.0"},
		"carriers": map[string]any{
			"ups":   map[string]any{"client_id": "u-id", "client_secret": "u-secret"},
			"fedex": map[string]any{"client_id": "f-id", "client_secret": "f-secret", "account_number": "999"},
		},
		"adapter": map[string]any{"request_timeout": "15s"},
		"server":  map[string]any{"http_address": "localhost:3000", "request_timeout": "1m"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "sandbox", cfg.App.Mode)
	assert.True(t, cfg.App.Demo)
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "u-id", cfg.Carriers.UPS.ClientID)
	assert.Equal(t, "f-secret", cfg.Carriers.FedEx.ClientSecret)
	assert.Equal(t, "999", cfg.Carriers.FedEx.AccountNumber)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "localhost:3000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nope/missing.json")
	require.Error(t, err)
}

// ── Duration ──────────────────────────────────────────────────────────────────

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"string form", `"30s"`, 30 * time.Second, false},
		{"numeric nanoseconds", `1000000000`, time.Second, false},
		{"garbage", `"soon"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))
}
