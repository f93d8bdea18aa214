// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Deployment modes accepted by [App.Mode]. The mode selects the carrier
// hostnames once per process start; it is never re-read per request.
const (
	ModeSandbox    = "sandbox"
	ModeProduction = "production"
)

// StructuredConfig is the top-level configuration container for the
// go-ship-rates application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the deployment mode,
	// the demo flag, and the application version.
	App App `envPrefix:"APP_"`

	// Carriers holds OAuth credentials and account numbers for every
	// supported carrier.
	Carriers Carriers `envPrefix:"CARRIERS_"`

	// Adapter holds settings for the outbound carrier HTTP clients.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Mode selects the carrier endpoints: "sandbox" or "production".
	// An empty value means production. Read once at process start.
	// Env: APP_MODE
	Mode string `env:"MODE"`

	// Demo forces demo mode: the service answers every rate request with
	// a fixed set of sample quotes and never calls a carrier. Demo mode
	// also engages automatically when no carrier credentials are
	// configured at all.
	// Env: APP_DEMO
	Demo bool `env:"DEMO"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Carriers groups the credentials for all supported carriers.
type Carriers struct {
	// UPS holds the UPS OAuth credentials.
	UPS CarrierCredentials `envPrefix:"UPS_"`

	// FedEx holds the FedEx OAuth credentials.
	FedEx CarrierCredentials `envPrefix:"FEDEX_"`
}

// CarrierCredentials holds one carrier's client-credentials grant inputs.
// All values are confidential and fixed for the process lifetime.
type CarrierCredentials struct {
	// ClientID is the OAuth client identifier issued by the carrier.
	// Env: CARRIERS_UPS_CLIENT_ID / CARRIERS_FEDEX_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// ClientSecret is the OAuth client secret paired with ClientID.
	// Env: CARRIERS_UPS_CLIENT_SECRET / CARRIERS_FEDEX_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`

	// AccountNumber is the carrier account number included in rate
	// requests that require one (FedEx does, UPS does not).
	// Env: CARRIERS_UPS_ACCOUNT_NUMBER / CARRIERS_FEDEX_ACCOUNT_NUMBER
	AccountNumber string `env:"ACCOUNT_NUMBER"`
}

// Configured reports whether the credentials are present enough to attempt
// an OAuth grant. The carrier itself decides whether they are valid.
func (c CarrierCredentials) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// Adapter holds settings for the outbound carrier HTTP clients (OAuth and
// rate calls).
type Adapter struct {
	// RequestTimeout bounds every outbound carrier call, token and rate
	// alike (e.g. "30s", "1m"). Zero falls back to the built-in default.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source to set a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
