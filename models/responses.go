// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body written for every non-200 API response.
type ErrorResponse struct {
	// Error is a short, stable classification of the failure
	// (e.g. "no quotes available").
	Error string `json:"error"`

	// Detail carries the human-readable explanation; for an aggregate
	// failure it is the per-carrier warnings joined by " | ".
	Detail string `json:"detail"`
}

// OAuthProbeResult reports the outcome of one carrier's token-endpoint probe
// on the diagnostics route. It never includes a token value.
type OAuthProbeResult struct {
	Carrier Carrier `json:"carrier"`
	OK      bool    `json:"ok"`
	Error   string  `json:"error,omitempty"`
}
