// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Sentinel errors for the two failure stages of a carrier pipeline. Callers
// match against them with [errors.Is]; the wrapped message carries the
// upstream HTTP status and body.
var (
	// ErrMissingCredentials is returned before any network call when the
	// carrier's client ID or secret is not configured.
	ErrMissingCredentials = errors.New("carrier credentials are not configured")

	// ErrAuth is returned when the carrier rejects the OAuth
	// client-credentials grant (or, for FedEx, both grant strategies).
	ErrAuth = errors.New("carrier auth failed")

	// ErrRateRequest is returned when the token was issued but the rate
	// endpoint responded with a non-success status.
	ErrRateRequest = errors.New("carrier rate request failed")
)

// upstreamError wraps sentinel with the upstream response status and a
// trimmed copy of its body, preserving errors.Is matching on sentinel.
func upstreamError(sentinel error, resp *resty.Response) error {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", sentinel, resp.StatusCode(), body)
}
