// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-ship-rates/internal/config"
)

// tokenResponse is the relevant part of both carriers' OAuth token replies.
// The token itself is an opaque bearer string; expiry is provider-defined
// and deliberately not modeled — tokens live for exactly one rate call.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// authStrategy submits one client-credentials grant attempt and returns the
// raw response. Strategies differ only in how they transmit the credentials.
type authStrategy func(ctx context.Context) (*resty.Response, error)

// acquireToken runs the strategies in order and stops at the first one whose
// response is a success. Transport-level errors abort immediately; a
// non-success status moves on to the next strategy. When every strategy is
// exhausted the last upstream response is wrapped into [ErrAuth].
func acquireToken(ctx context.Context, strategies []authStrategy) (string, error) {
	var lastResp *resty.Response

	for _, attempt := range strategies {
		resp, err := attempt(ctx)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrAuth, err)
		}
		if resp.IsSuccess() {
			return parseAccessToken(resp)
		}
		lastResp = resp
	}

	return "", upstreamError(ErrAuth, lastResp)
}

func parseAccessToken(resp *resty.Response) (string, error) {
	var tr tokenResponse
	if err := json.Unmarshal(resp.Body(), &tr); err != nil {
		return "", fmt.Errorf("%w: decode token response: %w", ErrAuth, err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access_token in response", ErrAuth)
	}
	return tr.AccessToken, nil
}

// upsAuthStrategies builds the single UPS grant strategy: HTTP Basic auth
// against the client-credentials token endpoint on the resolved auth host.
func upsAuthStrategies(client *resty.Client, authHost string, creds config.CarrierCredentials) []authStrategy {
	return []authStrategy{
		func(ctx context.Context) (*resty.Response, error) {
			return client.R().
				SetContext(ctx).
				SetBasicAuth(creds.ClientID, creds.ClientSecret).
				SetHeader("Content-Type", "application/x-www-form-urlencoded").
				SetFormData(map[string]string{"grant_type": "client_credentials"}).
				Post(authHost + "/security/v1/oauth/token")
		},
	}
}

// fedexAuthStrategies builds the ordered FedEx grant strategies: Basic auth
// header first, then the credentials form-encoded in the request body.
// Different FedEx account tiers accept different credential-transmission
// modes; the body fallback is unconditional and runs at most once.
func fedexAuthStrategies(client *resty.Client, host string, creds config.CarrierCredentials) []authStrategy {
	tokenURL := host + "/oauth/token"

	return []authStrategy{
		func(ctx context.Context) (*resty.Response, error) {
			return client.R().
				SetContext(ctx).
				SetBasicAuth(creds.ClientID, creds.ClientSecret).
				SetHeader("Content-Type", "application/x-www-form-urlencoded").
				SetFormData(map[string]string{"grant_type": "client_credentials"}).
				Post(tokenURL)
		},
		func(ctx context.Context) (*resty.Response, error) {
			return client.R().
				SetContext(ctx).
				SetHeader("Content-Type", "application/x-www-form-urlencoded").
				SetFormData(map[string]string{
					"grant_type":    "client_credentials",
					"client_id":     creds.ClientID,
					"client_secret": creds.ClientSecret,
				}).
				Post(tokenURL)
		},
	}
}

// checkCredentials guards every pipeline stage that needs a grant.
func checkCredentials(creds config.CarrierCredentials) error {
	if !creds.Configured() {
		return fmt.Errorf("%w: %w", ErrAuth, ErrMissingCredentials)
	}
	return nil
}
