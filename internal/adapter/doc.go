// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transport layer for talking to the
// carrier rating APIs.
//
// The primary abstraction is [CarrierClient]: one implementation per carrier
// (UPS, FedEx), each owning its OAuth token acquisition and rate request for
// a single invocation. Clients are stateless request/response pipelines —
// a fresh access token is acquired immediately before every rate call and
// never cached, so no locking or token refresh logic exists anywhere in the
// package.
//
// Endpoint hostnames are resolved from the deployment mode by
// [ResolveEndpoints]; credentials come from the process-wide configuration
// and are read-only for the process lifetime.
//
// Error values defined in errors.go are mapped from carrier HTTP responses
// so that callers can use [errors.Is] to distinguish auth failures
// ([ErrAuth]) from rate-endpoint failures ([ErrRateRequest]).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ship-rates/models"
)

// defaultRequestTimeout bounds every outbound carrier call (token and rate)
// when no timeout is configured. Carrier APIs impose no deadline of their
// own, so an unbounded call would tie up the whole fan-out.
const defaultRequestTimeout = 30 * time.Second

//go:generate mockgen -source=doc.go -destination=../mock/carrier_client_mock.go -package=mock

// CarrierClient defines one carrier's rating pipeline. Implementations run
// two sequential stages per invocation — token acquisition, then the rate
// call — and abort only their own pipeline on failure.
type CarrierClient interface {
	// Name returns the carrier this client talks to.
	Name() models.Carrier

	// GetRates acquires a fresh access token and submits one rate request
	// built from spec. It returns the carrier's offers normalized into
	// canonical quotes, or an error wrapping [ErrAuth] when the grant
	// fails and [ErrRateRequest] when the rate endpoint returns a
	// non-success status.
	GetRates(ctx context.Context, spec models.ShipmentSpec) ([]models.Quote, error)

	// ProbeAuth attempts token acquisition only, without touching the
	// rate endpoint. Used by the diagnostics route.
	ProbeAuth(ctx context.Context) error
}
