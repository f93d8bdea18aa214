// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the quote-aggregation engine: the concurrent
// fan-out over the configured carrier clients, partial-failure handling, and
// the filtering/sorting of the merged quote list.
package service

import (
	"context"

	"github.com/MKhiriev/go-ship-rates/models"
)

// QuoteOptions carries the caller-controlled knobs that are not part of the
// shipment itself.
type QuoteOptions struct {
	// Only restricts the fan-out to a single carrier by name ("ups" or
	// "fedex", case-insensitive). Any other value, including empty,
	// selects every configured carrier.
	Only string

	// ServiceFilters is the list of service-category filter tokens
	// applied to the merged quote list before sorting.
	ServiceFilters []string
}

// RateService aggregates rate quotes across carriers.
type RateService interface {
	// GetQuotes fans out one concurrent rate request per selected
	// carrier, merges the successful results, filters and sorts them,
	// and demotes per-carrier failures to warnings. It returns
	// [ErrNoQuotes] (with the warnings still populated in the result)
	// when every selected carrier failed.
	GetQuotes(ctx context.Context, spec models.ShipmentSpec, opts QuoteOptions) (models.AggregateResult, error)

	// ProbeOAuth checks token-endpoint reachability for every configured
	// carrier without requesting rates. Used by the diagnostics route.
	ProbeOAuth(ctx context.Context) []models.OAuthProbeResult
}

// AppInfoService exposes application metadata.
type AppInfoService interface {
	// GetAppVersion returns the configured application version string.
	GetAppVersion(ctx context.Context) string
}
