// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Carrier identifies an external shipping provider.
type Carrier string

// Supported carriers.
const (
	CarrierUPS   Carrier = "UPS"
	CarrierFedEx Carrier = "FedEx"
)

// Quote is the carrier-agnostic normalized price/transit record produced by a
// carrier client. Quotes are immutable once produced; the currency is
// implicitly USD.
type Quote struct {
	// Carrier names the provider that produced the quote.
	Carrier Carrier `json:"carrier"`

	// Service is the carrier's service name (e.g. "FedEx Ground",
	// "UPS Next Day Air"), falling back to the raw service code when the
	// carrier response carries no description.
	Service string `json:"service"`

	// TotalCharge is the total price of the service in USD.
	TotalCharge float64 `json:"total_charge"`

	// TransitDays is the number of transit days when the carrier reports
	// one. Zero means unset, not same-day.
	TransitDays int `json:"transit_days,omitempty"`

	// DeliveryDate is the estimated delivery date exactly as the carrier
	// returned it; the format is carrier-specific and passed through
	// verbatim.
	DeliveryDate string `json:"delivery_date,omitempty"`

	// Notes carries free-form remarks. Only demo quotes set it.
	Notes string `json:"notes,omitempty"`
}

// AggregateResult is the outcome of one fan-out over the selected carriers:
// the merged quotes in carrier-invocation order plus one warning per carrier
// whose pipeline failed. It lives for a single request and is discarded after
// the response is written.
type AggregateResult struct {
	Quotes   []Quote  `json:"quotes"`
	Warnings []string `json:"warnings,omitempty"`
}
