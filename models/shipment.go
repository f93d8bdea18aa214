// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// ShipmentSpec is the canonical, carrier-agnostic description of one shipment
// used to request rates from every carrier.
//
// Origin/destination postal codes and the weight are required for a carrier
// call to succeed, but they are validated lazily: a carrier whose request is
// incomplete fails on its own, without blocking the other carrier's pipeline.
// Optional fields that are left at their zero value are omitted from the
// carrier payloads entirely rather than sent as empty placeholders.
type ShipmentSpec struct {
	// OriginZip is the postal code the shipment is sent from.
	OriginZip string `json:"origin_zip"`

	// DestZip is the postal code the shipment is delivered to.
	DestZip string `json:"dest_zip"`

	// WeightLb is the package weight in pounds.
	WeightLb float64 `json:"weight_lb"`

	// Dimensions holds the optional package dimensions in inches.
	// A nil value omits the dimensions block from carrier payloads.
	Dimensions *Dimensions `json:"dimensions_in,omitempty"`

	// DeclaredValue is the optional declared value of the shipment in USD.
	// Zero omits the declared-value block from carrier payloads.
	DeclaredValue float64 `json:"declared_value,omitempty"`

	// ShipDate is the optional planned ship date in ISO format
	// ("2006-01-02"). UPS receives it with the dashes stripped.
	ShipDate string `json:"ship_date,omitempty"`

	// Residential marks the destination as a residential address.
	Residential bool `json:"residential,omitempty"`

	// OriginState is the optional origin state or province code.
	OriginState string `json:"origin_state,omitempty"`

	// DestState is the optional destination state or province code.
	DestState string `json:"dest_state,omitempty"`
}

// Dimensions describes package dimensions in inches.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// UnwrapPayload trims surrounding whitespace and unwraps a double-encoded
// request payload (a JSON string containing an object), which some callers
// produce. Plain payloads come back trimmed and otherwise untouched; a
// string that cannot be decoded yields nil. Callers decoding several views
// of the same body should unwrap once and share the result.
func UnwrapPayload(data []byte) []byte {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		return data
	}

	var inner string
	if err := json.Unmarshal(data, &inner); err != nil {
		return nil
	}
	return []byte(inner)
}

// ParseShipmentSpec normalizes loosely-typed caller input into a
// [ShipmentSpec]. The input may be a JSON object or a JSON-encoded string
// containing an object (some callers double-encode the payload).
//
// Malformed JSON degrades to the empty spec instead of returning an error:
// the demo and diagnostics paths must keep working without a valid body, and
// required-field checks belong to the individual carrier calls.
func ParseShipmentSpec(data []byte) ShipmentSpec {
	var spec ShipmentSpec

	data = UnwrapPayload(data)
	if len(data) == 0 {
		return spec
	}

	if err := json.Unmarshal(data, &spec); err != nil {
		return ShipmentSpec{}
	}

	return spec
}
