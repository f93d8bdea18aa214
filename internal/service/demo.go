// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-ship-rates/models"

// demoQuotes returns the fixed sample set served in demo mode: two UPS and
// two FedEx quotes, independent of the shipment spec. The notes field marks
// them so callers can tell them apart from live carrier data.
func demoQuotes() []models.Quote {
	const note = "demo quote - carrier credentials not configured"

	return []models.Quote{
		{Carrier: models.CarrierUPS, Service: "UPS Ground", TotalCharge: 14.20, TransitDays: 4, Notes: note},
		{Carrier: models.CarrierUPS, Service: "UPS 2nd Day Air", TotalCharge: 31.65, TransitDays: 2, Notes: note},
		{Carrier: models.CarrierFedEx, Service: "FedEx Home Delivery", TotalCharge: 13.48, TransitDays: 5, Notes: note},
		{Carrier: models.CarrierFedEx, Service: "FedEx Priority Overnight", TotalCharge: 58.92, TransitDays: 1, Notes: note},
	}
}
