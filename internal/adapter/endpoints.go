// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "github.com/MKhiriev/go-ship-rates/internal/config"

// Endpoints holds the resolved carrier hostnames for one deployment mode.
// UPS exposes separate auth and rate hosts; FedEx serves OAuth and rating
// from a single host.
type Endpoints struct {
	UPSAuthHost string
	UPSRateHost string
	FedExHost   string
}

var (
	productionEndpoints = Endpoints{
		UPSAuthHost: "https://onlinetools.ups.com",
		UPSRateHost: "https://onlinetools.ups.com",
		FedExHost:   "https://apis.fedex.com",
	}

	sandboxEndpoints = Endpoints{
		UPSAuthHost: "https://wwwcie.ups.com",
		UPSRateHost: "https://wwwcie.ups.com",
		FedExHost:   "https://apis-sandbox.fedex.com",
	}
)

// ResolveEndpoints maps the deployment mode to the carrier hostnames.
// Every mode other than sandbox (including the empty default) resolves to
// production. The function is pure: no network access, no process state.
func ResolveEndpoints(mode string) Endpoints {
	if mode == config.ModeSandbox {
		return sandboxEndpoints
	}
	return productionEndpoints
}
