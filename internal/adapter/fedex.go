// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ship-rates/internal/config"
	"github.com/MKhiriev/go-ship-rates/internal/logger"
	"github.com/MKhiriev/go-ship-rates/internal/utils"
	"github.com/MKhiriev/go-ship-rates/models"
)

const fedexRatePath = "/rate/v1/rates/quotes"

// transitDayWords maps the cardinal word of a FedEx transit-time token
// ("TWO_DAYS", "ONE_DAY") to its day count. Tokens outside ONE..SEVEN leave
// the transit value unset; they never produce an error.
var transitDayWords = map[string]int{
	"ONE":   1,
	"TWO":   2,
	"THREE": 3,
	"FOUR":  4,
	"FIVE":  5,
	"SIX":   6,
	"SEVEN": 7,
}

// FedExClient implements [CarrierClient] for the FedEx Rate API. OAuth and
// rating share a single host.
type FedExClient struct {
	client *utils.HTTPClient
	creds  config.CarrierCredentials
	host   string

	logger *logger.Logger
}

// NewFedExClient constructs a FedEx carrier client bound to the resolved
// endpoint. timeout bounds every outbound call; zero selects the package
// default.
func NewFedExClient(creds config.CarrierCredentials, endpoints Endpoints, timeout time.Duration, logger *logger.Logger) *FedExClient {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(timeout)

	return &FedExClient{
		client: client,
		creds:  creds,
		host:   endpoints.FedExHost,
		logger: logger,
	}
}

// Name implements [CarrierClient].
func (f *FedExClient) Name() models.Carrier {
	return models.CarrierFedEx
}

// ProbeAuth implements [CarrierClient]. It runs the full two-strategy grant
// sequence and discards the token.
func (f *FedExClient) ProbeAuth(ctx context.Context) error {
	if err := checkCredentials(f.creds); err != nil {
		return err
	}

	_, err := acquireToken(ctx, fedexAuthStrategies(f.client.Client, f.host, f.creds))
	return err
}

// GetRates implements [CarrierClient]. It acquires a fresh bearer token
// (falling back to body credentials if the Basic grant is rejected), submits
// one rate request built from spec, and maps every rate-reply detail in the
// response to a canonical quote.
func (f *FedExClient) GetRates(ctx context.Context, spec models.ShipmentSpec) ([]models.Quote, error) {
	if err := checkCredentials(f.creds); err != nil {
		return nil, err
	}

	token, err := acquireToken(ctx, fedexAuthStrategies(f.client.Client, f.host, f.creds))
	if err != nil {
		return nil, err
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(buildFedExRateRequest(spec, f.creds.AccountNumber)).
		Post(f.host + fedexRatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRateRequest, err)
	}
	if !resp.IsSuccess() {
		return nil, upstreamError(ErrRateRequest, resp)
	}

	var rateResp fedexRateResponse
	if err := json.Unmarshal(resp.Body(), &rateResp); err != nil {
		return nil, fmt.Errorf("%w: decode rate response: %w", ErrRateRequest, err)
	}

	quotes := make([]models.Quote, 0, len(rateResp.Output.RateReplyDetails))
	for _, detail := range rateResp.Output.RateReplyDetails {
		quotes = append(quotes, mapFedExRateReplyDetail(detail))
	}

	f.logger.Debug().Int("quotes", len(quotes)).Msg("fedex rates received")
	return quotes, nil
}

// ── wire types ───────────────────────────────────────────────────────────────

type fedexRateRequest struct {
	AccountNumber     fedexAccountNumber     `json:"accountNumber"`
	RequestedShipment fedexRequestedShipment `json:"requestedShipment"`
}

type fedexAccountNumber struct {
	Value string `json:"value"`
}

type fedexRequestedShipment struct {
	Shipper                   fedexParty             `json:"shipper"`
	Recipient                 fedexParty             `json:"recipient"`
	PickupType                string                 `json:"pickupType"`
	RateRequestType           []string               `json:"rateRequestType"`
	ShipDateStamp             string                 `json:"shipDateStamp,omitempty"`
	RequestedPackageLineItems []fedexPackageLineItem `json:"requestedPackageLineItems"`
}

type fedexParty struct {
	Address fedexAddress `json:"address"`
}

type fedexAddress struct {
	PostalCode          string `json:"postalCode"`
	StateOrProvinceCode string `json:"stateOrProvinceCode,omitempty"`
	CountryCode         string `json:"countryCode"`
	Residential         bool   `json:"residential,omitempty"`
}

type fedexPackageLineItem struct {
	Weight        fedexWeight         `json:"weight"`
	Dimensions    *fedexDimensions    `json:"dimensions,omitempty"`
	DeclaredValue *fedexDeclaredValue `json:"declaredValue,omitempty"`
}

type fedexWeight struct {
	Units string  `json:"units"`
	Value float64 `json:"value"`
}

type fedexDimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Units  string  `json:"units"`
}

type fedexDeclaredValue struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type fedexRateResponse struct {
	Output struct {
		RateReplyDetails []fedexRateReplyDetail `json:"rateReplyDetails"`
	} `json:"output"`
}

type fedexRateReplyDetail struct {
	ServiceType          string `json:"serviceType"`
	ServiceName          string `json:"serviceName"`
	RatedShipmentDetails []struct {
		TotalNetCharge                   float64 `json:"totalNetCharge"`
		TotalNetChargeWithDutiesAndTaxes float64 `json:"totalNetChargeWithDutiesAndTaxes"`
	} `json:"ratedShipmentDetails"`
	OperationalDetail *struct {
		TransitTime  string `json:"transitTime"`
		DeliveryDate string `json:"deliveryDate"`
	} `json:"operationalDetail"`
}

// ── payload construction and mapping ─────────────────────────────────────────

// buildFedExRateRequest builds the requested-shipment document. The country
// is fixed to US, the pickup type to drop-off, and both account and list
// rates are requested.
func buildFedExRateRequest(spec models.ShipmentSpec, accountNumber string) fedexRateRequest {
	item := fedexPackageLineItem{
		Weight: fedexWeight{Units: "LB", Value: spec.WeightLb},
	}

	if spec.Dimensions != nil {
		item.Dimensions = &fedexDimensions{
			Length: spec.Dimensions.Length,
			Width:  spec.Dimensions.Width,
			Height: spec.Dimensions.Height,
			Units:  "IN",
		}
	}

	if spec.DeclaredValue > 0 {
		item.DeclaredValue = &fedexDeclaredValue{
			Amount:   spec.DeclaredValue,
			Currency: "USD",
		}
	}

	return fedexRateRequest{
		AccountNumber: fedexAccountNumber{Value: accountNumber},
		RequestedShipment: fedexRequestedShipment{
			Shipper: fedexParty{Address: fedexAddress{
				PostalCode:          spec.OriginZip,
				StateOrProvinceCode: spec.OriginState,
				CountryCode:         "US",
			}},
			Recipient: fedexParty{Address: fedexAddress{
				PostalCode:          spec.DestZip,
				StateOrProvinceCode: spec.DestState,
				CountryCode:         "US",
				Residential:         spec.Residential,
			}},
			PickupType:                "DROPOFF_AT_FEDEX_LOCATION",
			RateRequestType:           []string{"ACCOUNT", "LIST"},
			ShipDateStamp:             spec.ShipDate,
			RequestedPackageLineItems: []fedexPackageLineItem{item},
		},
	}
}

// mapFedExRateReplyDetail normalizes one rate-reply detail into a canonical
// quote. The net charge prefers the primary field and falls back to the
// charge with duties and taxes; a wholly absent charge maps to 0.
func mapFedExRateReplyDetail(detail fedexRateReplyDetail) models.Quote {
	service := detail.ServiceName
	if service == "" {
		service = detail.ServiceType
	}

	var charge float64
	if len(detail.RatedShipmentDetails) > 0 {
		rated := detail.RatedShipmentDetails[0]
		charge = rated.TotalNetCharge
		if charge == 0 {
			charge = rated.TotalNetChargeWithDutiesAndTaxes
		}
	}

	quote := models.Quote{
		Carrier:     models.CarrierFedEx,
		Service:     service,
		TotalCharge: charge,
	}

	if od := detail.OperationalDetail; od != nil {
		quote.TransitDays = parseTransitDays(od.TransitTime)
		quote.DeliveryDate = od.DeliveryDate
	}

	return quote
}

// parseTransitDays converts a FedEx transit-time token of the shape
// <WORD>_DAY or <WORD>_DAYS, with WORD a cardinal ONE..SEVEN, to its day
// count. Any other shape returns 0 (unset).
func parseTransitDays(token string) int {
	word, rest, found := strings.Cut(token, "_")
	if !found {
		return 0
	}
	if rest != "DAY" && rest != "DAYS" {
		return 0
	}
	return transitDayWords[word]
}
