// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-ship-rates/internal/config"
	"github.com/MKhiriev/go-ship-rates/internal/logger"
	"github.com/MKhiriev/go-ship-rates/internal/utils"
	"github.com/MKhiriev/go-ship-rates/models"
)

const upsRatePath = "/api/rating/v2403/Rate"

// UPSClient implements [CarrierClient] for the UPS Rating API.
type UPSClient struct {
	client   *utils.HTTPClient
	creds    config.CarrierCredentials
	authHost string
	rateHost string

	logger *logger.Logger
}

// NewUPSClient constructs a UPS carrier client bound to the resolved
// endpoints. timeout bounds every outbound call (token and rate alike);
// zero selects the package default.
func NewUPSClient(creds config.CarrierCredentials, endpoints Endpoints, timeout time.Duration, logger *logger.Logger) *UPSClient {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(timeout)

	return &UPSClient{
		client:   client,
		creds:    creds,
		authHost: endpoints.UPSAuthHost,
		rateHost: endpoints.UPSRateHost,
		logger:   logger,
	}
}

// Name implements [CarrierClient].
func (u *UPSClient) Name() models.Carrier {
	return models.CarrierUPS
}

// ProbeAuth implements [CarrierClient]. It performs the client-credentials
// grant and discards the token.
func (u *UPSClient) ProbeAuth(ctx context.Context) error {
	if err := checkCredentials(u.creds); err != nil {
		return err
	}

	_, err := acquireToken(ctx, upsAuthStrategies(u.client.Client, u.authHost, u.creds))
	return err
}

// GetRates implements [CarrierClient]. It acquires a fresh bearer token,
// submits one rate request built from spec, and maps every rated shipment in
// the response to a canonical quote.
func (u *UPSClient) GetRates(ctx context.Context, spec models.ShipmentSpec) ([]models.Quote, error) {
	if err := checkCredentials(u.creds); err != nil {
		return nil, err
	}

	token, err := acquireToken(ctx, upsAuthStrategies(u.client.Client, u.authHost, u.creds))
	if err != nil {
		return nil, err
	}

	resp, err := u.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(buildUPSRateRequest(spec)).
		Post(u.rateHost + upsRatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRateRequest, err)
	}
	if !resp.IsSuccess() {
		return nil, upstreamError(ErrRateRequest, resp)
	}

	var rateResp upsRateResponse
	if err := json.Unmarshal(resp.Body(), &rateResp); err != nil {
		return nil, fmt.Errorf("%w: decode rate response: %w", ErrRateRequest, err)
	}

	quotes := make([]models.Quote, 0, len(rateResp.RateResponse.RatedShipment))
	for _, rated := range rateResp.RateResponse.RatedShipment {
		quotes = append(quotes, mapUPSRatedShipment(rated))
	}

	u.logger.Debug().Int("quotes", len(quotes)).Msg("ups rates received")
	return quotes, nil
}

// ── wire types ───────────────────────────────────────────────────────────────

type upsRateRequest struct {
	RateRequest upsRateRequestBody `json:"RateRequest"`
}

type upsRateRequestBody struct {
	Shipment upsShipment `json:"Shipment"`
}

type upsShipment struct {
	Shipper               upsParty                 `json:"Shipper"`
	ShipFrom              upsParty                 `json:"ShipFrom"`
	ShipTo                upsParty                 `json:"ShipTo"`
	Package               []upsPackage             `json:"Package"`
	ShipmentRatingOptions upsShipmentRatingOptions `json:"ShipmentRatingOptions"`

	// DeliveryTimeInformation is sent only when a ship date is given;
	// nil omits the block entirely.
	DeliveryTimeInformation *upsDeliveryTimeInformation `json:"DeliveryTimeInformation,omitempty"`
}

type upsParty struct {
	Address upsAddress `json:"Address"`
}

type upsAddress struct {
	PostalCode        string `json:"PostalCode"`
	StateProvinceCode string `json:"StateProvinceCode,omitempty"`
	CountryCode       string `json:"CountryCode"`
}

type upsPackage struct {
	PackagingType         upsPackagingType          `json:"PackagingType"`
	PackageWeight         upsPackageWeight          `json:"PackageWeight"`
	Dimensions            *upsDimensions            `json:"Dimensions,omitempty"`
	PackageServiceOptions *upsPackageServiceOptions `json:"PackageServiceOptions,omitempty"`
}

type upsPackagingType struct {
	Code string `json:"Code"`
}

type upsPackageWeight struct {
	UnitOfMeasurement upsUnitOfMeasurement `json:"UnitOfMeasurement"`
	Weight            string               `json:"Weight"`
}

type upsUnitOfMeasurement struct {
	Code string `json:"Code"`
}

type upsDimensions struct {
	UnitOfMeasurement upsUnitOfMeasurement `json:"UnitOfMeasurement"`
	Length            string               `json:"Length"`
	Width             string               `json:"Width"`
	Height            string               `json:"Height"`
}

type upsPackageServiceOptions struct {
	DeclaredValue upsMonetaryValue `json:"DeclaredValue"`
}

type upsMonetaryValue struct {
	CurrencyCode  string `json:"CurrencyCode"`
	MonetaryValue string `json:"MonetaryValue"`
}

type upsShipmentRatingOptions struct {
	NegotiatedRatesIndicator string `json:"NegotiatedRatesIndicator,omitempty"`
}

type upsDeliveryTimeInformation struct {
	PackageBillType string    `json:"PackageBillType"`
	Pickup          upsPickup `json:"Pickup"`
}

type upsPickup struct {
	Date string `json:"Date"`
}

type upsRateResponse struct {
	RateResponse struct {
		RatedShipment []upsRatedShipment `json:"RatedShipment"`
	} `json:"RateResponse"`
}

type upsRatedShipment struct {
	Service struct {
		Code        string `json:"Code"`
		Description string `json:"Description"`
	} `json:"Service"`
	TotalCharges struct {
		CurrencyCode  string `json:"CurrencyCode"`
		MonetaryValue string `json:"MonetaryValue"`
	} `json:"TotalCharges"`
	GuaranteedDelivery *struct {
		BusinessDaysInTransit string `json:"BusinessDaysInTransit"`
		DeliveryByTime        string `json:"DeliveryByTime"`
	} `json:"GuaranteedDelivery"`
}

// ── payload construction and mapping ─────────────────────────────────────────

// buildUPSRateRequest builds the nested UPS rating document. The country is
// fixed to US and the package uses the customer-supplied packaging code.
func buildUPSRateRequest(spec models.ShipmentSpec) upsRateRequest {
	origin := upsParty{Address: upsAddress{
		PostalCode:        spec.OriginZip,
		StateProvinceCode: spec.OriginState,
		CountryCode:       "US",
	}}

	pkg := upsPackage{
		PackagingType: upsPackagingType{Code: "02"}, // customer supplied package
		PackageWeight: upsPackageWeight{
			UnitOfMeasurement: upsUnitOfMeasurement{Code: "LBS"},
			Weight:            formatUPSNumber(spec.WeightLb),
		},
	}

	if spec.Dimensions != nil {
		pkg.Dimensions = &upsDimensions{
			UnitOfMeasurement: upsUnitOfMeasurement{Code: "IN"},
			Length:            formatUPSNumber(spec.Dimensions.Length),
			Width:             formatUPSNumber(spec.Dimensions.Width),
			Height:            formatUPSNumber(spec.Dimensions.Height),
		}
	}

	if spec.DeclaredValue > 0 {
		pkg.PackageServiceOptions = &upsPackageServiceOptions{
			DeclaredValue: upsMonetaryValue{
				CurrencyCode:  "USD",
				MonetaryValue: formatUPSNumber(spec.DeclaredValue),
			},
		}
	}

	shipment := upsShipment{
		Shipper:  origin,
		ShipFrom: origin,
		ShipTo: upsParty{Address: upsAddress{
			PostalCode:        spec.DestZip,
			StateProvinceCode: spec.DestState,
			CountryCode:       "US",
		}},
		Package:               []upsPackage{pkg},
		ShipmentRatingOptions: upsShipmentRatingOptions{},
	}

	if spec.ShipDate != "" {
		shipment.DeliveryTimeInformation = &upsDeliveryTimeInformation{
			PackageBillType: "03",
			Pickup:          upsPickup{Date: strings.ReplaceAll(spec.ShipDate, "-", "")},
		}
	}

	return upsRateRequest{RateRequest: upsRateRequestBody{Shipment: shipment}}
}

// mapUPSRatedShipment normalizes one rated shipment into a canonical quote.
// Transit and delivery fields are set only when UPS returned a
// guaranteed-delivery block.
func mapUPSRatedShipment(rated upsRatedShipment) models.Quote {
	service := rated.Service.Description
	if service == "" {
		service = rated.Service.Code
	}

	charge, _ := strconv.ParseFloat(rated.TotalCharges.MonetaryValue, 64)

	quote := models.Quote{
		Carrier:     models.CarrierUPS,
		Service:     service,
		TotalCharge: charge,
	}

	if gd := rated.GuaranteedDelivery; gd != nil {
		if days, err := strconv.Atoi(gd.BusinessDaysInTransit); err == nil && days > 0 {
			quote.TransitDays = days
		}
		quote.DeliveryDate = gd.DeliveryByTime
	}

	return quote
}

// formatUPSNumber renders a numeric field the way the UPS API expects:
// as a string, without a trailing ".0" for whole values.
func formatUPSNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
