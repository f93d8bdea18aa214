// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-ship-rates/internal/logger"
	"github.com/MKhiriev/go-ship-rates/internal/service"
	"github.com/MKhiriev/go-ship-rates/internal/utils"
	"github.com/MKhiriev/go-ship-rates/models"
)

// rateOptions is the slice of the request body that controls aggregation
// rather than describing the shipment. It is decoded separately from the
// [models.ShipmentSpec] so that shipment parsing stays carrier-agnostic.
type rateOptions struct {
	Only           string   `json:"only"`
	ServiceFilters []string `json:"service_filters"`
}

// getRates serves POST /api/rates/. A malformed body is not an error: it
// degrades to the empty shipment spec and the carriers report what is
// missing through the usual warning path.
func (h *Handler) getRates(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getRates").Msg("error reading request body")
		utils.WriteJSON(w, models.ErrorResponse{Error: "error reading request body"}, http.StatusInternalServerError)
		return
	}

	body = models.UnwrapPayload(body)
	spec := models.ParseShipmentSpec(body)
	opts := parseRateOptions(r, body)

	result, err := h.services.RateService.GetQuotes(r.Context(), spec, opts)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getRates").Msg("error aggregating quotes")
		utils.WriteJSON(w, errorResponseFrom(err, result), statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// parseRateOptions resolves the aggregation knobs from the already unwrapped
// body bytes. The carrier-selection hint is taken from the `only` query
// parameter first, falling back to the body field; service filters come from
// the body only. Decoding is best-effort, matching the tolerant shipment
// parsing.
func parseRateOptions(r *http.Request, body []byte) service.QuoteOptions {
	var fromBody rateOptions
	_ = json.Unmarshal(body, &fromBody)

	only := r.URL.Query().Get("only")
	if only == "" {
		only = fromBody.Only
	}

	return service.QuoteOptions{
		Only:           only,
		ServiceFilters: fromBody.ServiceFilters,
	}
}
