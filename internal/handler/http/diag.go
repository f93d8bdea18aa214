package http

import (
	"net/http"

	"github.com/MKhiriev/go-ship-rates/internal/utils"
)

// probeOAuth serves GET /api/diag/oauth/: one token-endpoint probe per
// configured carrier, no rate calls. Always answers 200 — a failed probe is
// data, not a transport error.
func (h *Handler) probeOAuth(w http.ResponseWriter, r *http.Request) {
	results := h.services.RateService.ProbeOAuth(r.Context())
	utils.WriteJSON(w, results, http.StatusOK)
}
