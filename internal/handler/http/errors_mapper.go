package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-ship-rates/internal/service"
	"github.com/MKhiriev/go-ship-rates/models"
)

var errorStatusMap = map[error]int{
	service.ErrNoQuotes: http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponseFrom classifies the aggregation failure into the error body.
// For a total carrier failure the detail is exactly the per-carrier warnings
// joined by " | ", with no sentinel prefix; anything else is an unclassified
// internal error.
func errorResponseFrom(err error, result models.AggregateResult) models.ErrorResponse {
	if errors.Is(err, service.ErrNoQuotes) {
		return models.ErrorResponse{
			Error:  "no quotes available",
			Detail: strings.Join(result.Warnings, " | "),
		}
	}

	return models.ErrorResponse{
		Error:  "internal error",
		Detail: err.Error(),
	}
}
