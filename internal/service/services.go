package service

import (
	"github.com/MKhiriev/go-ship-rates/internal/adapter"
	"github.com/MKhiriev/go-ship-rates/internal/config"
	"github.com/MKhiriev/go-ship-rates/internal/logger"
)

type Services struct {
	RateService    RateService
	AppInfoService AppInfoService
}

// NewServices wires the service layer from the process-wide configuration.
// The carrier clients are created once here — credentials and deployment
// mode are fixed for the process lifetime — and fan-out order is UPS first,
// FedEx second.
func NewServices(cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	endpoints := adapter.ResolveEndpoints(cfg.App.Mode)
	timeout := cfg.Adapter.RequestTimeout

	clients := []adapter.CarrierClient{
		adapter.NewUPSClient(cfg.Carriers.UPS, endpoints, timeout, logger),
		adapter.NewFedExClient(cfg.Carriers.FedEx, endpoints, timeout, logger),
	}

	// demo mode: forced by the flag, or implied when no carrier has
	// credentials at all
	demo := cfg.App.Demo ||
		(!cfg.Carriers.UPS.Configured() && !cfg.Carriers.FedEx.Configured())

	return &Services{
		RateService:    NewRateService(clients, demo, logger),
		AppInfoService: NewAppInfoService(cfg.App.Version),
	}
}
