// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-ship-rates/internal/adapter"
	"github.com/MKhiriev/go-ship-rates/internal/logger"
	"github.com/MKhiriev/go-ship-rates/models"
)

type rateService struct {
	clients []adapter.CarrierClient
	demo    bool

	logger *logger.Logger
}

// NewRateService constructs the aggregating [RateService] over the given
// carrier clients, in fan-out invocation order. When demo is true the
// service never calls a carrier and answers with the fixed demo quotes.
func NewRateService(clients []adapter.CarrierClient, demo bool, logger *logger.Logger) RateService {
	return &rateService{
		clients: clients,
		demo:    demo,
		logger:  logger,
	}
}

// carrierOutcome is one pipeline's slot in the fan-out result set: a success
// carries quotes, a failure carries the error. Slots are written by exactly
// one goroutine each, so the set needs no locking.
type carrierOutcome struct {
	carrier models.Carrier
	quotes  []models.Quote
	err     error
}

// GetQuotes implements [RateService].
//
// Every selected carrier pipeline (token acquisition + rate call) runs
// concurrently with the others and owns its own payloads, so a slow or
// failing carrier never blocks or aborts a sibling. The method waits for
// every pipeline to settle; it does not short-circuit on first failure or
// first success.
func (s *rateService) GetQuotes(ctx context.Context, spec models.ShipmentSpec, opts QuoteOptions) (models.AggregateResult, error) {
	if s.demo {
		s.logger.Debug().Msg("demo mode: serving fixed quotes")
		return models.AggregateResult{
			Quotes: PostProcess(demoQuotes(), opts.ServiceFilters),
		}, nil
	}

	selected := s.selectClients(opts.Only)

	outcomes := make([]carrierOutcome, len(selected))
	var wg sync.WaitGroup
	for i, client := range selected {
		wg.Add(1)
		go func(i int, client adapter.CarrierClient) {
			defer wg.Done()
			quotes, err := client.GetRates(ctx, spec)
			outcomes[i] = carrierOutcome{carrier: client.Name(), quotes: quotes, err: err}
		}(i, client)
	}
	wg.Wait()

	// merge in carrier-invocation order; failures become warnings.
	// The request-scoped logger carries the trace id attached by the
	// transport layer.
	log := logger.FromContext(ctx)

	var result models.AggregateResult
	for _, outcome := range outcomes {
		if outcome.err != nil {
			log.Warn().
				Str("carrier", string(outcome.carrier)).
				Err(outcome.err).
				Msg("carrier pipeline failed")
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %s", outcome.carrier, outcome.err))
			continue
		}
		result.Quotes = append(result.Quotes, outcome.quotes...)
	}

	if len(result.Quotes) == 0 {
		return result, fmt.Errorf("%w: %s", ErrNoQuotes, strings.Join(result.Warnings, " | "))
	}

	result.Quotes = PostProcess(result.Quotes, opts.ServiceFilters)
	return result, nil
}

// ProbeOAuth implements [RateService]. Probes run sequentially; this is a
// diagnostics path, not a hot path.
func (s *rateService) ProbeOAuth(ctx context.Context) []models.OAuthProbeResult {
	results := make([]models.OAuthProbeResult, 0, len(s.clients))
	for _, client := range s.clients {
		probe := models.OAuthProbeResult{Carrier: client.Name(), OK: true}
		if err := client.ProbeAuth(ctx); err != nil {
			probe.OK = false
			probe.Error = err.Error()
		}
		results = append(results, probe)
	}
	return results
}

// selectClients resolves the carrier-restriction hint. Only an exact
// (case-insensitive) carrier name narrows the fan-out; anything else keeps
// every configured client.
func (s *rateService) selectClients(only string) []adapter.CarrierClient {
	only = strings.ToLower(strings.TrimSpace(only))
	if only == "" {
		return s.clients
	}

	for _, client := range s.clients {
		if strings.ToLower(string(client.Name())) == only {
			return []adapter.CarrierClient{client}
		}
	}

	return s.clients
}
