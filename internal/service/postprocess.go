// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sort"
	"strings"

	"github.com/MKhiriev/go-ship-rates/models"
)

// filterKeywords maps a well-known filter token to the service-name
// substrings it matches. Unrecognized tokens fall back to a literal
// substring match.
var filterKeywords = map[string][]string{
	"ground":    {"ground", "home delivery"},
	"2day":      {"2 day", "2day"},
	"overnight": {"overnight", "next day", "priority overnight", "standard overnight", "saver"},
}

// PostProcess applies the caller's service-category filters to quotes and
// sorts the survivors ascending by total charge. Filtering happens before
// sorting; the sort is stable, so ties keep carrier-invocation order.
// An empty filter list keeps every quote.
func PostProcess(quotes []models.Quote, filters []string) []models.Quote {
	filtered := filterQuotes(quotes, filters)

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].TotalCharge < filtered[j].TotalCharge
	})

	return filtered
}

// filterQuotes keeps a quote if its service name matches at least one filter
// token. Matching is case-insensitive on substrings.
func filterQuotes(quotes []models.Quote, filters []string) []models.Quote {
	if len(filters) == 0 {
		return quotes
	}

	kept := make([]models.Quote, 0, len(quotes))
	for _, quote := range quotes {
		if matchesAnyFilter(quote.Service, filters) {
			kept = append(kept, quote)
		}
	}
	return kept
}

func matchesAnyFilter(service string, filters []string) bool {
	service = strings.ToLower(service)

	for _, filter := range filters {
		token := strings.ToLower(strings.TrimSpace(filter))
		if token == "" {
			continue
		}

		keywords, known := filterKeywords[token]
		if !known {
			keywords = []string{token} // literal substring fallback
		}

		for _, keyword := range keywords {
			if strings.Contains(service, keyword) {
				return true
			}
		}
	}

	return false
}
