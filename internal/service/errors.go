package service

import "errors"

var (
	// ErrNoQuotes is returned when every selected carrier pipeline failed
	// and the merged quote list is empty. It is terminal for the request,
	// unlike a partial failure where at least one carrier responded.
	ErrNoQuotes = errors.New("no quotes available")
)
