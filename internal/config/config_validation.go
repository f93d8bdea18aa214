// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Mode {
	case "", ModeSandbox, ModeProduction:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, cfg.App.Mode)
	}

	if err := cfg.Carriers.UPS.validate("ups"); err != nil {
		return err
	}
	if err := cfg.Carriers.FedEx.validate("fedex"); err != nil {
		return err
	}

	return nil
}

func (c CarrierCredentials) validate(name string) error {
	if (c.ClientID == "") != (c.ClientSecret == "") {
		return fmt.Errorf("%w: %s", ErrPartialCredentials, name)
	}
	return nil
}
