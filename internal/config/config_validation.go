// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks the merged, defaulted [StructuredConfig] before it is used
// at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Remote.BaseURL == "" || cfg.Remote.Username == "" || cfg.Remote.Password == "" {
		return fmt.Errorf("%w: base url, username and password are required", ErrInvalidRemoteConfigs)
	}

	u, err := url.Parse(cfg.Remote.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: malformed base url %q", ErrInvalidRemoteConfigs, cfg.Remote.BaseURL)
	}

	if cfg.Remote.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidRemoteConfigs)
	}

	if cfg.Workers.SyncIntervalMinutes < 0 {
		return fmt.Errorf("%w: negative sync interval", ErrInvalidWorkerConfigs)
	}

	return nil
}
