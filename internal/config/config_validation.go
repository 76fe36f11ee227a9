// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "net/url"

// validate checks that the server view of the configuration carries
// everything the store server needs at startup.
func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.BlobDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.HashKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.PublicURL != "" {
		if _, err := url.ParseRequestURI(cfg.Server.PublicURL); err != nil {
			return ErrInvalidServerConfigs
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
