package config

import (
	"fmt"
	"time"
)

// ServerApp holds token and URL signing settings of the store server.
type ServerApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	HashKey       string
}

// ServerStorage groups the document database and blob directory.
type ServerStorage struct {
	DB    DB
	Files Files
}

// ServerConfig is the store server's view of [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Storage ServerStorage
	Server  Server
}

// GetServerConfig loads the merged configuration, maps the server fields and
// validates them. An empty public URL defaults to http://<listen address>.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)

	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			HashKey:       cfg.App.HashKey,
		},
		Storage: ServerStorage{
			DB:    cfg.Storage.DB,
			Files: cfg.Storage.Files,
		},
		Server: cfg.Server,
	}

	if serverCfg.Server.PublicURL == "" && serverCfg.Server.HTTPAddress != "" {
		serverCfg.Server.PublicURL = "http://" + serverCfg.Server.HTTPAddress
	}

	return serverCfg
}
