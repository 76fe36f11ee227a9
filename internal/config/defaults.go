package config

import "time"

// defaults returns the lowest-priority config layer. Every other source
// overrides these values when it sets a non-zero field.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-note-sync",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{
			DB:    DB{DSN: "notes.db"},
			Files: Files{BlobDir: "blobs"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
	}
}
