package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	minBcryptCost = bcrypt.MinCost
	maxBcryptCost = bcrypt.MaxCost
)

// defaultConfig holds the built-in fallbacks merged after all other sources.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			BcryptCost: bcrypt.DefaultCost,
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:8080",
			RequestTimeout: 30 * time.Second,
			RateLimit:      500,
		},
		Session: Session{
			Lifetime: 24 * time.Hour,
		},
		Workers: Workers{
			KeepAliveInterval: 10 * time.Minute,
		},
	}
}
