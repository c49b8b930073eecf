package config

import (
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv loads a .env file from the working directory into the process
// environment before env parsing runs. Skipped in production deployments,
// where configuration comes from real environment variables.
func loadDotEnv() {
	if os.Getenv("APP_ENVIRONMENT") == "production" {
		return
	}

	// a missing .env file is the normal case outside local development
	_ = godotenv.Load()
}
