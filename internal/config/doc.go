// Package config loads and merges application configuration from
// environment variables, command-line flags, an optional .env file,
// and an optional JSON file.
package config
