package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig for file-based configuration.
// Durations are decoded from strings like "30s" or "1h".
type StructuredJSONConfig struct {
	App struct {
		BcryptCost  int    `json:"bcrypt_cost"`
		Environment string `json:"environment"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
		RateLimit      int      `json:"rate_limit"`
	} `json:"server,omitempty"`

	Session struct {
		Lifetime      Duration `json:"lifetime"`
		SecureCookies bool     `json:"secure_cookies"`
	} `json:"session,omitempty"`

	Workers struct {
		KeepAliveURL      string   `json:"keep_alive_url"`
		KeepAliveInterval Duration `json:"keep_alive_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			BcryptCost:  jsonCfg.App.BcryptCost,
			Environment: jsonCfg.App.Environment,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
			RateLimit:      jsonCfg.Server.RateLimit,
		},
		Session: Session{
			Lifetime:      time.Duration(jsonCfg.Session.Lifetime),
			SecureCookies: jsonCfg.Session.SecureCookies,
		},
		Workers: Workers{
			KeepAliveURL:      jsonCfg.Workers.KeepAliveURL,
			KeepAliveInterval: time.Duration(jsonCfg.Workers.KeepAliveInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	default:
		return errors.New("invalid duration")
	}
}
