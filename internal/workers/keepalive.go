// Copyright 2026 Flashdeck Authors
// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"time"

	"github.com/flashdeck/flashdeck/internal/config"
	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/go-resty/resty/v2"
)

// KeepAliveWorker periodically pings the application's own public URL so the
// hosting platform does not idle the instance between study sessions.
type KeepAliveWorker struct {
	client   *resty.Client
	url      string
	interval time.Duration
	stop     chan struct{}
	logger   *logger.Logger
}

func NewKeepAliveWorker(cfg config.Workers, logger *logger.Logger) *KeepAliveWorker {
	return &KeepAliveWorker{
		client:   resty.New().SetTimeout(30 * time.Second),
		url:      cfg.KeepAliveURL,
		interval: cfg.KeepAliveInterval,
		stop:     make(chan struct{}),
		logger:   logger,
	}
}

// Run starts the ping loop in a goroutine and returns immediately.
func (k *KeepAliveWorker) Run() {
	k.logger.Info().Str("url", k.url).Dur("interval", k.interval).Msg("keep-alive worker started")

	go func() {
		ticker := time.NewTicker(k.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				k.ping()
			case <-k.stop:
				k.logger.Info().Msg("keep-alive worker stopped")
				return
			}
		}
	}()
}

// Stop terminates the ping loop. Safe to call once.
func (k *KeepAliveWorker) Stop() {
	close(k.stop)
}

func (k *KeepAliveWorker) ping() {
	resp, err := k.client.R().Get(k.url)
	if err != nil {
		k.logger.Err(err).Str("func", "KeepAliveWorker.ping").Msg("keep-alive ping failed")
		return
	}

	k.logger.Debug().Int("status", resp.StatusCode()).Msg("keep-alive ping sent")
}
