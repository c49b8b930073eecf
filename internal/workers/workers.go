package workers

import (
	"github.com/flashdeck/flashdeck/internal/config"
	"github.com/flashdeck/flashdeck/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by configuration.
// The keep-alive pinger only runs in the production environment; local runs
// have nothing to keep awake.
func NewWorkers(appCfg config.App, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if appCfg.Environment == "production" && cfg.KeepAliveURL != "" {
		w.workers = append(w.workers, NewKeepAliveWorker(cfg, logger))
	}

	return w
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops every worker that supports stopping.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		if s, ok := worker.(interface{ Stop() }); ok {
			s.Stop()
		}
	}
}
