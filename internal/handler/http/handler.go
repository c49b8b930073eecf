package http

import (
	"github.com/flashdeck/flashdeck/internal/config"
	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/flashdeck/flashdeck/internal/service"
	"github.com/flashdeck/flashdeck/internal/session"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}
