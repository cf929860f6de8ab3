package http

import (
	"github.com/heart-smiles/heart-smiles-api/internal/config"
	"github.com/heart-smiles/heart-smiles-api/internal/logger"
	"github.com/heart-smiles/heart-smiles-api/internal/ratelimit"
	"github.com/heart-smiles/heart-smiles-api/internal/service"
)

type Handler struct {
	services *service.Services

	allowedOrigins AllowedOrigins
	limiter        *ratelimit.Limiter
	production     bool
	version        string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	limiter := ratelimit.NewLimiter(
		cfg.RateLimit.Window,
		cfg.RateLimit.MaxRequests,
		ratelimit.WithExemptPath(healthPath),
		ratelimit.WithExemptPath(apiPrefix+healthPath),
	)

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigins: BuildAllowedOrigins(cfg.CORS, logger),
		limiter:        limiter,
		production:     cfg.App.IsProduction(),
		version:        cfg.App.Version,
		logger:         logger,
	}
}
