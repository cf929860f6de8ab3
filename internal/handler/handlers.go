package handler

import (
	"github.com/heart-smiles/heart-smiles-api/internal/config"
	"github.com/heart-smiles/heart-smiles-api/internal/handler/http"
	"github.com/heart-smiles/heart-smiles-api/internal/logger"
	"github.com/heart-smiles/heart-smiles-api/internal/service"
)

// Handlers aggregates the transport handlers of the application. The API
// serves a single HTTP surface; the wrapper keeps wiring uniform should
// another transport ever be added.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}
}
