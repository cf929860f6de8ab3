package http

import (
	"net/http"
	"time"

	"github.com/heart-smiles/heart-smiles-api/internal/utils"
	"github.com/heart-smiles/heart-smiles-api/models"
)

const healthPath = "/health"

// health is the diagnostics endpoint. It bypasses rate-limit counting (the
// limiter exempts its path) but still flows through the origin matcher and
// path normalizer like every other request.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:    "ok",
		Message:   "Heart Smiles API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}
