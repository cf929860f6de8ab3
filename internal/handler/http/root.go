package http

import (
	"net/http"

	"github.com/heart-smiles/heart-smiles-api/internal/utils"
	"github.com/heart-smiles/heart-smiles-api/models"
)

// root serves the static capability listing.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.APIInfoResponse{
		Message:   "Heart Smiles API",
		Version:   h.version,
		Endpoints: knownEndpoints,
	}, http.StatusOK)
}
