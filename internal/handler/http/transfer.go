package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heart-smiles/heart-smiles-api/internal/logger"
	"github.com/heart-smiles/heart-smiles-api/internal/utils"
	"github.com/heart-smiles/heart-smiles-api/models"
)

// export dumps every registry as one snapshot document.
func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	snapshot := h.services.TransferService.Export(r.Context())
	utils.WriteJSON(w, snapshot, http.StatusOK)
}

// importSnapshot loads a previously exported snapshot back into the
// registries. Records are matched by ID, so re-importing the same snapshot
// is idempotent.
func (h *Handler) importSnapshot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var snapshot models.Snapshot
	if err := decodeJSON(r, &snapshot); err != nil {
		h.respondError(w, r, err, "")
		return
	}

	result, err := h.services.TransferService.Import(r.Context(), snapshot)
	if err != nil {
		h.respondError(w, r, err, "")
		return
	}

	log.Info().
		Int("participants", result.Participants).
		Int("programs", result.Programs).
		Int("staff", result.Staff).
		Msg("snapshot imported")

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) exportRoutes() chi.Router {
	r := chi.NewRouter()
	r.With(h.auth).Get("/", h.export)
	return r
}

func (h *Handler) importRoutes() chi.Router {
	r := chi.NewRouter()
	r.With(h.auth).Post("/", h.importSnapshot)
	return r
}
