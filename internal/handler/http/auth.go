package http

import (
	"fmt"
	"net/http"

	"github.com/heart-smiles/heart-smiles-api/internal/logger"
	"github.com/heart-smiles/heart-smiles-api/internal/utils"
	"github.com/heart-smiles/heart-smiles-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		h.respondError(w, r, err, "")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		h.respondError(w, r, err, "")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		h.respondError(w, r, err, "")
		return
	}

	log.Debug().Str("user_id", registeredUser.UserID).Msg("user registered")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, token, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		h.respondError(w, r, err, "")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		h.respondError(w, r, err, "")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.respondError(w, r, err, "")
		return
	}

	log.Debug().Str("user_id", foundUser.UserID).Msg("user logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, token, http.StatusOK)
}

// me returns the authenticated user's ID. Clients use it to validate a
// stored token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, r, withStatus(http.StatusUnauthorized, ErrEmptyAuthorizationHeader), "")
		return
	}

	utils.WriteJSON(w, map[string]string{"user_id": userID}, http.StatusOK)
}
