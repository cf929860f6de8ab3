package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heart-smiles/heart-smiles-api/internal/utils"
	"github.com/heart-smiles/heart-smiles-api/models"
)

// crudService is the uniform contract every registry-backed resource
// collaborator satisfies. The participant, program, and staff services each
// implement it for their own record type.
type crudService[T any] interface {
	List(ctx context.Context) []T
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, record T) (T, error)
	Update(ctx context.Context, record T) (T, error)
	Delete(ctx context.Context, id string) error
}

// resourceRoutes builds the sub-router for one registry-backed resource.
// Reads are open; mutations require authentication. withID stamps the URL's
// {id} parameter onto a decoded record before an update.
func resourceRoutes[T any](h *Handler, svc crudService[T], withID func(record T, id string) T) chi.Router {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		utils.WriteJSON(w, svc.List(req.Context()), http.StatusOK)
	})

	r.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
		record, err := svc.Get(req.Context(), chi.URLParam(req, "id"))
		if err != nil {
			h.respondError(w, req, err, "")
			return
		}
		utils.WriteJSON(w, record, http.StatusOK)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			var record T
			if err := decodeJSON(req, &record); err != nil {
				h.respondError(w, req, err, "")
				return
			}

			created, err := svc.Create(req.Context(), record)
			if err != nil {
				h.respondError(w, req, err, "")
				return
			}
			utils.WriteJSON(w, created, http.StatusCreated)
		})

		r.Put("/{id}", func(w http.ResponseWriter, req *http.Request) {
			var record T
			if err := decodeJSON(req, &record); err != nil {
				h.respondError(w, req, err, "")
				return
			}

			updated, err := svc.Update(req.Context(), withID(record, chi.URLParam(req, "id")))
			if err != nil {
				h.respondError(w, req, err, "")
				return
			}
			utils.WriteJSON(w, updated, http.StatusOK)
		})

		r.Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
			if err := svc.Delete(req.Context(), chi.URLParam(req, "id")); err != nil {
				h.respondError(w, req, err, "")
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})

	return r
}

func (h *Handler) participantRoutes() chi.Router {
	return resourceRoutes(h, h.services.ParticipantService, func(p models.Participant, id string) models.Participant {
		p.ID = id
		return p
	})
}

func (h *Handler) programRoutes() chi.Router {
	return resourceRoutes(h, h.services.ProgramService, func(p models.Program, id string) models.Program {
		p.ID = id
		return p
	})
}

func (h *Handler) staffRoutes() chi.Router {
	return resourceRoutes(h, h.services.StaffService, func(m models.StaffMember, id string) models.StaffMember {
		m.ID = id
		return m
	})
}
