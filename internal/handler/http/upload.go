package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heart-smiles/heart-smiles-api/internal/logger"
	"github.com/heart-smiles/heart-smiles-api/internal/utils"
)

// multipartMemoryBytes bounds how much of a multipart body is parsed in
// memory before spilling to disk. The overall body size is already capped by
// the body limit middleware.
const multipartMemoryBytes = 4 << 20

const uploadFieldName = "file"

// upload accepts a multipart form with a single "file" field and stores it.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(multipartMemoryBytes); err != nil {
		if status, ok := sizeLimitStatus(err); ok {
			h.respondError(w, r, withStatus(status, fmt.Errorf("multipart body too large: %w", err)), "")
			return
		}
		h.respondError(w, r, withStatus(http.StatusBadRequest, fmt.Errorf("invalid multipart form: %w", err)), "")
		return
	}

	file, header, err := r.FormFile(uploadFieldName)
	if err != nil {
		h.respondError(w, r, withStatus(http.StatusBadRequest, fmt.Errorf("missing %q form field: %w", uploadFieldName, err)), "")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.respondError(w, r, fmt.Errorf("reading uploaded file: %w", err), "")
		return
	}

	meta, err := h.services.FileService.Save(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		h.respondError(w, r, err, "")
		return
	}

	log.Debug().Str("file_id", meta.ID).Str("filename", meta.Filename).Msg("file uploaded")

	utils.WriteJSON(w, meta, http.StatusCreated)
}

func (h *Handler) listUploads(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.FileService.List(r.Context()), http.StatusOK)
}

// getUpload streams a stored file's contents back with its original
// content type.
func (h *Handler) getUpload(w http.ResponseWriter, r *http.Request) {
	meta, data, err := h.services.FileService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err, "")
		return
	}

	contentType := meta.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", meta.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) uploadRoutes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.listUploads)
	r.Get("/{id}", h.getUpload)

	r.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/", h.upload)
	})

	return r
}
