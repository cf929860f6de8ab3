// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// mount pairs a route prefix with the sub-router serving it. The same table
// is attached under both base paths, so direct and prefixed URLs are handled
// by one set of collaborator instances.
type mount struct {
	prefix  string
	handler http.Handler
}

// Init assembles the full request pipeline and route table and returns the
// ready-to-serve router. The returned mux is also the entry point when the
// process runs behind a serverless proxy instead of its own listener.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withRecover)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withSecurityHeaders)
	router.Use(h.withCORS)
	router.Use(h.withRateLimit)
	router.Use(withBodyLimit)
	router.Use(h.withPathNormalization)

	authRouter := h.authRoutes()
	mounts := []mount{
		{prefix: "/auth", handler: authRouter},
		{prefix: "/participants", handler: h.participantRoutes()},
		{prefix: "/programs", handler: h.programRoutes()},
		{prefix: "/staff", handler: h.staffRoutes()},
		{prefix: "/upload", handler: h.uploadRoutes()},
		{prefix: "/export", handler: h.exportRoutes()},
		{prefix: "/import", handler: h.importRoutes()},
	}

	// Both URL shapes, with and without the /api prefix, resolve to the same
	// handler instances. Direct clients hit the bare mounts, proxied clients
	// the prefixed ones, and the path normalizer upstream folds the
	// stripped-prefix proxy case into the prefixed shape.
	for _, base := range []string{"", apiPrefix} {
		for _, m := range mounts {
			router.Mount(base+m.prefix, m.handler)
		}
	}

	router.Get("/", h.root)
	router.Get(apiPrefix, h.root)
	router.Get(healthPath, h.health)
	router.Get(apiPrefix+healthPath, h.health)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	h.logger.Info().Msg("routes initialized")

	return router
}

func (h *Handler) authRoutes() chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.With(h.auth).Get("/me", h.me)

	return r
}
