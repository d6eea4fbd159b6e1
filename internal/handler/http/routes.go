package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/cadet-sync/internal/app"
	"github.com/MKhiriev/cadet-sync/internal/utils"
	"github.com/MKhiriev/cadet-sync/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.ping)
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/auth/token", h.issueToken)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/presences", h.createPresence)
		r.Post("/api/presences/bulk", h.createPresencesBulk)
		r.Post("/api/uniform-inspections", h.createUniformInspection)

		r.Get("/api/users", h.listCollection(models.CollectionUsers))
		r.Get("/api/sections", h.listCollection(models.CollectionSections))
		r.Get("/api/activities", h.listCollection(models.CollectionActivities))
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
