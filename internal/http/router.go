package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dexsearch/internal/handlers"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Store     handlers.Store
	Backend   handlers.Backend
	Journal   handlers.ActivityLister
	IndexHTML string // Embedded dashboard page
}

// NewRouter creates the dashboard router.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(CORS)

	folderHandler := handlers.NewFolderHandler(deps.Store)
	healthHandler := handlers.NewHealthHandler(deps.Backend)
	answerHandler := handlers.NewAnswerHandler(deps.Backend)
	activityHandler := handlers.NewActivityHandler(deps.Journal)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Get("/state", folderHandler.State)
		r.Get("/validate-path", folderHandler.ValidatePath)
		r.Method(http.MethodGet, "/activity", activityHandler)
		r.Method(http.MethodPost, "/answer", answerHandler)

		r.Route("/folders", func(r chi.Router) {
			r.Get("/", folderHandler.List)
			r.Post("/", folderHandler.Create)
			r.Post("/refresh", folderHandler.Refresh)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", folderHandler.Get)
				r.Put("/", folderHandler.Update)
				r.Delete("/", folderHandler.Delete)
				r.Post("/toggle", folderHandler.Toggle)
				r.Post("/index", folderHandler.Index)
				r.Get("/status", folderHandler.Status)
			})
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(deps.IndexHTML))
	})

	return r
}
