package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "modeldeck/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(pullHandler *PullHandler, generateHandler *GenerateHandler, statusHandler *StatusHandler) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	// These are applied to every request.
	r.Use(middleware.RequestID) // Injects a unique request ID into the context.
	r.Use(middleware.RealIP)    // Sets the remote address to the real IP from proxy headers.
	r.Use(middleware.Logger)    // Logs the start and end of each request with useful info.
	r.Use(middleware.Recoverer) // Recovers from panics and returns a 500 error.

	// --- Public Routes ---

	// Serves the auto-generated Swagger UI for API documentation.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// A simple health check endpoint. Crucial for container orchestration systems
	// like Kubernetes to perform liveness and readiness probes.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// --- API Version 1 Routes ---
	// All primary API endpoints are grouped under the /api/v1 prefix.
	r.Route("/api/v1", func(r chi.Router) {

		// Group for standard JSON API routes that should have a request timeout
		// to prevent client connections from hanging indefinitely.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			// --- Status & Service ---
			r.Get("/status", statusHandler.HandleStatus)
			r.Get("/hostname", statusHandler.HandleHostname)
			r.Post("/service/toggle", statusHandler.HandleToggle)

			// --- Models ---
			r.Delete("/models", statusHandler.HandleDeleteModel)

			// --- Downloads ---
			// Starting a pull returns immediately; the download itself runs in
			// the background and is observed through the check endpoint.
			r.Post("/models/pull", pullHandler.HandleStartPull)
			r.Get("/models/pull/{model}", pullHandler.HandleCheckPull)
			r.Delete("/models/pull/{model}", pullHandler.HandleCancelPull)
			r.Get("/models/downloads", pullHandler.HandleListDownloads)
		})

		// Group for long-running, streaming endpoints. These routes must NOT have a timeout,
		// as they are designed to hold a connection open for an extended period.
		r.Group(func(r chi.Router) {
			r.Post("/generate", generateHandler.HandleGenerate)
		})
	})

	return r
}
