package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/lumenlabs/lumen/web"
)

func NewRouter(apiHandler *APIHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)       // Basic request logging
	r.Use(middleware.Recoverer)    // Recover from panics
	r.Use(middleware.StripSlashes) // Ensure consistent path handling
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// All API routes will be under /api
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		r.Get("/page", apiHandler.PageHandler)
		r.Post("/sections/{sectionID}/expand", apiHandler.ExpandSectionHandler)

		r.Get("/icons", apiHandler.IconsHandler)
		r.Get("/icons/{phase}", apiHandler.IconImageHandler)

		r.Post("/vision", apiHandler.VisionHandler)

		r.Get("/chat/messages", apiHandler.ChatMessagesHandler)
		r.Post("/chat/messages", apiHandler.PostChatMessageHandler)
	})

	// The journey page itself.
	r.Handle("/*", web.PageHandler())

	return r
}
