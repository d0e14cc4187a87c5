package assistant

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Group(func(r chi.Router) {
		r.Use(h.RecoverJSON)
		r.Post("/api/chat", h.HandleChat)
		r.Get("/api/status", h.HandleStatus)
		r.Get("/api/dashboard", h.HandleDashboard)
	})
}
