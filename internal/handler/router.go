package handler

import (
	"net/http"

	"github.com/EpicMandM/laptop-desk/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the desk pages behind the shared middleware stack.
func NewRouter(h *PageHandler, log *logger.Logger) http.Handler {
	if log == nil {
		log = logger.Discard()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/health", Health)

	r.Get("/", h.Index)
	r.Get("/laptops", h.Laptops)
	r.Get("/onboard", h.OnboardForm)
	r.Post("/onboard", h.Onboard)
	r.Get("/recommend", h.RecommendForm)
	r.Post("/recommend", h.Recommend)
	r.Get("/offboard", h.OffboardForm)
	r.Post("/offboard", h.Offboard)
	r.Get("/reserve", h.ReserveForm)
	r.Post("/reserve", h.Reserve)

	return r
}
