package wire

import (
	"cinema-tickets/internal/adaptor"
	"cinema-tickets/pkg/identity"
	"cinema-tickets/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(r chi.Router, h *adaptor.OrderHandler, resolver identity.Resolver, log *zap.Logger) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(middleware.Authenticate(resolver, log))

		r.Get("/", h.GetOrders)
		r.Post("/", h.CreateOrder)
	})
}
