package wire

import (
	"net/http"

	"cinema-tickets/internal/adaptor"
	"cinema-tickets/internal/data/repository"
	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/identity"
	"cinema-tickets/pkg/middleware"
	"cinema-tickets/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled dependency graph.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router from their
// dependencies.
func Wiring(repo *repository.Repository, resolver identity.Resolver, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, resolver, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, resolver identity.Resolver, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	wireGenre(r, handler.Genre)
	wireActor(r, handler.Actor)
	wireHall(r, handler.Hall)
	wireMovie(r, handler.Movie)
	wireSession(r, handler.Session)
	wireOrder(r, handler.Order, resolver, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
