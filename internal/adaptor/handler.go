package adaptor

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"cinema-tickets/internal/data/repository"
	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Genre   *GenreHandler
	Actor   *ActorHandler
	Hall    *HallHandler
	Movie   *MovieHandler
	Session *SessionHandler
	Order   *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Genre:   NewGenreHandler(service.Catalog, log),
		Actor:   NewActorHandler(service.Catalog, log),
		Hall:    NewHallHandler(service.Catalog, log),
		Movie:   NewMovieHandler(service.Movie, log),
		Session: NewSessionHandler(service.Session, log),
		Order:   NewOrderHandler(service.Order, log),
	}
}

// ticketRejection is the error payload for a rejected reservation. The
// index tells the client which entry of their tickets array failed.
type ticketRejection struct {
	TicketIndex int    `json:"ticket_index"`
	Reason      string `json:"reason"`
	Message     string `json:"message"`
}

// handleServiceError maps service errors onto HTTP responses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var rejection *usecase.ReservationError
	if errors.As(err, &rejection) {
		utils.ResponseBadRequest(w, "Reservation rejected", ticketRejection{
			TicketIndex: rejection.TicketIndex,
			Reason:      string(rejection.Reason),
			Message:     rejection.Message,
		})
		return
	}

	if errors.Is(err, usecase.ErrEmptyOrder) {
		utils.ResponseBadRequest(w, "Order must contain at least one ticket", nil)
		return
	}

	if errors.Is(err, repository.ErrNotFound) {
		utils.ResponseNotFound(w, err.Error())
		return
	}

	log.Error("Service error", zap.String("operation", operation), zap.Error(err))
	utils.ResponseInternalError(w, "Internal server error")
}

func errInvalidFilter(param string) error {
	return fmt.Errorf("invalid %s filter, expected comma-separated numeric IDs", param)
}

// parseIDParam reads the {id} route parameter as a positive integer.
func parseIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
