package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/repository"
	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	// CreateOrder creates an order with all its tickets as one
	// indivisible unit: either every ticket commits or none does.
	CreateOrder(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetUserOrders(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
}

type orderService struct {
	repo      *repository.Repository
	validator *ReservationValidator
	log       *zap.Logger
}

func NewOrderService(repo *repository.Repository, validator *ReservationValidator, log *zap.Logger) OrderService {
	return &orderService{
		repo:      repo,
		validator: validator,
		log:       log.With(zap.String("service", "order")),
	}
}

func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if len(req.Tickets) == 0 {
		return nil, ErrEmptyOrder
	}

	sessions := make(map[int64]*entity.MovieSession)
	halls := make(map[int64]*entity.CinemaHall)
	tickets := make([]*entity.Ticket, len(req.Tickets))

	for i, tr := range req.Tickets {
		session, ok := sessions[tr.MovieSession]
		if !ok {
			var err error
			session, err = s.repo.Session.FindByID(ctx, tr.MovieSession)
			if err != nil {
				return nil, fmt.Errorf("load session %d: %w", tr.MovieSession, err)
			}
			if session == nil {
				return nil, &ReservationError{
					TicketIndex: i,
					Reason:      ReasonSessionNotFound,
					Message:     fmt.Sprintf("movie session %d not found", tr.MovieSession),
				}
			}
			sessions[tr.MovieSession] = session
		}

		hall, ok := halls[session.CinemaHallID]
		if !ok {
			var err error
			hall, err = s.repo.Hall.FindByID(ctx, session.CinemaHallID)
			if err != nil {
				return nil, fmt.Errorf("load hall %d: %w", session.CinemaHallID, err)
			}
			if hall == nil {
				return nil, fmt.Errorf("cinema hall %d: %w", session.CinemaHallID, repository.ErrNotFound)
			}
			halls[session.CinemaHallID] = hall
		}

		// Advisory pre-check; the uq_ticket_place constraint decides
		// the race when two orders validate the same seat together.
		if err := s.validator.Validate(ctx, tr.Row, tr.Seat, session, hall); err != nil {
			var rejection *ReservationError
			if errors.As(err, &rejection) {
				rejection.TicketIndex = i
				s.log.Warn("Order rejected by validator",
					zap.String("user_id", userID.String()),
					zap.Int("ticket_index", i),
					zap.String("reason", string(rejection.Reason)),
				)
				return nil, rejection
			}
			return nil, err
		}

		tickets[i] = &entity.Ticket{
			Row:            tr.Row,
			Seat:           tr.Seat,
			MovieSessionID: tr.MovieSession,
		}
	}

	order := &entity.Order{
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
		Tickets:   tickets,
	}

	if err := s.repo.Order.CreateWithTickets(ctx, order); err != nil {
		var conflict *repository.SeatConflictError
		if errors.As(err, &conflict) {
			// Lost the race after passing the pre-check: same outcome
			// as a pre-check rejection, nothing was persisted.
			s.log.Warn("Order lost seat race",
				zap.String("user_id", userID.String()),
				zap.Int("ticket_index", conflict.TicketIndex),
				zap.Int64("session_id", conflict.MovieSessionID),
			)
			return nil, &ReservationError{
				TicketIndex: conflict.TicketIndex,
				Reason:      ReasonSeatTaken,
				Message:     conflict.Error(),
			}
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.String("user_id", userID.String()),
		zap.Int("ticket_count", len(order.Tickets)),
	)

	summaries, err := s.sessionSummaries(ctx, order.Tickets)
	if err != nil {
		return nil, err
	}

	resp := response.OrderToResponse(order, summaries)
	return &resp, nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	orders, err := s.repo.Order.FindByUserID(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("get user orders: %w", err)
	}

	total, err := s.repo.Order.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count user orders: %w", err)
	}

	orderIDs := make([]int64, len(orders))
	for i, order := range orders {
		orderIDs[i] = order.ID
	}

	ticketsByOrder, err := s.repo.Ticket.FindByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("load order tickets: %w", err)
	}

	var allTickets []*entity.Ticket
	for _, order := range orders {
		order.Tickets = ticketsByOrder[order.ID]
		allTickets = append(allTickets, order.Tickets...)
	}

	summaries, err := s.sessionSummaries(ctx, allTickets)
	if err != nil {
		return nil, err
	}

	out := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		out[i] = response.OrderToResponse(order, summaries)
	}

	return response.NewPaginatedResponse(out, page.Page, page.Limit(), total), nil
}

// sessionSummaries resolves each distinct session referenced by the
// tickets into its compact response form.
func (s *orderService) sessionSummaries(ctx context.Context, tickets []*entity.Ticket) (map[int64]response.SessionSummary, error) {
	summaries := make(map[int64]response.SessionSummary)
	movieTitles := make(map[int64]string)
	hallNames := make(map[int64]string)

	for _, ticket := range tickets {
		if _, ok := summaries[ticket.MovieSessionID]; ok {
			continue
		}

		session, err := s.repo.Session.FindByID(ctx, ticket.MovieSessionID)
		if err != nil {
			return nil, fmt.Errorf("load session %d: %w", ticket.MovieSessionID, err)
		}
		if session == nil {
			return nil, fmt.Errorf("movie session %d: %w", ticket.MovieSessionID, repository.ErrNotFound)
		}

		title, ok := movieTitles[session.MovieID]
		if !ok {
			movie, err := s.repo.Movie.FindByID(ctx, session.MovieID)
			if err != nil {
				return nil, fmt.Errorf("load movie %d: %w", session.MovieID, err)
			}
			if movie != nil {
				title = movie.Title
			}
			movieTitles[session.MovieID] = title
		}

		hallName, ok := hallNames[session.CinemaHallID]
		if !ok {
			hall, err := s.repo.Hall.FindByID(ctx, session.CinemaHallID)
			if err != nil {
				return nil, fmt.Errorf("load hall %d: %w", session.CinemaHallID, err)
			}
			if hall != nil {
				hallName = hall.Name
			}
			hallNames[session.CinemaHallID] = hallName
		}

		summaries[session.ID] = response.SessionSummary{
			ID:             session.ID,
			ShowTime:       session.ShowTime,
			MovieTitle:     title,
			CinemaHallName: hallName,
		}
	}

	return summaries, nil
}
