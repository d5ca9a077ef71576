package usecase

import (
	"context"
	"fmt"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/repository"
	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/dto/response"

	"go.uber.org/zap"
)

type SessionService interface {
	CreateSession(ctx context.Context, req *request.SessionRequest) (*response.SessionResponse, error)
	GetSessions(ctx context.Context, filter request.SessionFilter) ([]response.SessionListItem, error)
	GetSessionByID(ctx context.Context, id int64) (*response.SessionDetailResponse, error)
	UpdateSession(ctx context.Context, id int64, req *request.SessionRequest) (*response.SessionResponse, error)
	DeleteSession(ctx context.Context, id int64) error
}

type sessionService struct {
	repo   *repository.Repository
	ledger *AvailabilityLedger
	log    *zap.Logger
}

func NewSessionService(repo *repository.Repository, ledger *AvailabilityLedger, log *zap.Logger) SessionService {
	return &sessionService{
		repo:   repo,
		ledger: ledger,
		log:    log.With(zap.String("service", "session")),
	}
}

func (s *sessionService) CreateSession(ctx context.Context, req *request.SessionRequest) (*response.SessionResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("check movie %d: %w", req.MovieID, err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %d: %w", req.MovieID, repository.ErrNotFound)
	}

	hall, err := s.repo.Hall.FindByID(ctx, req.CinemaHallID)
	if err != nil {
		return nil, fmt.Errorf("check cinema hall %d: %w", req.CinemaHallID, err)
	}
	if hall == nil {
		return nil, fmt.Errorf("cinema hall %d: %w", req.CinemaHallID, repository.ErrNotFound)
	}

	session := &entity.MovieSession{
		ShowTime:     req.ShowTime,
		MovieID:      req.MovieID,
		CinemaHallID: req.CinemaHallID,
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create movie session: %w", err)
	}

	s.log.Info("Movie session created",
		zap.Int64("session_id", session.ID),
		zap.Int64("movie_id", session.MovieID),
		zap.Int64("hall_id", session.CinemaHallID),
		zap.Time("show_time", session.ShowTime),
	)

	resp := response.SessionToResponse(session)
	return &resp, nil
}

func (s *sessionService) GetSessions(ctx context.Context, filter request.SessionFilter) ([]response.SessionListItem, error) {
	listings, err := s.repo.Session.FindAll(ctx, repository.SessionFilter{
		Date:     filter.Date,
		MovieIDs: filter.MovieIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("get movie sessions: %w", err)
	}

	out := make([]response.SessionListItem, len(listings))
	for i, listing := range listings {
		out[i] = response.SessionToListItem(listing)
	}

	return out, nil
}

func (s *sessionService) GetSessionByID(ctx context.Context, id int64) (*response.SessionDetailResponse, error) {
	session, err := s.repo.Session.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie session: %w", err)
	}
	if session == nil {
		return nil, fmt.Errorf("movie session %d: %w", id, repository.ErrNotFound)
	}

	movie, err := s.repo.Movie.FindByID(ctx, session.MovieID)
	if err != nil {
		return nil, fmt.Errorf("load session movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %d: %w", session.MovieID, repository.ErrNotFound)
	}

	// Current hall geometry, not a snapshot from session creation time
	hall, err := s.repo.Hall.FindByID(ctx, session.CinemaHallID)
	if err != nil {
		return nil, fmt.Errorf("load session hall: %w", err)
	}
	if hall == nil {
		return nil, fmt.Errorf("cinema hall %d: %w", session.CinemaHallID, repository.ErrNotFound)
	}

	taken, err := s.ledger.TakenPlaces(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("load taken places: %w", err)
	}

	return &response.SessionDetailResponse{
		ID:          session.ID,
		ShowTime:    session.ShowTime,
		Movie:       response.MovieToListItem(movie),
		CinemaHall:  response.CinemaHallToResponse(hall),
		TakenPlaces: response.PlacesToResponse(taken),
	}, nil
}

func (s *sessionService) UpdateSession(ctx context.Context, id int64, req *request.SessionRequest) (*response.SessionResponse, error) {
	session := &entity.MovieSession{
		ID:           id,
		ShowTime:     req.ShowTime,
		MovieID:      req.MovieID,
		CinemaHallID: req.CinemaHallID,
	}

	if err := s.repo.Session.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update movie session: %w", err)
	}

	resp := response.SessionToResponse(session)
	return &resp, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, id int64) error {
	if err := s.repo.Session.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete movie session: %w", err)
	}

	s.log.Info("Movie session deleted", zap.Int64("session_id", id))
	return nil
}
