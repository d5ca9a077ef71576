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

// CatalogService covers the plain CRUD resources: genres, actors and
// cinema halls.
type CatalogService interface {
	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	GetGenres(ctx context.Context) ([]response.GenreResponse, error)
	GetGenreByID(ctx context.Context, id int64) (*response.GenreResponse, error)
	UpdateGenre(ctx context.Context, id int64, req *request.GenreRequest) (*response.GenreResponse, error)
	DeleteGenre(ctx context.Context, id int64) error

	CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error)
	GetActors(ctx context.Context) ([]response.ActorResponse, error)
	GetActorByID(ctx context.Context, id int64) (*response.ActorResponse, error)
	UpdateActor(ctx context.Context, id int64, req *request.ActorRequest) (*response.ActorResponse, error)
	DeleteActor(ctx context.Context, id int64) error

	CreateHall(ctx context.Context, req *request.CinemaHallRequest) (*response.CinemaHallResponse, error)
	GetHalls(ctx context.Context) ([]response.CinemaHallResponse, error)
	GetHallByID(ctx context.Context, id int64) (*response.CinemaHallResponse, error)
	UpdateHall(ctx context.Context, id int64, req *request.CinemaHallRequest) (*response.CinemaHallResponse, error)
	DeleteHall(ctx context.Context, id int64) error
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

// ==================== GENRES ====================

func (s *catalogService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	genre := &entity.Genre{Name: req.Name}

	if err := s.repo.Genre.Create(ctx, genre); err != nil {
		return nil, fmt.Errorf("create genre: %w", err)
	}

	s.log.Info("Genre created", zap.Int64("genre_id", genre.ID), zap.String("name", genre.Name))

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *catalogService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}

	out := make([]response.GenreResponse, len(genres))
	for i, genre := range genres {
		out[i] = response.GenreToResponse(genre)
	}
	return out, nil
}

func (s *catalogService) GetGenreByID(ctx context.Context, id int64) (*response.GenreResponse, error) {
	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get genre: %w", err)
	}
	if genre == nil {
		return nil, fmt.Errorf("genre %d: %w", id, repository.ErrNotFound)
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *catalogService) UpdateGenre(ctx context.Context, id int64, req *request.GenreRequest) (*response.GenreResponse, error) {
	genre := &entity.Genre{ID: id, Name: req.Name}

	if err := s.repo.Genre.Update(ctx, genre); err != nil {
		return nil, fmt.Errorf("update genre: %w", err)
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *catalogService) DeleteGenre(ctx context.Context, id int64) error {
	if err := s.repo.Genre.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}

	s.log.Info("Genre deleted", zap.Int64("genre_id", id))
	return nil
}

// ==================== ACTORS ====================

func (s *catalogService) CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error) {
	actor := &entity.Actor{FirstName: req.FirstName, LastName: req.LastName}

	if err := s.repo.Actor.Create(ctx, actor); err != nil {
		return nil, fmt.Errorf("create actor: %w", err)
	}

	s.log.Info("Actor created", zap.Int64("actor_id", actor.ID), zap.String("name", actor.FullName()))

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *catalogService) GetActors(ctx context.Context) ([]response.ActorResponse, error) {
	actors, err := s.repo.Actor.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get actors: %w", err)
	}

	out := make([]response.ActorResponse, len(actors))
	for i, actor := range actors {
		out[i] = response.ActorToResponse(actor)
	}
	return out, nil
}

func (s *catalogService) GetActorByID(ctx context.Context, id int64) (*response.ActorResponse, error) {
	actor, err := s.repo.Actor.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get actor: %w", err)
	}
	if actor == nil {
		return nil, fmt.Errorf("actor %d: %w", id, repository.ErrNotFound)
	}

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *catalogService) UpdateActor(ctx context.Context, id int64, req *request.ActorRequest) (*response.ActorResponse, error) {
	actor := &entity.Actor{ID: id, FirstName: req.FirstName, LastName: req.LastName}

	if err := s.repo.Actor.Update(ctx, actor); err != nil {
		return nil, fmt.Errorf("update actor: %w", err)
	}

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *catalogService) DeleteActor(ctx context.Context, id int64) error {
	if err := s.repo.Actor.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete actor: %w", err)
	}

	s.log.Info("Actor deleted", zap.Int64("actor_id", id))
	return nil
}

// ==================== CINEMA HALLS ====================

func (s *catalogService) CreateHall(ctx context.Context, req *request.CinemaHallRequest) (*response.CinemaHallResponse, error) {
	hall := &entity.CinemaHall{
		Name:       req.Name,
		Rows:       req.Rows,
		SeatsInRow: req.SeatsInRow,
	}

	if err := s.repo.Hall.Create(ctx, hall); err != nil {
		return nil, fmt.Errorf("create cinema hall: %w", err)
	}

	s.log.Info("Cinema hall created",
		zap.Int64("hall_id", hall.ID),
		zap.String("name", hall.Name),
		zap.Int32("capacity", hall.Capacity()),
	)

	resp := response.CinemaHallToResponse(hall)
	return &resp, nil
}

func (s *catalogService) GetHalls(ctx context.Context) ([]response.CinemaHallResponse, error) {
	halls, err := s.repo.Hall.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get cinema halls: %w", err)
	}

	out := make([]response.CinemaHallResponse, len(halls))
	for i, hall := range halls {
		out[i] = response.CinemaHallToResponse(hall)
	}
	return out, nil
}

func (s *catalogService) GetHallByID(ctx context.Context, id int64) (*response.CinemaHallResponse, error) {
	hall, err := s.repo.Hall.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get cinema hall: %w", err)
	}
	if hall == nil {
		return nil, fmt.Errorf("cinema hall %d: %w", id, repository.ErrNotFound)
	}

	resp := response.CinemaHallToResponse(hall)
	return &resp, nil
}

func (s *catalogService) UpdateHall(ctx context.Context, id int64, req *request.CinemaHallRequest) (*response.CinemaHallResponse, error) {
	hall := &entity.CinemaHall{
		ID:         id,
		Name:       req.Name,
		Rows:       req.Rows,
		SeatsInRow: req.SeatsInRow,
	}

	// Shrinking a hall below already-sold seats is not blocked here;
	// sessions always read the current geometry (see ReservationValidator).
	if err := s.repo.Hall.Update(ctx, hall); err != nil {
		return nil, fmt.Errorf("update cinema hall: %w", err)
	}

	resp := response.CinemaHallToResponse(hall)
	return &resp, nil
}

func (s *catalogService) DeleteHall(ctx context.Context, id int64) error {
	if err := s.repo.Hall.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete cinema hall: %w", err)
	}

	s.log.Info("Cinema hall deleted", zap.Int64("hall_id", id))
	return nil
}
