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

type MovieService interface {
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieDetailResponse, error)
	GetMovies(ctx context.Context, filter request.MovieFilter) ([]response.MovieListItem, error)
	GetMovieByID(ctx context.Context, id int64) (*response.MovieDetailResponse, error)
	UpdateMovie(ctx context.Context, id int64, req *request.MovieRequest) (*response.MovieDetailResponse, error)
	DeleteMovie(ctx context.Context, id int64) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieDetailResponse, error) {
	// Referenced genres and actors must exist before linking
	for _, genreID := range req.GenreIDs {
		genre, err := s.repo.Genre.FindByID(ctx, genreID)
		if err != nil {
			return nil, fmt.Errorf("check genre %d: %w", genreID, err)
		}
		if genre == nil {
			return nil, fmt.Errorf("genre %d: %w", genreID, repository.ErrNotFound)
		}
	}
	for _, actorID := range req.ActorIDs {
		actor, err := s.repo.Actor.FindByID(ctx, actorID)
		if err != nil {
			return nil, fmt.Errorf("check actor %d: %w", actorID, err)
		}
		if actor == nil {
			return nil, fmt.Errorf("actor %d: %w", actorID, repository.ErrNotFound)
		}
	}

	movie := &entity.Movie{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
	}

	if err := s.repo.Movie.Create(ctx, movie, req.GenreIDs, req.ActorIDs); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	return s.GetMovieByID(ctx, movie.ID)
}

func (s *movieService) GetMovies(ctx context.Context, filter request.MovieFilter) ([]response.MovieListItem, error) {
	movies, err := s.repo.Movie.FindAll(ctx, repository.MovieFilter{
		Title:    filter.Title,
		GenreIDs: filter.GenreIDs,
		ActorIDs: filter.ActorIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}

	movieIDs := make([]int64, len(movies))
	for i, movie := range movies {
		movieIDs[i] = movie.ID
	}

	genres, err := s.repo.Movie.GenresByMovieIDs(ctx, movieIDs)
	if err != nil {
		return nil, fmt.Errorf("load movie genres: %w", err)
	}
	actors, err := s.repo.Movie.ActorsByMovieIDs(ctx, movieIDs)
	if err != nil {
		return nil, fmt.Errorf("load movie actors: %w", err)
	}

	out := make([]response.MovieListItem, len(movies))
	for i, movie := range movies {
		movie.Genres = genres[movie.ID]
		movie.Actors = actors[movie.ID]
		out[i] = response.MovieToListItem(movie)
	}

	return out, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id int64) (*response.MovieDetailResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %d: %w", id, repository.ErrNotFound)
	}

	resp := response.MovieToDetailResponse(movie)
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, id int64, req *request.MovieRequest) (*response.MovieDetailResponse, error) {
	movie := &entity.Movie{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
	}

	if err := s.repo.Movie.Update(ctx, movie, req.GenreIDs, req.ActorIDs); err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	}

	return s.GetMovieByID(ctx, id)
}

func (s *movieService) DeleteMovie(ctx context.Context, id int64) error {
	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}
