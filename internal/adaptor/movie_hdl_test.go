package adaptor_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinema-tickets/internal/adaptor"
	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubMovieService struct {
	gotFilter request.MovieFilter
	called    bool
}

func (s *stubMovieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieDetailResponse, error) {
	return nil, nil
}

func (s *stubMovieService) GetMovies(ctx context.Context, filter request.MovieFilter) ([]response.MovieListItem, error) {
	s.called = true
	s.gotFilter = filter
	return nil, nil
}

func (s *stubMovieService) GetMovieByID(ctx context.Context, id int64) (*response.MovieDetailResponse, error) {
	return nil, nil
}

func (s *stubMovieService) UpdateMovie(ctx context.Context, id int64, req *request.MovieRequest) (*response.MovieDetailResponse, error) {
	return nil, nil
}

func (s *stubMovieService) DeleteMovie(ctx context.Context, id int64) error {
	return nil
}

func TestGetMovies_ParsesFilters(t *testing.T) {
	stub := &stubMovieService{}
	h := adaptor.NewMovieHandler(stub, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/movies?title=alien&genres=1,4&actors=2", nil)
	rec := httptest.NewRecorder()
	h.GetMovies(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, stub.called)
	assert.Equal(t, "alien", stub.gotFilter.Title)
	assert.Equal(t, []int64{1, 4}, stub.gotFilter.GenreIDs)
	assert.Equal(t, []int64{2}, stub.gotFilter.ActorIDs)
}

func TestGetMovies_BadGenreListRejected(t *testing.T) {
	stub := &stubMovieService{}
	h := adaptor.NewMovieHandler(stub, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/movies?genres=horror", nil)
	rec := httptest.NewRecorder()
	h.GetMovies(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, stub.called)
}
