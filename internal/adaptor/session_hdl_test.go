package adaptor_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinema-tickets/internal/adaptor"
	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSessionService struct {
	gotFilter request.SessionFilter
	listed    []response.SessionListItem
	called    bool
}

func (s *stubSessionService) CreateSession(ctx context.Context, req *request.SessionRequest) (*response.SessionResponse, error) {
	return nil, nil
}

func (s *stubSessionService) GetSessions(ctx context.Context, filter request.SessionFilter) ([]response.SessionListItem, error) {
	s.called = true
	s.gotFilter = filter
	return s.listed, nil
}

func (s *stubSessionService) GetSessionByID(ctx context.Context, id int64) (*response.SessionDetailResponse, error) {
	return nil, nil
}

func (s *stubSessionService) UpdateSession(ctx context.Context, id int64, req *request.SessionRequest) (*response.SessionResponse, error) {
	return nil, nil
}

func (s *stubSessionService) DeleteSession(ctx context.Context, id int64) error {
	return nil
}

func TestGetSessions_ParsesDateAndMovieFilters(t *testing.T) {
	stub := &stubSessionService{}
	h := adaptor.NewSessionHandler(stub, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/movie_sessions?date=2026-09-12&movie=3,7", nil)
	rec := httptest.NewRecorder()
	h.GetSessions(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, stub.called)
	require.NotNil(t, stub.gotFilter.Date)
	assert.Equal(t, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), *stub.gotFilter.Date)
	assert.Equal(t, []int64{3, 7}, stub.gotFilter.MovieIDs)
}

func TestGetSessions_MovieFilterAlone(t *testing.T) {
	stub := &stubSessionService{}
	h := adaptor.NewSessionHandler(stub, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/movie_sessions?movie=3,7", nil)
	rec := httptest.NewRecorder()
	h.GetSessions(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, stub.called)
	assert.Equal(t, []int64{3, 7}, stub.gotFilter.MovieIDs)
	assert.Nil(t, stub.gotFilter.Date)
}

func TestGetSessions_NoFilters(t *testing.T) {
	stub := &stubSessionService{}
	h := adaptor.NewSessionHandler(stub, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/movie_sessions", nil)
	rec := httptest.NewRecorder()
	h.GetSessions(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, stub.called)
	assert.Nil(t, stub.gotFilter.Date)
	assert.Nil(t, stub.gotFilter.MovieIDs)
}

func TestGetSessions_BadDateRejected(t *testing.T) {
	stub := &stubSessionService{}
	h := adaptor.NewSessionHandler(stub, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/movie_sessions?date=12-09-2026", nil)
	rec := httptest.NewRecorder()
	h.GetSessions(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, stub.called)
}

func TestGetSessions_BadMovieListRejected(t *testing.T) {
	stub := &stubSessionService{}
	h := adaptor.NewSessionHandler(stub, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/movie_sessions?movie=3,abc", nil)
	rec := httptest.NewRecorder()
	h.GetSessions(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, stub.called)
}
