package usecase_test

import (
	"context"
	"testing"

	"cinema-tickets/internal/data/repository"
	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/dto/response"
	"cinema-tickets/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSessionService(store *memoryStore) usecase.SessionService {
	repo := store.repo()
	ledger := usecase.NewAvailabilityLedger(repo, zap.NewNop())
	return usecase.NewSessionService(repo, ledger, zap.NewNop())
}

func TestGetSessionByID_IncludesTakenPlaces(t *testing.T) {
	store := newMemoryStore()
	session, _ := seedSession(store, 5, 8)
	store.addTicket(session.ID, 2, 5)
	store.addTicket(session.ID, 3, 1)

	service := newSessionService(store)

	detail, err := service.GetSessionByID(context.Background(), session.ID)

	require.NoError(t, err)
	assert.Equal(t, session.ID, detail.ID)
	assert.Equal(t, "Solaris", detail.Movie.Title)
	assert.Equal(t, "Red", detail.CinemaHall.Name)
	assert.ElementsMatch(t, []response.PlaceResponse{
		{Row: 2, Seat: 5},
		{Row: 3, Seat: 1},
	}, detail.TakenPlaces)
}

func TestGetSessionByID_Unknown(t *testing.T) {
	store := newMemoryStore()
	service := newSessionService(store)

	_, err := service.GetSessionByID(context.Background(), 404)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetSessionByID_ReflectsCurrentHallGeometry(t *testing.T) {
	store := newMemoryStore()
	session, hall := seedSession(store, 5, 8)
	service := newSessionService(store)

	detail, err := service.GetSessionByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(5), detail.CinemaHall.Rows)
	assert.Equal(t, int32(40), detail.CinemaHall.Capacity)

	// The detail view reads the hall as it is today.
	hall.Rows = 3

	detail, err = service.GetSessionByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(3), detail.CinemaHall.Rows)
	assert.Equal(t, int32(24), detail.CinemaHall.Capacity)
}

func TestGetSessions_ListCarriesAvailability(t *testing.T) {
	store := newMemoryStore()
	session, hall := seedSession(store, 5, 8)
	store.addTicket(session.ID, 1, 1)
	store.addTicket(session.ID, 1, 2)

	service := newSessionService(store)

	items, err := service.GetSessions(context.Background(), request.SessionFilter{})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, hall.Capacity(), items[0].CinemaHallCapacity)
	assert.Equal(t, hall.Capacity()-2, items[0].TicketsAvailable)
}
