package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedSession(store *memoryStore, rows, seatsInRow int32) (*entity.MovieSession, *entity.CinemaHall) {
	hall := store.addHall(&entity.CinemaHall{Name: "Red", Rows: rows, SeatsInRow: seatsInRow})
	movie := store.addMovie(&entity.Movie{Title: "Solaris", Duration: 167})
	session := store.addSession(&entity.MovieSession{
		ShowTime:     time.Date(2026, 9, 12, 19, 30, 0, 0, time.UTC),
		MovieID:      movie.ID,
		CinemaHallID: hall.ID,
	})
	return session, hall
}

func TestValidate_RowOutOfRange(t *testing.T) {
	store := newMemoryStore()
	session, hall := seedSession(store, 5, 8)

	ledger := usecase.NewAvailabilityLedger(store.repo(), zap.NewNop())
	validator := usecase.NewReservationValidator(ledger)

	for _, row := range []int32{0, -1, 6, 100} {
		err := validator.Validate(context.Background(), row, 1, session, hall)

		var rejection *usecase.ReservationError
		require.ErrorAs(t, err, &rejection, "row %d should be rejected", row)
		assert.Equal(t, usecase.ReasonOutOfRange, rejection.Reason)
	}
}

func TestValidate_SeatOutOfRange(t *testing.T) {
	store := newMemoryStore()
	session, hall := seedSession(store, 5, 8)

	ledger := usecase.NewAvailabilityLedger(store.repo(), zap.NewNop())
	validator := usecase.NewReservationValidator(ledger)

	for _, seat := range []int32{0, -3, 9, 42} {
		err := validator.Validate(context.Background(), 1, seat, session, hall)

		var rejection *usecase.ReservationError
		require.ErrorAs(t, err, &rejection, "seat %d should be rejected", seat)
		assert.Equal(t, usecase.ReasonOutOfRange, rejection.Reason)
		assert.Contains(t, rejection.Message, "out of range")
	}
}

func TestValidate_SeatTaken(t *testing.T) {
	store := newMemoryStore()
	session, hall := seedSession(store, 5, 8)
	store.addTicket(session.ID, 3, 4)

	ledger := usecase.NewAvailabilityLedger(store.repo(), zap.NewNop())
	validator := usecase.NewReservationValidator(ledger)

	err := validator.Validate(context.Background(), 3, 4, session, hall)

	var rejection *usecase.ReservationError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, usecase.ReasonSeatTaken, rejection.Reason)

	// Neighbouring seats stay bookable.
	assert.NoError(t, validator.Validate(context.Background(), 3, 5, session, hall))
	assert.NoError(t, validator.Validate(context.Background(), 2, 4, session, hall))
}

func TestValidate_CornerSeatsAccepted(t *testing.T) {
	store := newMemoryStore()
	session, hall := seedSession(store, 5, 8)

	ledger := usecase.NewAvailabilityLedger(store.repo(), zap.NewNop())
	validator := usecase.NewReservationValidator(ledger)

	for _, place := range []entity.Place{
		{Row: 1, Seat: 1},
		{Row: 1, Seat: 8},
		{Row: 5, Seat: 1},
		{Row: 5, Seat: 8},
	} {
		assert.NoError(t, validator.Validate(context.Background(), place.Row, place.Seat, session, hall))
	}
}

func TestValidate_AgreesWithHallGeometry(t *testing.T) {
	store := newMemoryStore()
	session, hall := seedSession(store, 5, 8)

	ledger := usecase.NewAvailabilityLedger(store.repo(), zap.NewNop())
	validator := usecase.NewReservationValidator(ledger)

	// With no tickets sold, the validator's verdict is exactly the
	// hall geometry's.
	for row := int32(0); row <= 6; row++ {
		for seat := int32(0); seat <= 9; seat++ {
			err := validator.Validate(context.Background(), row, seat, session, hall)
			if hall.IsValidSeat(row, seat) {
				assert.NoError(t, err, "row=%d seat=%d", row, seat)
			} else {
				var rejection *usecase.ReservationError
				require.ErrorAs(t, err, &rejection, "row=%d seat=%d", row, seat)
				assert.Equal(t, usecase.ReasonOutOfRange, rejection.Reason)
			}
		}
	}
}

func TestValidate_HallResizeChangesSeatUniverse(t *testing.T) {
	store := newMemoryStore()
	session, hall := seedSession(store, 5, 8)

	ledger := usecase.NewAvailabilityLedger(store.repo(), zap.NewNop())
	validator := usecase.NewReservationValidator(ledger)

	require.NoError(t, validator.Validate(context.Background(), 5, 8, session, hall))

	// Shrink the hall; the same seat is now outside the geometry.
	hall.Rows = 4
	err := validator.Validate(context.Background(), 5, 8, session, hall)

	var rejection *usecase.ReservationError
	require.True(t, errors.As(err, &rejection))
	assert.Equal(t, usecase.ReasonOutOfRange, rejection.Reason)
}
