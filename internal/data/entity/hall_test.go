package entity_test

import (
	"testing"

	"cinema-tickets/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestCinemaHallCapacity(t *testing.T) {
	hall := entity.CinemaHall{Rows: 5, SeatsInRow: 8}
	assert.Equal(t, int32(40), hall.Capacity())
}

func TestCinemaHallIsValidSeat(t *testing.T) {
	hall := entity.CinemaHall{Rows: 5, SeatsInRow: 8}

	// Every seat inside the grid is valid, nothing outside it is.
	for row := int32(-1); row <= 7; row++ {
		for seat := int32(-1); seat <= 10; seat++ {
			inside := row >= 1 && row <= 5 && seat >= 1 && seat <= 8
			assert.Equal(t, inside, hall.IsValidSeat(row, seat),
				"row=%d seat=%d", row, seat)
		}
	}
}

func TestTicketPlace(t *testing.T) {
	ticket := entity.Ticket{Row: 3, Seat: 4, MovieSessionID: 7}
	assert.Equal(t, entity.Place{Row: 3, Seat: 4}, ticket.Place())
}
