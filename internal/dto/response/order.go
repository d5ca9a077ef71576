package response

import (
	"time"

	"cinema-tickets/internal/data/entity"
)

// SessionSummary is the compact session view embedded in tickets.
type SessionSummary struct {
	ID             int64     `json:"id"`
	ShowTime       time.Time `json:"show_time"`
	MovieTitle     string    `json:"movie_title"`
	CinemaHallName string    `json:"cinema_hall_name"`
}

type TicketResponse struct {
	ID           int64          `json:"id"`
	Row          int32          `json:"row"`
	Seat         int32          `json:"seat"`
	MovieSession SessionSummary `json:"movie_session"`
}

type OrderResponse struct {
	ID        int64            `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []TicketResponse `json:"tickets"`
}

func OrderToResponse(order *entity.Order, sessions map[int64]SessionSummary) OrderResponse {
	tickets := make([]TicketResponse, len(order.Tickets))
	for i, ticket := range order.Tickets {
		tickets[i] = TicketResponse{
			ID:           ticket.ID,
			Row:          ticket.Row,
			Seat:         ticket.Seat,
			MovieSession: sessions[ticket.MovieSessionID],
		}
	}

	return OrderResponse{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Tickets:   tickets,
	}
}
