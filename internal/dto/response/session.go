package response

import (
	"time"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/repository"
)

type SessionResponse struct {
	ID           int64     `json:"id"`
	ShowTime     time.Time `json:"show_time"`
	MovieID      int64     `json:"movie"`
	CinemaHallID int64     `json:"cinema_hall"`
}

type SessionListItem struct {
	ID                 int64     `json:"id"`
	ShowTime           time.Time `json:"show_time"`
	MovieTitle         string    `json:"movie_title"`
	CinemaHallName     string    `json:"cinema_hall_name"`
	CinemaHallCapacity int32     `json:"cinema_hall_capacity"`
	TicketsAvailable   int32     `json:"tickets_available"`
}

type PlaceResponse struct {
	Row  int32 `json:"row"`
	Seat int32 `json:"seat"`
}

type SessionDetailResponse struct {
	ID          int64              `json:"id"`
	ShowTime    time.Time          `json:"show_time"`
	Movie       MovieListItem      `json:"movie"`
	CinemaHall  CinemaHallResponse `json:"cinema_hall"`
	TakenPlaces []PlaceResponse    `json:"taken_places"`
}

func SessionToResponse(session *entity.MovieSession) SessionResponse {
	return SessionResponse{
		ID:           session.ID,
		ShowTime:     session.ShowTime,
		MovieID:      session.MovieID,
		CinemaHallID: session.CinemaHallID,
	}
}

func SessionToListItem(listing *repository.SessionListing) SessionListItem {
	return SessionListItem{
		ID:                 listing.ID,
		ShowTime:           listing.ShowTime,
		MovieTitle:         listing.MovieTitle,
		CinemaHallName:     listing.CinemaHallName,
		CinemaHallCapacity: listing.CinemaHallCapacity,
		TicketsAvailable:   listing.TicketsAvailable,
	}
}

func PlacesToResponse(places []entity.Place) []PlaceResponse {
	out := make([]PlaceResponse, len(places))
	for i, place := range places {
		out[i] = PlaceResponse{Row: place.Row, Seat: place.Seat}
	}
	return out
}
