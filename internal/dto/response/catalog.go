package response

import "cinema-tickets/internal/data/entity"

type GenreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ActorResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

type CinemaHallResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Rows       int32  `json:"rows"`
	SeatsInRow int32  `json:"seats_in_row"`
	Capacity   int32  `json:"capacity"`
}

// Helper converters
func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		ID:   genre.ID,
		Name: genre.Name,
	}
}

func ActorToResponse(actor *entity.Actor) ActorResponse {
	return ActorResponse{
		ID:        actor.ID,
		FirstName: actor.FirstName,
		LastName:  actor.LastName,
		FullName:  actor.FullName(),
	}
}

func CinemaHallToResponse(hall *entity.CinemaHall) CinemaHallResponse {
	return CinemaHallResponse{
		ID:         hall.ID,
		Name:       hall.Name,
		Rows:       hall.Rows,
		SeatsInRow: hall.SeatsInRow,
		Capacity:   hall.Capacity(),
	}
}
