package request

type GenreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type ActorRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=255"`
	LastName  string `json:"last_name" validate:"required,min=1,max=255"`
}

// CinemaHallRequest rejects degenerate grids up front; a persisted hall
// always has at least one row and one seat per row.
type CinemaHallRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=255"`
	Rows       int32  `json:"rows" validate:"required,min=1"`
	SeatsInRow int32  `json:"seats_in_row" validate:"required,min=1"`
}
