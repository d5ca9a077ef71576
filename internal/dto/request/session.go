package request

import "time"

type SessionRequest struct {
	ShowTime     time.Time `json:"show_time" validate:"required"`
	MovieID      int64     `json:"movie" validate:"required,min=1"`
	CinemaHallID int64     `json:"cinema_hall" validate:"required,min=1"`
}

// SessionFilter is the parsed form of the session listing query
// parameters: an optional calendar date and an optional set of movie
// ids.
type SessionFilter struct {
	Date     *time.Time
	MovieIDs []int64
}
