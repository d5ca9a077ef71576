package request

type TicketRequest struct {
	Row          int32 `json:"row" validate:"required,min=1"`
	Seat         int32 `json:"seat" validate:"required,min=1"`
	MovieSession int64 `json:"movie_session" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"required,min=1,dive"`
}
