package entity

// Ticket claims one seat in one session. Tickets are created only inside
// an order transaction and never updated; deleting the owning order
// cascades to its tickets.
type Ticket struct {
	ID             int64 `db:"id"`
	Row            int32 `db:"seat_row"`
	Seat           int32 `db:"seat_number"`
	MovieSessionID int64 `db:"movie_session_id"`
	OrderID        int64 `db:"order_id"`
}

func (t *Ticket) Place() Place {
	return Place{Row: t.Row, Seat: t.Seat}
}
