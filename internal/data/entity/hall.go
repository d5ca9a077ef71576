package entity

// CinemaHall describes a hall's seat grid: Rows rows with SeatsInRow
// seats each. Dimensions are validated at creation time, so a persisted
// hall always has Rows >= 1 and SeatsInRow >= 1.
type CinemaHall struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	Rows       int32  `db:"seat_rows"`
	SeatsInRow int32  `db:"seats_in_row"`
}

// Capacity is the total number of seats in the hall.
func (h *CinemaHall) Capacity() int32 {
	return h.Rows * h.SeatsInRow
}

// IsValidSeat reports whether (row, seat) falls inside the hall's grid.
func (h *CinemaHall) IsValidSeat(row, seat int32) bool {
	return row >= 1 && row <= h.Rows && seat >= 1 && seat <= h.SeatsInRow
}
