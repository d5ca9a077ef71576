package entity

// Place identifies a single seat as a (row, seat-in-row) coordinate
// within a hall's grid. Both values are 1-indexed.
type Place struct {
	Row  int32 `db:"seat_row" json:"row"`
	Seat int32 `db:"seat_number" json:"seat"`
}
