package entity

// Movie is a catalog entry. Genres and Actors are loaded through the
// join tables when a caller needs them; the zero value means "not
// loaded", not "none".
type Movie struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Duration    int32  `db:"duration"` // minutes

	Genres []*Genre
	Actors []*Actor
}
