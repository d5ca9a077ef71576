package entity

import "time"

// MovieSession is one scheduled screening of a movie in a hall. The
// session's seat universe is whatever its hall's geometry says at read
// time; geometry is not snapshotted at session creation.
type MovieSession struct {
	ID           int64     `db:"id"`
	ShowTime     time.Time `db:"show_time"`
	MovieID      int64     `db:"movie_id"`
	CinemaHallID int64     `db:"cinema_hall_id"`
}
