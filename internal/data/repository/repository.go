package repository

import (
	"cinema-tickets/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Genre   GenreRepository
	Actor   ActorRepository
	Hall    HallRepository
	Movie   MovieRepository
	Session SessionRepository
	Ticket  TicketRepository
	Order   OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Genre:   NewGenreRepository(db, log),
		Actor:   NewActorRepository(db, log),
		Hall:    NewHallRepository(db, log),
		Movie:   NewMovieRepository(db, log),
		Session: NewSessionRepository(db, log),
		Ticket:  NewTicketRepository(db, log),
		Order:   NewOrderRepository(db, log),
	}
}
