package usecase_test

import (
	"context"
	"sync"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/repository"

	"github.com/google/uuid"
)

// memoryStore is an in-memory stand-in for the persistence layer. It
// enforces the same seat uniqueness rule the database constraint does,
// under a mutex, so concurrent order tests exercise the real race.
type memoryStore struct {
	mu       sync.Mutex
	halls    map[int64]*entity.CinemaHall
	sessions map[int64]*entity.MovieSession
	movies   map[int64]*entity.Movie
	orders   map[int64]*entity.Order
	tickets  []*entity.Ticket
	nextID   int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		halls:    make(map[int64]*entity.CinemaHall),
		sessions: make(map[int64]*entity.MovieSession),
		movies:   make(map[int64]*entity.Movie),
		orders:   make(map[int64]*entity.Order),
		nextID:   1,
	}
}

func (s *memoryStore) repo() *repository.Repository {
	return &repository.Repository{
		Hall:    &fakeHallRepo{store: s},
		Movie:   &fakeMovieRepo{store: s},
		Session: &fakeSessionRepo{store: s},
		Ticket:  &fakeTicketRepo{store: s},
		Order:   &fakeOrderRepo{store: s},
	}
}

func (s *memoryStore) addHall(hall *entity.CinemaHall) *entity.CinemaHall {
	s.mu.Lock()
	defer s.mu.Unlock()
	hall.ID = s.nextID
	s.nextID++
	s.halls[hall.ID] = hall
	return hall
}

func (s *memoryStore) addMovie(movie *entity.Movie) *entity.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	movie.ID = s.nextID
	s.nextID++
	s.movies[movie.ID] = movie
	return movie
}

func (s *memoryStore) addSession(session *entity.MovieSession) *entity.MovieSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	session.ID = s.nextID
	s.nextID++
	s.sessions[session.ID] = session
	return session
}

// addTicket seeds a sold seat without going through an order.
func (s *memoryStore) addTicket(sessionID int64, row, seat int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets = append(s.tickets, &entity.Ticket{
		ID:             s.nextID,
		Row:            row,
		Seat:           seat,
		MovieSessionID: sessionID,
	})
	s.nextID++
}

func (s *memoryStore) ticketCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickets)
}

func (s *memoryStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

type fakeHallRepo struct{ store *memoryStore }

func (f *fakeHallRepo) Create(ctx context.Context, hall *entity.CinemaHall) error {
	f.store.addHall(hall)
	return nil
}

func (f *fakeHallRepo) FindByID(ctx context.Context, id int64) (*entity.CinemaHall, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.store.halls[id], nil
}

func (f *fakeHallRepo) FindAll(ctx context.Context) ([]*entity.CinemaHall, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	out := make([]*entity.CinemaHall, 0, len(f.store.halls))
	for _, hall := range f.store.halls {
		out = append(out, hall)
	}
	return out, nil
}

func (f *fakeHallRepo) Update(ctx context.Context, hall *entity.CinemaHall) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if _, ok := f.store.halls[hall.ID]; !ok {
		return repository.ErrNotFound
	}
	f.store.halls[hall.ID] = hall
	return nil
}

func (f *fakeHallRepo) Delete(ctx context.Context, id int64) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	delete(f.store.halls, id)
	return nil
}

type fakeMovieRepo struct{ store *memoryStore }

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie, genreIDs, actorIDs []int64) error {
	f.store.addMovie(movie)
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.store.movies[id], nil
}

func (f *fakeMovieRepo) FindAll(ctx context.Context, filter repository.MovieFilter) ([]*entity.Movie, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	out := make([]*entity.Movie, 0, len(f.store.movies))
	for _, movie := range f.store.movies {
		out = append(out, movie)
	}
	return out, nil
}

func (f *fakeMovieRepo) Update(ctx context.Context, movie *entity.Movie, genreIDs, actorIDs []int64) error {
	return nil
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeMovieRepo) GenresByMovieIDs(ctx context.Context, movieIDs []int64) (map[int64][]*entity.Genre, error) {
	return map[int64][]*entity.Genre{}, nil
}

func (f *fakeMovieRepo) ActorsByMovieIDs(ctx context.Context, movieIDs []int64) (map[int64][]*entity.Actor, error) {
	return map[int64][]*entity.Actor{}, nil
}

type fakeSessionRepo struct{ store *memoryStore }

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.MovieSession) error {
	f.store.addSession(session)
	return nil
}

func (f *fakeSessionRepo) FindByID(ctx context.Context, id int64) (*entity.MovieSession, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.store.sessions[id], nil
}

func (f *fakeSessionRepo) FindAll(ctx context.Context, filter repository.SessionFilter) ([]*repository.SessionListing, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []*repository.SessionListing
	for _, session := range f.store.sessions {
		hall := f.store.halls[session.CinemaHallID]
		movie := f.store.movies[session.MovieID]
		listing := &repository.SessionListing{MovieSession: *session}
		if movie != nil {
			listing.MovieTitle = movie.Title
		}
		if hall != nil {
			listing.CinemaHallName = hall.Name
			listing.CinemaHallCapacity = hall.Capacity()
			listing.TicketsAvailable = hall.Capacity() - f.soldLocked(session.ID)
		}
		out = append(out, listing)
	}
	return out, nil
}

func (f *fakeSessionRepo) Update(ctx context.Context, session *entity.MovieSession) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if _, ok := f.store.sessions[session.ID]; !ok {
		return repository.ErrNotFound
	}
	f.store.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id int64) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	delete(f.store.sessions, id)
	return nil
}

func (f *fakeSessionRepo) AvailableCount(ctx context.Context, id int64) (int32, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	session, ok := f.store.sessions[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	hall := f.store.halls[session.CinemaHallID]
	if hall == nil {
		return 0, repository.ErrNotFound
	}
	return hall.Capacity() - f.soldLocked(id), nil
}

// soldLocked counts sold tickets; caller holds the store mutex.
func (f *fakeSessionRepo) soldLocked(sessionID int64) int32 {
	var sold int32
	for _, ticket := range f.store.tickets {
		if ticket.MovieSessionID == sessionID {
			sold++
		}
	}
	return sold
}

type fakeTicketRepo struct{ store *memoryStore }

func (f *fakeTicketRepo) TakenPlaces(ctx context.Context, sessionID int64) ([]entity.Place, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []entity.Place
	for _, ticket := range f.store.tickets {
		if ticket.MovieSessionID == sessionID {
			out = append(out, ticket.Place())
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) FindByOrderIDs(ctx context.Context, orderIDs []int64) (map[int64][]*entity.Ticket, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	wanted := make(map[int64]bool, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = true
	}
	out := make(map[int64][]*entity.Ticket)
	for _, ticket := range f.store.tickets {
		if wanted[ticket.OrderID] {
			out[ticket.OrderID] = append(out[ticket.OrderID], ticket)
		}
	}
	return out, nil
}

type fakeOrderRepo struct{ store *memoryStore }

// CreateWithTickets mirrors the transactional contract: under one lock,
// every ticket either clears the uniqueness check or the whole order is
// discarded with the failing ticket's index.
func (f *fakeOrderRepo) CreateWithTickets(ctx context.Context, order *entity.Order) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	occupied := make(map[int64]map[entity.Place]bool)
	for _, ticket := range f.store.tickets {
		if occupied[ticket.MovieSessionID] == nil {
			occupied[ticket.MovieSessionID] = make(map[entity.Place]bool)
		}
		occupied[ticket.MovieSessionID][ticket.Place()] = true
	}

	for i, ticket := range order.Tickets {
		if occupied[ticket.MovieSessionID][ticket.Place()] {
			return &repository.SeatConflictError{
				TicketIndex:    i,
				Place:          ticket.Place(),
				MovieSessionID: ticket.MovieSessionID,
			}
		}
		if occupied[ticket.MovieSessionID] == nil {
			occupied[ticket.MovieSessionID] = make(map[entity.Place]bool)
		}
		occupied[ticket.MovieSessionID][ticket.Place()] = true
	}

	order.ID = f.store.nextID
	f.store.nextID++
	f.store.orders[order.ID] = order
	for _, ticket := range order.Tickets {
		ticket.ID = f.store.nextID
		f.store.nextID++
		ticket.OrderID = order.ID
		f.store.tickets = append(f.store.tickets, ticket)
	}
	return nil
}

func (f *fakeOrderRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var mine []*entity.Order
	for _, order := range f.store.orders {
		if order.UserID == userID {
			mine = append(mine, order)
		}
	}
	// Newest first; IDs are monotonic here.
	for i := 0; i < len(mine); i++ {
		for j := i + 1; j < len(mine); j++ {
			if mine[j].ID > mine[i].ID {
				mine[i], mine[j] = mine[j], mine[i]
			}
		}
	}
	if offset >= len(mine) {
		return nil, nil
	}
	mine = mine[offset:]
	if limit < len(mine) {
		mine = mine[:limit]
	}
	return mine, nil
}

func (f *fakeOrderRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var total int64
	for _, order := range f.store.orders {
		if order.UserID == userID {
			total++
		}
	}
	return total, nil
}
