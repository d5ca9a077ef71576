package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SessionFilter narrows the session listing. Zero values mean "no filter".
type SessionFilter struct {
	Date     *time.Time // matches the calendar date of show_time
	MovieIDs []int64    // any-of
}

// SessionListing is a session row annotated for the list view. The
// availability count is computed by the same query that reads the hall
// dimensions, so capacity and ticket count cannot come from different
// points in time.
type SessionListing struct {
	entity.MovieSession
	MovieTitle         string
	CinemaHallName     string
	CinemaHallCapacity int32
	TicketsAvailable   int32
}

type SessionRepository interface {
	Create(ctx context.Context, session *entity.MovieSession) error
	FindByID(ctx context.Context, id int64) (*entity.MovieSession, error)
	FindAll(ctx context.Context, filter SessionFilter) ([]*SessionListing, error)
	Update(ctx context.Context, session *entity.MovieSession) error
	Delete(ctx context.Context, id int64) error

	// AvailableCount is capacity minus sold tickets as a single
	// consistent read. Returns ErrNotFound for an unknown session.
	AvailableCount(ctx context.Context, id int64) (int32, error)
}

type sessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSessionRepository(db database.PgxIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.MovieSession) error {
	query := `
		INSERT INTO movie_sessions (show_time, movie_id, cinema_hall_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, session.ShowTime, session.MovieID, session.CinemaHallID).Scan(&session.ID)
	if err != nil {
		r.log.Error("Failed to create movie session",
			zap.Error(err),
			zap.Int64("movie_id", session.MovieID),
			zap.Int64("hall_id", session.CinemaHallID),
		)
		return fmt.Errorf("create movie session for movie %d: %w", session.MovieID, err)
	}

	return nil
}

func (r *sessionRepository) FindByID(ctx context.Context, id int64) (*entity.MovieSession, error) {
	query := `SELECT id, show_time, movie_id, cinema_hall_id FROM movie_sessions WHERE id = $1`

	var session entity.MovieSession
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.ShowTime,
		&session.MovieID,
		&session.CinemaHallID,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie session by ID",
			zap.Error(err),
			zap.Int64("session_id", id),
		)
		return nil, fmt.Errorf("find movie session by ID %d: %w", id, err)
	}

	return &session, nil
}

func (r *sessionRepository) FindAll(ctx context.Context, filter SessionFilter) ([]*SessionListing, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT ms.id, ms.show_time, ms.movie_id, ms.cinema_hall_id,
		       m.title,
		       h.name,
		       h.seat_rows * h.seats_in_row AS capacity,
		       h.seat_rows * h.seats_in_row - COUNT(t.id) AS tickets_available
		FROM movie_sessions ms
		JOIN movies m ON m.id = ms.movie_id
		JOIN cinema_halls h ON h.id = ms.cinema_hall_id
		LEFT JOIN tickets t ON t.movie_session_id = ms.id
	`)

	var where []string
	args := []interface{}{}

	if filter.Date != nil {
		args = append(args, filter.Date.Format("2006-01-02"))
		where = append(where, fmt.Sprintf("ms.show_time::date = $%d::date", len(args)))
	}

	if len(filter.MovieIDs) > 0 {
		args = append(args, filter.MovieIDs)
		where = append(where, fmt.Sprintf("ms.movie_id = ANY($%d)", len(args)))
	}

	if len(where) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	queryBuilder.WriteString(`
		GROUP BY ms.id, ms.show_time, ms.movie_id, ms.cinema_hall_id,
		         m.title, h.name, h.seat_rows, h.seats_in_row
		ORDER BY ms.show_time, ms.id
	`)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find movie sessions",
			zap.Error(err),
			zap.Int64s("movie_ids", filter.MovieIDs),
		)
		return nil, fmt.Errorf("find movie sessions: %w", err)
	}
	defer rows.Close()

	var listings []*SessionListing
	for rows.Next() {
		var listing SessionListing
		err := rows.Scan(
			&listing.ID,
			&listing.ShowTime,
			&listing.MovieID,
			&listing.CinemaHallID,
			&listing.MovieTitle,
			&listing.CinemaHallName,
			&listing.CinemaHallCapacity,
			&listing.TicketsAvailable,
		)
		if err != nil {
			r.log.Error("Failed to scan movie session row", zap.Error(err))
			return nil, fmt.Errorf("scan movie session row: %w", err)
		}
		listings = append(listings, &listing)
	}

	return listings, rows.Err()
}

func (r *sessionRepository) Update(ctx context.Context, session *entity.MovieSession) error {
	query := `
		UPDATE movie_sessions
		SET show_time = $2, movie_id = $3, cinema_hall_id = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, session.ID, session.ShowTime, session.MovieID, session.CinemaHallID)
	if err != nil {
		r.log.Error("Failed to update movie session",
			zap.Error(err),
			zap.Int64("session_id", session.ID),
		)
		return fmt.Errorf("update movie session %d: %w", session.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie session %d: %w", session.ID, ErrNotFound)
	}

	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM movie_sessions WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie session",
			zap.Error(err),
			zap.Int64("session_id", id),
		)
		return fmt.Errorf("delete movie session %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie session %d: %w", id, ErrNotFound)
	}

	return nil
}

func (r *sessionRepository) AvailableCount(ctx context.Context, id int64) (int32, error) {
	query := `
		SELECT h.seat_rows * h.seats_in_row - COUNT(t.id)
		FROM movie_sessions ms
		JOIN cinema_halls h ON h.id = ms.cinema_hall_id
		LEFT JOIN tickets t ON t.movie_session_id = ms.id
		WHERE ms.id = $1
		GROUP BY h.seat_rows, h.seats_in_row
	`

	var available int32
	err := r.db.QueryRow(ctx, query, id).Scan(&available)

	if err == pgx.ErrNoRows {
		return 0, fmt.Errorf("movie session %d: %w", id, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to count available seats",
			zap.Error(err),
			zap.Int64("session_id", id),
		)
		return 0, fmt.Errorf("count available seats for session %d: %w", id, err)
	}

	return available, nil
}
