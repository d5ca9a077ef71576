package repository

import (
	"context"
	"fmt"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/pkg/database"

	"go.uber.org/zap"
)

type TicketRepository interface {
	// TakenPlaces returns every occupied (row, seat) for the session,
	// straight from the store. The result is never cached: a stale set
	// would undermine the seat-taken pre-check.
	TakenPlaces(ctx context.Context, sessionID int64) ([]entity.Place, error)
	FindByOrderIDs(ctx context.Context, orderIDs []int64) (map[int64][]*entity.Ticket, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) TakenPlaces(ctx context.Context, sessionID int64) ([]entity.Place, error) {
	query := `
		SELECT seat_row, seat_number
		FROM tickets
		WHERE movie_session_id = $1
		ORDER BY seat_row, seat_number
	`

	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		r.log.Error("Failed to find taken places",
			zap.Error(err),
			zap.Int64("session_id", sessionID),
		)
		return nil, fmt.Errorf("find taken places for session %d: %w", sessionID, err)
	}
	defer rows.Close()

	var places []entity.Place
	for rows.Next() {
		var place entity.Place
		if err := rows.Scan(&place.Row, &place.Seat); err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		places = append(places, place)
	}

	return places, rows.Err()
}

func (r *ticketRepository) FindByOrderIDs(ctx context.Context, orderIDs []int64) (map[int64][]*entity.Ticket, error) {
	result := make(map[int64][]*entity.Ticket)
	if len(orderIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT id, seat_row, seat_number, movie_session_id, order_id
		FROM tickets
		WHERE order_id = ANY($1)
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, orderIDs)
	if err != nil {
		r.log.Error("Failed to find tickets by order IDs",
			zap.Error(err),
			zap.Int("order_count", len(orderIDs)),
		)
		return nil, fmt.Errorf("find tickets by order IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ticket entity.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.MovieSessionID,
			&ticket.OrderID,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		result[ticket.OrderID] = append(result[ticket.OrderID], &ticket)
	}

	return result, rows.Err()
}
