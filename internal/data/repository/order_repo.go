package repository

import (
	"context"
	"fmt"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderRepository interface {
	// CreateWithTickets persists the order and all its tickets in one
	// transaction. Tickets are inserted in slice order; when an insert
	// hits the seat uniqueness constraint the whole transaction rolls
	// back and a *SeatConflictError carrying that ticket's index is
	// returned. On success the order and ticket IDs are filled in.
	CreateWithTickets(ctx context.Context, order *entity.Order) error
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) CreateWithTickets(ctx context.Context, order *entity.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create order: %w", err)
	}
	defer tx.Rollback(ctx)

	orderQuery := `
		INSERT INTO orders (user_id, created_at)
		VALUES ($1, $2)
		RETURNING id
	`

	err = tx.QueryRow(ctx, orderQuery, order.UserID, order.CreatedAt).Scan(&order.ID)
	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("create order for user %s: %w", order.UserID.String(), err)
	}

	ticketQuery := `
		INSERT INTO tickets (seat_row, seat_number, movie_session_id, order_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	for i, ticket := range order.Tickets {
		ticket.OrderID = order.ID

		err := tx.QueryRow(ctx, ticketQuery,
			ticket.Row,
			ticket.Seat,
			ticket.MovieSessionID,
			ticket.OrderID,
		).Scan(&ticket.ID)

		if err != nil {
			if isSeatConflict(err) {
				r.log.Warn("Seat conflict during order creation",
					zap.Int64("session_id", ticket.MovieSessionID),
					zap.Int32("row", ticket.Row),
					zap.Int32("seat", ticket.Seat),
					zap.Int("ticket_index", i),
				)
				return &SeatConflictError{
					TicketIndex:    i,
					Place:          ticket.Place(),
					MovieSessionID: ticket.MovieSessionID,
				}
			}

			r.log.Error("Failed to create ticket",
				zap.Error(err),
				zap.Int64("session_id", ticket.MovieSessionID),
				zap.Int("ticket_index", i),
			)
			return fmt.Errorf("create ticket %d of order: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create order: %w", err)
	}

	r.log.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.String("user_id", order.UserID.String()),
		zap.Int("ticket_count", len(order.Tickets)),
	)

	return nil
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find orders by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find orders by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.CreatedAt); err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	return orders, rows.Err()
}

func (r *orderRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count orders by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count orders by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}
