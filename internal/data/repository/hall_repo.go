package repository

import (
	"context"
	"fmt"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type HallRepository interface {
	Create(ctx context.Context, hall *entity.CinemaHall) error
	FindByID(ctx context.Context, id int64) (*entity.CinemaHall, error)
	FindAll(ctx context.Context) ([]*entity.CinemaHall, error)
	Update(ctx context.Context, hall *entity.CinemaHall) error
	Delete(ctx context.Context, id int64) error
}

type hallRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHallRepository(db database.PgxIface, log *zap.Logger) HallRepository {
	return &hallRepository{
		db:  db,
		log: log.With(zap.String("repository", "hall")),
	}
}

func (r *hallRepository) Create(ctx context.Context, hall *entity.CinemaHall) error {
	query := `
		INSERT INTO cinema_halls (name, seat_rows, seats_in_row)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, hall.Name, hall.Rows, hall.SeatsInRow).Scan(&hall.ID)
	if err != nil {
		r.log.Error("Failed to create cinema hall",
			zap.Error(err),
			zap.String("name", hall.Name),
			zap.Int32("rows", hall.Rows),
			zap.Int32("seats_in_row", hall.SeatsInRow),
		)
		return fmt.Errorf("create cinema hall %q: %w", hall.Name, err)
	}

	return nil
}

func (r *hallRepository) FindByID(ctx context.Context, id int64) (*entity.CinemaHall, error) {
	query := `SELECT id, name, seat_rows, seats_in_row FROM cinema_halls WHERE id = $1`

	var hall entity.CinemaHall
	err := r.db.QueryRow(ctx, query, id).Scan(&hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cinema hall by ID",
			zap.Error(err),
			zap.Int64("hall_id", id),
		)
		return nil, fmt.Errorf("find cinema hall by ID %d: %w", id, err)
	}

	return &hall, nil
}

func (r *hallRepository) FindAll(ctx context.Context) ([]*entity.CinemaHall, error) {
	query := `SELECT id, name, seat_rows, seats_in_row FROM cinema_halls ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find cinema halls", zap.Error(err))
		return nil, fmt.Errorf("find cinema halls: %w", err)
	}
	defer rows.Close()

	var halls []*entity.CinemaHall
	for rows.Next() {
		var hall entity.CinemaHall
		if err := rows.Scan(&hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow); err != nil {
			r.log.Error("Failed to scan cinema hall row", zap.Error(err))
			return nil, fmt.Errorf("scan cinema hall row: %w", err)
		}
		halls = append(halls, &hall)
	}

	return halls, rows.Err()
}

func (r *hallRepository) Update(ctx context.Context, hall *entity.CinemaHall) error {
	query := `UPDATE cinema_halls SET name = $2, seat_rows = $3, seats_in_row = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, hall.ID, hall.Name, hall.Rows, hall.SeatsInRow)
	if err != nil {
		r.log.Error("Failed to update cinema hall",
			zap.Error(err),
			zap.Int64("hall_id", hall.ID),
		)
		return fmt.Errorf("update cinema hall %d: %w", hall.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("cinema hall %d: %w", hall.ID, ErrNotFound)
	}

	return nil
}

func (r *hallRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM cinema_halls WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete cinema hall",
			zap.Error(err),
			zap.Int64("hall_id", id),
		)
		return fmt.Errorf("delete cinema hall %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("cinema hall %d: %w", id, ErrNotFound)
	}

	return nil
}
