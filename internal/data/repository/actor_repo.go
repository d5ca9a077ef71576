package repository

import (
	"context"
	"fmt"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ActorRepository interface {
	Create(ctx context.Context, actor *entity.Actor) error
	FindByID(ctx context.Context, id int64) (*entity.Actor, error)
	FindAll(ctx context.Context) ([]*entity.Actor, error)
	Update(ctx context.Context, actor *entity.Actor) error
	Delete(ctx context.Context, id int64) error
}

type actorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActorRepository(db database.PgxIface, log *zap.Logger) ActorRepository {
	return &actorRepository{
		db:  db,
		log: log.With(zap.String("repository", "actor")),
	}
}

func (r *actorRepository) Create(ctx context.Context, actor *entity.Actor) error {
	query := `INSERT INTO actors (first_name, last_name) VALUES ($1, $2) RETURNING id`

	err := r.db.QueryRow(ctx, query, actor.FirstName, actor.LastName).Scan(&actor.ID)
	if err != nil {
		r.log.Error("Failed to create actor",
			zap.Error(err),
			zap.String("name", actor.FullName()),
		)
		return fmt.Errorf("create actor %q: %w", actor.FullName(), err)
	}

	return nil
}

func (r *actorRepository) FindByID(ctx context.Context, id int64) (*entity.Actor, error) {
	query := `SELECT id, first_name, last_name FROM actors WHERE id = $1`

	var actor entity.Actor
	err := r.db.QueryRow(ctx, query, id).Scan(&actor.ID, &actor.FirstName, &actor.LastName)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find actor by ID",
			zap.Error(err),
			zap.Int64("actor_id", id),
		)
		return nil, fmt.Errorf("find actor by ID %d: %w", id, err)
	}

	return &actor, nil
}

func (r *actorRepository) FindAll(ctx context.Context) ([]*entity.Actor, error) {
	query := `SELECT id, first_name, last_name FROM actors ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find actors", zap.Error(err))
		return nil, fmt.Errorf("find actors: %w", err)
	}
	defer rows.Close()

	var actors []*entity.Actor
	for rows.Next() {
		var actor entity.Actor
		if err := rows.Scan(&actor.ID, &actor.FirstName, &actor.LastName); err != nil {
			r.log.Error("Failed to scan actor row", zap.Error(err))
			return nil, fmt.Errorf("scan actor row: %w", err)
		}
		actors = append(actors, &actor)
	}

	return actors, rows.Err()
}

func (r *actorRepository) Update(ctx context.Context, actor *entity.Actor) error {
	query := `UPDATE actors SET first_name = $2, last_name = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, actor.ID, actor.FirstName, actor.LastName)
	if err != nil {
		r.log.Error("Failed to update actor",
			zap.Error(err),
			zap.Int64("actor_id", actor.ID),
		)
		return fmt.Errorf("update actor %d: %w", actor.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("actor %d: %w", actor.ID, ErrNotFound)
	}

	return nil
}

func (r *actorRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM actors WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete actor",
			zap.Error(err),
			zap.Int64("actor_id", id),
		)
		return fmt.Errorf("delete actor %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("actor %d: %w", id, ErrNotFound)
	}

	return nil
}
