package repository

import (
	"context"
	"fmt"
	"strings"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// MovieFilter narrows the movie listing. Zero values mean "no filter".
type MovieFilter struct {
	Title    string  // case-insensitive substring match
	GenreIDs []int64 // any-of
	ActorIDs []int64 // any-of
}

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie, genreIDs, actorIDs []int64) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindAll(ctx context.Context, filter MovieFilter) ([]*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie, genreIDs, actorIDs []int64) error
	Delete(ctx context.Context, id int64) error

	// Batch relation loads for list views (avoids N+1)
	GenresByMovieIDs(ctx context.Context, movieIDs []int64) (map[int64][]*entity.Genre, error)
	ActorsByMovieIDs(ctx context.Context, movieIDs []int64) (map[int64][]*entity.Actor, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie, genreIDs, actorIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create movie: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO movies (title, description, duration)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err = tx.QueryRow(ctx, query, movie.Title, movie.Description, movie.Duration).Scan(&movie.ID)
	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %q: %w", movie.Title, err)
	}

	if err := r.replaceLinks(ctx, tx, movie.ID, genreIDs, actorIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create movie: %w", err)
	}

	return nil
}

func (r *movieRepository) replaceLinks(ctx context.Context, tx pgx.Tx, movieID int64, genreIDs, actorIDs []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM movie_genres WHERE movie_id = $1`, movieID); err != nil {
		return fmt.Errorf("clear movie %d genres: %w", movieID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM movie_actors WHERE movie_id = $1`, movieID); err != nil {
		return fmt.Errorf("clear movie %d actors: %w", movieID, err)
	}

	for _, genreID := range genreIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO movie_genres (movie_id, genre_id) VALUES ($1, $2)`,
			movieID, genreID)
		if err != nil {
			return fmt.Errorf("link movie %d to genre %d: %w", movieID, genreID, err)
		}
	}

	for _, actorID := range actorIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO movie_actors (movie_id, actor_id) VALUES ($1, $2)`,
			movieID, actorID)
		if err != nil {
			return fmt.Errorf("link movie %d to actor %d: %w", movieID, actorID, err)
		}
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `SELECT id, title, description, duration FROM movies WHERE id = $1`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(&movie.ID, &movie.Title, &movie.Description, &movie.Duration)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find movie by ID %d: %w", id, err)
	}

	genres, err := r.GenresByMovieIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	actors, err := r.ActorsByMovieIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}

	movie.Genres = genres[id]
	movie.Actors = actors[id]

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, filter MovieFilter) ([]*entity.Movie, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT DISTINCT m.id, m.title, m.description, m.duration
		FROM movies m
	`)

	var where []string
	args := []interface{}{}

	if len(filter.GenreIDs) > 0 {
		queryBuilder.WriteString(" JOIN movie_genres mg ON mg.movie_id = m.id")
		args = append(args, filter.GenreIDs)
		where = append(where, fmt.Sprintf("mg.genre_id = ANY($%d)", len(args)))
	}

	if len(filter.ActorIDs) > 0 {
		queryBuilder.WriteString(" JOIN movie_actors ma ON ma.movie_id = m.id")
		args = append(args, filter.ActorIDs)
		where = append(where, fmt.Sprintf("ma.actor_id = ANY($%d)", len(args)))
	}

	if filter.Title != "" {
		args = append(args, "%"+filter.Title+"%")
		where = append(where, fmt.Sprintf("m.title ILIKE $%d", len(args)))
	}

	if len(where) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY m.id")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find movies",
			zap.Error(err),
			zap.String("title_filter", filter.Title),
			zap.Int64s("genre_ids", filter.GenreIDs),
			zap.Int64s("actor_ids", filter.ActorIDs),
		)
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		if err := rows.Scan(&movie.ID, &movie.Title, &movie.Description, &movie.Duration); err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	return movies, rows.Err()
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie, genreIDs, actorIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update movie: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `UPDATE movies SET title = $2, description = $3, duration = $4 WHERE id = $1`

	result, err := tx.Exec(ctx, query, movie.ID, movie.Title, movie.Description, movie.Duration)
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("update movie %d: %w", movie.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d: %w", movie.ID, ErrNotFound)
	}

	if err := r.replaceLinks(ctx, tx, movie.ID, genreIDs, actorIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit update movie: %w", err)
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("delete movie %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}

	return nil
}

func (r *movieRepository) GenresByMovieIDs(ctx context.Context, movieIDs []int64) (map[int64][]*entity.Genre, error) {
	result := make(map[int64][]*entity.Genre)
	if len(movieIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT mg.movie_id, g.id, g.name
		FROM movie_genres mg
		JOIN genres g ON g.id = mg.genre_id
		WHERE mg.movie_id = ANY($1)
		ORDER BY g.id
	`

	rows, err := r.db.Query(ctx, query, movieIDs)
	if err != nil {
		r.log.Error("Failed to load genres for movies", zap.Error(err))
		return nil, fmt.Errorf("load genres for movies: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var movieID int64
		var genre entity.Genre
		if err := rows.Scan(&movieID, &genre.ID, &genre.Name); err != nil {
			return nil, fmt.Errorf("scan movie genre row: %w", err)
		}
		result[movieID] = append(result[movieID], &genre)
	}

	return result, rows.Err()
}

func (r *movieRepository) ActorsByMovieIDs(ctx context.Context, movieIDs []int64) (map[int64][]*entity.Actor, error) {
	result := make(map[int64][]*entity.Actor)
	if len(movieIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT ma.movie_id, a.id, a.first_name, a.last_name
		FROM movie_actors ma
		JOIN actors a ON a.id = ma.actor_id
		WHERE ma.movie_id = ANY($1)
		ORDER BY a.id
	`

	rows, err := r.db.Query(ctx, query, movieIDs)
	if err != nil {
		r.log.Error("Failed to load actors for movies", zap.Error(err))
		return nil, fmt.Errorf("load actors for movies: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var movieID int64
		var actor entity.Actor
		if err := rows.Scan(&movieID, &actor.ID, &actor.FirstName, &actor.LastName); err != nil {
			return nil, fmt.Errorf("scan movie actor row: %w", err)
		}
		result[movieID] = append(result[movieID], &actor)
	}

	return result, rows.Err()
}
