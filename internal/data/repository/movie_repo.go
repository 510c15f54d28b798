package repository

import (
	"context"
	"fmt"

	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/entity"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindByName(ctx context.Context, name string) (*entity.Movie, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error)
	CountAll(ctx context.Context) (int64, error)
	FindWithSessions(ctx context.Context) ([]*entity.Movie, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error
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

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, name, duration, poster, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Name,
		movie.Duration,
		movie.Poster,
		movie.CreatedAt,
		movie.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return ErrDuplicateName
	}
	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("name", movie.Name),
		)
		return fmt.Errorf("create movie %q: %w", movie.Name, err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT id, name, duration, poster, created_at, updated_at
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Name,
		&movie.Duration,
		&movie.Poster,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id.String(), err)
	}

	return &movie, nil
}

func (r *movieRepository) FindByName(ctx context.Context, name string) (*entity.Movie, error) {
	query := `
		SELECT id, name, duration, poster, created_at, updated_at
		FROM movies
		WHERE name = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, name).Scan(
		&movie.ID,
		&movie.Name,
		&movie.Duration,
		&movie.Poster,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find movie by name %q: %w", name, err)
	}

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	query := `
		SELECT id, name, duration, poster, created_at, updated_at
		FROM movies
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

func (r *movieRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM movies`).Scan(&total); err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return total, nil
}

// FindWithSessions returns movies that have at least one scheduled
// session, de-duplicated by movie id.
func (r *movieRepository) FindWithSessions(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT DISTINCT m.id, m.name, m.duration, m.poster, m.created_at, m.updated_at
		FROM movies m
		JOIN movie_sessions ms ON ms.movie_id = m.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find movies with sessions", zap.Error(err))
		return nil, fmt.Errorf("find movies with sessions: %w", err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

// FindByRoomID returns the distinct movies that have a session scheduled
// in the given room.
func (r *movieRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Movie, error) {
	query := `
		SELECT DISTINCT m.id, m.name, m.duration, m.poster, m.created_at, m.updated_at
		FROM movies m
		JOIN movie_sessions ms ON ms.movie_id = m.id
		WHERE ms.room_id = $1
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to find movies by room",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find movies by room %s: %w", roomID.String(), err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET name = $2, duration = $3, poster = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Name,
		movie.Duration,
		movie.Poster,
		movie.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return ErrDuplicateName
	}
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("update movie %s: %w", movie.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("delete movie %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id.String()))
	return nil
}

func scanMovies(rows pgx.Rows) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Name,
			&movie.Duration,
			&movie.Poster,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	return movies, rows.Err()
}
