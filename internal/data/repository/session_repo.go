package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/entity"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SessionFilter narrows a session listing to a movie, a room, or both
// (logical AND). At least one side must be set; the service layer rejects
// an empty filter before it reaches the store.
type SessionFilter struct {
	MovieID *uuid.UUID
	RoomID  *uuid.UUID
}

type MovieSessionRepository interface {
	Create(ctx context.Context, session *entity.MovieSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieSession, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.MovieSession, error)
	CountAll(ctx context.Context) (int64, error)
	FindUpcoming(ctx context.Context, after time.Time) ([]*entity.MovieSession, error)
	FindFiltered(ctx context.Context, filter SessionFilter) ([]*entity.MovieSession, error)
	FindUpcomingByMovieID(ctx context.Context, movieID uuid.UUID, after time.Time) ([]*entity.MovieSession, error)
	Update(ctx context.Context, session *entity.MovieSession) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type movieSessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieSessionRepository(db database.PgxIface, log *zap.Logger) MovieSessionRepository {
	return &movieSessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_session")),
	}
}

func (r *movieSessionRepository) Create(ctx context.Context, session *entity.MovieSession) error {
	query := `
		INSERT INTO movie_sessions (id, start_time, end_time, movie_id, room_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.StartTime,
		session.EndTime,
		session.MovieID,
		session.RoomID,
		session.CreatedAt,
		session.UpdatedAt,
	)

	if isForeignKeyViolation(err) {
		return ErrReferenceNotFound
	}
	if err != nil {
		r.log.Error("Failed to create movie session",
			zap.Error(err),
			zap.String("movie_id", session.MovieID.String()),
			zap.String("room_id", session.RoomID.String()),
		)
		return fmt.Errorf("create session for movie %s in room %s: %w",
			session.MovieID.String(), session.RoomID.String(), err)
	}

	return nil
}

func (r *movieSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieSession, error) {
	query := `
		SELECT id, start_time, end_time, movie_id, room_id, created_at, updated_at
		FROM movie_sessions
		WHERE id = $1
	`

	var session entity.MovieSession
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.StartTime,
		&session.EndTime,
		&session.MovieID,
		&session.RoomID,
		&session.CreatedAt,
		&session.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find session by ID",
			zap.Error(err),
			zap.String("session_id", id.String()),
		)
		return nil, fmt.Errorf("find session by ID %s: %w", id.String(), err)
	}

	return &session, nil
}

func (r *movieSessionRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.MovieSession, error) {
	query := `
		SELECT id, start_time, end_time, movie_id, room_id, created_at, updated_at
		FROM movie_sessions
		ORDER BY start_time
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list sessions", zap.Error(err))
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func (r *movieSessionRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM movie_sessions`).Scan(&total); err != nil {
		r.log.Error("Failed to count sessions", zap.Error(err))
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return total, nil
}

// FindUpcoming returns sessions whose start time is strictly after the
// given instant.
func (r *movieSessionRepository) FindUpcoming(ctx context.Context, after time.Time) ([]*entity.MovieSession, error) {
	query := `
		SELECT id, start_time, end_time, movie_id, room_id, created_at, updated_at
		FROM movie_sessions
		WHERE start_time > $1
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, after)
	if err != nil {
		r.log.Error("Failed to find upcoming sessions", zap.Error(err))
		return nil, fmt.Errorf("find upcoming sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func (r *movieSessionRepository) FindFiltered(ctx context.Context, filter SessionFilter) ([]*entity.MovieSession, error) {
	query := `
		SELECT id, start_time, end_time, movie_id, room_id, created_at, updated_at
		FROM movie_sessions
		WHERE ($1::uuid IS NULL OR movie_id = $1)
		  AND ($2::uuid IS NULL OR room_id = $2)
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, filter.MovieID, filter.RoomID)
	if err != nil {
		r.log.Error("Failed to filter sessions", zap.Error(err))
		return nil, fmt.Errorf("filter sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func (r *movieSessionRepository) FindUpcomingByMovieID(ctx context.Context, movieID uuid.UUID, after time.Time) ([]*entity.MovieSession, error) {
	query := `
		SELECT id, start_time, end_time, movie_id, room_id, created_at, updated_at
		FROM movie_sessions
		WHERE movie_id = $1 AND start_time > $2
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, movieID, after)
	if err != nil {
		r.log.Error("Failed to find sessions by movie",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find sessions by movie %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func (r *movieSessionRepository) Update(ctx context.Context, session *entity.MovieSession) error {
	query := `
		UPDATE movie_sessions
		SET start_time = $2, end_time = $3, movie_id = $4, room_id = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		session.ID,
		session.StartTime,
		session.EndTime,
		session.MovieID,
		session.RoomID,
		session.UpdatedAt,
	)

	if isForeignKeyViolation(err) {
		return ErrReferenceNotFound
	}
	if err != nil {
		r.log.Error("Failed to update session",
			zap.Error(err),
			zap.String("session_id", session.ID.String()),
		)
		return fmt.Errorf("update session %s: %w", session.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *movieSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Reservations go with the session via ON DELETE CASCADE.
	result, err := r.db.Exec(ctx, `DELETE FROM movie_sessions WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete session",
			zap.Error(err),
			zap.String("session_id", id.String()),
		)
		return fmt.Errorf("delete session %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Session deleted", zap.String("session_id", id.String()))
	return nil
}

func scanSessions(rows pgx.Rows) ([]*entity.MovieSession, error) {
	var sessions []*entity.MovieSession
	for rows.Next() {
		var session entity.MovieSession
		err := rows.Scan(
			&session.ID,
			&session.StartTime,
			&session.EndTime,
			&session.MovieID,
			&session.RoomID,
			&session.CreatedAt,
			&session.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		sessions = append(sessions, &session)
	}

	return sessions, rows.Err()
}
