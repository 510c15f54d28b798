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

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindByName(ctx context.Context, name string) (*entity.Room, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Room, error)
	CountAll(ctx context.Context) (int64, error)
	FindWithUpcomingSessions(ctx context.Context, after time.Time) ([]*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, name, seats, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.Name,
		room.Seats,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return ErrDuplicateName
	}
	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("name", room.Name),
		)
		return fmt.Errorf("create room %q: %w", room.Name, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `
		SELECT id, name, seats, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.Name,
		&room.Seats,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return &room, nil
}

func (r *roomRepository) FindByName(ctx context.Context, name string) (*entity.Room, error) {
	query := `
		SELECT id, name, seats, created_at, updated_at
		FROM rooms
		WHERE name = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, name).Scan(
		&room.ID,
		&room.Name,
		&room.Seats,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find room by name %q: %w", name, err)
	}

	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Room, error) {
	query := `
		SELECT id, name, seats, created_at, updated_at
		FROM rooms
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	return scanRooms(rows)
}

func (r *roomRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&total); err != nil {
		r.log.Error("Failed to count rooms", zap.Error(err))
		return 0, fmt.Errorf("count rooms: %w", err)
	}
	return total, nil
}

// FindWithUpcomingSessions returns rooms that have at least one session
// starting after the given instant, de-duplicated by room id.
func (r *roomRepository) FindWithUpcomingSessions(ctx context.Context, after time.Time) ([]*entity.Room, error) {
	query := `
		SELECT DISTINCT r.id, r.name, r.seats, r.created_at, r.updated_at
		FROM rooms r
		JOIN movie_sessions ms ON ms.room_id = r.id
		WHERE ms.start_time > $1
	`

	rows, err := r.db.Query(ctx, query, after)
	if err != nil {
		r.log.Error("Failed to find rooms with upcoming sessions", zap.Error(err))
		return nil, fmt.Errorf("find rooms with upcoming sessions: %w", err)
	}
	defer rows.Close()

	return scanRooms(rows)
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET name = $2, seats = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.Name,
		room.Seats,
		room.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return ErrDuplicateName
	}
	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update room %s: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return fmt.Errorf("delete room %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Room deleted", zap.String("room_id", id.String()))
	return nil
}

func scanRooms(rows pgx.Rows) ([]*entity.Room, error) {
	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.Seats,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, rows.Err()
}
