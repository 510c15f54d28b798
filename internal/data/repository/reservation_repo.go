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

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Reservation, error)
	CountAll(ctx context.Context) (int64, error)
	FindBySessionID(ctx context.Context, sessionID uuid.UUID) ([]*entity.Reservation, error)
	SeatTaken(ctx context.Context, sessionID uuid.UUID, seat int, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, reservation *entity.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, seat, contact, session_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.Seat,
		reservation.Contact,
		reservation.SessionID,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	)

	// The unique (session_id, seat) constraint decides races between
	// concurrent claims on the same seat.
	if isUniqueViolation(err) {
		return ErrSeatTaken
	}
	if isForeignKeyViolation(err) {
		return ErrReferenceNotFound
	}
	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("session_id", reservation.SessionID.String()),
			zap.Int("seat", reservation.Seat),
		)
		return fmt.Errorf("create reservation for session %s seat %d: %w",
			reservation.SessionID.String(), reservation.Seat, err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `
		SELECT id, seat, contact, session_id, created_at, updated_at
		FROM reservations
		WHERE id = $1
	`

	var reservation entity.Reservation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reservation.ID,
		&reservation.Seat,
		&reservation.Contact,
		&reservation.SessionID,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return &reservation, nil
}

func (r *reservationRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Reservation, error) {
	query := `
		SELECT id, seat, contact, session_id, created_at, updated_at
		FROM reservations
		ORDER BY created_at
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list reservations", zap.Error(err))
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func (r *reservationRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reservations`).Scan(&total); err != nil {
		r.log.Error("Failed to count reservations", zap.Error(err))
		return 0, fmt.Errorf("count reservations: %w", err)
	}
	return total, nil
}

func (r *reservationRepository) FindBySessionID(ctx context.Context, sessionID uuid.UUID) ([]*entity.Reservation, error) {
	query := `
		SELECT id, seat, contact, session_id, created_at, updated_at
		FROM reservations
		WHERE session_id = $1
		ORDER BY seat
	`

	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		r.log.Error("Failed to find reservations by session",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
		)
		return nil, fmt.Errorf("find reservations by session %s: %w", sessionID.String(), err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// SeatTaken reports whether another reservation already claims the given
// (session, seat) pair. excludeID skips the caller's own row so that a
// self-update does not collide with itself; pass uuid.Nil on create.
func (r *reservationRepository) SeatTaken(ctx context.Context, sessionID uuid.UUID, seat int, excludeID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE session_id = $1 AND seat = $2 AND id <> $3
		)
	`

	var taken bool
	if err := r.db.QueryRow(ctx, query, sessionID, seat, excludeID).Scan(&taken); err != nil {
		r.log.Error("Failed to check seat",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
			zap.Int("seat", seat),
		)
		return false, fmt.Errorf("check seat %d for session %s: %w", seat, sessionID.String(), err)
	}

	return taken, nil
}

func (r *reservationRepository) Update(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		UPDATE reservations
		SET seat = $2, contact = $3, session_id = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.Seat,
		reservation.Contact,
		reservation.SessionID,
		reservation.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return ErrSeatTaken
	}
	if isForeignKeyViolation(err) {
		return ErrReferenceNotFound
	}
	if err != nil {
		r.log.Error("Failed to update reservation",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
		return fmt.Errorf("update reservation %s: %w", reservation.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return fmt.Errorf("delete reservation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Reservation deleted", zap.String("reservation_id", id.String()))
	return nil
}

func scanReservations(rows pgx.Rows) ([]*entity.Reservation, error) {
	var reservations []*entity.Reservation
	for rows.Next() {
		var reservation entity.Reservation
		err := rows.Scan(
			&reservation.ID,
			&reservation.Seat,
			&reservation.Contact,
			&reservation.SessionID,
			&reservation.CreatedAt,
			&reservation.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, &reservation)
	}

	return reservations, rows.Err()
}
