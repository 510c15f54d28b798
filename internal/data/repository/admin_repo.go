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

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
	FindByUsername(ctx context.Context, username string) (*entity.Admin, error)
}

type adminRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdminRepository(db database.PgxIface, log *zap.Logger) AdminRepository {
	return &adminRepository{
		db:  db,
		log: log.With(zap.String("repository", "admin")),
	}
}

func (r *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	query := `
		INSERT INTO admins (id, email, username, first_name, last_name, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		admin.ID,
		admin.Email,
		admin.Username,
		admin.FirstName,
		admin.LastName,
		admin.PasswordHash,
		admin.Role,
		admin.CreatedAt,
		admin.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return ErrDuplicateName
	}
	if err != nil {
		r.log.Error("Failed to create admin",
			zap.Error(err),
			zap.String("email", admin.Email),
			zap.String("username", admin.Username),
		)
		return fmt.Errorf("create admin %s: %w", admin.Email, err)
	}

	return nil
}

func (r *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	return r.findOne(ctx, `WHERE email = $1`, email)
}

func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	return r.findOne(ctx, `WHERE username = $1`, username)
}

func (r *adminRepository) findOne(ctx context.Context, where string, arg any) (*entity.Admin, error) {
	query := `
		SELECT id, email, username, first_name, last_name, password_hash, role, created_at, updated_at
		FROM admins
	` + where

	var admin entity.Admin
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&admin.ID,
		&admin.Email,
		&admin.Username,
		&admin.FirstName,
		&admin.LastName,
		&admin.PasswordHash,
		&admin.Role,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find admin", zap.Error(err))
		return nil, fmt.Errorf("find admin: %w", err)
	}

	return &admin, nil
}
