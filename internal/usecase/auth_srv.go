package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/entity"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/repository"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/dto/request"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/dto/response"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	GetCurrentAdmin(ctx context.Context, adminID uuid.UUID) (*response.AdminResponse, error)
	CreateAdmin(ctx context.Context, req *request.AdminCreateRequest) (*response.AdminResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Login authenticates by email or username and issues a bearer token.
// Unknown identity and wrong password both come back as
// ErrAuthenticationFailed.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	admin, err := s.repo.Admin.FindByEmail(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("find admin by email: %w", err)
	}

	if admin == nil {
		admin, err = s.repo.Admin.FindByUsername(ctx, req.Username)
		if err != nil {
			return nil, fmt.Errorf("find admin by username: %w", err)
		}
	}

	if admin == nil {
		s.log.Warn("Login: unknown identity", zap.String("identifier", req.Username))
		return nil, ErrAuthenticationFailed
	}

	if !utils.VerifyPassword(admin.PasswordHash, req.Password) {
		s.log.Warn("Login: wrong password", zap.String("admin_id", admin.ID.String()))
		return nil, ErrAuthenticationFailed
	}

	token, expiresAt, err := utils.IssueToken(s.config.JWT.Secret, admin.ID, string(admin.Role), s.config.JWT.ExpiryHours)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("Admin logged in",
		zap.String("admin_id", admin.ID.String()),
		zap.String("username", admin.Username),
	)

	resp := response.AuthToResponse(admin, token, expiresAt)
	return &resp, nil
}

func (s *authService) GetCurrentAdmin(ctx context.Context, adminID uuid.UUID) (*response.AdminResponse, error) {
	admin, err := s.repo.Admin.FindByID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("get admin %s: %w", adminID.String(), err)
	}
	if admin == nil {
		return nil, repository.ErrNotFound
	}

	resp := response.AdminToResponse(admin)
	return &resp, nil
}

func (s *authService) CreateAdmin(ctx context.Context, req *request.AdminCreateRequest) (*response.AdminResponse, error) {
	existing, err := s.repo.Admin.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check admin email: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateAdmin
	}

	existing, err = s.repo.Admin.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check admin username: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateAdmin
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	admin := &entity.Admin{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hashed,
		Role:         entity.RoleAdmin,
	}

	if err := s.repo.Admin.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, ErrDuplicateAdmin
		}
		return nil, err
	}

	s.log.Info("Admin created",
		zap.String("admin_id", admin.ID.String()),
		zap.String("username", admin.Username),
	)

	resp := response.AdminToResponse(admin)
	return &resp, nil
}
