package wire

import (
	"github.com/ArtyoMKo/cinema-theater-backend/internal/adaptor"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/repository"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/middleware"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// POST /api/auth/login - issue a bearer token (public)
	r.Post("/api/auth/login", authHandler.Login)

	// GET /api/auth/me - current principal (any authenticated admin)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))
		r.Get("/api/auth/me", authHandler.Me)
	})

	// Admin provisioning (admin only)
	r.Route("/api/admin/admins", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))
		r.Use(middleware.Admin(repo.Admin, log))

		r.Post("/", authHandler.CreateAdmin)
	})
}
