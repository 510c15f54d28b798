package wire

import (
	"github.com/ArtyoMKo/cinema-theater-backend/internal/adaptor"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/repository"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/middleware"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/reservations - anyone can reserve a seat
	r.Post("/api/reservations", reservationHandler.CreateReservation)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/reservations", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))
		r.Use(middleware.Admin(repo.Admin, log))

		r.Get("/", reservationHandler.GetReservations)
		r.Put("/{id}", reservationHandler.UpdateReservation)
		r.Delete("/{id}", reservationHandler.DeleteReservation)
	})
}
