package wire

import (
	"github.com/ArtyoMKo/cinema-theater-backend/internal/adaptor"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/repository"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/middleware"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSession(
	r chi.Router,
	sessionHandler *adaptor.SessionHandler,
	reservationHandler *adaptor.ReservationHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/sessions/upcoming - sessions starting after now
	r.Get("/api/sessions/upcoming", sessionHandler.GetUpcomingSessions)

	// GET /api/sessions/filter?movie_id=&room_id= - at least one required
	r.Get("/api/sessions/filter", sessionHandler.FilterSessions)

	// GET /api/sessions/by-movie/{movieID} - upcoming sessions of a movie
	r.Get("/api/sessions/by-movie/{movieID}", sessionHandler.GetSessionsByMovie)

	// GET /api/sessions/{id} - session with room, movie, reservations and
	// seat availability
	r.Get("/api/sessions/{id}", sessionHandler.GetSessionDetail)

	// GET /api/sessions/{id}/reservations - reservations of a session
	r.Get("/api/sessions/{id}/reservations", reservationHandler.GetSessionReservations)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/sessions", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))
		r.Use(middleware.Admin(repo.Admin, log))

		r.Get("/", sessionHandler.GetSessions)
		r.Post("/", sessionHandler.CreateSession)
		r.Put("/{id}", sessionHandler.UpdateSession)
		r.Delete("/{id}", sessionHandler.DeleteSession)
	})
}
