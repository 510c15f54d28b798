package wire

import (
	"github.com/ArtyoMKo/cinema-theater-backend/internal/adaptor"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/repository"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/middleware"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/rooms/available - rooms with upcoming sessions
	r.Get("/api/rooms/available", roomHandler.GetAvailableRooms)

	// GET /api/rooms/{id} - room details
	r.Get("/api/rooms/{id}", roomHandler.GetRoomByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/rooms", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))
		r.Use(middleware.Admin(repo.Admin, log))

		r.Get("/", roomHandler.GetRooms)
		r.Post("/", roomHandler.CreateRoom)
		r.Put("/{id}", roomHandler.UpdateRoom)
		r.Delete("/{id}", roomHandler.DeleteRoom)
	})
}
