package wire

import (
	"github.com/ArtyoMKo/cinema-theater-backend/internal/adaptor"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/repository"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/middleware"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/movies/available - movies with scheduled sessions
	r.Get("/api/movies/available", movieHandler.GetAvailableMovies)

	// GET /api/movies/by-room/{roomID} - movies screened in a room
	r.Get("/api/movies/by-room/{roomID}", movieHandler.GetMoviesByRoom)

	// GET /api/movies/{id} - movie details
	r.Get("/api/movies/{id}", movieHandler.GetMovieByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/movies", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))
		r.Use(middleware.Admin(repo.Admin, log))

		r.Get("/", movieHandler.GetMovies)
		r.Post("/", movieHandler.CreateMovie)
		r.Put("/{id}", movieHandler.UpdateMovie)
		r.Delete("/{id}", movieHandler.DeleteMovie)
	})
}
