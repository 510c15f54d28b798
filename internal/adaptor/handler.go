package adaptor

import (
	"errors"
	"net/http"

	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/repository"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/usecase"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Room        *RoomHandler
	Movie       *MovieHandler
	Session     *SessionHandler
	Reservation *ReservationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Room:        NewRoomHandler(service.Room, log),
		Movie:       NewMovieHandler(service.Movie, log),
		Session:     NewSessionHandler(service.Session, log),
		Reservation: NewReservationHandler(service.Reservation, log),
	}
}

// respondServiceError maps the sentinel error taxonomy onto HTTP status
// codes. Anything unclassified is logged and surfaced as a generic
// internal error, never swallowed.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.ResponseNotFound(w, "Not found")
	case errors.Is(err, repository.ErrReferenceNotFound):
		utils.ResponseNotFound(w, err.Error())
	case errors.Is(err, repository.ErrDuplicateName):
		utils.ResponseConflict(w, err.Error())
	case errors.Is(err, repository.ErrSeatTaken):
		utils.ResponseConflict(w, err.Error())
	case errors.Is(err, usecase.ErrDuplicateAdmin):
		utils.ResponseConflict(w, err.Error())
	case errors.Is(err, usecase.ErrMissingParameter):
		utils.ResponseBadRequest(w, err.Error(), nil)
	case errors.Is(err, usecase.ErrInvalidInterval):
		utils.ResponseBadRequest(w, err.Error(), nil)
	case errors.Is(err, usecase.ErrAuthenticationFailed):
		utils.ResponseUnauthorized(w, "Authentication failed")
	default:
		log.Error("Unhandled service error",
			zap.Error(err),
			zap.String("operation", operation),
		)
		utils.ResponseInternalError(w, "Internal server error")
	}
}
