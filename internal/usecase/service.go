package usecase

import (
	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/repository"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Room        RoomService
	Movie       MovieService
	Session     MovieSessionService
	Reservation ReservationService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		Room:        NewRoomService(repo, log),
		Movie:       NewMovieService(repo, log),
		Session:     NewMovieSessionService(repo, log),
		Reservation: NewReservationService(repo, log),
	}
}
