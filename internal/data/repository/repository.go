package repository

import (
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Admin       AdminRepository
	Room        RoomRepository
	Movie       MovieRepository
	Session     MovieSessionRepository
	Reservation ReservationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Admin:       NewAdminRepository(db, log),
		Room:        NewRoomRepository(db, log),
		Movie:       NewMovieRepository(db, log),
		Session:     NewMovieSessionRepository(db, log),
		Reservation: NewReservationRepository(db, log),
	}
}
