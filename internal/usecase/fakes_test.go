package usecase

import (
	"context"
	"time"

	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/entity"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/repository"

	"github.com/google/uuid"
)

// Function-field fakes for the repository interfaces. Unset methods
// return zero values so each test only wires what it exercises.

type fakeRoomRepo struct {
	CreateFn                   func(ctx context.Context, room *entity.Room) error
	FindByIDFn                 func(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindByNameFn               func(ctx context.Context, name string) (*entity.Room, error)
	FindAllFn                  func(ctx context.Context, limit, offset int) ([]*entity.Room, error)
	CountAllFn                 func(ctx context.Context) (int64, error)
	FindWithUpcomingSessionsFn func(ctx context.Context, after time.Time) ([]*entity.Room, error)
	UpdateFn                   func(ctx context.Context, room *entity.Room) error
	DeleteFn                   func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeRoomRepo) Create(ctx context.Context, room *entity.Room) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, room)
	}
	return nil
}

func (f *fakeRoomRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeRoomRepo) FindByName(ctx context.Context, name string) (*entity.Room, error) {
	if f.FindByNameFn != nil {
		return f.FindByNameFn(ctx, name)
	}
	return nil, nil
}

func (f *fakeRoomRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Room, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx, limit, offset)
	}
	return nil, nil
}

func (f *fakeRoomRepo) CountAll(ctx context.Context) (int64, error) {
	if f.CountAllFn != nil {
		return f.CountAllFn(ctx)
	}
	return 0, nil
}

func (f *fakeRoomRepo) FindWithUpcomingSessions(ctx context.Context, after time.Time) ([]*entity.Room, error) {
	if f.FindWithUpcomingSessionsFn != nil {
		return f.FindWithUpcomingSessionsFn(ctx, after)
	}
	return nil, nil
}

func (f *fakeRoomRepo) Update(ctx context.Context, room *entity.Room) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, room)
	}
	return nil
}

func (f *fakeRoomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

type fakeMovieRepo struct {
	CreateFn           func(ctx context.Context, movie *entity.Movie) error
	FindByIDFn         func(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindByNameFn       func(ctx context.Context, name string) (*entity.Movie, error)
	FindAllFn          func(ctx context.Context, limit, offset int) ([]*entity.Movie, error)
	CountAllFn         func(ctx context.Context) (int64, error)
	FindWithSessionsFn func(ctx context.Context) ([]*entity.Movie, error)
	FindByRoomIDFn     func(ctx context.Context, roomID uuid.UUID) ([]*entity.Movie, error)
	UpdateFn           func(ctx context.Context, movie *entity.Movie) error
	DeleteFn           func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, movie)
	}
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeMovieRepo) FindByName(ctx context.Context, name string) (*entity.Movie, error) {
	if f.FindByNameFn != nil {
		return f.FindByNameFn(ctx, name)
	}
	return nil, nil
}

func (f *fakeMovieRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx, limit, offset)
	}
	return nil, nil
}

func (f *fakeMovieRepo) CountAll(ctx context.Context) (int64, error) {
	if f.CountAllFn != nil {
		return f.CountAllFn(ctx)
	}
	return 0, nil
}

func (f *fakeMovieRepo) FindWithSessions(ctx context.Context) ([]*entity.Movie, error) {
	if f.FindWithSessionsFn != nil {
		return f.FindWithSessionsFn(ctx)
	}
	return nil, nil
}

func (f *fakeMovieRepo) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Movie, error) {
	if f.FindByRoomIDFn != nil {
		return f.FindByRoomIDFn(ctx, roomID)
	}
	return nil, nil
}

func (f *fakeMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, movie)
	}
	return nil
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

type fakeSessionRepo struct {
	CreateFn                func(ctx context.Context, session *entity.MovieSession) error
	FindByIDFn              func(ctx context.Context, id uuid.UUID) (*entity.MovieSession, error)
	FindAllFn               func(ctx context.Context, limit, offset int) ([]*entity.MovieSession, error)
	CountAllFn              func(ctx context.Context) (int64, error)
	FindUpcomingFn          func(ctx context.Context, after time.Time) ([]*entity.MovieSession, error)
	FindFilteredFn          func(ctx context.Context, filter repository.SessionFilter) ([]*entity.MovieSession, error)
	FindUpcomingByMovieIDFn func(ctx context.Context, movieID uuid.UUID, after time.Time) ([]*entity.MovieSession, error)
	UpdateFn                func(ctx context.Context, session *entity.MovieSession) error
	DeleteFn                func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.MovieSession) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, session)
	}
	return nil
}

func (f *fakeSessionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieSession, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeSessionRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.MovieSession, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx, limit, offset)
	}
	return nil, nil
}

func (f *fakeSessionRepo) CountAll(ctx context.Context) (int64, error) {
	if f.CountAllFn != nil {
		return f.CountAllFn(ctx)
	}
	return 0, nil
}

func (f *fakeSessionRepo) FindUpcoming(ctx context.Context, after time.Time) ([]*entity.MovieSession, error) {
	if f.FindUpcomingFn != nil {
		return f.FindUpcomingFn(ctx, after)
	}
	return nil, nil
}

func (f *fakeSessionRepo) FindFiltered(ctx context.Context, filter repository.SessionFilter) ([]*entity.MovieSession, error) {
	if f.FindFilteredFn != nil {
		return f.FindFilteredFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeSessionRepo) FindUpcomingByMovieID(ctx context.Context, movieID uuid.UUID, after time.Time) ([]*entity.MovieSession, error) {
	if f.FindUpcomingByMovieIDFn != nil {
		return f.FindUpcomingByMovieIDFn(ctx, movieID, after)
	}
	return nil, nil
}

func (f *fakeSessionRepo) Update(ctx context.Context, session *entity.MovieSession) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, session)
	}
	return nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

type fakeReservationRepo struct {
	CreateFn          func(ctx context.Context, reservation *entity.Reservation) error
	FindByIDFn        func(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindAllFn         func(ctx context.Context, limit, offset int) ([]*entity.Reservation, error)
	CountAllFn        func(ctx context.Context) (int64, error)
	FindBySessionIDFn func(ctx context.Context, sessionID uuid.UUID) ([]*entity.Reservation, error)
	SeatTakenFn       func(ctx context.Context, sessionID uuid.UUID, seat int, excludeID uuid.UUID) (bool, error)
	UpdateFn          func(ctx context.Context, reservation *entity.Reservation) error
	DeleteFn          func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeReservationRepo) Create(ctx context.Context, reservation *entity.Reservation) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, reservation)
	}
	return nil
}

func (f *fakeReservationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeReservationRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Reservation, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx, limit, offset)
	}
	return nil, nil
}

func (f *fakeReservationRepo) CountAll(ctx context.Context) (int64, error) {
	if f.CountAllFn != nil {
		return f.CountAllFn(ctx)
	}
	return 0, nil
}

func (f *fakeReservationRepo) FindBySessionID(ctx context.Context, sessionID uuid.UUID) ([]*entity.Reservation, error) {
	if f.FindBySessionIDFn != nil {
		return f.FindBySessionIDFn(ctx, sessionID)
	}
	return nil, nil
}

func (f *fakeReservationRepo) SeatTaken(ctx context.Context, sessionID uuid.UUID, seat int, excludeID uuid.UUID) (bool, error) {
	if f.SeatTakenFn != nil {
		return f.SeatTakenFn(ctx, sessionID, seat, excludeID)
	}
	return false, nil
}

func (f *fakeReservationRepo) Update(ctx context.Context, reservation *entity.Reservation) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, reservation)
	}
	return nil
}

func (f *fakeReservationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

type fakeAdminRepo struct {
	CreateFn         func(ctx context.Context, admin *entity.Admin) error
	FindByIDFn       func(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	FindByEmailFn    func(ctx context.Context, email string) (*entity.Admin, error)
	FindByUsernameFn func(ctx context.Context, username string) (*entity.Admin, error)
}

func (f *fakeAdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, admin)
	}
	return nil
}

func (f *fakeAdminRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeAdminRepo) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	if f.FindByEmailFn != nil {
		return f.FindByEmailFn(ctx, email)
	}
	return nil, nil
}

func (f *fakeAdminRepo) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	if f.FindByUsernameFn != nil {
		return f.FindByUsernameFn(ctx, username)
	}
	return nil, nil
}
