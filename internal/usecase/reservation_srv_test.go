package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/entity"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/repository"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestCreateReservationUnknownSession(t *testing.T) {
	svc := NewReservationService(newTestRepository(), zap.NewNop())

	_, err := svc.CreateReservation(context.Background(), &request.ReservationRequest{
		Seat:      3,
		Contact:   "ada@example.com",
		SessionID: uuid.NewString(),
	})
	if !errors.Is(err, repository.ErrReferenceNotFound) {
		t.Fatalf("err = %v, want ErrReferenceNotFound", err)
	}
}

func TestCreateReservationSeatAlreadyTaken(t *testing.T) {
	repo := newTestRepository()
	repo.Session = &fakeSessionRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.MovieSession, error) {
			return &entity.MovieSession{Base: entity.Base{ID: id}}, nil
		},
	}
	repo.Reservation = &fakeReservationRepo{
		SeatTakenFn: func(ctx context.Context, sessionID uuid.UUID, seat int, excludeID uuid.UUID) (bool, error) {
			return true, nil
		},
	}

	svc := NewReservationService(repo, zap.NewNop())

	_, err := svc.CreateReservation(context.Background(), &request.ReservationRequest{
		Seat:      3,
		Contact:   "ada@example.com",
		SessionID: uuid.NewString(),
	})
	if !errors.Is(err, repository.ErrSeatTaken) {
		t.Fatalf("err = %v, want ErrSeatTaken", err)
	}
}

func TestCreateReservationPersistsClaim(t *testing.T) {
	sessionID := uuid.New()

	var created *entity.Reservation

	repo := newTestRepository()
	repo.Session = &fakeSessionRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.MovieSession, error) {
			return &entity.MovieSession{Base: entity.Base{ID: id}}, nil
		},
	}
	repo.Reservation = &fakeReservationRepo{
		CreateFn: func(ctx context.Context, reservation *entity.Reservation) error {
			created = reservation
			return nil
		},
	}

	svc := NewReservationService(repo, zap.NewNop())

	resp, err := svc.CreateReservation(context.Background(), &request.ReservationRequest{
		Seat:      3,
		Contact:   "ada@example.com",
		SessionID: sessionID.String(),
	})
	if err != nil {
		t.Fatalf("create reservation: %v", err)
	}
	if created == nil {
		t.Fatal("reservation was not persisted")
	}
	if created.Seat != 3 {
		t.Errorf("seat = %d, want 3", created.Seat)
	}
	if created.SessionID != sessionID {
		t.Errorf("session id = %s, want %s", created.SessionID, sessionID)
	}
	if resp.Contact != "ada@example.com" {
		t.Errorf("contact = %q, want %q", resp.Contact, "ada@example.com")
	}
}

func TestUpdateReservationSelfUpdateIsIdempotent(t *testing.T) {
	reservationID := uuid.New()
	sessionID := uuid.New()

	repo := newTestRepository()
	repo.Reservation = &fakeReservationRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
			return &entity.Reservation{
				Base:      entity.Base{ID: id},
				Seat:      3,
				Contact:   "ada@example.com",
				SessionID: sessionID,
			}, nil
		},
		SeatTakenFn: func(ctx context.Context, sid uuid.UUID, seat int, excludeID uuid.UUID) (bool, error) {
			// The row itself is excluded, so its own seat reads free.
			if excludeID != reservationID {
				t.Errorf("exclude id = %s, want %s", excludeID, reservationID)
			}
			return false, nil
		},
	}

	svc := NewReservationService(repo, zap.NewNop())

	resp, err := svc.UpdateReservation(context.Background(), reservationID.String(), &request.ReservationUpdateRequest{
		Contact: strptr("ada.lovelace@example.com"),
	})
	if err != nil {
		t.Fatalf("update reservation: %v", err)
	}
	if resp.Contact != "ada.lovelace@example.com" {
		t.Errorf("contact = %q, want updated contact", resp.Contact)
	}
	if resp.Seat != 3 {
		t.Errorf("seat = %d, want 3 unchanged", resp.Seat)
	}
}

func TestUpdateReservationSeatConflict(t *testing.T) {
	reservationID := uuid.New()
	sessionID := uuid.New()

	repo := newTestRepository()
	repo.Reservation = &fakeReservationRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
			return &entity.Reservation{
				Base:      entity.Base{ID: id},
				Seat:      3,
				Contact:   "ada@example.com",
				SessionID: sessionID,
			}, nil
		},
		SeatTakenFn: func(ctx context.Context, sid uuid.UUID, seat int, excludeID uuid.UUID) (bool, error) {
			return seat == 5, nil
		},
	}

	svc := NewReservationService(repo, zap.NewNop())

	_, err := svc.UpdateReservation(context.Background(), reservationID.String(), &request.ReservationUpdateRequest{
		Seat: intptr(5),
	})
	if !errors.Is(err, repository.ErrSeatTaken) {
		t.Fatalf("err = %v, want ErrSeatTaken", err)
	}
}

func TestUpdateReservationEmptyPatchIsNoOp(t *testing.T) {
	reservationID := uuid.New()
	updateCalls := 0

	repo := newTestRepository()
	repo.Reservation = &fakeReservationRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
			return &entity.Reservation{
				Base:      entity.Base{ID: id},
				Seat:      3,
				Contact:   "ada@example.com",
				SessionID: uuid.New(),
			}, nil
		},
		UpdateFn: func(ctx context.Context, reservation *entity.Reservation) error {
			updateCalls++
			return nil
		},
	}

	svc := NewReservationService(repo, zap.NewNop())

	resp, err := svc.UpdateReservation(context.Background(), reservationID.String(), &request.ReservationUpdateRequest{})
	if err != nil {
		t.Fatalf("update reservation: %v", err)
	}
	if updateCalls != 0 {
		t.Errorf("update calls = %d, want 0", updateCalls)
	}
	if resp.Seat != 3 {
		t.Errorf("seat = %d, want 3", resp.Seat)
	}
}

func TestUpdateReservationMoveToUnknownSession(t *testing.T) {
	repo := newTestRepository()
	repo.Reservation = &fakeReservationRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
			return &entity.Reservation{
				Base:      entity.Base{ID: id},
				Seat:      3,
				Contact:   "ada@example.com",
				SessionID: uuid.New(),
			}, nil
		},
	}

	svc := NewReservationService(repo, zap.NewNop())

	_, err := svc.UpdateReservation(context.Background(), uuid.NewString(), &request.ReservationUpdateRequest{
		SessionID: strptr(uuid.NewString()),
	})
	if !errors.Is(err, repository.ErrReferenceNotFound) {
		t.Fatalf("err = %v, want ErrReferenceNotFound", err)
	}
}

func TestDeleteReservationUnknownID(t *testing.T) {
	repo := newTestRepository()
	repo.Reservation = &fakeReservationRepo{
		DeleteFn: func(ctx context.Context, id uuid.UUID) error {
			return repository.ErrNotFound
		},
	}

	svc := NewReservationService(repo, zap.NewNop())

	if err := svc.DeleteReservation(context.Background(), uuid.NewString()); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
