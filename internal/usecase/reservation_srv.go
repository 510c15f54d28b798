package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/entity"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/repository"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/dto/request"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationService interface {
	GetReservations(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error)
	GetSessionReservations(ctx context.Context, sessionID string) ([]response.ReservationResponse, error)
	CreateReservation(ctx context.Context, req *request.ReservationRequest) (*response.ReservationResponse, error)
	UpdateReservation(ctx context.Context, reservationID string, req *request.ReservationUpdateRequest) (*response.ReservationResponse, error)
	DeleteReservation(ctx context.Context, reservationID string) error
}

type reservationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReservationService(repo *repository.Repository, log *zap.Logger) ReservationService {
	return &reservationService{
		repo: repo,
		log:  log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) GetReservations(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	reservations, err := s.repo.Reservation.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get reservations: %w", err)
	}

	total, err := s.repo.Reservation.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count reservations: %w", err)
	}

	return response.NewPaginatedResponse(response.ReservationsToResponse(reservations), req.Page, req.PerPage, total), nil
}

func (s *reservationService) GetSessionReservations(ctx context.Context, sessionID string) ([]response.ReservationResponse, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	reservations, err := s.repo.Reservation.FindBySessionID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservations for session %s: %w", sessionID, err)
	}

	return response.ReservationsToResponse(reservations), nil
}

func (s *reservationService) CreateReservation(ctx context.Context, req *request.ReservationRequest) (*response.ReservationResponse, error) {
	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return nil, repository.ErrReferenceNotFound
	}

	session, err := s.repo.Session.FindByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("check session %s: %w", req.SessionID, err)
	}
	if session == nil {
		return nil, repository.ErrReferenceNotFound
	}

	// Fast fail for the common case. The unique (session_id, seat)
	// constraint in the store is the real guard: of two concurrent
	// claims one insert wins, the other comes back as ErrSeatTaken.
	taken, err := s.repo.Reservation.SeatTaken(ctx, sessionID, req.Seat, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("check seat %d: %w", req.Seat, err)
	}
	if taken {
		return nil, repository.ErrSeatTaken
	}

	now := time.Now()
	reservation := &entity.Reservation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Seat:      req.Seat,
		Contact:   req.Contact,
		SessionID: sessionID,
	}

	if err := s.repo.Reservation.Create(ctx, reservation); err != nil {
		return nil, err
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("session_id", sessionID.String()),
		zap.Int("seat", reservation.Seat),
	)

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

func (s *reservationService) UpdateReservation(ctx context.Context, reservationID string, req *request.ReservationUpdateRequest) (*response.ReservationResponse, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation %s: %w", reservationID, err)
	}
	if reservation == nil {
		return nil, repository.ErrNotFound
	}

	updated := false

	if req.SessionID != nil {
		sessionID, err := uuid.Parse(*req.SessionID)
		if err != nil {
			return nil, repository.ErrReferenceNotFound
		}
		if sessionID != reservation.SessionID {
			session, err := s.repo.Session.FindByID(ctx, sessionID)
			if err != nil {
				return nil, fmt.Errorf("check session %s: %w", *req.SessionID, err)
			}
			if session == nil {
				return nil, repository.ErrReferenceNotFound
			}
			reservation.SessionID = sessionID
			updated = true
		}
	}

	if req.Seat != nil && *req.Seat != reservation.Seat {
		reservation.Seat = *req.Seat
		updated = true
	}

	if req.Contact != nil && *req.Contact != reservation.Contact {
		reservation.Contact = *req.Contact
		updated = true
	}

	if updated {
		// Re-check the merged (session, seat) pair, excluding this
		// reservation's own row so a self-update stays idempotent.
		taken, err := s.repo.Reservation.SeatTaken(ctx, reservation.SessionID, reservation.Seat, reservation.ID)
		if err != nil {
			return nil, fmt.Errorf("check seat %d: %w", reservation.Seat, err)
		}
		if taken {
			return nil, repository.ErrSeatTaken
		}

		reservation.UpdatedAt = time.Now()
		if err := s.repo.Reservation.Update(ctx, reservation); err != nil {
			return nil, err
		}

		s.log.Info("Reservation updated",
			zap.String("reservation_id", reservationID),
			zap.Int("seat", reservation.Seat),
		)
	}

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

func (s *reservationService) DeleteReservation(ctx context.Context, reservationID string) error {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return repository.ErrNotFound
	}

	if err := s.repo.Reservation.Delete(ctx, id); err != nil {
		return err
	}

	return nil
}
