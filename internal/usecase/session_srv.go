package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/entity"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/repository"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/dto/request"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/dto/response"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidInterval rejects sessions whose merged start/end pair is not
// strictly increasing.
var ErrInvalidInterval = errors.New("start_time must be before end_time")

type MovieSessionService interface {
	GetSessions(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieSessionResponse], error)
	GetSessionDetail(ctx context.Context, sessionID string) (*response.SessionDetailResponse, error)
	GetUpcomingSessions(ctx context.Context) ([]response.MovieSessionResponse, error)
	FilterSessions(ctx context.Context, req *request.SessionFilterRequest) ([]response.MovieSessionResponse, error)
	GetSessionsByMovie(ctx context.Context, movieID string) ([]response.SessionWithRoomResponse, error)
	CreateSession(ctx context.Context, req *request.MovieSessionRequest) (*response.MovieSessionResponse, error)
	UpdateSession(ctx context.Context, sessionID string, req *request.MovieSessionUpdateRequest) (*response.MovieSessionResponse, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type movieSessionService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieSessionService(repo *repository.Repository, log *zap.Logger) MovieSessionService {
	return &movieSessionService{
		repo: repo,
		log:  log.With(zap.String("service", "session")),
	}
}

func (s *movieSessionService) GetSessions(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieSessionResponse], error) {
	sessions, err := s.repo.Session.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get sessions: %w", err)
	}

	total, err := s.repo.Session.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}

	return response.NewPaginatedResponse(response.SessionsToResponse(sessions), req.Page, req.PerPage, total), nil
}

// GetSessionDetail returns the session together with its room, movie,
// reservations, and the seat availability derived from them. Availability
// is computed fresh on every call; reservations change between reads.
func (s *movieSessionService) GetSessionDetail(ctx context.Context, sessionID string) (*response.SessionDetailResponse, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	session, err := s.repo.Session.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", sessionID, err)
	}
	if session == nil {
		return nil, repository.ErrNotFound
	}

	room, err := s.repo.Room.FindByID(ctx, session.RoomID)
	if err != nil {
		return nil, fmt.Errorf("get room for session %s: %w", sessionID, err)
	}
	if room == nil {
		return nil, repository.ErrReferenceNotFound
	}

	movie, err := s.repo.Movie.FindByID(ctx, session.MovieID)
	if err != nil {
		return nil, fmt.Errorf("get movie for session %s: %w", sessionID, err)
	}
	if movie == nil {
		return nil, repository.ErrReferenceNotFound
	}

	reservations, err := s.repo.Reservation.FindBySessionID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservations for session %s: %w", sessionID, err)
	}

	reserved, available := ComputeAvailability(room.Seats, reservations)

	return &response.SessionDetailResponse{
		Session:        response.SessionToResponse(session),
		Room:           response.RoomToResponse(room),
		Movie:          response.MovieToResponse(movie),
		Reservations:   response.ReservationsToResponse(reservations),
		ReservedSeats:  reserved,
		AvailableSeats: available,
	}, nil
}

// GetUpcomingSessions lists sessions starting strictly after now.
func (s *movieSessionService) GetUpcomingSessions(ctx context.Context) ([]response.MovieSessionResponse, error) {
	sessions, err := s.repo.Session.FindUpcoming(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("get upcoming sessions: %w", err)
	}

	return response.SessionsToResponse(sessions), nil
}

// FilterSessions narrows sessions by movie and/or room (AND). A request
// supplying neither fails with ErrMissingParameter.
func (s *movieSessionService) FilterSessions(ctx context.Context, req *request.SessionFilterRequest) ([]response.MovieSessionResponse, error) {
	if req.MovieID == nil && req.RoomID == nil {
		return nil, ErrMissingParameter
	}

	var filter repository.SessionFilter

	if req.MovieID != nil {
		movieID, err := uuid.Parse(*req.MovieID)
		if err != nil {
			return nil, repository.ErrNotFound
		}
		filter.MovieID = &movieID
	}

	if req.RoomID != nil {
		roomID, err := uuid.Parse(*req.RoomID)
		if err != nil {
			return nil, repository.ErrNotFound
		}
		filter.RoomID = &roomID
	}

	sessions, err := s.repo.Session.FindFiltered(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("filter sessions: %w", err)
	}

	return response.SessionsToResponse(sessions), nil
}

// GetSessionsByMovie lists a movie's upcoming sessions with their rooms.
func (s *movieSessionService) GetSessionsByMovie(ctx context.Context, movieID string) ([]response.SessionWithRoomResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	sessions, err := s.repo.Session.FindUpcomingByMovieID(ctx, id, time.Now())
	if err != nil {
		return nil, fmt.Errorf("get sessions by movie %s: %w", movieID, err)
	}

	out := make([]response.SessionWithRoomResponse, 0, len(sessions))
	for _, session := range sessions {
		room, err := s.repo.Room.FindByID(ctx, session.RoomID)
		if err != nil {
			return nil, fmt.Errorf("get room for session %s: %w", session.ID.String(), err)
		}
		if room == nil {
			continue
		}
		out = append(out, response.SessionWithRoomResponse{
			Session: response.SessionToResponse(session),
			Room:    response.RoomToResponse(room),
		})
	}

	return out, nil
}

func (s *movieSessionService) CreateSession(ctx context.Context, req *request.MovieSessionRequest) (*response.MovieSessionResponse, error) {
	startTime, err := utils.ParseWireTime(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parse start_time: %w", err)
	}
	endTime, err := utils.ParseWireTime(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("parse end_time: %w", err)
	}
	if !startTime.Before(endTime) {
		return nil, ErrInvalidInterval
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, repository.ErrReferenceNotFound
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, repository.ErrReferenceNotFound
	}

	// Both parents must resolve before anything is written; either
	// missing aborts the whole request.
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("check movie %s: %w", req.MovieID, err)
	}
	if movie == nil {
		return nil, repository.ErrReferenceNotFound
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("check room %s: %w", req.RoomID, err)
	}
	if room == nil {
		return nil, repository.ErrReferenceNotFound
	}

	now := time.Now()
	session := &entity.MovieSession{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		StartTime: startTime,
		EndTime:   endTime,
		MovieID:   movieID,
		RoomID:    roomID,
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	s.log.Info("Session created",
		zap.String("session_id", session.ID.String()),
		zap.String("movie_id", movieID.String()),
		zap.String("room_id", roomID.String()),
		zap.Time("start_time", startTime),
	)

	resp := response.SessionToResponse(session)
	return &resp, nil
}

func (s *movieSessionService) UpdateSession(ctx context.Context, sessionID string, req *request.MovieSessionUpdateRequest) (*response.MovieSessionResponse, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	session, err := s.repo.Session.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", sessionID, err)
	}
	if session == nil {
		return nil, repository.ErrNotFound
	}

	updated := false

	if req.StartTime != nil {
		startTime, err := utils.ParseWireTime(*req.StartTime)
		if err != nil {
			return nil, fmt.Errorf("parse start_time: %w", err)
		}
		session.StartTime = startTime
		updated = true
	}

	if req.EndTime != nil {
		endTime, err := utils.ParseWireTime(*req.EndTime)
		if err != nil {
			return nil, fmt.Errorf("parse end_time: %w", err)
		}
		session.EndTime = endTime
		updated = true
	}

	// Validate the merged interval, so a patch changing only one side
	// cannot invert it.
	if !session.StartTime.Before(session.EndTime) {
		return nil, ErrInvalidInterval
	}

	if req.MovieID != nil {
		movieID, err := uuid.Parse(*req.MovieID)
		if err != nil {
			return nil, repository.ErrReferenceNotFound
		}
		movie, err := s.repo.Movie.FindByID(ctx, movieID)
		if err != nil {
			return nil, fmt.Errorf("check movie %s: %w", *req.MovieID, err)
		}
		if movie == nil {
			return nil, repository.ErrReferenceNotFound
		}
		session.MovieID = movieID
		updated = true
	}

	if req.RoomID != nil {
		roomID, err := uuid.Parse(*req.RoomID)
		if err != nil {
			return nil, repository.ErrReferenceNotFound
		}
		room, err := s.repo.Room.FindByID(ctx, roomID)
		if err != nil {
			return nil, fmt.Errorf("check room %s: %w", *req.RoomID, err)
		}
		if room == nil {
			return nil, repository.ErrReferenceNotFound
		}
		session.RoomID = roomID
		updated = true
	}

	if updated {
		session.UpdatedAt = time.Now()
		if err := s.repo.Session.Update(ctx, session); err != nil {
			return nil, err
		}

		s.log.Info("Session updated", zap.String("session_id", sessionID))
	}

	resp := response.SessionToResponse(session)
	return &resp, nil
}

func (s *movieSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return repository.ErrNotFound
	}

	if err := s.repo.Session.Delete(ctx, id); err != nil {
		return err
	}

	return nil
}
