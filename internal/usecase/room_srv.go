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

type RoomService interface {
	GetRooms(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RoomResponse], error)
	GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error)
	GetAvailableRooms(ctx context.Context) ([]response.RoomResponse, error)
	CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID string, req *request.RoomUpdateRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) GetRooms(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RoomResponse], error) {
	rooms, err := s.repo.Room.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get rooms: %w", err)
	}

	total, err := s.repo.Room.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count rooms: %w", err)
	}

	return response.NewPaginatedResponse(response.RoomsToResponse(rooms), req.Page, req.PerPage, total), nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room %s: %w", roomID, err)
	}
	if room == nil {
		return nil, repository.ErrNotFound
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

// GetAvailableRooms lists rooms with at least one upcoming session.
func (s *roomService) GetAvailableRooms(ctx context.Context) ([]response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindWithUpcomingSessions(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("get available rooms: %w", err)
	}

	return response.RoomsToResponse(rooms), nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error) {
	// Fast-fail on a name collision; the unique index settles races.
	existing, err := s.repo.Room.FindByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check room name %q: %w", req.Name, err)
	}
	if existing != nil {
		return nil, repository.ErrDuplicateName
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:  req.Name,
		Seats: req.Seats,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, err
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("name", room.Name),
		zap.Int("seats", room.Seats),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req *request.RoomUpdateRequest) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room %s: %w", roomID, err)
	}
	if room == nil {
		return nil, repository.ErrNotFound
	}

	// Merge only the supplied fields; an empty patch is a valid no-op.
	updated := false

	if req.Name != nil && *req.Name != room.Name {
		existing, err := s.repo.Room.FindByName(ctx, *req.Name)
		if err != nil {
			return nil, fmt.Errorf("check room name %q: %w", *req.Name, err)
		}
		if existing != nil {
			return nil, repository.ErrDuplicateName
		}
		room.Name = *req.Name
		updated = true
	}

	if req.Seats != nil && *req.Seats != room.Seats {
		room.Seats = *req.Seats
		updated = true
	}

	if updated {
		room.UpdatedAt = time.Now()
		if err := s.repo.Room.Update(ctx, room); err != nil {
			return nil, err
		}

		s.log.Info("Room updated",
			zap.String("room_id", roomID),
			zap.String("name", room.Name),
		)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return repository.ErrNotFound
	}

	if err := s.repo.Room.Delete(ctx, id); err != nil {
		return err
	}

	return nil
}
