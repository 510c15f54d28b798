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

func TestCreateRoomDuplicateName(t *testing.T) {
	repo := newTestRepository()
	repo.Room = &fakeRoomRepo{
		FindByNameFn: func(ctx context.Context, name string) (*entity.Room, error) {
			return &entity.Room{Base: entity.Base{ID: uuid.New()}, Name: name, Seats: 10}, nil
		},
	}

	svc := NewRoomService(repo, zap.NewNop())

	_, err := svc.CreateRoom(context.Background(), &request.RoomRequest{Name: "Room 1", Seats: 10})
	if !errors.Is(err, repository.ErrDuplicateName) {
		t.Fatalf("err = %v, want ErrDuplicateName", err)
	}
}

func TestCreateRoom(t *testing.T) {
	var created *entity.Room

	repo := newTestRepository()
	repo.Room = &fakeRoomRepo{
		CreateFn: func(ctx context.Context, room *entity.Room) error {
			created = room
			return nil
		},
	}

	svc := NewRoomService(repo, zap.NewNop())

	resp, err := svc.CreateRoom(context.Background(), &request.RoomRequest{Name: "Room 1", Seats: 15})
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	if created == nil {
		t.Fatal("room was not persisted")
	}
	if created.ID == uuid.Nil {
		t.Error("room id was not assigned")
	}
	if resp.Name != "Room 1" || resp.Seats != 15 {
		t.Errorf("response = %q/%d, want Room 1/15", resp.Name, resp.Seats)
	}
}

func TestUpdateRoomMergesOnlySuppliedFields(t *testing.T) {
	roomID := uuid.New()

	var updated *entity.Room

	repo := newTestRepository()
	repo.Room = &fakeRoomRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
			return &entity.Room{Base: entity.Base{ID: id}, Name: "Room 1", Seats: 10}, nil
		},
		UpdateFn: func(ctx context.Context, room *entity.Room) error {
			updated = room
			return nil
		},
	}

	svc := NewRoomService(repo, zap.NewNop())

	resp, err := svc.UpdateRoom(context.Background(), roomID.String(), &request.RoomUpdateRequest{
		Seats: intptr(25),
	})
	if err != nil {
		t.Fatalf("update room: %v", err)
	}
	if updated == nil {
		t.Fatal("room was not persisted")
	}
	if resp.Name != "Room 1" {
		t.Errorf("name = %q, want unchanged %q", resp.Name, "Room 1")
	}
	if resp.Seats != 25 {
		t.Errorf("seats = %d, want 25", resp.Seats)
	}
}

func TestUpdateRoomNameCollision(t *testing.T) {
	roomID := uuid.New()

	repo := newTestRepository()
	repo.Room = &fakeRoomRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
			return &entity.Room{Base: entity.Base{ID: id}, Name: "Room 1", Seats: 10}, nil
		},
		FindByNameFn: func(ctx context.Context, name string) (*entity.Room, error) {
			return &entity.Room{Base: entity.Base{ID: uuid.New()}, Name: name, Seats: 20}, nil
		},
	}

	svc := NewRoomService(repo, zap.NewNop())

	_, err := svc.UpdateRoom(context.Background(), roomID.String(), &request.RoomUpdateRequest{
		Name: strptr("Room 2"),
	})
	if !errors.Is(err, repository.ErrDuplicateName) {
		t.Fatalf("err = %v, want ErrDuplicateName", err)
	}
}

func TestGetRoomByIDMalformedID(t *testing.T) {
	svc := NewRoomService(newTestRepository(), zap.NewNop())

	_, err := svc.GetRoomByID(context.Background(), "42")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetRoomsPagination(t *testing.T) {
	var gotLimit, gotOffset int

	repo := newTestRepository()
	repo.Room = &fakeRoomRepo{
		FindAllFn: func(ctx context.Context, limit, offset int) ([]*entity.Room, error) {
			gotLimit, gotOffset = limit, offset
			return nil, nil
		},
		CountAllFn: func(ctx context.Context) (int64, error) {
			return 42, nil
		},
	}

	svc := NewRoomService(repo, zap.NewNop())

	resp, err := svc.GetRooms(context.Background(), &request.PaginatedRequest{Page: 3, PerPage: 10})
	if err != nil {
		t.Fatalf("get rooms: %v", err)
	}
	if gotLimit != 10 || gotOffset != 20 {
		t.Errorf("limit/offset = %d/%d, want 10/20", gotLimit, gotOffset)
	}
	if resp.Pagination.Total != 42 {
		t.Errorf("total = %d, want 42", resp.Pagination.Total)
	}
	if resp.Pagination.TotalPages != 5 {
		t.Errorf("total pages = %d, want 5", resp.Pagination.TotalPages)
	}
}
