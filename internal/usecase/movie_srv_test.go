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

func TestCreateMovieDuplicateName(t *testing.T) {
	repo := newTestRepository()
	repo.Movie = &fakeMovieRepo{
		FindByNameFn: func(ctx context.Context, name string) (*entity.Movie, error) {
			return &entity.Movie{Base: entity.Base{ID: uuid.New()}, Name: name}, nil
		},
	}

	svc := NewMovieService(repo, zap.NewNop())

	_, err := svc.CreateMovie(context.Background(), &request.MovieRequest{Name: "Alien"})
	if !errors.Is(err, repository.ErrDuplicateName) {
		t.Fatalf("err = %v, want ErrDuplicateName", err)
	}
}

func TestCreateMovieOptionalFields(t *testing.T) {
	var created *entity.Movie

	repo := newTestRepository()
	repo.Movie = &fakeMovieRepo{
		CreateFn: func(ctx context.Context, movie *entity.Movie) error {
			created = movie
			return nil
		},
	}

	svc := NewMovieService(repo, zap.NewNop())

	resp, err := svc.CreateMovie(context.Background(), &request.MovieRequest{Name: "Alien"})
	if err != nil {
		t.Fatalf("create movie: %v", err)
	}
	if created == nil {
		t.Fatal("movie was not persisted")
	}
	if created.Duration != nil {
		t.Errorf("duration = %v, want nil", created.Duration)
	}
	if resp.Name != "Alien" {
		t.Errorf("name = %q, want %q", resp.Name, "Alien")
	}
}

func TestUpdateMovieUnknownID(t *testing.T) {
	svc := NewMovieService(newTestRepository(), zap.NewNop())

	_, err := svc.UpdateMovie(context.Background(), uuid.NewString(), &request.MovieUpdateRequest{
		Name: strptr("Aliens"),
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateMoviePatchesDuration(t *testing.T) {
	movieID := uuid.New()

	var updatedMovie *entity.Movie

	repo := newTestRepository()
	repo.Movie = &fakeMovieRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
			return &entity.Movie{Base: entity.Base{ID: id}, Name: "Alien", Duration: intptr(117)}, nil
		},
		UpdateFn: func(ctx context.Context, movie *entity.Movie) error {
			updatedMovie = movie
			return nil
		},
	}

	svc := NewMovieService(repo, zap.NewNop())

	resp, err := svc.UpdateMovie(context.Background(), movieID.String(), &request.MovieUpdateRequest{
		Duration: intptr(137),
	})
	if err != nil {
		t.Fatalf("update movie: %v", err)
	}
	if updatedMovie == nil {
		t.Fatal("movie was not persisted")
	}
	if resp.Name != "Alien" {
		t.Errorf("name = %q, want unchanged %q", resp.Name, "Alien")
	}
	if resp.Duration == nil || *resp.Duration != 137 {
		t.Errorf("duration = %v, want 137", resp.Duration)
	}
}

func TestGetMoviesByRoomMalformedID(t *testing.T) {
	svc := NewMovieService(newTestRepository(), zap.NewNop())

	_, err := svc.GetMoviesByRoom(context.Background(), "room-1")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
