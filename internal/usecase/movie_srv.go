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

type MovieService interface {
	GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	GetAvailableMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMoviesByRoom(ctx context.Context, roomID string) ([]response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	movies, err := s.repo.Movie.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}

	total, err := s.repo.Movie.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count movies: %w", err)
	}

	return response.NewPaginatedResponse(response.MoviesToResponse(movies), req.Page, req.PerPage, total), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie %s: %w", movieID, err)
	}
	if movie == nil {
		return nil, repository.ErrNotFound
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// GetAvailableMovies lists movies that have at least one session.
func (s *movieService) GetAvailableMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindWithSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("get available movies: %w", err)
	}

	return response.MoviesToResponse(movies), nil
}

// GetMoviesByRoom lists the distinct movies screened in a room.
func (s *movieService) GetMoviesByRoom(ctx context.Context, roomID string) ([]response.MovieResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	movies, err := s.repo.Movie.FindByRoomID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movies by room %s: %w", roomID, err)
	}

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	existing, err := s.repo.Movie.FindByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check movie name %q: %w", req.Name, err)
	}
	if existing != nil {
		return nil, repository.ErrDuplicateName
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		Duration: req.Duration,
		Poster:   req.Poster,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, err
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("name", movie.Name),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie %s: %w", movieID, err)
	}
	if movie == nil {
		return nil, repository.ErrNotFound
	}

	updated := false

	if req.Name != nil && *req.Name != movie.Name {
		existing, err := s.repo.Movie.FindByName(ctx, *req.Name)
		if err != nil {
			return nil, fmt.Errorf("check movie name %q: %w", *req.Name, err)
		}
		if existing != nil {
			return nil, repository.ErrDuplicateName
		}
		movie.Name = *req.Name
		updated = true
	}

	if req.Duration != nil {
		movie.Duration = req.Duration
		updated = true
	}

	if req.Poster != nil {
		movie.Poster = req.Poster
		updated = true
	}

	if updated {
		movie.UpdatedAt = time.Now()
		if err := s.repo.Movie.Update(ctx, movie); err != nil {
			return nil, err
		}

		s.log.Info("Movie updated",
			zap.String("movie_id", movieID),
			zap.String("name", movie.Name),
		)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return repository.ErrNotFound
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		return err
	}

	return nil
}
