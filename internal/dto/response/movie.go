package response

import (
	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/entity"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/utils"
)

type MovieResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Duration  *int   `json:"duration,omitempty"`
	Poster    []byte `json:"poster,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:        movie.ID.String(),
		Name:      movie.Name,
		Duration:  movie.Duration,
		Poster:    movie.Poster,
		CreatedAt: utils.FormatWireTime(movie.CreatedAt),
		UpdatedAt: utils.FormatWireTime(movie.UpdatedAt),
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = MovieToResponse(movie)
	}
	return out
}
