package response

import (
	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/entity"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/utils"
)

type MovieSessionResponse struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	MovieID   string `json:"movie_id"`
	RoomID    string `json:"room_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// SessionDetailResponse is the session read model: the session with its
// room, movie, reservations and the seat availability computed from them.
type SessionDetailResponse struct {
	Session        MovieSessionResponse  `json:"session"`
	Room           RoomResponse          `json:"room"`
	Movie          MovieResponse         `json:"movie"`
	Reservations   []ReservationResponse `json:"reservations"`
	ReservedSeats  []int                 `json:"reserved_seats"`
	AvailableSeats []int                 `json:"available_seats"`
}

// SessionWithRoomResponse pairs an upcoming session with the room it
// plays in, for the by-movie listing.
type SessionWithRoomResponse struct {
	Session MovieSessionResponse `json:"session"`
	Room    RoomResponse         `json:"room"`
}

func SessionToResponse(session *entity.MovieSession) MovieSessionResponse {
	return MovieSessionResponse{
		ID:        session.ID.String(),
		StartTime: utils.FormatWireTime(session.StartTime),
		EndTime:   utils.FormatWireTime(session.EndTime),
		MovieID:   session.MovieID.String(),
		RoomID:    session.RoomID.String(),
		CreatedAt: utils.FormatWireTime(session.CreatedAt),
		UpdatedAt: utils.FormatWireTime(session.UpdatedAt),
	}
}

func SessionsToResponse(sessions []*entity.MovieSession) []MovieSessionResponse {
	out := make([]MovieSessionResponse, len(sessions))
	for i, session := range sessions {
		out[i] = SessionToResponse(session)
	}
	return out
}
