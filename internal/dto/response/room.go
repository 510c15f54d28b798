package response

import (
	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/entity"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/utils"
)

type RoomResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Seats     int    `json:"seats"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:        room.ID.String(),
		Name:      room.Name,
		Seats:     room.Seats,
		CreatedAt: utils.FormatWireTime(room.CreatedAt),
		UpdatedAt: utils.FormatWireTime(room.UpdatedAt),
	}
}

func RoomsToResponse(rooms []*entity.Room) []RoomResponse {
	out := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		out[i] = RoomToResponse(room)
	}
	return out
}
