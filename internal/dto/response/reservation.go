package response

import (
	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/entity"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/utils"
)

type ReservationResponse struct {
	ID        string `json:"id"`
	Seat      int    `json:"seat"`
	Contact   string `json:"contact"`
	SessionID string `json:"session_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func ReservationToResponse(reservation *entity.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        reservation.ID.String(),
		Seat:      reservation.Seat,
		Contact:   reservation.Contact,
		SessionID: reservation.SessionID.String(),
		CreatedAt: utils.FormatWireTime(reservation.CreatedAt),
		UpdatedAt: utils.FormatWireTime(reservation.UpdatedAt),
	}
}

func ReservationsToResponse(reservations []*entity.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		out[i] = ReservationToResponse(reservation)
	}
	return out
}
