package request

// Session times are accepted in the "DD-MM-YYYY HH:MM" wire format and
// parsed by the service layer.
type MovieSessionRequest struct {
	StartTime string `json:"start_time" validate:"required,datetime=02-01-2006 15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=02-01-2006 15:04"`
	MovieID   string `json:"movie_id" validate:"required,uuid4"`
	RoomID    string `json:"room_id" validate:"required,uuid4"`
}

type MovieSessionUpdateRequest struct {
	StartTime *string `json:"start_time,omitempty" validate:"omitempty,datetime=02-01-2006 15:04"`
	EndTime   *string `json:"end_time,omitempty" validate:"omitempty,datetime=02-01-2006 15:04"`
	MovieID   *string `json:"movie_id,omitempty" validate:"omitempty,uuid4"`
	RoomID    *string `json:"room_id,omitempty" validate:"omitempty,uuid4"`
}

// SessionFilterRequest carries the optional movie/room narrowing of the
// session listing. Supplying neither is rejected with a missing-parameter
// error instead of returning the whole table.
type SessionFilterRequest struct {
	MovieID *string `json:"movie_id,omitempty" validate:"omitempty,uuid4"`
	RoomID  *string `json:"room_id,omitempty" validate:"omitempty,uuid4"`
}
