package request

type ReservationRequest struct {
	Seat      int    `json:"seat" validate:"required,gt=0,lt=1500"`
	Contact   string `json:"contact" validate:"required,min=1"`
	SessionID string `json:"session_id" validate:"required,uuid4"`
}

type ReservationUpdateRequest struct {
	Seat      *int    `json:"seat,omitempty" validate:"omitempty,gt=0,lt=1500"`
	Contact   *string `json:"contact,omitempty" validate:"omitempty,min=1"`
	SessionID *string `json:"session_id,omitempty" validate:"omitempty,uuid4"`
}
