package request

type RoomRequest struct {
	Name  string `json:"name" validate:"required,min=3,max=120"`
	Seats int    `json:"seats" validate:"required,gt=0,lt=1000"`
}

type RoomUpdateRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=3,max=120"`
	Seats *int    `json:"seats,omitempty" validate:"omitempty,gt=0,lt=1000"`
}
