package request

type MovieRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=120"`
	Duration *int   `json:"duration,omitempty" validate:"omitempty,gt=0"`
	Poster   []byte `json:"poster,omitempty"`
}

type MovieUpdateRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Duration *int    `json:"duration,omitempty" validate:"omitempty,gt=0"`
	Poster   []byte  `json:"poster,omitempty"`
}
