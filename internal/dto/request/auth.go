package request

type LoginRequest struct {
	// Username accepts either the username or the email address.
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type AdminCreateRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required,min=3,max=50"`
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Password  string `json:"password" validate:"required,min=6"`
}
