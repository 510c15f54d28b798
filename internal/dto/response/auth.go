package response

import (
	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/entity"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/utils"
	"time"
)

type AuthResponse struct {
	AdminID   string `json:"admin_id"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

type AdminResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// Helper converters
func AdminToResponse(admin *entity.Admin) AdminResponse {
	return AdminResponse{
		ID:        admin.ID.String(),
		Email:     admin.Email,
		Username:  admin.Username,
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Role:      string(admin.Role),
		CreatedAt: utils.FormatWireTime(admin.CreatedAt),
	}
}

func AuthToResponse(admin *entity.Admin, token string, expiresAt time.Time) AuthResponse {
	return AuthResponse{
		AdminID:   admin.ID.String(),
		Token:     token,
		ExpiresAt: utils.FormatWireTime(expiresAt),
		Email:     admin.Email,
		Username:  admin.Username,
		Role:      string(admin.Role),
	}
}
