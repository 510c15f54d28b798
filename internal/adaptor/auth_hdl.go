package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/ArtyoMKo/cinema-theater-backend/internal/dto/request"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/usecase"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	auth, err := h.service.Login(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "success", auth)
}

// Me handles GET /api/auth/me (authenticated)
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetAdminIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	admin, err := h.service.GetCurrentAdmin(r.Context(), adminID)
	if err != nil {
		respondServiceError(w, h.log, err, "get current admin")
		return
	}

	utils.ResponseSuccess(w, "success", admin)
}

// CreateAdmin handles POST /api/admin/admins
func (h *AuthHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req request.AdminCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	admin, err := h.service.CreateAdmin(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create admin")
		return
	}

	utils.ResponseCreated(w, "success", admin)
}
