package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/ArtyoMKo/cinema-theater-backend/internal/dto/request"
	"github.com/ArtyoMKo/cinema-theater-backend/internal/usecase"
	"github.com/ArtyoMKo/cinema-theater-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SessionHandler struct {
	service usecase.MovieSessionService
	log     *zap.Logger
}

func NewSessionHandler(service usecase.MovieSessionService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		log:     log.With(zap.String("handler", "session")),
	}
}

// GetSessions handles GET /api/admin/sessions
func (h *SessionHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	sessions, err := h.service.GetSessions(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "get sessions")
		return
	}

	utils.ResponseSuccess(w, "success", sessions)
}

// GetUpcomingSessions handles GET /api/sessions/upcoming (public)
func (h *SessionHandler) GetUpcomingSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.GetUpcomingSessions(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "get upcoming sessions")
		return
	}

	utils.ResponseSuccess(w, "success", sessions)
}

// FilterSessions handles GET /api/sessions/filter?movie_id=&room_id= (public).
// At least one of the two query parameters must be supplied.
func (h *SessionHandler) FilterSessions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var req request.SessionFilterRequest
	if movieID := query.Get("movie_id"); movieID != "" {
		req.MovieID = &movieID
	}
	if roomID := query.Get("room_id"); roomID != "" {
		req.RoomID = &roomID
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	sessions, err := h.service.FilterSessions(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "filter sessions")
		return
	}

	utils.ResponseSuccess(w, "success", sessions)
}

// GetSessionDetail handles GET /api/sessions/{id} (public)
func (h *SessionHandler) GetSessionDetail(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		utils.ResponseBadRequest(w, "Session ID is required", nil)
		return
	}

	detail, err := h.service.GetSessionDetail(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, h.log, err, "get session detail")
		return
	}

	utils.ResponseSuccess(w, "success", detail)
}

// GetSessionsByMovie handles GET /api/sessions/by-movie/{movieID} (public)
func (h *SessionHandler) GetSessionsByMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieID")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	sessions, err := h.service.GetSessionsByMovie(r.Context(), movieID)
	if err != nil {
		respondServiceError(w, h.log, err, "get sessions by movie")
		return
	}

	utils.ResponseSuccess(w, "success", sessions)
}

// CreateSession handles POST /api/admin/sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req request.MovieSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	session, err := h.service.CreateSession(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create session")
		return
	}

	utils.ResponseCreated(w, "success", session)
}

// UpdateSession handles PUT /api/admin/sessions/{id}
func (h *SessionHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		utils.ResponseBadRequest(w, "Session ID is required", nil)
		return
	}

	var req request.MovieSessionUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	session, err := h.service.UpdateSession(r.Context(), sessionID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// DeleteSession handles DELETE /api/admin/sessions/{id}
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		utils.ResponseBadRequest(w, "Session ID is required", nil)
		return
	}

	if err := h.service.DeleteSession(r.Context(), sessionID); err != nil {
		respondServiceError(w, h.log, err, "delete session")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
