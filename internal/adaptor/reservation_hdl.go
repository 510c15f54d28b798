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

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// GetReservations handles GET /api/admin/reservations
func (h *ReservationHandler) GetReservations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	reservations, err := h.service.GetReservations(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "get reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// GetSessionReservations handles GET /api/sessions/{id}/reservations (public)
func (h *ReservationHandler) GetSessionReservations(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		utils.ResponseBadRequest(w, "Session ID is required", nil)
		return
	}

	reservations, err := h.service.GetSessionReservations(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, h.log, err, "get session reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// CreateReservation handles POST /api/reservations (public).
// One reservation claims one seat in one session.
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req request.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "success", reservation)
}

// UpdateReservation handles PUT /api/admin/reservations/{id}
func (h *ReservationHandler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	var req request.ReservationUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	reservation, err := h.service.UpdateReservation(r.Context(), reservationID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update reservation")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// DeleteReservation handles DELETE /api/admin/reservations/{id}
func (h *ReservationHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	if err := h.service.DeleteReservation(r.Context(), reservationID); err != nil {
		respondServiceError(w, h.log, err, "delete reservation")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
