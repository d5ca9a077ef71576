package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/utils"

	"go.uber.org/zap"
)

type HallHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewHallHandler(service usecase.CatalogService, log *zap.Logger) *HallHandler {
	return &HallHandler{
		service: service,
		log:     log.With(zap.String("handler", "hall")),
	}
}

// CreateHall handles POST /api/cinema_halls
func (h *HallHandler) CreateHall(w http.ResponseWriter, r *http.Request) {
	var req request.CinemaHallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(&req); len(errs) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	hall, err := h.service.CreateHall(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create hall")
		return
	}

	utils.ResponseCreated(w, "Cinema hall created", hall)
}

// GetHalls handles GET /api/cinema_halls
func (h *HallHandler) GetHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := h.service.GetHalls(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get halls")
		return
	}

	utils.ResponseSuccess(w, "success", halls)
}

// GetHallByID handles GET /api/cinema_halls/{id}
func (h *HallHandler) GetHallByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid cinema hall ID", nil)
		return
	}

	hall, err := h.service.GetHallByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get hall by ID")
		return
	}

	utils.ResponseSuccess(w, "success", hall)
}

// UpdateHall handles PUT /api/cinema_halls/{id}
func (h *HallHandler) UpdateHall(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid cinema hall ID", nil)
		return
	}

	var req request.CinemaHallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(&req); len(errs) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	hall, err := h.service.UpdateHall(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update hall")
		return
	}

	utils.ResponseSuccess(w, "Cinema hall updated", hall)
}

// DeleteHall handles DELETE /api/cinema_halls/{id}
func (h *HallHandler) DeleteHall(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid cinema hall ID", nil)
		return
	}

	if err := h.service.DeleteHall(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete hall")
		return
	}

	utils.ResponseNoContent(w)
}
