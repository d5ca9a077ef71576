package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/utils"

	"go.uber.org/zap"
)

type ActorHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewActorHandler(service usecase.CatalogService, log *zap.Logger) *ActorHandler {
	return &ActorHandler{
		service: service,
		log:     log.With(zap.String("handler", "actor")),
	}
}

// CreateActor handles POST /api/actors
func (h *ActorHandler) CreateActor(w http.ResponseWriter, r *http.Request) {
	var req request.ActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(&req); len(errs) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	actor, err := h.service.CreateActor(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create actor")
		return
	}

	utils.ResponseCreated(w, "Actor created", actor)
}

// GetActors handles GET /api/actors
func (h *ActorHandler) GetActors(w http.ResponseWriter, r *http.Request) {
	actors, err := h.service.GetActors(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get actors")
		return
	}

	utils.ResponseSuccess(w, "success", actors)
}

// GetActorByID handles GET /api/actors/{id}
func (h *ActorHandler) GetActorByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid actor ID", nil)
		return
	}

	actor, err := h.service.GetActorByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get actor by ID")
		return
	}

	utils.ResponseSuccess(w, "success", actor)
}

// UpdateActor handles PUT /api/actors/{id}
func (h *ActorHandler) UpdateActor(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid actor ID", nil)
		return
	}

	var req request.ActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(&req); len(errs) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	actor, err := h.service.UpdateActor(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update actor")
		return
	}

	utils.ResponseSuccess(w, "Actor updated", actor)
}

// DeleteActor handles DELETE /api/actors/{id}
func (h *ActorHandler) DeleteActor(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid actor ID", nil)
		return
	}

	if err := h.service.DeleteActor(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete actor")
		return
	}

	utils.ResponseNoContent(w)
}
