package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/utils"

	"go.uber.org/zap"
)

type SessionHandler struct {
	service usecase.SessionService
	log     *zap.Logger
}

func NewSessionHandler(service usecase.SessionService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		log:     log.With(zap.String("handler", "session")),
	}
}

// CreateSession handles POST /api/movie_sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req request.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(&req); len(errs) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	session, err := h.service.CreateSession(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create session")
		return
	}

	utils.ResponseCreated(w, "Movie session created", session)
}

// GetSessions handles GET /api/movie_sessions with optional date and
// movie filters. Each listed session carries its remaining seat count.
func (h *SessionHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	filter, err := parseSessionFilter(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	sessions, err := h.service.GetSessions(r.Context(), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "get sessions")
		return
	}

	utils.ResponseSuccess(w, "success", sessions)
}

// GetSessionByID handles GET /api/movie_sessions/{id}
func (h *SessionHandler) GetSessionByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie session ID", nil)
		return
	}

	session, err := h.service.GetSessionByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get session by ID")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// UpdateSession handles PUT /api/movie_sessions/{id}
func (h *SessionHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie session ID", nil)
		return
	}

	var req request.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(&req); len(errs) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	session, err := h.service.UpdateSession(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update session")
		return
	}

	utils.ResponseSuccess(w, "Movie session updated", session)
}

// DeleteSession handles DELETE /api/movie_sessions/{id}
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie session ID", nil)
		return
	}

	if err := h.service.DeleteSession(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete session")
		return
	}

	utils.ResponseNoContent(w)
}

func parseSessionFilter(r *http.Request) (request.SessionFilter, error) {
	query := r.URL.Query()

	var filter request.SessionFilter

	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, errors.New("invalid date filter, expected YYYY-MM-DD")
		}
		filter.Date = &date
	}

	if raw := query.Get("movie"); raw != "" {
		ids, err := utils.ParseIDList(raw)
		if err != nil {
			return filter, errInvalidFilter("movie")
		}
		filter.MovieIDs = ids
	}

	return filter, nil
}
