package api

import (
	"encoding/json"
	"net/http"

	apperrors "auditorium/internal/errors"

	"auditorium/internal/entities"
	"auditorium/internal/service"
)

type SessionHandler struct {
	Service *service.SessionService
}

func NewSessionHandler(svc *service.SessionService) *SessionHandler {
	return &SessionHandler{Service: svc}
}

// ListSessions returns the booked sessions, optionally sorted and
// filtered via sort_option and search query parameters.
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sortOption := entities.SortOption(r.URL.Query().Get("sort_option"))
	search := r.URL.Query().Get("search")

	sessions, err := h.Service.List(r.Context(), sortOption, search)
	if err != nil {
		writeError(w, apperrors.NewHTTPError(http.StatusInternalServerError, "Could not list sessions"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entities.SessionsList{
		Total:    len(sessions),
		Sessions: sessions,
	})
}
