package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	apperrors "auditorium/internal/errors"

	"auditorium/internal/repository"
	"auditorium/internal/service"
)

type AdminHandler struct {
	Service *service.BookingService
}

func NewAdminHandler(svc *service.BookingService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Service.ListAll(r.Context())
	if err != nil {
		writeError(w, apperrors.NewHTTPError(http.StatusInternalServerError, "Database error"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bookings)
}

// RemoveBooking deletes the submission at the given position of the
// current listing order.
func (h *AdminHandler) RemoveBooking(w http.ResponseWriter, r *http.Request) {
	indexStr := mux.Vars(r)["index"]
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		writeError(w, apperrors.ErrBadRequest("Invalid submission index"))
		return
	}
	if err := h.Service.RemoveAt(r.Context(), index); err != nil {
		if errors.Is(err, repository.ErrInvalidIndex) {
			writeError(w, apperrors.ErrBadRequest("Invalid submission index"))
			return
		}
		writeError(w, apperrors.NewHTTPError(http.StatusInternalServerError, "Could not remove booking"))
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Booking removed"})
}
