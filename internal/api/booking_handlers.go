package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	apperrors "auditorium/internal/errors"

	"auditorium/internal/entities"
	"auditorium/internal/service"
)

func writeError(w http.ResponseWriter, err *apperrors.HTTPError) {
	http.Error(w, err.Message, err.Code)
}

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// SubmitBooking accepts the booking form. A slot conflict redirects back
// to the form with the candidate fields repopulated and alert=booked so
// the user can correct and resubmit without retyping.
func (h *BookingHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, apperrors.ErrBadRequest("Invalid request"))
		return
	}

	req := entities.BookingRequest{
		Name:        r.FormValue("name"),
		Title:       r.FormValue("title"),
		Date:        r.FormValue("date"),
		StartTime:   r.FormValue("start_time"),
		EndTime:     r.FormValue("end_time"),
		Class:       r.FormValue("class"),
		Section:     r.FormValue("section"),
		Description: r.FormValue("description"),
		Email:       r.FormValue("email"),
	}

	booking, err := h.Service.Submit(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrInvalidFormat), errors.Is(err, service.ErrInThePast):
			writeError(w, apperrors.ErrBadRequest(err.Error()))
		case errors.Is(err, service.ErrSlotTaken):
			http.Redirect(w, r, bookFormURL(req), http.StatusSeeOther)
		default:
			writeError(w, apperrors.NewHTTPError(http.StatusInternalServerError, "Could not create booking"))
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(booking)
}

func bookFormURL(req entities.BookingRequest) string {
	q := url.Values{}
	q.Set("name", req.Name)
	q.Set("title", req.Title)
	q.Set("start_time", req.StartTime)
	q.Set("end_time", req.EndTime)
	q.Set("date", req.Date)
	q.Set("class", req.Class)
	q.Set("section", req.Section)
	q.Set("description", req.Description)
	q.Set("alert", "booked")
	return "/book?" + q.Encode()
}
