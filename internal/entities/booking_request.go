package entities

// BookingRequest carries a candidate submission from the booking form.
// All fields arrive as strings; Date is YYYY-MM-DD, times are HH:MM.
type BookingRequest struct {
	Name        string `json:"name" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	Class       string `json:"class" validate:"required"`
	Section     string `json:"section" validate:"required"`
	Description string `json:"description"`
	Email       string `json:"email" validate:"required,email"`
}
