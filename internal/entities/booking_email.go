package entities

type BookingEmailData struct {
	Name        string
	Title       string
	StartTime   string
	EndTime     string
	Date        string
	Class       string
	Section     string
	Description string
	Duration    int
}
