package db

import "time"

// Booking is the persisted record of an accepted auditorium session.
// Duration is derived once at acceptance and never recomputed.
type Booking struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Title       string    `json:"title" bson:"title"`
	Date        string    `json:"date" bson:"date"`
	StartTime   string    `json:"start_time" bson:"start_time"`
	EndTime     string    `json:"end_time" bson:"end_time"`
	Class       string    `json:"class" bson:"class"`
	Section     string    `json:"section" bson:"section"`
	Description string    `json:"description" bson:"description"`
	Email       string    `json:"email" bson:"email"`
	Duration    int       `json:"duration" bson:"duration"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
