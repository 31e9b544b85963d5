package model

import (
	"time"

	"studio/shared/model"
)

const (
	CourseTypeTableName  = "course_types"
	CourseTypeEntityName = "course_type"

	CourseTableName  = "courses"
	CourseEntityName = "course"

	FieldID     = "id"
	FieldStatus = "status"
)

type CourseStatus string

const (
	CourseStatusScheduled CourseStatus = "scheduled"
	CourseStatusCancelled CourseStatus = "cancelled"
)

type CourseType struct {
	ID              string `db:"id"`
	Name            string `db:"name"`
	Audience        string `db:"audience"`
	DurationMinutes int    `db:"duration_minutes"`
	Description     string `db:"description"`
	DefaultCapacity int    `db:"default_capacity"`
	model.Metadata
}

type Course struct {
	ID           string       `db:"id"`
	StoreID      string       `db:"store_id"`
	RoomID       string       `db:"room_id"`
	TeacherID    string       `db:"teacher_id"`
	CourseTypeID string       `db:"course_type_id"`
	StartsAt     time.Time    `db:"starts_at"`
	Status       CourseStatus `db:"status"`
	Capacity     int          `db:"capacity"`
	AllowBooking bool         `db:"allow_booking"`
	model.Metadata
}

// Bookable reports whether new bookings may be taken against the course.
func (c Course) Bookable() bool {
	return c.Status == CourseStatusScheduled && c.AllowBooking
}
