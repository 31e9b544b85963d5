package model

import (
	"time"

	"studio/shared/model"
)

const (
	BookingTableName  = "bookings"
	BookingEntityName = "booking"

	AttendanceTableName  = "attendances"
	AttendanceEntityName = "attendance"

	FieldID        = "id"
	FieldStudentID = "student_id"
	FieldCourseID  = "course_id"
	FieldBookingID = "booking_id"
	FieldStatus    = "status"
)

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusAttended  BookingStatus = "attended"
)

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
)

// Booking ties a student's card to a course seat. Status moves one way:
// booked to cancelled or booked to attended, never back.
type Booking struct {
	ID        string        `db:"id"`
	StudentID string        `db:"student_id"`
	CourseID  string        `db:"course_id"`
	CardID    string        `db:"card_id"`
	BookedAt  time.Time     `db:"booked_at"`
	Status    BookingStatus `db:"status"`
	model.Metadata
}

type Attendance struct {
	ID          string           `db:"id"`
	BookingID   string           `db:"booking_id"`
	Status      AttendanceStatus `db:"status"`
	CheckedInAt *time.Time       `db:"checked_in_at"`
	model.Metadata
}
