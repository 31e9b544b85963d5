package dto

import (
	"time"

	"studio/internal/domains/booking/model"
	"studio/shared"
	gDto "studio/shared/dto"
	gModel "studio/shared/model"
	"studio/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	CourseID  string `json:"course_id"  validate:"required"`
	CardID    string `json:"card_id"    validate:"required"`
}

func (c *CreateBookingRequest) ToModel() model.Booking {
	return model.Booking{
		ID:        uuid.NewString(),
		StudentID: c.StudentID,
		CourseID:  c.CourseID,
		CardID:    c.CardID,
		BookedAt:  timezone.Now(),
		Status:    model.BookingStatusBooked,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type BookingResponse struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	CourseID  string    `json:"course_id"`
	CardID    string    `json:"card_id"`
	BookedAt  time.Time `json:"booked_at"`
	Status    string    `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.StudentID = model.StudentID
	r.CourseID = model.CourseID
	r.CardID = model.CardID
	r.BookedAt = model.BookedAt
	r.Status = string(model.Status)
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type CreateAttendanceRequest struct {
	BookingID   string     `json:"booking_id"    validate:"required"`
	Status      string     `json:"status"        validate:"omitempty,oneof=present absent"`
	CheckedInAt *time.Time `json:"checked_in_at" validate:"omitempty"`
}

func (c *CreateAttendanceRequest) ToModel() model.Attendance {
	status := model.AttendanceStatusAbsent
	if c.Status != "" {
		status = model.AttendanceStatus(c.Status)
	}

	checkedInAt := c.CheckedInAt
	if checkedInAt != nil {
		appTime := timezone.ToAppTime(*checkedInAt)
		checkedInAt = &appTime
	}

	return model.Attendance{
		ID:          uuid.NewString(),
		BookingID:   c.BookingID,
		Status:      status,
		CheckedInAt: checkedInAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type AttendanceResponse struct {
	ID          string     `json:"id"`
	BookingID   string     `json:"booking_id"`
	Status      string     `json:"status"`
	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`
	gDto.Metadata
}

func (r *AttendanceResponse) FromModel(model model.Attendance) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Status = string(model.Status)
	r.CheckedInAt = model.CheckedInAt
	r.Metadata.FromModel(model.Metadata)
}

type GetAttendancesResponse struct {
	Attendances []AttendanceResponse `json:"attendances"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetAttendancesResponse) FromModels(models []model.Attendance, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Attendances = make([]AttendanceResponse, len(models))
	for i, mod := range models {
		r.Attendances[i].FromModel(mod)
	}
}

// BookingEvent is the payload published to the booking event topic after a
// lifecycle transition commits.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	StudentID  string    `json:"student_id,omitempty"`
	CourseID   string    `json:"course_id,omitempty"`
	CardID     string    `json:"card_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

const (
	EventBookingBooked    = "booking.booked"
	EventBookingCancelled = "booking.cancelled"
	EventAttendanceMarked = "attendance.recorded"
	EventCourseCancelled  = "course.cancelled"
)
