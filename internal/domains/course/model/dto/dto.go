package dto

import (
	"time"

	"studio/internal/domains/course/model"
	"studio/shared"
	gDto "studio/shared/dto"
	gModel "studio/shared/model"
	"studio/shared/timezone"

	"github.com/google/uuid"
)

type CreateCourseTypeRequest struct {
	Name            string `json:"name"             validate:"required,max=100"`
	Audience        string `json:"audience"         validate:"required,max=50"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gte=1"`
	Description     string `json:"description"      validate:"required,max=500"`
	DefaultCapacity int    `json:"default_capacity" validate:"required,gte=1"`
}

func (c *CreateCourseTypeRequest) ToModel() model.CourseType {
	return model.CourseType{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Audience:        c.Audience,
		DurationMinutes: c.DurationMinutes,
		Description:     c.Description,
		DefaultCapacity: c.DefaultCapacity,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type CourseTypeResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Audience        string `json:"audience"`
	DurationMinutes int    `json:"duration_minutes"`
	Description     string `json:"description"`
	DefaultCapacity int    `json:"default_capacity"`
	gDto.Metadata
}

func (r *CourseTypeResponse) FromModel(model model.CourseType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Audience = model.Audience
	r.DurationMinutes = model.DurationMinutes
	r.Description = model.Description
	r.DefaultCapacity = model.DefaultCapacity
	r.Metadata.FromModel(model.Metadata)
}

type GetCourseTypesResponse struct {
	CourseTypes []CourseTypeResponse `json:"course_types"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetCourseTypesResponse) FromModels(models []model.CourseType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.CourseTypes = make([]CourseTypeResponse, len(models))
	for i, mod := range models {
		r.CourseTypes[i].FromModel(mod)
	}
}

type CreateCourseRequest struct {
	StoreID      string    `json:"store_id"       validate:"required"`
	RoomID       string    `json:"room_id"        validate:"required"`
	TeacherID    string    `json:"teacher_id"     validate:"required"`
	CourseTypeID string    `json:"course_type_id" validate:"required"`
	StartsAt     time.Time `json:"starts_at"      validate:"required"`
	Capacity     int       `json:"capacity"       validate:"required,gte=0"`
	AllowBooking *bool     `json:"allow_booking"  validate:"omitempty"`
}

func (c *CreateCourseRequest) ToModel() model.Course {
	allowBooking := true
	if c.AllowBooking != nil {
		allowBooking = *c.AllowBooking
	}

	return model.Course{
		ID:           uuid.NewString(),
		StoreID:      c.StoreID,
		RoomID:       c.RoomID,
		TeacherID:    c.TeacherID,
		CourseTypeID: c.CourseTypeID,
		StartsAt:     timezone.ToAppTime(c.StartsAt),
		Status:       model.CourseStatusScheduled,
		Capacity:     c.Capacity,
		AllowBooking: allowBooking,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type CourseResponse struct {
	ID           string    `json:"id"`
	StoreID      string    `json:"store_id"`
	RoomID       string    `json:"room_id"`
	TeacherID    string    `json:"teacher_id"`
	CourseTypeID string    `json:"course_type_id"`
	StartsAt     time.Time `json:"starts_at"`
	Status       string    `json:"status"`
	Capacity     int       `json:"capacity"`
	AllowBooking bool      `json:"allow_booking"`
	gDto.Metadata
}

func (r *CourseResponse) FromModel(model model.Course) {
	r.ID = model.ID
	r.StoreID = model.StoreID
	r.RoomID = model.RoomID
	r.TeacherID = model.TeacherID
	r.CourseTypeID = model.CourseTypeID
	r.StartsAt = model.StartsAt
	r.Status = string(model.Status)
	r.Capacity = model.Capacity
	r.AllowBooking = model.AllowBooking
	r.Metadata.FromModel(model.Metadata)
}

type GetCoursesResponse struct {
	Courses   []CourseResponse `json:"courses"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetCoursesResponse) FromModels(models []model.Course, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Courses = make([]CourseResponse, len(models))
	for i, mod := range models {
		r.Courses[i].FromModel(mod)
	}
}
