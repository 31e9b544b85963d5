package dto

import (
	"studio/internal/domains/teacher/model"
	"studio/shared"
	gDto "studio/shared/dto"
	gModel "studio/shared/model"
	"studio/shared/timezone"

	"github.com/google/uuid"
)

type CreateTeacherRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Phone       string `json:"phone"       validate:"required,max=30"`
	Specialties string `json:"specialties" validate:"required,max=200"`
}

func (c *CreateTeacherRequest) ToModel() model.Teacher {
	return model.Teacher{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Phone:       c.Phone,
		Specialties: c.Specialties,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type TeacherResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Specialties string `json:"specialties"`
	gDto.Metadata
}

func (r *TeacherResponse) FromModel(model model.Teacher) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
	r.Specialties = model.Specialties
	r.Metadata.FromModel(model.Metadata)
}

type GetTeachersResponse struct {
	Teachers  []TeacherResponse `json:"teachers"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetTeachersResponse) FromModels(models []model.Teacher, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Teachers = make([]TeacherResponse, len(models))
	for i, mod := range models {
		r.Teachers[i].FromModel(mod)
	}
}
