package dto

import (
	"studio/internal/domains/cancellation/model"
	"studio/shared"
	gDto "studio/shared/dto"
	gModel "studio/shared/model"
	"studio/shared/timezone"

	"github.com/google/uuid"
)

type CreateCourseCancellationRequest struct {
	CourseID    string `json:"course_id"    validate:"required"`
	Reason      string `json:"reason"       validate:"required,max=500"`
	RequestedBy string `json:"requested_by" validate:"required,max=100"`
}

func (c *CreateCourseCancellationRequest) ToModel() model.CourseCancellation {
	status := model.CancellationStatusPending
	if c.RequestedBy == model.RequestedByAdmin {
		status = model.CancellationStatusApproved
	}

	return model.CourseCancellation{
		ID:          uuid.NewString(),
		CourseID:    c.CourseID,
		Reason:      c.Reason,
		RequestedBy: c.RequestedBy,
		Status:      status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type CourseCancellationResponse struct {
	ID          string `json:"id"`
	CourseID    string `json:"course_id"`
	Reason      string `json:"reason"`
	RequestedBy string `json:"requested_by"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *CourseCancellationResponse) FromModel(model model.CourseCancellation) {
	r.ID = model.ID
	r.CourseID = model.CourseID
	r.Reason = model.Reason
	r.RequestedBy = model.RequestedBy
	r.Status = string(model.Status)
	r.Metadata.FromModel(model.Metadata)
}

type GetCourseCancellationsResponse struct {
	CourseCancellations []CourseCancellationResponse `json:"course_cancellations"`
	TotalPage           int                          `json:"total_page"`
	TotalData           int                          `json:"total_data"`
}

func (r *GetCourseCancellationsResponse) FromModels(models []model.CourseCancellation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.CourseCancellations = make([]CourseCancellationResponse, len(models))
	for i, mod := range models {
		r.CourseCancellations[i].FromModel(mod)
	}
}
