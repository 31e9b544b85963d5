package dto

import (
	"time"

	"studio/internal/domains/membership/model"
	"studio/shared"
	gDto "studio/shared/dto"
	gModel "studio/shared/model"
	"studio/shared/timezone"

	"github.com/google/uuid"
)

type CreateMemberTypeRequest struct {
	Name        string `json:"name"         validate:"required,max=100"`
	Audience    string `json:"audience"     validate:"required,max=50"`
	PricingType string `json:"pricing_type" validate:"required,max=50"`
	TotalUses   *int   `json:"total_uses"   validate:"omitempty,gte=1"`
	ValidDays   int    `json:"valid_days"   validate:"required,gte=1"`
	Price       int    `json:"price"        validate:"gte=0"`
}

func (c *CreateMemberTypeRequest) ToModel() model.MemberType {
	return model.MemberType{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Audience:    c.Audience,
		PricingType: c.PricingType,
		TotalUses:   c.TotalUses,
		ValidDays:   c.ValidDays,
		Price:       c.Price,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type MemberTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Audience    string `json:"audience"`
	PricingType string `json:"pricing_type"`
	TotalUses   *int   `json:"total_uses,omitempty"`
	ValidDays   int    `json:"valid_days"`
	Price       int    `json:"price"`
	gDto.Metadata
}

func (r *MemberTypeResponse) FromModel(model model.MemberType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Audience = model.Audience
	r.PricingType = model.PricingType
	r.TotalUses = model.TotalUses
	r.ValidDays = model.ValidDays
	r.Price = model.Price
	r.Metadata.FromModel(model.Metadata)
}

type GetMemberTypesResponse struct {
	MemberTypes []MemberTypeResponse `json:"member_types"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetMemberTypesResponse) FromModels(models []model.MemberType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.MemberTypes = make([]MemberTypeResponse, len(models))
	for i, mod := range models {
		r.MemberTypes[i].FromModel(mod)
	}
}

type CreateStudentRequest struct {
	Name         string  `json:"name"          validate:"required,max=100"`
	Phone        string  `json:"phone"         validate:"required,max=30"`
	Gender       string  `json:"gender"        validate:"required,max=20"`
	Age          int     `json:"age"           validate:"required,gte=1"`
	StudentType  string  `json:"student_type"  validate:"required,max=50"`
	GuardianName *string `json:"guardian_name" validate:"omitempty,max=100"`
}

func (c *CreateStudentRequest) ToModel() model.Student {
	return model.Student{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Phone:        c.Phone,
		Gender:       c.Gender,
		Age:          c.Age,
		StudentType:  c.StudentType,
		GuardianName: c.GuardianName,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type StudentResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Gender       string  `json:"gender"`
	Age          int     `json:"age"`
	StudentType  string  `json:"student_type"`
	GuardianName *string `json:"guardian_name,omitempty"`
	gDto.Metadata
}

func (r *StudentResponse) FromModel(model model.Student) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
	r.Gender = model.Gender
	r.Age = model.Age
	r.StudentType = model.StudentType
	r.GuardianName = model.GuardianName
	r.Metadata.FromModel(model.Metadata)
}

type GetStudentsResponse struct {
	Students  []StudentResponse `json:"students"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetStudentsResponse) FromModels(models []model.Student, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Students = make([]StudentResponse, len(models))
	for i, mod := range models {
		r.Students[i].FromModel(mod)
	}
}

type CreateStudentCardRequest struct {
	StudentID     string    `json:"student_id"     validate:"required"`
	MemberTypeID  string    `json:"member_type_id" validate:"required"`
	ValidUntil    time.Time `json:"valid_until"    validate:"required"`
	RemainingUses *int      `json:"remaining_uses" validate:"omitempty,gte=0"`
}

func (c *CreateStudentCardRequest) ToModel() model.StudentCard {
	return model.StudentCard{
		ID:            uuid.NewString(),
		StudentID:     c.StudentID,
		MemberTypeID:  c.MemberTypeID,
		ValidUntil:    timezone.ToAppTime(c.ValidUntil),
		RemainingUses: c.RemainingUses,
		Active:        true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type StudentCardResponse struct {
	ID            string    `json:"id"`
	StudentID     string    `json:"student_id"`
	MemberTypeID  string    `json:"member_type_id"`
	ValidUntil    time.Time `json:"valid_until"`
	RemainingUses *int      `json:"remaining_uses,omitempty"`
	Active        bool      `json:"active"`
	gDto.Metadata
}

func (r *StudentCardResponse) FromModel(model model.StudentCard) {
	r.ID = model.ID
	r.StudentID = model.StudentID
	r.MemberTypeID = model.MemberTypeID
	r.ValidUntil = model.ValidUntil
	r.RemainingUses = model.RemainingUses
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetStudentCardsResponse struct {
	StudentCards []StudentCardResponse `json:"student_cards"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetStudentCardsResponse) FromModels(models []model.StudentCard, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.StudentCards = make([]StudentCardResponse, len(models))
	for i, mod := range models {
		r.StudentCards[i].FromModel(mod)
	}
}
