package dto

import (
	"studio/internal/domains/store/model"
	"studio/shared"
	gDto "studio/shared/dto"
	gModel "studio/shared/model"
	"studio/shared/timezone"

	"github.com/google/uuid"
)

type CreateStoreRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Address string `json:"address" validate:"required,max=200"`
	Phone   string `json:"phone"   validate:"required,max=30"`
	Hours   string `json:"hours"   validate:"required,max=100"`
	Status  string `json:"status"  validate:"omitempty,oneof=open closed"`
}

func (c *CreateStoreRequest) ToModel() model.Store {
	status := model.StoreStatusOpen
	if c.Status != "" {
		status = model.StoreStatus(c.Status)
	}

	return model.Store{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
		Hours:   c.Hours,
		Status:  status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type StoreResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Hours   string `json:"hours"`
	Status  string `json:"status"`
	gDto.Metadata
}

func (r *StoreResponse) FromModel(model model.Store) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.Phone = model.Phone
	r.Hours = model.Hours
	r.Status = string(model.Status)
	r.Metadata.FromModel(model.Metadata)
}

type GetStoresResponse struct {
	Stores    []StoreResponse `json:"stores"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStoresResponse) FromModels(models []model.Store, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Stores = make([]StoreResponse, len(models))
	for i, mod := range models {
		r.Stores[i].FromModel(mod)
	}
}

type CreateRoomRequest struct {
	StoreID    string  `json:"store_id"   validate:"required"`
	Name       string  `json:"name"       validate:"required,max=100"`
	Capacity   int     `json:"capacity"   validate:"required,gte=1"`
	Facilities *string `json:"facilities" validate:"omitempty,max=200"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	return model.Room{
		ID:         uuid.NewString(),
		StoreID:    c.StoreID,
		Name:       c.Name,
		Capacity:   c.Capacity,
		Facilities: c.Facilities,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type RoomResponse struct {
	ID         string  `json:"id"`
	StoreID    string  `json:"store_id"`
	Name       string  `json:"name"`
	Capacity   int     `json:"capacity"`
	Facilities *string `json:"facilities,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.StoreID = model.StoreID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.Facilities = model.Facilities
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
