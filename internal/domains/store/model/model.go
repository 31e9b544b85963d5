package model

import (
	"studio/shared/model"
)

const (
	StoreTableName  = "stores"
	StoreEntityName = "store"

	RoomTableName  = "rooms"
	RoomEntityName = "room"

	FieldID      = "id"
	FieldStoreID = "store_id"
	FieldName    = "name"
	FieldStatus  = "status"
)

type StoreStatus string

const (
	StoreStatusOpen   StoreStatus = "open"
	StoreStatusClosed StoreStatus = "closed"
)

type Store struct {
	ID      string      `db:"id"`
	Name    string      `db:"name"`
	Address string      `db:"address"`
	Phone   string      `db:"phone"`
	Hours   string      `db:"hours"`
	Status  StoreStatus `db:"status"`
	model.Metadata
}

type Room struct {
	ID         string  `db:"id"`
	StoreID    string  `db:"store_id"`
	Name       string  `db:"name"`
	Capacity   int     `db:"capacity"`
	Facilities *string `db:"facilities"`
	model.Metadata
}
