package model

import (
	"studio/shared/model"
)

const (
	TableName  = "teachers"
	EntityName = "teacher"

	FieldID   = "id"
	FieldName = "name"
)

type Teacher struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Phone       string `db:"phone"`
	Specialties string `db:"specialties"`
	model.Metadata
}
