package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"studio/infras/otel"
	"studio/infras/postgres"
	"studio/internal/domains/teacher/model"
	gDto "studio/shared/dto"
	gRepo "studio/shared/repository"
)

type Teacher interface {
	Insert(ctx context.Context, model model.Teacher) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Teacher, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Teacher]
}

func New(db *postgres.Connection, otel otel.Otel) Teacher {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Teacher](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
