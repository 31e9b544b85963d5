package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"studio/infras/otel"
	"studio/infras/postgres"
	"studio/internal/domains/cancellation/model"
	gDto "studio/shared/dto"
	gRepo "studio/shared/repository"

	"github.com/jmoiron/sqlx"
)

type CourseCancellation interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CourseCancellation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.CourseCancellation) error
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.CourseCancellation, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.CourseCancellation]
}

func New(db *postgres.Connection, otel otel.Otel) CourseCancellation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CourseCancellation](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
