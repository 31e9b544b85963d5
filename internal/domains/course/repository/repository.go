package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"studio/infras/otel"
	"studio/infras/postgres"
	"studio/internal/domains/course/model"
	gDto "studio/shared/dto"
	gRepo "studio/shared/repository"

	"github.com/jmoiron/sqlx"
)

type CourseType interface {
	Insert(ctx context.Context, model model.CourseType) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CourseType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type courseTypeRepositoryImpl struct {
	gRepo.Repository[model.CourseType]
}

func NewCourseType(db *postgres.Connection, otel otel.Otel) CourseType {
	return &courseTypeRepositoryImpl{
		Repository: gRepo.NewRepository[model.CourseType](model.CourseTypeEntityName, model.CourseTypeTableName, model.FieldID, db, otel),
	}
}

// Course carries the transactional accessors the booking lifecycle uses to
// lock a course row while checking capacity or cascading a cancellation.
type Course interface {
	Insert(ctx context.Context, model model.Course) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Course, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Course, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.Course, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error
}

type courseRepositoryImpl struct {
	gRepo.Repository[model.Course]
}

func NewCourse(db *postgres.Connection, otel otel.Otel) Course {
	return &courseRepositoryImpl{
		Repository: gRepo.NewRepository[model.Course](model.CourseEntityName, model.CourseTableName, model.FieldID, db, otel),
	}
}
