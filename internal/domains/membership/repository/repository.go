package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"studio/infras/otel"
	"studio/infras/postgres"
	"studio/internal/domains/membership/model"
	gDto "studio/shared/dto"
	gRepo "studio/shared/repository"

	"github.com/jmoiron/sqlx"
)

type MemberType interface {
	Insert(ctx context.Context, model model.MemberType) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.MemberType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type memberTypeRepositoryImpl struct {
	gRepo.Repository[model.MemberType]
}

func NewMemberType(db *postgres.Connection, otel otel.Otel) MemberType {
	return &memberTypeRepositoryImpl{
		Repository: gRepo.NewRepository[model.MemberType](model.MemberTypeEntityName, model.MemberTypeTableName, model.FieldID, db, otel),
	}
}

type Student interface {
	Insert(ctx context.Context, model model.Student) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Student, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type studentRepositoryImpl struct {
	gRepo.Repository[model.Student]
}

func NewStudent(db *postgres.Connection, otel otel.Otel) Student {
	return &studentRepositoryImpl{
		Repository: gRepo.NewRepository[model.Student](model.StudentEntityName, model.StudentTableName, model.FieldID, db, otel),
	}
}

// StudentCard carries the transactional accessors the booking lifecycle uses
// to lock and mutate the remaining-use counter.
type StudentCard interface {
	Insert(ctx context.Context, model model.StudentCard) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.StudentCard, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.StudentCard, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.StudentCard, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error
}

type studentCardRepositoryImpl struct {
	gRepo.Repository[model.StudentCard]
}

func NewStudentCard(db *postgres.Connection, otel otel.Otel) StudentCard {
	return &studentCardRepositoryImpl{
		Repository: gRepo.NewRepository[model.StudentCard](model.StudentCardEntityName, model.StudentCardTableName, model.FieldID, db, otel),
	}
}
