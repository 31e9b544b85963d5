package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"studio/infras/otel"
	"studio/infras/postgres"
	"studio/internal/domains/booking/model"
	gDto "studio/shared/dto"
	gRepo "studio/shared/repository"

	"github.com/jmoiron/sqlx"
)

// Booking exposes mostly transactional accessors because every lifecycle
// transition runs under a row lock.
type Booking interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	CountTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (int, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.Booking, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error
}

type bookingRepositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &bookingRepositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.BookingEntityName, model.BookingTableName, model.FieldID, db, otel),
	}
}

type Attendance interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Attendance, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Attendance) error
}

type attendanceRepositoryImpl struct {
	gRepo.Repository[model.Attendance]
}

func NewAttendance(db *postgres.Connection, otel otel.Otel) Attendance {
	return &attendanceRepositoryImpl{
		Repository: gRepo.NewRepository[model.Attendance](model.AttendanceEntityName, model.AttendanceTableName, model.FieldID, db, otel),
	}
}
