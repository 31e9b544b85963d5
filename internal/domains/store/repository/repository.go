package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"studio/infras/otel"
	"studio/infras/postgres"
	"studio/internal/domains/store/model"
	gDto "studio/shared/dto"
	gRepo "studio/shared/repository"
)

type Store interface {
	Insert(ctx context.Context, model model.Store) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Store, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Store, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type storeRepositoryImpl struct {
	gRepo.Repository[model.Store]
}

func New(db *postgres.Connection, otel otel.Otel) Store {
	return &storeRepositoryImpl{
		Repository: gRepo.NewRepository[model.Store](model.StoreEntityName, model.StoreTableName, model.FieldID, db, otel),
	}
}

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type roomRepositoryImpl struct {
	gRepo.Repository[model.Room]
}

func NewRoom(db *postgres.Connection, otel otel.Otel) Room {
	return &roomRepositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.RoomEntityName, model.RoomTableName, model.FieldID, db, otel),
	}
}
