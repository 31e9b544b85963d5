package service

import (
	"context"
	"fmt"

	"studio/config"
	"studio/infras/otel"
	"studio/internal/domains/teacher/model/dto"
	"studio/internal/domains/teacher/repository"
	"studio/shared"
	"studio/shared/cache"
	"studio/shared/constant"
	gDto "studio/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllTeacher = "teacher:gets"
	cacheCountTeacher  = "teacher:count"
)

type Teacher interface {
	Create(ctx context.Context, req dto.CreateTeacherRequest) (dto.TeacherResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTeachersResponse, error)
}

type serviceImpl struct {
	repo  repository.Teacher
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Teacher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Teacher {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTeacherRequest) (res dto.TeacherResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	teacher := req.ToModel()
	if err = s.repo.Insert(ctx, teacher); err != nil {
		log.Error().Err(err).Msg("failed to insert teacher")

		return res, err
	}

	res.FromModel(teacher)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTeacher)
		shared.InvalidateCaches(c, s.cache, cacheCountTeacher)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTeachersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTeacher, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for teachers")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count teachers")

		return res, fmt.Errorf("failed to count teachers: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get teachers")

		return res, fmt.Errorf("failed to get teachers: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save teachers to cache")
		}
	}()

	return res, nil
}
