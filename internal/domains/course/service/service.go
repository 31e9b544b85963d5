package service

import (
	"context"
	"fmt"

	"studio/config"
	"studio/infras/otel"
	"studio/internal/domains/course/model"
	"studio/internal/domains/course/model/dto"
	"studio/internal/domains/course/repository"
	storeModel "studio/internal/domains/store/model"
	storeRepository "studio/internal/domains/store/repository"
	teacherModel "studio/internal/domains/teacher/model"
	teacherRepository "studio/internal/domains/teacher/repository"
	"studio/shared"
	"studio/shared/cache"
	"studio/shared/constant"
	gDto "studio/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllCourseType = "course_type:gets"
	cacheCountCourseType  = "course_type:count"

	cacheGetAllCourse = "course:gets"
	cacheCountCourse  = "course:count"
)

type Course interface {
	CreateCourseType(ctx context.Context, req dto.CreateCourseTypeRequest) (dto.CourseTypeResponse, error)
	GetAllCourseTypes(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCourseTypesResponse, error)
	Create(ctx context.Context, req dto.CreateCourseRequest) (dto.CourseResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCoursesResponse, error)
}

type serviceImpl struct {
	courseTypeRepo repository.CourseType
	courseRepo     repository.Course
	storeRepo      storeRepository.Store
	roomRepo       storeRepository.Room
	teacherRepo    teacherRepository.Teacher
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(
	courseTypeRepo repository.CourseType,
	courseRepo repository.Course,
	storeRepo storeRepository.Store,
	roomRepo storeRepository.Room,
	teacherRepo teacherRepository.Teacher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Course {
	return &serviceImpl{
		courseTypeRepo: courseTypeRepo,
		courseRepo:     courseRepo,
		storeRepo:      storeRepo,
		roomRepo:       roomRepo,
		teacherRepo:    teacherRepo,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

func (s *serviceImpl) CreateCourseType(ctx context.Context, req dto.CreateCourseTypeRequest) (res dto.CourseTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCourseType")
	defer scope.End()
	defer scope.TraceIfError(err)

	courseType := req.ToModel()
	if err = s.courseTypeRepo.Insert(ctx, courseType); err != nil {
		log.Error().Err(err).Msg("failed to insert course type")

		return res, err
	}

	res.FromModel(courseType)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCourseType)
		shared.InvalidateCaches(c, s.cache, cacheCountCourseType)
	}()

	return res, nil
}

func (s *serviceImpl) GetAllCourseTypes(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCourseTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllCourseTypes")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCourseType, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for course types")

		return res, nil
	}

	total, err := s.courseTypeRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count course types")

		return res, fmt.Errorf("failed to count course types: %w", err)
	}

	models, err := s.courseTypeRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get course types")

		return res, fmt.Errorf("failed to get course types: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save course types to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCourseRequest) (res dto.CourseResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = shared.ValidateReferences(ctx,
		shared.Reference{
			Label: "Store",
			Exists: func(ctx context.Context) (bool, error) {
				return s.storeRepo.Exist(ctx, shared.FilterByID(req.StoreID, storeModel.FieldID, storeModel.StoreTableName))
			},
		},
		shared.Reference{
			Label: "Room",
			Exists: func(ctx context.Context) (bool, error) {
				return s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, storeModel.FieldID, storeModel.RoomTableName))
			},
		},
		shared.Reference{
			Label: "Teacher",
			Exists: func(ctx context.Context) (bool, error) {
				return s.teacherRepo.Exist(ctx, shared.FilterByID(req.TeacherID, teacherModel.FieldID, teacherModel.TableName))
			},
		},
		shared.Reference{
			Label: "Course type",
			Exists: func(ctx context.Context) (bool, error) {
				return s.courseTypeRepo.Exist(ctx, shared.FilterByID(req.CourseTypeID, model.FieldID, model.CourseTypeTableName))
			},
		},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to validate course references")

		return res, err
	}

	course := req.ToModel()
	if err = s.courseRepo.Insert(ctx, course); err != nil {
		log.Error().Err(err).Msg("failed to insert course")

		return res, err
	}

	res.FromModel(course)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCourse)
		shared.InvalidateCaches(c, s.cache, cacheCountCourse)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCoursesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCourse, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for courses")

		return res, nil
	}

	total, err := s.courseRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count courses")

		return res, fmt.Errorf("failed to count courses: %w", err)
	}

	models, err := s.courseRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get courses")

		return res, fmt.Errorf("failed to get courses: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save courses to cache")
		}
	}()

	return res, nil
}
