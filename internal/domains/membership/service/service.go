package service

import (
	"context"
	"fmt"

	"studio/config"
	"studio/infras/otel"
	"studio/internal/domains/membership/model"
	"studio/internal/domains/membership/model/dto"
	"studio/internal/domains/membership/repository"
	"studio/shared"
	"studio/shared/cache"
	"studio/shared/constant"
	gDto "studio/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllMemberType = "member_type:gets"
	cacheCountMemberType  = "member_type:count"

	cacheGetAllStudent = "student:gets"
	cacheCountStudent  = "student:count"

	cacheGetAllStudentCard = "student_card:gets"
	cacheCountStudentCard  = "student_card:count"
)

type Membership interface {
	CreateMemberType(ctx context.Context, req dto.CreateMemberTypeRequest) (dto.MemberTypeResponse, error)
	GetAllMemberTypes(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMemberTypesResponse, error)
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (dto.StudentResponse, error)
	GetAllStudents(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStudentsResponse, error)
	CreateStudentCard(ctx context.Context, req dto.CreateStudentCardRequest) (dto.StudentCardResponse, error)
	GetAllStudentCards(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStudentCardsResponse, error)
}

type serviceImpl struct {
	memberTypeRepo repository.MemberType
	studentRepo    repository.Student
	cardRepo       repository.StudentCard
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(
	memberTypeRepo repository.MemberType,
	studentRepo repository.Student,
	cardRepo repository.StudentCard,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Membership {
	return &serviceImpl{
		memberTypeRepo: memberTypeRepo,
		studentRepo:    studentRepo,
		cardRepo:       cardRepo,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

func (s *serviceImpl) CreateMemberType(ctx context.Context, req dto.CreateMemberTypeRequest) (res dto.MemberTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateMemberType")
	defer scope.End()
	defer scope.TraceIfError(err)

	memberType := req.ToModel()
	if err = s.memberTypeRepo.Insert(ctx, memberType); err != nil {
		log.Error().Err(err).Msg("failed to insert member type")

		return res, err
	}

	res.FromModel(memberType)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMemberType)
		shared.InvalidateCaches(c, s.cache, cacheCountMemberType)
	}()

	return res, nil
}

func (s *serviceImpl) GetAllMemberTypes(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMemberTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllMemberTypes")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMemberType, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for member types")

		return res, nil
	}

	total, err := s.memberTypeRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count member types")

		return res, fmt.Errorf("failed to count member types: %w", err)
	}

	models, err := s.memberTypeRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get member types")

		return res, fmt.Errorf("failed to get member types: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save member types to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (res dto.StudentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateStudent")
	defer scope.End()
	defer scope.TraceIfError(err)

	student := req.ToModel()
	if err = s.studentRepo.Insert(ctx, student); err != nil {
		log.Error().Err(err).Msg("failed to insert student")

		return res, err
	}

	res.FromModel(student)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllStudent)
		shared.InvalidateCaches(c, s.cache, cacheCountStudent)
	}()

	return res, nil
}

func (s *serviceImpl) GetAllStudents(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStudentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllStudents")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllStudent, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for students")

		return res, nil
	}

	total, err := s.studentRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count students")

		return res, fmt.Errorf("failed to count students: %w", err)
	}

	models, err := s.studentRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get students")

		return res, fmt.Errorf("failed to get students: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save students to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) CreateStudentCard(ctx context.Context, req dto.CreateStudentCardRequest) (res dto.StudentCardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateStudentCard")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = shared.ValidateReferences(ctx,
		shared.Reference{
			Label: "Student",
			Exists: func(ctx context.Context) (bool, error) {
				return s.studentRepo.Exist(ctx, shared.FilterByID(req.StudentID, model.FieldID, model.StudentTableName))
			},
		},
		shared.Reference{
			Label: "Member type",
			Exists: func(ctx context.Context) (bool, error) {
				return s.memberTypeRepo.Exist(ctx, shared.FilterByID(req.MemberTypeID, model.FieldID, model.MemberTypeTableName))
			},
		},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to validate student card references")

		return res, err
	}

	card := req.ToModel()
	if err = s.cardRepo.Insert(ctx, card); err != nil {
		log.Error().Err(err).Msg("failed to insert student card")

		return res, err
	}

	res.FromModel(card)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllStudentCard)
		shared.InvalidateCaches(c, s.cache, cacheCountStudentCard)
	}()

	return res, nil
}

func (s *serviceImpl) GetAllStudentCards(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStudentCardsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllStudentCards")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllStudentCard, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for student cards")

		return res, nil
	}

	total, err := s.cardRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count student cards")

		return res, fmt.Errorf("failed to count student cards: %w", err)
	}

	models, err := s.cardRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get student cards")

		return res, fmt.Errorf("failed to get student cards: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save student cards to cache")
		}
	}()

	return res, nil
}
