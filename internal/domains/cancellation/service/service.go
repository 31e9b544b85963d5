package service

import (
	"context"
	"fmt"

	"studio/config"
	"studio/infras/kafka"
	"studio/infras/otel"
	"studio/infras/postgres"
	bookingDto "studio/internal/domains/booking/model/dto"
	bookingService "studio/internal/domains/booking/service"
	"studio/internal/domains/cancellation/model"
	"studio/internal/domains/cancellation/model/dto"
	"studio/internal/domains/cancellation/repository"
	courseModel "studio/internal/domains/course/model"
	courseRepository "studio/internal/domains/course/repository"
	"studio/shared"
	"studio/shared/cache"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/failure"
	"studio/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllCancellation = "course_cancellation:gets"
	cacheCountCancellation  = "course_cancellation:count"
)

// CourseCancellation runs the request/approve workflow. An approved request
// cancels the course and every booked booking on it in one transaction.
type CourseCancellation interface {
	Request(ctx context.Context, req dto.CreateCourseCancellationRequest) (dto.CourseCancellationResponse, error)
	Approve(ctx context.Context, cancellationID string) (dto.CourseCancellationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCourseCancellationsResponse, error)
}

type serviceImpl struct {
	repo       repository.CourseCancellation
	courseRepo courseRepository.Course
	bookingSvc bookingService.Booking
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	kafka      kafka.Client
}

func New(
	repo repository.CourseCancellation,
	courseRepo courseRepository.Course,
	bookingSvc bookingService.Booking,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
) CourseCancellation {
	return &serviceImpl{
		repo:       repo,
		courseRepo: courseRepo,
		bookingSvc: bookingSvc,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		kafka:      kafka,
	}
}

func (s *serviceImpl) Request(ctx context.Context, req dto.CreateCourseCancellationRequest) (res dto.CourseCancellationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Request")
	defer scope.End()
	defer scope.TraceIfError(err)

	cancellation := req.ToModel()

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		exist, err := s.courseRepo.ExistTx(ctx, tx, shared.FilterByID(req.CourseID, courseModel.FieldID, courseModel.CourseTableName))
		if err != nil {
			return fmt.Errorf("failed to check course existence: %w", err)
		}

		if !exist {
			return failure.NotFound("Course not found") // nolint:wrapcheck
		}

		if err := s.repo.InsertTx(ctx, tx, cancellation); err != nil {
			return fmt.Errorf("failed to insert course cancellation: %w", err)
		}

		if cancellation.Status == model.CancellationStatusApproved {
			return s.bookingSvc.ApplyCourseCancellationTx(ctx, tx, req.CourseID)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("courseID", req.CourseID).Msg("failed to request course cancellation")

		return res, err
	}

	res.FromModel(cancellation)

	if cancellation.Status == model.CancellationStatusApproved {
		s.afterCascade(ctx, cancellation)
	} else {
		go func() {
			c := context.WithoutCancel(ctx)

			shared.InvalidateCaches(c, s.cache, cacheGetAllCancellation)
			shared.InvalidateCaches(c, s.cache, cacheCountCancellation)
		}()
	}

	return res, nil
}

func (s *serviceImpl) Approve(ctx context.Context, cancellationID string) (res dto.CourseCancellationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Approve")
	defer scope.End()
	defer scope.TraceIfError(err)

	var cancellation model.CourseCancellation

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		cancellation, err = s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(cancellationID, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to get course cancellation: %w", err)
		}

		if cancellation.ID == constant.Empty {
			return failure.NotFound("Cancellation request not found") // nolint:wrapcheck
		}

		if cancellation.Status != model.CancellationStatusPending {
			return failure.InvalidState("Cancellation already processed") // nolint:wrapcheck
		}

		update := map[string]any{
			model.FieldStatus:        string(model.CancellationStatusApproved),
			constant.FieldModifiedAt: timezone.Now(),
		}
		if err := s.repo.UpdateTx(ctx, tx, update, shared.FilterByID(cancellationID, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update course cancellation: %w", err)
		}

		cancellation.Status = model.CancellationStatusApproved

		return s.bookingSvc.ApplyCourseCancellationTx(ctx, tx, cancellation.CourseID)
	})
	if err != nil {
		log.Error().Err(err).Str("cancellationID", cancellationID).Msg("failed to approve course cancellation")

		return res, err
	}

	res.FromModel(cancellation)

	s.afterCascade(ctx, cancellation)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCourseCancellationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCancellation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for course cancellations")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count course cancellations")

		return res, fmt.Errorf("failed to count course cancellations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get course cancellations")

		return res, fmt.Errorf("failed to get course cancellations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save course cancellations to cache")
		}
	}()

	return res, nil
}

// afterCascade publishes the course event and drops every cache the cascade
// touched. Runs only after the transaction committed.
func (s *serviceImpl) afterCascade(ctx context.Context, cancellation model.CourseCancellation) {
	go func() {
		c := context.WithoutCancel(ctx)

		event := bookingDto.BookingEvent{
			Type:       bookingDto.EventCourseCancelled,
			CourseID:   cancellation.CourseID,
			OccurredAt: timezone.Now(),
		}
		message := kafka.Message{
			Key:   cancellation.CourseID,
			Value: event,
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic.BookingEvents, message); err != nil {
			log.Error().Err(err).Str("courseID", cancellation.CourseID).Msg("failed to publish course cancellation event")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCancellation)
		shared.InvalidateCaches(c, s.cache, cacheCountCancellation)
		s.bookingSvc.InvalidateLifecycleCaches(c)
	}()
}
