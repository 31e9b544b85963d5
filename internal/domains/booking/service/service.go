package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"studio/config"
	"studio/infras/kafka"
	"studio/infras/otel"
	"studio/infras/postgres"
	"studio/internal/domains/booking/model"
	"studio/internal/domains/booking/model/dto"
	"studio/internal/domains/booking/repository"
	courseModel "studio/internal/domains/course/model"
	courseRepository "studio/internal/domains/course/repository"
	membershipModel "studio/internal/domains/membership/model"
	membershipRepository "studio/internal/domains/membership/repository"
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
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	cacheGetAllAttendance = "attendance:gets"
	cacheCountAttendance  = "attendance:count"

	cacheGetAllStudentCard = "student_card:gets"
	cacheCountStudentCard  = "student_card:count"

	cacheGetAllCourse = "course:gets"
	cacheCountCourse  = "course:count"
)

// Booking drives the lifecycle of a booking and the card-use accounting that
// moves in lockstep with it. Every transition runs inside one transaction
// with the affected course, card and booking rows locked.
type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, bookingID string, req dto.CancelBookingRequest) (dto.BookingResponse, error)
	RecordAttendance(ctx context.Context, req dto.CreateAttendanceRequest) (dto.AttendanceResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	GetAllAttendances(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAttendancesResponse, error)
	ApplyCourseCancellationTx(ctx context.Context, sqltx *sqlx.Tx, courseID string) error
	InvalidateLifecycleCaches(ctx context.Context)
}

type serviceImpl struct {
	repo           repository.Booking
	attendanceRepo repository.Attendance
	courseRepo     courseRepository.Course
	cardRepo       membershipRepository.StudentCard
	transactor     postgres.Transactor
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
	kafka          kafka.Client
}

func New(
	repo repository.Booking,
	attendanceRepo repository.Attendance,
	courseRepo courseRepository.Course,
	cardRepo membershipRepository.StudentCard,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
) Booking {
	return &serviceImpl{
		repo:           repo,
		attendanceRepo: attendanceRepo,
		courseRepo:     courseRepo,
		cardRepo:       cardRepo,
		transactor:     transactor,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
		kafka:          kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking := req.ToModel()

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		course, err := s.courseRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(req.CourseID, courseModel.FieldID, courseModel.CourseTableName))
		if err != nil {
			return fmt.Errorf("failed to get course: %w", err)
		}

		if course.ID == constant.Empty {
			return failure.NotFound("Course not found") // nolint:wrapcheck
		}

		if !course.Bookable() {
			return failure.InvalidState("Course is not open for booking") // nolint:wrapcheck
		}

		card, err := s.cardRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(req.CardID, membershipModel.FieldID, membershipModel.StudentCardTableName))
		if err != nil {
			return fmt.Errorf("failed to get student card: %w", err)
		}

		if card.ID == constant.Empty || !card.Active {
			return failure.NotFound("Student card not found") // nolint:wrapcheck
		}

		if card.StudentID != req.StudentID {
			return failure.InvalidState("Student card does not belong to student") // nolint:wrapcheck
		}

		if card.ValidUntil.Before(timezone.Now()) {
			return failure.InvalidState("Student card is expired") // nolint:wrapcheck
		}

		if card.RemainingUses != nil && *card.RemainingUses <= 0 {
			return failure.InvalidState("No remaining uses") // nolint:wrapcheck
		}

		duplicate, err := s.repo.ExistTx(ctx, tx, bookedPairFilter(req.StudentID, req.CourseID))
		if err != nil {
			return fmt.Errorf("failed to check existing booking: %w", err)
		}

		if duplicate {
			return failure.Conflict("Already booked") // nolint:wrapcheck
		}

		booked, err := s.repo.CountTx(ctx, tx, bookedCourseFilter(req.CourseID))
		if err != nil {
			return fmt.Errorf("failed to count course bookings: %w", err)
		}

		if booked >= course.Capacity {
			return failure.CapacityExceeded("Course is full") // nolint:wrapcheck
		}

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		return s.debitCard(ctx, tx, card)
	})
	if err != nil {
		log.Error().Err(err).Str("studentID", req.StudentID).Str("courseID", req.CourseID).Msg("failed to create booking")

		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, dto.BookingEvent{
			Type:       dto.EventBookingBooked,
			BookingID:  booking.ID,
			StudentID:  booking.StudentID,
			CourseID:   booking.CourseID,
			CardID:     booking.CardID,
			OccurredAt: booking.BookedAt,
		})
		s.InvalidateLifecycleCaches(c)
	}()

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, bookingID string, req dto.CancelBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	var booking model.Booking

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		booking, err = s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(bookingID, model.FieldID, model.BookingTableName))
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("Booking not found") // nolint:wrapcheck
		}

		if booking.Status != model.BookingStatusBooked {
			return failure.InvalidState("Booking cannot be cancelled") // nolint:wrapcheck
		}

		course, err := s.courseRepo.GetTx(ctx, tx, shared.FilterByID(booking.CourseID, courseModel.FieldID, courseModel.CourseTableName))
		if err != nil {
			return fmt.Errorf("failed to get course: %w", err)
		}

		window := time.Duration(s.cfg.App.Booking.CancelWindowMinutes) * time.Minute
		if course.StartsAt.Sub(timezone.Now()) < window {
			return failure.InvalidState("Cancellation window has passed") // nolint:wrapcheck
		}

		if err := s.repo.UpdateTx(ctx, tx, statusUpdate(model.BookingStatusCancelled), shared.FilterByID(booking.ID, model.FieldID, model.BookingTableName)); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		booking.Status = model.BookingStatusCancelled

		return s.creditCard(ctx, tx, booking.CardID)
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to cancel booking")

		return res, err
	}

	log.Info().Str("bookingID", bookingID).Str("reason", req.Reason).Msg("booking cancelled")

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, dto.BookingEvent{
			Type:       dto.EventBookingCancelled,
			BookingID:  booking.ID,
			StudentID:  booking.StudentID,
			CourseID:   booking.CourseID,
			CardID:     booking.CardID,
			OccurredAt: timezone.Now(),
		})
		s.InvalidateLifecycleCaches(c)
	}()

	return res, nil
}

func (s *serviceImpl) RecordAttendance(ctx context.Context, req dto.CreateAttendanceRequest) (res dto.AttendanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordAttendance")
	defer scope.End()
	defer scope.TraceIfError(err)

	attendance := req.ToModel()

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		booking, err := s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(req.BookingID, model.FieldID, model.BookingTableName))
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("Booking not found") // nolint:wrapcheck
		}

		if booking.Status != model.BookingStatusBooked {
			return failure.InvalidState("Booking not active") // nolint:wrapcheck
		}

		if err := s.attendanceRepo.InsertTx(ctx, tx, attendance); err != nil {
			return fmt.Errorf("failed to insert attendance: %w", err)
		}

		if err := s.repo.UpdateTx(ctx, tx, statusUpdate(model.BookingStatusAttended), shared.FilterByID(booking.ID, model.FieldID, model.BookingTableName)); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", req.BookingID).Msg("failed to record attendance")

		return res, err
	}

	res.FromModel(attendance)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, dto.BookingEvent{
			Type:       dto.EventAttendanceMarked,
			BookingID:  attendance.BookingID,
			OccurredAt: timezone.Now(),
		})
		s.InvalidateLifecycleCaches(c)
		shared.InvalidateCaches(c, s.cache, cacheGetAllAttendance)
		shared.InvalidateCaches(c, s.cache, cacheCountAttendance)
	}()

	return res, nil
}

// ApplyCourseCancellationTx cancels the course row and every booked booking
// on it, crediting finite card counters back. It runs inside the caller's
// transaction so the whole cascade commits or rolls back as one.
func (s *serviceImpl) ApplyCourseCancellationTx(ctx context.Context, sqltx *sqlx.Tx, courseID string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApplyCourseCancellationTx")
	defer scope.End()

	course, err := s.courseRepo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(courseID, courseModel.FieldID, courseModel.CourseTableName))
	if err != nil {
		return fmt.Errorf("failed to get course: %w", err)
	}

	if course.ID == constant.Empty {
		return failure.NotFound("Course not found") // nolint:wrapcheck
	}

	courseUpdate := map[string]any{
		courseModel.FieldStatus:  string(courseModel.CourseStatusCancelled),
		constant.FieldModifiedAt: timezone.Now(),
	}
	if err := s.courseRepo.UpdateTx(ctx, sqltx, courseUpdate, shared.FilterByID(courseID, courseModel.FieldID, courseModel.CourseTableName)); err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}

	bookings, err := s.repo.GetAllTx(ctx, sqltx, gDto.QueryParams{}, bookedCourseFilter(courseID))
	if err != nil {
		return fmt.Errorf("failed to get course bookings: %w", err)
	}

	for _, booking := range bookings {
		locked, err := s.repo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(booking.ID, model.FieldID, model.BookingTableName))
		if err != nil {
			return fmt.Errorf("failed to lock booking: %w", err)
		}

		// A concurrent cancel or attendance may have settled the booking
		// between the list read and the row lock. Only still-booked rows
		// transition and credit their card.
		if locked.Status != model.BookingStatusBooked {
			continue
		}

		if err := s.repo.UpdateTx(ctx, sqltx, statusUpdate(model.BookingStatusCancelled), shared.FilterByID(locked.ID, model.FieldID, model.BookingTableName)); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		if err := s.creditCard(ctx, sqltx, locked.CardID); err != nil {
			return err
		}
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAllAttendances(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAttendancesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllAttendances")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAttendance, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for attendances")

		return res, nil
	}

	total, err := s.attendanceRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count attendances")

		return res, fmt.Errorf("failed to count attendances: %w", err)
	}

	models, err := s.attendanceRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get attendances")

		return res, fmt.Errorf("failed to get attendances: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save attendances to cache")
		}
	}()

	return res, nil
}

// InvalidateLifecycleCaches drops every listing cache a lifecycle transition
// can stale: bookings, course seat counts and card counters.
func (s *serviceImpl) InvalidateLifecycleCaches(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllStudentCard)
	shared.InvalidateCaches(ctx, s.cache, cacheCountStudentCard)
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllCourse)
	shared.InvalidateCaches(ctx, s.cache, cacheCountCourse)
}

// debitCard takes one use off a finite counter. The card row is already
// locked by the caller.
func (s *serviceImpl) debitCard(ctx context.Context, sqltx *sqlx.Tx, card membershipModel.StudentCard) error {
	if card.RemainingUses == nil {
		return nil
	}

	update := map[string]any{
		membershipModel.FieldRemainingUses: *card.RemainingUses - 1,
		constant.FieldModifiedAt:           timezone.Now(),
	}
	if err := s.cardRepo.UpdateTx(ctx, sqltx, update, shared.FilterByID(card.ID, membershipModel.FieldID, membershipModel.StudentCardTableName)); err != nil {
		return fmt.Errorf("failed to debit student card: %w", err)
	}

	return nil
}

// creditCard gives one use back after a cancellation. It locks the card row
// itself since cascades reach cards the caller never loaded.
func (s *serviceImpl) creditCard(ctx context.Context, sqltx *sqlx.Tx, cardID string) error {
	card, err := s.cardRepo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(cardID, membershipModel.FieldID, membershipModel.StudentCardTableName))
	if err != nil {
		return fmt.Errorf("failed to get student card: %w", err)
	}

	if card.RemainingUses == nil {
		return nil
	}

	update := map[string]any{
		membershipModel.FieldRemainingUses: *card.RemainingUses + 1,
		constant.FieldModifiedAt:           timezone.Now(),
	}
	if err := s.cardRepo.UpdateTx(ctx, sqltx, update, shared.FilterByID(cardID, membershipModel.FieldID, membershipModel.StudentCardTableName)); err != nil {
		return fmt.Errorf("failed to credit student card: %w", err)
	}

	return nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, event dto.BookingEvent) {
	message := kafka.Message{
		Key:   event.BookingID,
		Value: event,
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic.BookingEvents, message); err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("failed to publish booking event")
	}
}

func statusUpdate(status model.BookingStatus) map[string]any {
	return map[string]any{
		model.FieldStatus:        string(status),
		constant.FieldModifiedAt: timezone.Now(),
	}
}

func bookedPairFilter(studentID, courseID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStudentID, Value: studentID, Operator: gDto.FilterOperatorEq, Table: model.BookingTableName},
			gDto.Filter{Field: model.FieldCourseID, Value: courseID, Operator: gDto.FilterOperatorEq, Table: model.BookingTableName},
			gDto.Filter{Field: model.FieldStatus, Value: string(model.BookingStatusBooked), Operator: gDto.FilterOperatorEq, Table: model.BookingTableName},
		},
	}
}

func bookedCourseFilter(courseID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldCourseID, Value: courseID, Operator: gDto.FilterOperatorEq, Table: model.BookingTableName},
			gDto.Filter{Field: model.FieldStatus, Value: string(model.BookingStatusBooked), Operator: gDto.FilterOperatorEq, Table: model.BookingTableName},
		},
	}
}
