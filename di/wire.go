//go:build wireinject
// +build wireinject

package di

import (
	"studio/config"
	"studio/infras/kafka"
	"studio/infras/otel"
	"studio/infras/postgres"
	"studio/infras/redis"
	"studio/shared/cache"
	"studio/transport/http"
	"studio/transport/http/middleware"
	"studio/transport/http/router"

	bookingRepository "studio/internal/domains/booking/repository"
	bookingService "studio/internal/domains/booking/service"
	cancellationRepository "studio/internal/domains/cancellation/repository"
	cancellationService "studio/internal/domains/cancellation/service"
	courseRepository "studio/internal/domains/course/repository"
	courseService "studio/internal/domains/course/service"
	membershipRepository "studio/internal/domains/membership/repository"
	membershipService "studio/internal/domains/membership/service"
	storeRepository "studio/internal/domains/store/repository"
	storeService "studio/internal/domains/store/service"
	teacherRepository "studio/internal/domains/teacher/repository"
	teacherService "studio/internal/domains/teacher/service"

	bookingHandler "studio/internal/handlers/booking"
	cancellationHandler "studio/internal/handlers/cancellation"
	courseHandler "studio/internal/handlers/course"
	healthHandler "studio/internal/handlers/health"
	membershipHandler "studio/internal/handlers/membership"
	storeHandler "studio/internal/handlers/store"
	teacherHandler "studio/internal/handlers/teacher"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var storeDomain = wire.NewSet(
	storeRepository.New,
	storeRepository.NewRoom,
	storeService.New,
)

var teacherDomain = wire.NewSet(
	teacherRepository.New,
	teacherService.New,
)

var membershipDomain = wire.NewSet(
	membershipRepository.NewMemberType,
	membershipRepository.NewStudent,
	membershipRepository.NewStudentCard,
	membershipService.New,
)

var courseDomain = wire.NewSet(
	courseRepository.NewCourseType,
	courseRepository.NewCourse,
	courseService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewAttendance,
	bookingService.New,
)

var cancellationDomain = wire.NewSet(
	cancellationRepository.New,
	cancellationService.New,
)

var domains = wire.NewSet(
	storeDomain,
	teacherDomain,
	membershipDomain,
	courseDomain,
	bookingDomain,
	cancellationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	storeHandler.New,
	teacherHandler.New,
	membershipHandler.New,
	courseHandler.New,
	bookingHandler.New,
	cancellationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
