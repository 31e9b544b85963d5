package router

import (
	"studio/internal/handlers/booking"
	"studio/internal/handlers/cancellation"
	"studio/internal/handlers/course"
	"studio/internal/handlers/health"
	"studio/internal/handlers/membership"
	"studio/internal/handlers/store"
	"studio/internal/handlers/teacher"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Health       health.Handler
	Store        store.Handler
	Teacher      teacher.Handler
	Membership   membership.Handler
	Course       course.Handler
	Booking      booking.Handler
	Cancellation cancellation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Store.Router(routerGroup)
		r.DomainHandlers.Teacher.Router(routerGroup)
		r.DomainHandlers.Membership.Router(routerGroup)
		r.DomainHandlers.Course.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Cancellation.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
