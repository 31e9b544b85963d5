package course

import (
	"net/http"

	"studio/infras/otel"
	"studio/internal/domains/course/model"
	"studio/internal/domains/course/model/dto"
	"studio/internal/domains/course/service"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/validator"
	"studio/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Course
	otel    otel.Otel
}

func New(service service.Course, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/course-types", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCourseType)
		routerGroup.Get("/", handler.GetCourseTypes)
	})

	router.Route("/courses", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCourse)
		routerGroup.Get("/", handler.GetCourses)
	})
}

// CreateCourseType handles the creation of a new course type.
// @Summary Create a new course type
// @Tags Course
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseTypeRequest true "Create Course Type Request"
// @Success 201 {object} response.Data[dto.CourseTypeResponse] "Created course type"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/course-types [post]
func (handler *Handler) CreateCourseType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCourseType")
	defer scope.End()

	req := dto.CreateCourseTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateCourseType(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create course type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Course type created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetCourseTypes retrieves all course types.
// @Summary Get all course types
// @Tags Course
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetCourseTypesResponse] "List of course types"
// @Failure 500 {object} response.Error
// @Router /v1/course-types [get]
func (handler *Handler) GetCourseTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCourseTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	courseTypes, err := handler.service.GetAllCourseTypes(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get course types")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Course types retrieved successfully")

	response.WithJSON(w, http.StatusOK, courseTypes)
}

// CreateCourse handles the creation of a new scheduled course.
// @Summary Create a new course
// @Description Create a scheduled course referencing an existing store, room, teacher and course type.
// @Tags Course
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Create Course Request"
// @Success 201 {object} response.Data[dto.CourseResponse] "Created course"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/courses [post]
func (handler *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCourse")
	defer scope.End()

	req := dto.CreateCourseRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create course")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Course created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetCourses retrieves all courses based on query parameters.
// @Summary Get all courses
// @Tags Course
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (scheduled, cancelled)"
// @Success 200 {object} response.Data[dto.GetCoursesResponse] "List of courses"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/courses [get]
func (handler *Handler) GetCourses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCourses")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(model.FieldStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.CourseTableName,
		})
	}

	courses, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get courses")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Courses retrieved successfully")

	response.WithJSON(w, http.StatusOK, courses)
}
