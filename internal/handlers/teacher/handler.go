package teacher

import (
	"net/http"

	"studio/infras/otel"
	"studio/internal/domains/teacher/model"
	"studio/internal/domains/teacher/model/dto"
	"studio/internal/domains/teacher/service"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/validator"
	"studio/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Teacher
	otel    otel.Otel
}

func New(service service.Teacher, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/teachers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTeacher)
		routerGroup.Get("/", handler.GetTeachers)
	})
}

// CreateTeacher handles the creation of a new teacher.
// @Summary Create a new teacher
// @Tags Teacher
// @Accept json
// @Produce json
// @Param request body dto.CreateTeacherRequest true "Create Teacher Request"
// @Success 201 {object} response.Data[dto.TeacherResponse] "Created teacher"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/teachers [post]
func (handler *Handler) CreateTeacher(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTeacher")
	defer scope.End()

	req := dto.CreateTeacherRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create teacher")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Teacher created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetTeachers retrieves all teachers based on query parameters.
// @Summary Get all teachers
// @Tags Teacher
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetTeachersResponse] "List of teachers"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/teachers [get]
func (handler *Handler) GetTeachers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTeachers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	teachers, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get teachers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Teachers retrieved successfully")

	response.WithJSON(w, http.StatusOK, teachers)
}
