package membership

import (
	"net/http"

	"studio/infras/otel"
	"studio/internal/domains/membership/model"
	"studio/internal/domains/membership/model/dto"
	"studio/internal/domains/membership/service"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/validator"
	"studio/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Membership
	otel    otel.Otel
}

func New(service service.Membership, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/member-types", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMemberType)
		routerGroup.Get("/", handler.GetMemberTypes)
	})

	router.Route("/students", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateStudent)
		routerGroup.Get("/", handler.GetStudents)
	})

	router.Route("/student-cards", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateStudentCard)
		routerGroup.Get("/", handler.GetStudentCards)
	})
}

// CreateMemberType handles the creation of a new member type.
// @Summary Create a new member type
// @Tags Membership
// @Accept json
// @Produce json
// @Param request body dto.CreateMemberTypeRequest true "Create Member Type Request"
// @Success 201 {object} response.Data[dto.MemberTypeResponse] "Created member type"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/member-types [post]
func (handler *Handler) CreateMemberType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMemberType")
	defer scope.End()

	req := dto.CreateMemberTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateMemberType(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create member type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Member type created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetMemberTypes retrieves all member types.
// @Summary Get all member types
// @Tags Membership
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetMemberTypesResponse] "List of member types"
// @Failure 500 {object} response.Error
// @Router /v1/member-types [get]
func (handler *Handler) GetMemberTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMemberTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	memberTypes, err := handler.service.GetAllMemberTypes(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get member types")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Member types retrieved successfully")

	response.WithJSON(w, http.StatusOK, memberTypes)
}

// CreateStudent handles the creation of a new student.
// @Summary Create a new student
// @Tags Membership
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Create Student Request"
// @Success 201 {object} response.Data[dto.StudentResponse] "Created student"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/students [post]
func (handler *Handler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStudent")
	defer scope.End()

	req := dto.CreateStudentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateStudent(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create student")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Student created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetStudents retrieves all students based on query parameters.
// @Summary Get all students
// @Tags Membership
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetStudentsResponse] "List of students"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/students [get]
func (handler *Handler) GetStudents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStudents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get("name")

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    "name",
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.StudentTableName,
		})
	}

	students, err := handler.service.GetAllStudents(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get students")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Students retrieved successfully")

	response.WithJSON(w, http.StatusOK, students)
}

// CreateStudentCard handles the creation of a new student card.
// @Summary Create a new student card
// @Description Create a membership card bound to an existing student and member type.
// @Tags Membership
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentCardRequest true "Create Student Card Request"
// @Success 201 {object} response.Data[dto.StudentCardResponse] "Created student card"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/student-cards [post]
func (handler *Handler) CreateStudentCard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStudentCard")
	defer scope.End()

	req := dto.CreateStudentCardRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateStudentCard(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create student card")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Student card created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetStudentCards retrieves all student cards based on query parameters.
// @Summary Get all student cards
// @Tags Membership
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param student_id query string false "Filter by student ID"
// @Success 200 {object} response.Data[dto.GetStudentCardsResponse] "List of student cards"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/student-cards [get]
func (handler *Handler) GetStudentCards(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStudentCards")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	studentID := r.URL.Query().Get(model.FieldStudentID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if studentID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStudentID,
			Operator: gDto.FilterOperatorEq,
			Value:    studentID,
			Table:    model.StudentCardTableName,
		})
	}

	cards, err := handler.service.GetAllStudentCards(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get student cards")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Student cards retrieved successfully")

	response.WithJSON(w, http.StatusOK, cards)
}
