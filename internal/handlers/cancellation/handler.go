package cancellation

import (
	"net/http"

	"studio/infras/otel"
	"studio/internal/domains/cancellation/model"
	"studio/internal/domains/cancellation/model/dto"
	"studio/internal/domains/cancellation/service"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/validator"
	"studio/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.CourseCancellation
	otel    otel.Otel
}

func New(service service.CourseCancellation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/course-cancellations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCourseCancellation)
		routerGroup.Get("/", handler.GetCourseCancellations)
		routerGroup.Post("/{id}/approve", handler.ApproveCourseCancellation)
	})
}

// CreateCourseCancellation files a cancellation request for a course.
// @Summary Request a course cancellation
// @Description Create a cancellation request. Admin requests are approved and cascaded immediately.
// @Tags Cancellation
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseCancellationRequest true "Create Course Cancellation Request"
// @Success 201 {object} response.Data[dto.CourseCancellationResponse] "Created cancellation request"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/course-cancellations [post]
func (handler *Handler) CreateCourseCancellation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCourseCancellation")
	defer scope.End()

	req := dto.CreateCourseCancellationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Request(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to request course cancellation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Course cancellation requested successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetCourseCancellations retrieves all course cancellation requests.
// @Summary Get all course cancellations
// @Tags Cancellation
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, approved)"
// @Success 200 {object} response.Data[dto.GetCourseCancellationsResponse] "List of course cancellations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/course-cancellations [get]
func (handler *Handler) GetCourseCancellations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCourseCancellations")
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
			Table:    model.TableName,
		})
	}

	cancellations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get course cancellations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Course cancellations retrieved successfully")

	response.WithJSON(w, http.StatusOK, cancellations)
}

// ApproveCourseCancellation approves a pending request and cascades it.
// @Summary Approve a course cancellation
// @Description Approve a pending cancellation request, cancelling the course and its booked bookings.
// @Tags Cancellation
// @Produce json
// @Param id path string true "Cancellation ID"
// @Success 200 {object} response.Data[dto.CourseCancellationResponse] "Approved cancellation"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/course-cancellations/{id}/approve [post]
func (handler *Handler) ApproveCourseCancellation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveCourseCancellation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Approve(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to approve course cancellation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Course cancellation approved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
