package store

import (
	"net/http"

	"studio/infras/otel"
	"studio/internal/domains/store/model"
	"studio/internal/domains/store/model/dto"
	"studio/internal/domains/store/service"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/validator"
	"studio/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Store
	otel    otel.Otel
}

func New(service service.Store, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/stores", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateStore)
		routerGroup.Get("/", handler.GetStores)
		routerGroup.Get("/{id}", handler.GetStoreByID)
	})

	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
	})
}

// CreateStore handles the creation of a new store.
// @Summary Create a new store
// @Description Create a new store with the provided details.
// @Tags Store
// @Accept json
// @Produce json
// @Param request body dto.CreateStoreRequest true "Create Store Request"
// @Success 201 {object} response.Data[dto.StoreResponse] "Created store"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stores [post]
func (handler *Handler) CreateStore(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStore")
	defer scope.End()

	req := dto.CreateStoreRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create store")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Store created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetStores retrieves all stores based on query parameters.
// @Summary Get all stores
// @Description Retrieve all stores with optional filtering and pagination.
// @Tags Store
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param status query string false "Filter by status (open, closed)"
// @Success 200 {object} response.Data[dto.GetStoresResponse] "List of stores"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stores [get]
func (handler *Handler) GetStores(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStores")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)
	status := r.URL.Query().Get(model.FieldStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.StoreTableName,
		})
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.StoreTableName,
		})
	}

	stores, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stores")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stores retrieved successfully")

	response.WithJSON(w, http.StatusOK, stores)
}

// GetStoreByID retrieves a store by its ID.
// @Summary Get a store by ID
// @Tags Store
// @Produce json
// @Param id path string true "Store ID"
// @Success 200 {object} response.Data[dto.StoreResponse] "Store details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stores/{id} [get]
func (handler *Handler) GetStoreByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStoreByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	store, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get store by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Store retrieved successfully")

	response.WithJSON(w, http.StatusOK, store)
}

// CreateRoom handles the creation of a new room inside a store.
// @Summary Create a new room
// @Description Create a new room bound to an existing store.
// @Tags Store
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Create Room Request"
// @Success 201 {object} response.Data[dto.RoomResponse] "Created room"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateRoom(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetRooms retrieves all rooms based on query parameters.
// @Summary Get all rooms
// @Tags Store
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param store_id query string false "Filter by store ID"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	storeID := r.URL.Query().Get(model.FieldStoreID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if storeID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStoreID,
			Operator: gDto.FilterOperatorEq,
			Value:    storeID,
			Table:    model.RoomTableName,
		})
	}

	rooms, err := handler.service.GetAllRooms(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}
