package health

import (
	"net/http"

	"studio/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports service liveness.
// @Summary Health check
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.WithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
