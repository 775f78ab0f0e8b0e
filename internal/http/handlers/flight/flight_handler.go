package flight

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	appflight "musafir/internal/app/flight"
	"musafir/internal/domain/common"
	"musafir/internal/http/responses"
	"musafir/internal/logging"
)

type Handler struct {
	service appflight.Service
	logger  logging.Logger
}

func NewHandler(service appflight.Service, logger logging.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "flight_http_handler"),
	}
}

// GetByID GET /flights/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if id == "" {
		responses.WriteBadRequest(w, "missing flight id")
		return
	}

	dto, err := h.service.GetById(ctx, id)
	if err != nil {
		if common.IsNotFound(err) {
			responses.WriteNotFound(w, r)
			return
		}
		h.logger.Error("failed to get flight", "id", id, "error", err)
		responses.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	responses.WriteJSON(w, http.StatusOK, dto)
}
