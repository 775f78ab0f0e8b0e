package search

import (
	"net/http"

	appsearch "musafir/internal/app/search"
	"musafir/internal/http/requests"
	"musafir/internal/http/responses"
	"musafir/internal/logging"
)

type Handler struct {
	service appsearch.Service
	logger  logging.Logger
}

func NewHandler(service appsearch.Service, logger logging.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "search_http_handler"),
	}
}

type performSearchRequest struct {
	UserID        string `json:"userId"`
	Origin        string `json:"origin" validate:"required,len=3"`
	Destination   string `json:"destination" validate:"required,len=3"`
	DepartureDate string `json:"departureDate" validate:"required,datetime=2006-01-02"`
	Passengers    int    `json:"passengers" validate:"min=1,max=9"`
}

// Create POST /searches. A publish failure surfaces synchronously:
// the event bus is this endpoint's only side effect.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req performSearchRequest
	if !requests.BindAndValidate(w, r, &req) {
		return
	}

	err := h.service.RecordSearch(ctx, appsearch.PerformSearchInput{
		UserID:        req.UserID,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		Passengers:    req.Passengers,
	})
	if err != nil {
		h.logger.Error("failed to record search", "error", err)
		responses.WriteError(w, http.StatusBadGateway, "failed to publish event")
		return
	}

	responses.WriteAccepted(w)
}
