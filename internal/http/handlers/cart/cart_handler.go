package cart

import (
	"net/http"

	appcart "musafir/internal/app/cart"
	"musafir/internal/http/requests"
	"musafir/internal/http/responses"
	"musafir/internal/logging"
)

type Handler struct {
	service appcart.Service
	logger  logging.Logger
}

func NewHandler(service appcart.Service, logger logging.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "cart_http_handler"),
	}
}

type addItemRequest struct {
	UserID   string  `json:"userId" validate:"required"`
	FlightID string  `json:"flightId" validate:"required"`
	Seats    int     `json:"seats" validate:"min=1,max=9"`
	Price    float64 `json:"price" validate:"min=0"`
	Currency string  `json:"currency" validate:"required,len=3"`
}

// AddItem POST /cart/items
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req addItemRequest
	if !requests.BindAndValidate(w, r, &req) {
		return
	}

	err := h.service.AddItem(ctx, appcart.AddItemInput{
		UserID:   req.UserID,
		FlightID: req.FlightID,
		Seats:    req.Seats,
		Price:    req.Price,
		Currency: req.Currency,
	})
	if err != nil {
		h.logger.Error("failed to add cart item", "error", err)
		responses.WriteError(w, http.StatusBadGateway, "failed to publish event")
		return
	}

	responses.WriteAccepted(w)
}
