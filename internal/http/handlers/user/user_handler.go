package user

import (
	"net/http"

	appuser "musafir/internal/app/user"
	"musafir/internal/http/requests"
	"musafir/internal/http/responses"
	"musafir/internal/logging"
)

type Handler struct {
	service appuser.Service
	logger  logging.Logger
}

func NewHandler(service appuser.Service, logger logging.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "user_http_handler"),
	}
}

type registerRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

// Register POST /users
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerRequest
	if !requests.BindAndValidate(w, r, &req) {
		return
	}

	dto, err := h.service.Register(ctx, appuser.RegisterInput{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		h.logger.Error("failed to register user", "error", err)
		responses.WriteError(w, http.StatusBadGateway, "failed to publish event")
		return
	}

	responses.WriteJSON(w, http.StatusCreated, dto)
}
