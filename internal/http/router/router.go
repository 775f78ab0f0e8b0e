package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	carthandler "musafir/internal/http/handlers/cart"
	flighthandler "musafir/internal/http/handlers/flight"
	"musafir/internal/http/handlers/health"
	searchhandler "musafir/internal/http/handlers/search"
	userhandler "musafir/internal/http/handlers/user"
	"musafir/internal/http/responses"
	"musafir/internal/logging"
)

func NewRouter(
	logger logging.Logger,
	serviceName string,
	healthHandler *health.Handler,
	flightHandler *flighthandler.Handler,
	searchHandler *searchhandler.Handler,
	cartHandler *carthandler.Handler,
	userHandler *userhandler.Handler,
) chi.Router {
	r := chi.NewRouter()

	useBaseMiddlewares(r, logger, serviceName)

	r.Route("/api/v1", func(r chi.Router) {
		// Health
		r.Get("/health", healthHandler.Check)

		// Event-sourced read model
		r.Get("/flights/{id}", flightHandler.GetByID)

		// Producer endpoints: each emits one event to the bus and
		// surfaces publish failures synchronously.
		r.Post("/searches", searchHandler.Create)
		r.Post("/cart/items", cartHandler.AddItem)
		r.Post("/users", userHandler.Register)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteNotFound(w, r)
	})

	return r
}
