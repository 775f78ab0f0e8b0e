package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"musafir/internal/logging"
)

func useBaseMiddlewares(r chi.Router, logger logging.Logger, serviceName string) {
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(requestLogger(logger))

	r.Use(middleware.Timeout(60 * time.Second))
}
