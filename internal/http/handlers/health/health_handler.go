package health

import (
	"net/http"

	"musafir/internal/cache"
	"musafir/internal/db"
	"musafir/internal/http/responses"
)

type Handler struct {
	db    *db.Client
	cache *cache.RedisClient
}

func NewHandler(dbClient *db.Client, redisClient *cache.RedisClient) *Handler {
	return &Handler{
		db:    dbClient,
		cache: redisClient,
	}
}

// Check GET /health. Reports per-dependency status; 503 when either
// backing store is unreachable.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := http.StatusOK
	dbStatus := "ok"
	redisStatus := "ok"

	if err := h.db.Ping(ctx); err != nil {
		dbStatus = "down"
		status = http.StatusServiceUnavailable
	}
	if err := h.cache.Ping(ctx); err != nil {
		redisStatus = "down"
		status = http.StatusServiceUnavailable
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}

	responses.WriteJSON(w, status, map[string]string{
		"status": overall,
		"db":     dbStatus,
		"redis":  redisStatus,
	})
}
