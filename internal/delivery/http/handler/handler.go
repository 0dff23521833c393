package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/user/market-dashboard/internal/delivery/http/response"
	"github.com/user/market-dashboard/internal/usecase"
	"go.uber.org/zap"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	gateway usecase.CrawlGateway
	quotes  usecase.QuoteService
	storage Pinger
	logger  *zap.Logger
}

func NewHandler(gateway usecase.CrawlGateway, quotes usecase.QuoteService, storage Pinger, logger *zap.Logger) *Handler {
	return &Handler{
		gateway: gateway,
		quotes:  quotes,
		storage: storage,
		logger:  logger,
	}
}

func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.storage.Ping(ctx); err != nil {
		h.logger.Error("Health check failed for credential storage", zap.Error(err))
		h.writeJSON(w, http.StatusServiceUnavailable, response.HealthResponse{Status: "degraded", Storage: "unhealthy"})
		return
	}
	h.writeJSON(w, http.StatusOK, response.HealthResponse{Status: "ok", Storage: "healthy"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to write JSON response", zap.Error(err))
	}
}

func (h *Handler) writeJSONError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
