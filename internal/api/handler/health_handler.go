package handler

import (
	"net/http"

	"go.uber.org/zap"

	apimw "github.com/atu-cloudnative/catalog-service/internal/api/middleware"
	"github.com/atu-cloudnative/catalog-service/internal/service"
)

// HealthHandler serves the liveness probe endpoint.
type HealthHandler struct {
	svc    *service.CatalogService
	logger *zap.Logger
}

func NewHealthHandler(svc *service.CatalogService, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{svc: svc, logger: logger}
}

// Health handles GET /health
//
// @Summary  Liveness probe reporting hostname and OS
// @Tags     system
// @Produce  plain
// @Success  200  {string}  string
// @Failure  500  {object}  map[string]string
// @Router   /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	msg, err := h.svc.Health(r.Context())
	if err != nil {
		h.logger.Error("health check failed",
			zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
			zap.Error(err),
		)
		mapError(w, err)
		return
	}
	respondText(w, http.StatusOK, msg)
}
