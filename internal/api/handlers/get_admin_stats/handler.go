package get_admin_stats

import (
	"net/http"

	"github.com/m04kA/AgendaPro-Service/internal/api/handlers"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/stats - Failed to collect stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/stats - Stats retrieved successfully: total=%d", stats.Total)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
