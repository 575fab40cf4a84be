package get_schedule

import (
	"net/http"

	"github.com/m04kA/AgendaPro-Service/internal/api/handlers"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/schedule
// Шаблоны возвращаются по дням недели, с понедельника
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListTemplates(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/schedule - Failed to list templates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/schedule - Templates retrieved successfully: count=%d", len(result.Templates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
