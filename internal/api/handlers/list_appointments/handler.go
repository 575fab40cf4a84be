package list_appointments

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

// Handle GET /api/admin/appointments
// Записи возвращаются от новых к старым
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/appointments - Appointments retrieved successfully: count=%d",
		len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
