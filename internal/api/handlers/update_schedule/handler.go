package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/AgendaPro-Service/internal/api/handlers"
	"github.com/m04kA/AgendaPro-Service/internal/service/schedule"
	"github.com/m04kA/AgendaPro-Service/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgInvalidWeekday     = "Día de la semana inválido"
	msgInvalidTemplate    = "Horario de atención inválido"
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

// Handle PUT /api/admin/schedule/{weekday}
// weekday от 1 (понедельник) до 7 (воскресенье)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем weekday из URL
	weekday, err := strconv.Atoi(vars["weekday"])
	if err != nil {
		h.logger.Warn("PUT /admin/schedule/{weekday} - Invalid weekday: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeekday)
		return
	}

	var req models.UpsertTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/schedule/{weekday} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpsertTemplate(r.Context(), weekday, &req); err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /admin/schedule/{weekday} - Invalid template: weekday=%d, error=%v", weekday, err)
			handlers.RespondBadRequest(w, msgInvalidTemplate)

		default:
			h.logger.Error("PUT /admin/schedule/{weekday} - Failed to update template: weekday=%d, error=%v",
				weekday, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/schedule/{weekday} - Template updated successfully: weekday=%d", weekday)
	handlers.RespondJSON(w, http.StatusOK, UpdateScheduleResponse{Success: true})
}
