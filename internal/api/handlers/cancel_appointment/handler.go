package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/AgendaPro-Service/internal/api/handlers"
	"github.com/m04kA/AgendaPro-Service/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "ID de turno inválido"
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

// Handle POST /api/admin/appointments/{id}/cancel
// Отмена идемпотентна: повторный вызов возвращает тот же успешный ответ
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем id из URL
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/appointments/{id}/cancel - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	if err := h.service.Cancel(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("POST /admin/appointments/{id}/cancel - Invalid input: appointment_id=%d", id)
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)

		default:
			h.logger.Error("POST /admin/appointments/{id}/cancel - Failed to cancel: appointment_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/appointments/{id}/cancel - Appointment cancelled successfully: appointment_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, CancelAppointmentResponse{Success: true})
}
