package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/AgendaPro-Service/internal/api/handlers"
	createAppointment "github.com/m04kA/AgendaPro-Service/internal/usecase/create_appointment"
	"github.com/m04kA/AgendaPro-Service/pkg/types"
)

const (
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgInvalidDate        = "Fecha inválida"
	msgInvalidTime        = "Horario inválido"
	msgInvalidInput       = "Datos de la solicitud inválidos"
	msgPastDate           = "No se aceptan fechas pasadas"
	msgSlotTaken          = "Horario ya reservado"
	msgBookingFailed      = "Error al agendar"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/appointments
// Ошибки парсинга тела и форматов — 400; бизнес-отказы (прошедшая дата,
// занятый слот) и внутренние сбои — 200 с success=false, клиент читает error
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if isTimeParseError(err) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrPastDate):
			h.logger.Warn("POST /appointments - Past date: date=%s", req.Date)
			respondFailure(w, msgPastDate)

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: date=%s, time=%s", req.Date, req.Time)
			respondFailure(w, msgSlotTaken)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			respondFailure(w, msgBookingFailed)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, date=%s, time=%s",
		result.ID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusOK, CreateAppointmentResponse{Success: true})
}

// respondFailure пишет бизнес-отказ как 200 с success=false
func respondFailure(w http.ResponseWriter, message string) {
	handlers.RespondJSON(w, http.StatusOK, CreateAppointmentResponse{
		Success: false,
		Error:   message,
	})
}

// isTimeParseError различает ошибку парсинга времени слота от ошибки даты
func isTimeParseError(err error) bool {
	return errors.Is(err, types.ErrInvalidTimeString) || errors.Is(err, types.ErrTimeOutOfRange)
}
